package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack. An empty needle matches at 0,
// as with bytes.Index.
//
// Candidates are found by scanning for the needle's rarest byte (see
// byteFrequencies) with Memchr and then verified in full.
//
// Example:
//
//	pos := simd.Memmem([]byte("aaaaaabaaaa"), []byte("aab"))
//	// pos == 5
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	switch {
	case needleLen == 0:
		return 0
	case needleLen > haystackLen:
		return -1
	case needleLen == 1:
		return Memchr(haystack, needle[0])
	}

	rare, rareIdx := selectRareByte(needle)

	// The rare byte can only occur at rareIdx..haystackLen-needleLen+rareIdx
	// for a full needle to fit around it.
	searchStart := rareIdx
	last := haystackLen - needleLen + rareIdx
	for searchStart <= last {
		pos := Memchr(haystack[searchStart:last+1], rare)
		if pos < 0 {
			return -1
		}
		pos += searchStart

		start := pos - rareIdx
		if bytes.Equal(haystack[start:start+needleLen], needle) {
			return start
		}
		searchStart = pos + 1
	}
	return -1
}
