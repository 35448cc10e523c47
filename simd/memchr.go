package simd

import (
	"encoding/binary"
	"math/bits"
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
func Memchr(haystack []byte, needle byte) int {
	if wideLoads && len(haystack) >= 8 {
		return memchrWord(haystack, needle)
	}
	return memchrByte(haystack, needle)
}

// Memchr2 returns the index of the first byte equal to either needle,
// or -1.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	if wideLoads && len(haystack) >= 8 {
		return memchr2Word(haystack, needle1, needle2)
	}
	for i, b := range haystack {
		if b == needle1 || b == needle2 {
			return i
		}
	}
	return -1
}

// Memchr3 returns the index of the first byte equal to any of the three
// needles, or -1.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	if wideLoads && len(haystack) >= 8 {
		return memchr3Word(haystack, needle1, needle2, needle3)
	}
	for i, b := range haystack {
		if b == needle1 || b == needle2 || b == needle3 {
			return i
		}
	}
	return -1
}

// MemchrInTable returns the index of the first byte b with table[b] set,
// or -1.
func MemchrInTable(haystack []byte, table *[256]bool) int {
	for i, b := range haystack {
		if table[b] {
			return i
		}
	}
	return -1
}

func memchrByte(haystack []byte, needle byte) int {
	for i, b := range haystack {
		if b == needle {
			return i
		}
	}
	return -1
}

func memchrWord(haystack []byte, needle byte) int {
	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if z := hasZeroByte(chunk ^ mask); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}

	if j := memchrByte(haystack[i:], needle); j >= 0 {
		return i + j
	}
	return -1
}

func memchr2Word(haystack []byte, needle1, needle2 byte) int {
	mask1 := uint64(needle1) * lo8
	mask2 := uint64(needle2) * lo8

	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		if z := hasZeroByte(chunk^mask1) | hasZeroByte(chunk^mask2); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}

	for ; i < len(haystack); i++ {
		if b := haystack[i]; b == needle1 || b == needle2 {
			return i
		}
	}
	return -1
}

func memchr3Word(haystack []byte, needle1, needle2, needle3 byte) int {
	mask1 := uint64(needle1) * lo8
	mask2 := uint64(needle2) * lo8
	mask3 := uint64(needle3) * lo8

	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		z := hasZeroByte(chunk^mask1) | hasZeroByte(chunk^mask2) | hasZeroByte(chunk^mask3)
		if z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}

	for ; i < len(haystack); i++ {
		if b := haystack[i]; b == needle1 || b == needle2 || b == needle3 {
			return i
		}
	}
	return -1
}
