// Package simd provides the byte and substring searches behind the
// prefilters.
//
// The word-at-a-time paths load eight haystack bytes into a uint64 and test
// them with the zero-byte trick from Hacker's Delight. The lowest flagged
// byte is the first match only in little-endian order, and a big-endian
// host would pay a byte swap on every load, so those paths are used only on
// little-endian 64-bit targets. Other targets use the byte loops.
package simd

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// wideLoads enables the word-at-a-time search paths.
var wideLoads = !cpu.IsBigEndian && bits.UintSize == 64

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// hasZeroByte sets the high bit of every zero byte in v. Bits above the first
// zero byte may be false positives, so callers only trust the lowest one.
func hasZeroByte(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}
