package simd

import (
	"bytes"
	"math/bits"
	"strings"
	"testing"

	"golang.org/x/sys/cpu"
)

// withWideLoads runs fn once with each search path selected.
func withWideLoads(t *testing.T, fn func(t *testing.T)) {
	saved := wideLoads
	defer func() { wideLoads = saved }()

	for _, wide := range []bool{false, true} {
		wideLoads = wide
		name := "byte"
		if wide {
			name = "word"
		}
		t.Run(name, fn)
	}
}

func TestMemchr(t *testing.T) {
	tests := []struct {
		haystack string
		needle   byte
		want     int
	}{
		{"", 'a', -1},
		{"a", 'a', 0},
		{"hello", 'l', 2},
		{"hello", 'z', -1},
		{"abcdefgh", 'h', 7},
		{"abcdefghi", 'i', 8},
		{strings.Repeat("x", 100) + "y", 'y', 100},
		{strings.Repeat("x", 100), 'y', -1},
		{"\x00\x01\x80\xff", 0xff, 3},
		{"\x01\x00\x00\x00\x00\x00\x00\x00\x00", 0, 1},
	}

	withWideLoads(t, func(t *testing.T) {
		for _, tt := range tests {
			if got := Memchr([]byte(tt.haystack), tt.needle); got != tt.want {
				t.Errorf("Memchr(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		}
	})
}

func TestMemchr_AgreesWithIndexByte(t *testing.T) {
	haystack := []byte("the quick brown fox jumps over the lazy dog 0123456789")

	withWideLoads(t, func(t *testing.T) {
		for start := 0; start < len(haystack); start++ {
			for c := 0; c < 256; c++ {
				want := bytes.IndexByte(haystack[start:], byte(c))
				if got := Memchr(haystack[start:], byte(c)); got != want {
					t.Fatalf("Memchr(haystack[%d:], %q) = %d, want %d", start, c, got, want)
				}
			}
		}
	})
}

func TestMemchr2And3(t *testing.T) {
	tests := []struct {
		haystack string
		needles  string
		want     int
	}{
		{"", "ab", -1},
		{"xxxb", "ab", 3},
		{"xxxxxxxxxxxxxxxxxab", "ab", 17},
		{"xxxxxxxxxxxxxxxxxba", "ab", 17},
		{"xxxxxxxxxxxx", "ab", -1},
		{"xxc", "abc", 2},
		{"xxxxxxxxxxxxxxxxcba", "abc", 16},
		{"xxxxxxxxxxxxxxxxxxxxxxxxx", "abc", -1},
	}

	withWideLoads(t, func(t *testing.T) {
		for _, tt := range tests {
			h, n := []byte(tt.haystack), tt.needles
			var got int
			if len(n) == 2 {
				got = Memchr2(h, n[0], n[1])
			} else {
				got = Memchr3(h, n[0], n[1], n[2])
			}
			if got != tt.want {
				t.Errorf("search(%q, %q) = %d, want %d", tt.haystack, tt.needles, got, tt.want)
			}
		}
	})
}

func TestMemchrInTable(t *testing.T) {
	var table [256]bool
	table['q'] = true
	table['z'] = true

	if got := MemchrInTable([]byte("abcz"), &table); got != 3 {
		t.Errorf("MemchrInTable = %d, want 3", got)
	}
	if got := MemchrInTable([]byte("abc"), &table); got != -1 {
		t.Errorf("MemchrInTable = %d, want -1", got)
	}
}

func TestMemmem(t *testing.T) {
	tests := []struct {
		haystack, needle string
	}{
		{"hello world", "world"},
		{"hello world", "xyz"},
		{"aaaaaabaaaa", "aab"},
		{"abc", ""},
		{"", "a"},
		{"ab", "abc"},
		{"abcabcabd", "abd"},
		{"Zebra Zoo", "Zoo"},
		{"xQx", "xQx"},
		{strings.Repeat("ab", 50) + "abQ", "abQ"},
		{"q", "q"},
	}

	withWideLoads(t, func(t *testing.T) {
		for _, tt := range tests {
			want := bytes.Index([]byte(tt.haystack), []byte(tt.needle))
			if got := Memmem([]byte(tt.haystack), []byte(tt.needle)); got != want {
				t.Errorf("Memmem(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, want)
			}
		}
	})
}

func TestSelectRareByte(t *testing.T) {
	tests := []struct {
		needle string
		want   byte
		index  int
	}{
		{"a", 'a', 0},
		{"eZe", 'Z', 1},
		{"the", 'h', 1},
		{"aa", 'a', 0},
	}

	for _, tt := range tests {
		b, i := selectRareByte([]byte(tt.needle))
		if b != tt.want || i != tt.index {
			t.Errorf("selectRareByte(%q) = (%q, %d), want (%q, %d)", tt.needle, b, i, tt.want, tt.index)
		}
	}
}

func TestByteFrequencies(t *testing.T) {
	if byteFrequencies[' '] != 255 {
		t.Errorf("rank of ' ' = %d, want 255", byteFrequencies[' '])
	}
	if byteFrequencies['Z'] >= byteFrequencies['e'] {
		t.Error("'Z' should rank rarer than 'e'")
	}
}

func TestWideLoadsHost(t *testing.T) {
	want := !cpu.IsBigEndian && bits.UintSize == 64
	if wideLoads != want {
		t.Errorf("wideLoads = %v on a host with big endian %v and %d-bit words", wideLoads, cpu.IsBigEndian, bits.UintSize)
	}
}
