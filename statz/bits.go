package statz

import (
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Bit-level measures over digest text. Every byte of a digest counts as 8 bits, which is exact for
// HWVL output and for hexadecimal digests alike.

// Bits renders s as a string of '0' and '1', eight per byte, most significant bit first.
func Bits(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) * 8)
	for i := 0; i < len(s); i++ {
		b := strconv.FormatUint(uint64(s[i]), 2)
		sb.WriteString(strings.Repeat("0", 8-len(b)))
		sb.WriteString(b)
	}
	return sb.String()
}

// BitDifference counts the bits that differ between a and b. The shorter digest is treated as if it
// were padded with zero bits.
func BitDifference(a, b string) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	var diff int
	for i := 0; i < len(a); i++ {
		var c byte
		if i < len(b) {
			c = b[i]
		}
		diff += bits.OnesCount8(a[i] ^ c)
	}
	return diff
}

// BitUniformity returns the percentages of set and clear bits in s.
func BitUniformity(s string) (ones, zeros float64) {
	if len(s) == 0 {
		return 0, 0
	}
	var set int
	for i := 0; i < len(s); i++ {
		set += bits.OnesCount8(s[i])
	}
	total := float64(len(s) * 8)
	return float64(set) / total * 100, float64(len(s)*8-set) / total * 100
}

// Entropy is the Shannon entropy, in bits per character, of the character distribution of s.
func Entropy(s string) float64 {
	counts, n := map[rune]int{}, 0
	for _, r := range s {
		counts[r]++
		n++
	}
	var h float64
	for _, c := range counts {
		p := float64(c) / float64(n)
		h -= p * math.Log2(p)
	}
	return h
}

// MaxRunLength returns the length of the longest run of identical characters in a bit string such as
// the one Bits returns.
func MaxRunLength(bitstr string) int {
	if len(bitstr) == 0 {
		return 0
	}
	best, run := 1, 1
	for i := 1; i < len(bitstr); i++ {
		if bitstr[i] == bitstr[i-1] {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}
	return best
}

// MeanBias is a monobit test over many digests of equal length: the mean distance, in percent of the
// ideal, between how often each bit position is set and half the number of digests. Zero is perfectly
// unbiased.
func MeanBias(digests []string) float64 {
	if len(digests) == 0 || len(digests[0]) == 0 {
		return 0
	}
	ln := len(digests[0]) * 8
	tally := make([]int, ln)
	for _, d := range digests {
		for i := 0; i < ln && i/8 < len(d); i++ {
			if d[i/8]>>(7-i%8)&1 == 1 {
				tally[i]++
			}
		}
	}
	half := float64(len(digests)) / 2
	var total float64
	for _, t := range tally {
		total += math.Abs(float64(t) - half)
	}
	return total / float64(ln) / half * 100
}
