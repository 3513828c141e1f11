package hwvl

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const (
	printableStart = 33 /* '!' */
	printableEnd   = 126
	printableRange = printableEnd - printableStart + 1
	filler         = '@'
)

// Encode returns the code point of r. No range restriction applies.
func Encode(r rune) int64 { return int64(r) }

// Decode maps any integer onto the 94 printable ASCII characters '!' through '~'. Negative values wrap
// the same way positive ones do.
func Decode(v int64) rune {
	return printableStart + rune(floorMod(v, printableRange))
}

// floorMod returns a mod n with the sign of n, unlike Go's % operator which takes the sign of a.
func floorMod(a, n int64) int64 {
	m := a % n
	if m != 0 && (m < 0) != (n < 0) {
		m += n
	}
	return m
}
