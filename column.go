package hwvl

import "math"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// aggregate reduces diffused blocks to one integer per column: the arithmetic mean of that column
// across all blocks, rounded half to even. Column sums are accumulated left to right in block order,
// which is what makes outputs reproducible across implementations.
func aggregate(blocks [][]float64, width int) []int64 {
	cols := make([]int64, width)
	if len(blocks) == 0 {
		return cols
	}
	count := float64(len(blocks))
	for j := range cols {
		var sum float64
		for _, blk := range blocks {
			sum += blk[j]
		}
		cols[j] = int64(math.RoundToEven(sum / count))
	}
	return cols
}

// assemble decodes each column into its printable character.
func assemble(cols []int64) string {
	out := make([]rune, len(cols))
	for i, v := range cols {
		out[i] = Decode(v)
	}
	return string(out)
}
