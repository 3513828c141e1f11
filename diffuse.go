package hwvl

import (
	"math"
	"sort"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// The diffusion engine. Every block is processed on its own: values are first smoothed against their
// right-hand neighbour, then put through as many rotate-sort-mix rounds as the block is wide. All
// arithmetic is float64 from start to finish; the only truncation happens when a rotation amount is
// read from the first element.

// smooth replaces each value with the mean of itself and its right-hand neighbour, the last value
// wrapping around to the first. Blocks shorter than two values are returned as they are.
func smooth(v []float64) []float64 {
	n := len(v)
	if n < 2 {
		return v
	}
	out := make([]float64, n)
	for i := 0; i < n-1; i++ {
		out[i] = (v[i] + v[i+1]) / 2
	}
	out[n-1] = (v[n-1] + v[0]) / 2
	return out
}

// rotate shifts v right by k positions in place using tmp (len(tmp) >= len(v)) as scratch space, so
// that v[i] ends up at index (i+k) mod n.
func rotate(v, tmp []float64, k int) {
	n := len(v)
	k = int(floorMod(int64(k), int64(n)))
	if k == 0 {
		return
	}
	copy(tmp, v[n-k:])
	copy(tmp[k:], v[:n-k])
	copy(v, tmp[:n])
}

// rotation reads the rotation amount from x, truncating toward zero.
func rotation(x float64) int {
	return int(math.Trunc(x))
}

// mix rewrites every value but the last two with v[i]*v[i+1]/v[i+2]. A zero divisor substitutes the
// block width instead.
func mix(v []float64, width float64) {
	for i := 0; i < len(v)-2; i++ {
		if v[i+2] != 0 {
			v[i] = v[i] * v[i+1] / v[i+2]
		} else {
			v[i] = width
		}
	}
}

// diffuse runs the complete per-block transform and returns the result, reversed. blk is consumed.
func diffuse(blk []float64, width int) []float64 {
	v := smooth(blk)
	n, tmp := len(v), make([]float64, len(v))
	if n == 0 {
		return v
	}
	for r := width; r > 0; r-- {
		rotate(v, tmp, rotation(v[0]))
		sort.Float64s(v)
		mix(v, float64(width))
	}
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
	return v
}
