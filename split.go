package hwvl

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// padding returns how many filler runes bring n up to a multiple of width.
func padding(n, width int) int {
	return (width - n%width) % width
}

// split right-pads text with '@' to a multiple of width and encodes each width-rune slice into a block.
// Callers guarantee width > 0.
func split(text []rune, width int) [][]float64 {
	pad := padding(len(text), width)
	blocks := make([][]float64, 0, (len(text)+pad)/width)
	for len(text) > 0 {
		blocks = append(blocks, encodeBlock(text, width))
		if len(text) < width {
			break
		}
		text = text[width:]
	}
	return blocks
}

// encodeBlock encodes up to width runes of text and fills the remainder of the block with '@'.
func encodeBlock(text []rune, width int) []float64 {
	blk := make([]float64, width)
	for i := range blk {
		if i < len(text) {
			blk[i] = float64(Encode(text[i]))
		} else {
			blk[i] = float64(Encode(filler))
		}
	}
	return blk
}
