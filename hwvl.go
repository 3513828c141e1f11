package hwvl

import (
	"runtime"
	"sync"
)

// N.B.: HWVL is not a cryptographic hash function. It offers no proven resistance to collisions or
// preimages; its statistical behaviour is measured, not guaranteed.
// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file is the reference Go implementation of the HWVL digest: a text is split into blocks of
// `width` code points, every block is diffused independently, and the column-wise means of all
// diffused blocks are mapped back onto printable ASCII.

const (
	// DefaultWidth is the block width, and therefore digest length, used by Sum32.
	DefaultWidth = 32
	// MaxWidth is the widest block Sum and New accept. Every block costs width rounds of sorting
	// width values, so far smaller widths are already impractical.
	MaxWidth = 1 << 20
)

var threads = runtime.NumCPU()

// Sum returns the HWVL digest of text: exactly width printable characters in the range '!' to '~'.
// An empty text or a zero width yields an empty digest. Sum panics if width exceeds MaxWidth.
func Sum(text string, width uint) string {
	checkWidth(width)
	if text == "" || width == 0 {
		return ""
	}
	blocks := split([]rune(text), int(width))
	return assemble(aggregate(diffuseAll(blocks, int(width)), int(width)))
}

func checkWidth(width uint) {
	if width > MaxWidth {
		panic("invalid input: block width")
	}
}

// Sum32 is Sum with DefaultWidth.
func Sum32(text string) string { return Sum(text, DefaultWidth) }

// diffuseAll diffuses every block in place of its input, spreading the work over up to one goroutine
// per CPU. Results stay at their block's index.
func diffuseAll(blocks [][]float64, width int) [][]float64 {
	if len(blocks) == 1 || threads < 2 {
		for i := range blocks {
			blocks[i] = diffuse(blocks[i], width)
		}
		return blocks
	}

	workers := threads
	if workers > len(blocks) {
		workers = len(blocks)
	}
	next, wg := make(chan int, workers), sync.WaitGroup{}
	wg.Add(workers)
	for i := workers; i > 0; i-- {
		go func() {
			for dex := range next {
				blocks[dex] = diffuse(blocks[dex], width) /* Each index is written by one worker only. */
			}
			wg.Done()
		}()
	}
	for dex := range blocks {
		next <- dex
	}
	close(next)
	wg.Wait()
	return blocks
}
