package hwvl

import (
	"hash"
	"io"
	"sync"
	"unicode/utf8"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains a Go-specific API implementing the standard hash.Hash interface.

// Digest computes HWVL incrementally. Written bytes are decoded as UTF-8; each complete block of
// runes is diffused by background workers while writing continues. Those workers run until the next
// Sum or Reset, so a Digest must always be finished with one of the two before it is dropped. A Digest
// is not safe for concurrent use.
type Digest struct {
	width    int
	dex      uint64
	runes    []rune /* Runes of the block being filled. */
	pending  []byte /* Trailing bytes of an incomplete UTF-8 sequence. */
	to, from chan block
	list     map[uint64][]float64
	summing  sync.WaitGroup
	mapping  sync.WaitGroup
}

type block struct {
	dex  uint64
	data []float64
}

var (
	_ hash.Hash       = (*Digest)(nil)
	_ io.StringWriter = (*Digest)(nil)
)

// New returns a Digest producing width-character digests. A zero width always sums to nothing. New
// panics if width exceeds MaxWidth.
func New(width uint) *Digest {
	checkWidth(width)
	return &Digest{
		width: int(width),
		runes: make([]rune, 0, width),
		list:  map[uint64][]float64{},
	}
}

// Size returns the digest length in bytes, which equals the block width.
func (d *Digest) Size() int { return d.width }

// BlockSize returns the block width, counted in runes rather than bytes.
func (d *Digest) BlockSize() int { return d.width }

func (d *Digest) Write(buf []byte) (int, error) {
	count := len(buf)
	if d.width == 0 {
		return count, nil
	}
	if len(d.pending) > 0 {
		buf = append(d.pending, buf...)
		d.pending = nil
	}
	for len(buf) > 0 && utf8.FullRune(buf) {
		r, size := utf8.DecodeRune(buf)
		buf = buf[size:]
		d.push(r)
	}
	d.pending = append(d.pending, buf...)
	return count, nil
}

func (d *Digest) WriteString(s string) (int, error) {
	return d.Write([]byte(s))
}

// Sum appends the digest of everything written so far to buf. The state of d is left untouched, so
// writing may continue afterwards.
func (d *Digest) Sum(buf []byte) []byte {
	if d.width == 0 || d.dex == 0 && len(d.runes) == 0 && len(d.pending) == 0 {
		return buf
	}
	d.finalize()

	tail := append(make([]rune, 0, len(d.runes)+len(d.pending)), d.runes...)
	for rest := d.pending; len(rest) > 0; {
		/* A sequence cut short decodes to one U+FFFD per byte, as converting a string to runes does. */
		r, size := utf8.DecodeRune(rest)
		tail = append(tail, r)
		rest = rest[size:]
	}
	blocks := make([][]float64, 0, d.dex+2)
	for i := uint64(0); i < d.dex; i++ {
		blocks = append(blocks, d.list[i])
	}
	if len(tail) > 0 {
		blocks = append(blocks, diffuseAll(split(tail, d.width), d.width)...)
	}
	return append(buf, assemble(aggregate(blocks, d.width))...)
}

func (d *Digest) Reset() {
	d.finalize()
	d.dex, d.runes, d.pending = 0, d.runes[:0], nil
	for k := range d.list {
		delete(d.list, k)
	}
}

// push appends r to the current block and hands the block to the workers once it is full.
func (d *Digest) push(r rune) {
	d.runes = append(d.runes, r)
	if len(d.runes) < d.width {
		return
	}
	if d.to == nil {
		d.initMapper()
		d.initWorkers()
	}
	d.to <- block{d.dex, encodeBlock(d.runes, d.width)}
	d.runes = d.runes[:0]
	d.dex++
}

// finalize waits for every queued block to be diffused and recorded, then stops the workers; push
// restarts them on demand.
func (d *Digest) finalize() {
	if d.to == nil {
		return
	}
	close(d.to)
	d.summing.Wait() /* Parallel diffusion is paused. */
	close(d.from)
	d.mapping.Wait()
	d.to, d.from = nil, nil
}

func (d *Digest) initWorkers() {
	to, from := make(chan block, threads), d.from
	d.to = to
	d.summing.Add(threads)
	for i := threads; i > 0; i-- {
		go func() {
			for b := range to {
				from <- block{b.dex, diffuse(b.data, d.width)}
			}
			d.summing.Done()
		}()
	}
}

func (d *Digest) initMapper() {
	from := make(chan block, threads)
	d.from = from
	d.mapping.Add(1)
	go func() {
		for b := range from {
			d.list[b.dex] = b.data
		}
		d.mapping.Done()
	}()
}
