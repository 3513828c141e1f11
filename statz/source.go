package statz

import (
	"encoding/binary"

	"github.com/aead/chacha20/chacha"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Source draws reproducible random inputs from a ChaCha8 keystream keyed by a seed. Distinct streams
// of one seed never overlap. A Source is not safe for concurrent use.
type Source struct {
	stream *chacha.Cipher
	buf    [64]byte
	off    int
}

// NewSource returns the stream'th Source of seed.
func NewSource(seed, stream uint64) *Source {
	var key [32]byte
	var nonce [8]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	binary.LittleEndian.PutUint64(nonce[:], stream)
	c, err := chacha.NewCipher(nonce[:], key[:], 8)
	if err != nil {
		panic(err) /* Key and nonce sizes are constant. */
	}
	s := &Source{stream: c}
	s.off = len(s.buf)
	return s
}

func (s *Source) next() byte {
	if s.off == len(s.buf) {
		for i := range s.buf {
			s.buf[i] = 0
		}
		s.stream.XORKeyStream(s.buf[:], s.buf[:])
		s.off = 0
	}
	s.off++
	return s.buf[s.off-1]
}

// RandomString returns n characters drawn uniformly from ASCII letters and digits.
func (s *Source) RandomString(n int) string {
	const limit = 256 - 256%len(alphabet)
	out := make([]byte, n)
	for i := range out {
		b := s.next()
		for int(b) >= limit {
			b = s.next()
		}
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out)
}

// Mutate replaces the last character c of text with the printable character ((c+1) mod 94) + 33.
func Mutate(text string) string {
	r := []rune(text)
	if len(r) == 0 {
		return text
	}
	last := len(r) - 1
	r[last] = (r[last]+1)%94 + 33
	return string(r)
}
