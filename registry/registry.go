// Package registry names the digest functions that can be evaluated side by side: HWVL at a fixed
// width and a set of standard hashes rendered as hexadecimal text.
package registry

import (
	"crypto/md5"
	"crypto/sha1"
	stdsha256 "crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"

	"github.com/cespare/xxhash/v2"
	"github.com/minio/sha256-simd"
	"github.com/p7r0x7/hwvl"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Digest is anything that maps a text to a textual digest.
type Digest interface {
	Compute(text string) string
}

// Func adapts an ordinary function to Digest.
type Func func(string) string

func (f Func) Compute(text string) string { return f(text) }

// Algorithm is a named Digest.
type Algorithm struct {
	Name   string
	Digest Digest
}

// ErrUnknown is returned by Lookup for names that are not registered.
var ErrUnknown = errors.New("unknown algorithm")

// HWVL fixes the block width of hwvl.Sum.
func HWVL(width uint) Func {
	return func(text string) string { return hwvl.Sum(text, width) }
}

// Wrap turns a hash constructor into a Digest returning the lowercase hex digest of the text's UTF-8
// bytes.
func Wrap(newHash func() hash.Hash) Func {
	return func(text string) string {
		h := newHash()
		h.Write([]byte(text))
		return hex.EncodeToString(h.Sum(nil))
	}
}

// mustKeyless adapts constructors that take an optional key; a nil key never fails.
func mustKeyless(newHash func([]byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := newHash(nil)
		if err != nil {
			panic(fmt.Errorf("registry: unkeyed hash: %w", err))
		}
		return h
	}
}

// Default returns every registered algorithm, HWVL first, in a fixed order.
func Default() []Algorithm {
	return []Algorithm{
		{"HWVL1", HWVL(hwvl.DefaultWidth)},
		{"MD5", Wrap(md5.New)},
		{"SHA1", Wrap(sha1.New)},
		{"SHA224", Wrap(stdsha256.New224)},
		{"SHA256", Wrap(sha256.New)},
		{"SHA384", Wrap(sha512.New384)},
		{"SHA512", Wrap(sha512.New)},
		{"BLAKE2b", Wrap(mustKeyless(blake2b.New512))},
		{"BLAKE2s", Wrap(mustKeyless(blake2s.New256))},
		{"SHA3_224", Wrap(sha3.New224)},
		{"SHA3_256", Wrap(sha3.New256)},
		{"SHA3_384", Wrap(sha3.New384)},
		{"SHA3_512", Wrap(sha3.New512)},
		{"BLAKE3", Func(func(text string) string {
			sum := blake3.Sum256([]byte(text))
			return hex.EncodeToString(sum[:])
		})},
		{"XXH3", Func(func(text string) string { return fmt.Sprintf("%016x", xxh3.HashString(text)) })},
		{"XXH64", Func(func(text string) string { return fmt.Sprintf("%016x", xxhash.Sum64String(text)) })},
	}
}

// Names lists the names of Default in order.
func Names() []string {
	algs := Default()
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = a.Name
	}
	return names
}

// Lookup finds a registered algorithm by its exact name.
func Lookup(name string) (Algorithm, error) {
	for _, a := range Default() {
		if a.Name == name {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w %q", ErrUnknown, name)
}

// Select resolves names in order; an empty list selects every algorithm.
func Select(names []string) ([]Algorithm, error) {
	if len(names) == 0 {
		return Default(), nil
	}
	algs := make([]Algorithm, 0, len(names))
	for _, name := range names {
		a, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, a)
	}
	return algs, nil
}
