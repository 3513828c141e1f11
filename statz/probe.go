package statz

import (
	"context"
	"fmt"
	"runtime"

	"github.com/p7r0x7/hwvl/registry"
	"golang.org/x/sync/errgroup"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Black-box security probes. None of them can prove anything about a digest; with the default budgets
// they only catch functions that are broken in very obvious ways.

const checkEvery = 1 << 10 /* iterations between context checks */

// Collision hashes trials random texts of the given length and reports whether two different texts
// produced the same digest.
func Collision(ctx context.Context, d registry.Digest, trials, length int, src *Source) (bool, error) {
	seen := make(map[string]string, trials)
	for i := 0; i < trials; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}
		text := src.RandomString(length)
		h := d.Compute(text)
		if prev, ok := seen[h]; ok && prev != text {
			return true, nil
		}
		seen[h] = text
	}
	return false, nil
}

// Preimage picks a random target text and guesses up to tries random texts of the same length,
// reporting whether any other text reproduced the target's digest.
func Preimage(ctx context.Context, d registry.Digest, length, tries int, src *Source) (bool, error) {
	return guess(ctx, d, src.RandomString(length), length, tries, src)
}

// SecondPreimage reports whether a random guess of the same length matches the digest of a given
// random first input. With black-box guessing it differs from Preimage only in intent.
func SecondPreimage(ctx context.Context, d registry.Digest, length, tries int, src *Source) (bool, error) {
	first := src.RandomString(length)
	return guess(ctx, d, first, length, tries, src)
}

func guess(ctx context.Context, d registry.Digest, target string, length, tries int, src *Source) (bool, error) {
	want := d.Compute(target)
	for i := 0; i < tries; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}
		if g := src.RandomString(length); g != target && d.Compute(g) == want {
			return true, nil
		}
	}
	return false, nil
}

// ProbeResult is the outcome of all three probes against one algorithm. Err is set when the
// algorithm failed, in which case the flags are meaningless.
type ProbeResult struct {
	Name           string
	Collision      bool
	Preimage       bool
	SecondPreimage bool
	Err            error
}

// Probe runs every probe against a. A panic inside the algorithm is recovered and reported in Err so
// that one misbehaving algorithm cannot take the others down with it.
func Probe(ctx context.Context, a registry.Algorithm, cfg Config, src *Source) (res ProbeResult) {
	res.Name = a.Name
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("%s: %v", a.Name, r)
		}
	}()
	var err error
	if res.Collision, err = Collision(ctx, a.Digest, cfg.CollisionTrials, cfg.Length, src); err != nil {
		res.Err = err
		return res
	}
	if res.Preimage, err = Preimage(ctx, a.Digest, cfg.ProbeLength, cfg.ProbeTries, src); err != nil {
		res.Err = err
		return res
	}
	if res.SecondPreimage, err = SecondPreimage(ctx, a.Digest, cfg.ProbeLength, cfg.ProbeTries, src); err != nil {
		res.Err = err
	}
	return res
}

// ProbeAll probes every algorithm concurrently, each with its own stream of cfg.Seed, and returns the
// results in the order of algs. The returned error is only ever ctx's.
func ProbeAll(ctx context.Context, algs []registry.Algorithm, cfg Config) ([]ProbeResult, error) {
	results := make([]ProbeResult, len(algs))
	g := errgroup.Group{}
	g.SetLimit(runtime.NumCPU())
	for i := range algs {
		i := i
		g.Go(func() error {
			results[i] = Probe(ctx, algs[i], cfg, NewSource(cfg.Seed, uint64(i)+1))
			return nil
		})
	}
	_ = g.Wait()
	return results, ctx.Err()
}
