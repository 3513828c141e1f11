// Package statz measures digest functions side by side: avalanche behaviour, bit statistics, timing
// and brute-force collision and preimage probes.
package statz

import (
	"context"
	"runtime"
	"strconv"
	"time"

	"github.com/dterei/gotsc"
	"github.com/p7r0x7/hwvl/registry"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var calltime = tscOverhead()

func tscOverhead() uint64 {
	if runtime.GOARCH != "amd64" {
		return 0
	}
	return gotsc.TSCOverhead()
}

// Sample is what one trial measured for one algorithm.
type Sample struct {
	Avalanche float64 /* percent of digest bits flipped by a one-character change */
	Entropy   float64 /* bits per character of the first digest */
	MaxRun    int     /* longest run of identical bits in the first digest */
	Elapsed   time.Duration
	Cycles    uint64 /* zero where no TSC is available */
}

// Summary holds the means of an algorithm's samples.
type Summary struct {
	Name      string
	Trials    int
	Avalanche float64
	Entropy   float64
	MaxRun    float64
	Elapsed   time.Duration
	Cycles    float64
}

// Results collects the samples of one run, keyed by algorithm name.
type Results struct {
	Order   []string
	Samples map[string][]Sample
}

func newResults(algs []registry.Algorithm, capacity int) *Results {
	r := &Results{Order: make([]string, len(algs)), Samples: make(map[string][]Sample, len(algs))}
	for i, a := range algs {
		r.Order[i] = a.Name
		r.Samples[a.Name] = make([]Sample, 0, capacity)
	}
	return r
}

// Summary averages the samples recorded for name.
func (r *Results) Summary(name string) Summary {
	samples := r.Samples[name]
	s := Summary{Name: name, Trials: len(samples)}
	if len(samples) == 0 {
		return s
	}
	var elapsed time.Duration
	for _, v := range samples {
		s.Avalanche += v.Avalanche
		s.Entropy += v.Entropy
		s.MaxRun += float64(v.MaxRun)
		s.Cycles += float64(v.Cycles)
		elapsed += v.Elapsed
	}
	n := float64(len(samples))
	s.Avalanche /= n
	s.Entropy /= n
	s.MaxRun /= n
	s.Cycles /= n
	s.Elapsed = elapsed / time.Duration(len(samples))
	return s
}

// Summaries returns Summary for every algorithm in run order.
func (r *Results) Summaries() []Summary {
	out := make([]Summary, len(r.Order))
	for i, name := range r.Order {
		out[i] = r.Summary(name)
	}
	return out
}

// Run performs cfg.Tests avalanche trials. Each trial hashes one random text and its Mutate'd twin with
// every algorithm and records a Sample. Cancelling ctx stops the run between trials and returns what
// was collected so far alongside the context's error.
func Run(ctx context.Context, cfg Config, algs []registry.Algorithm, src *Source) (*Results, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	res := newResults(algs, cfg.Tests)
	for i := 0; i < cfg.Tests; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		text := src.RandomString(cfg.Length)
		mod := Mutate(text)
		for _, a := range algs {
			res.Samples[a.Name] = append(res.Samples[a.Name], trial(a.Digest, text, mod))
		}
	}
	return res, nil
}

func trial(d registry.Digest, text, mod string) Sample {
	h1, h2 := d.Compute(text), d.Compute(mod)
	bits := Bits(h1)
	s := Sample{Entropy: Entropy(h1), MaxRun: MaxRunLength(bits)}
	if len(bits) > 0 {
		s.Avalanche = float64(BitDifference(h1, h2)) / float64(len(bits)) * 100
	}
	s.Elapsed, s.Cycles = timeDigest(d, text)
	return s
}

// timeDigest measures a single call of d in wall time and, on amd64, in TSC cycles.
func timeDigest(d registry.Digest, text string) (time.Duration, uint64) {
	if calltime == 0 {
		t := time.Now()
		d.Compute(text)
		return time.Since(t), 0
	}
	t := time.Now()
	tsc1 := gotsc.BenchStart()
	d.Compute(text)
	tsc2 := gotsc.BenchEnd()
	elapsed := time.Since(t)
	if tsc2-tsc1 < calltime {
		return elapsed, 0
	}
	return elapsed, tsc2 - tsc1 - calltime
}

// Monobit digests count consecutive integers rendered as decimal text, then count random texts, and
// returns the MeanBias of each set.
func Monobit(d registry.Digest, count, length int, src *Source) (integers, random float64) {
	ints, rands := make([]string, count), make([]string, count)
	for i := 0; i < count; i++ {
		ints[i] = d.Compute(strconv.Itoa(i + 1))
		rands[i] = d.Compute(src.RandomString(length))
	}
	return MeanBias(ints), MeanBias(rands)
}
