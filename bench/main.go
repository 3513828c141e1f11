package main

import (
	. "fmt"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/dterei/gotsc"
	"github.com/minio/sha256-simd"
	"github.com/p7r0x7/hwvl"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"golang.org/x/sys/cpu"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// HWVL's cost grows with the square of its block width, not only with input size, so every width is
// benchmarked as its own row and also reported per block. Byte-oriented hashes follow as a baseline.

/* Payload sizes in characters; every payload byte is printable and therefore one rune. */
var sizes = [...]int{64, 4 << 10, 64 << 10}
var widths = [...]uint{8, hwvl.DefaultWidth, 128}
var calltime = tscOverhead()

func tscOverhead() uint64 {
	if runtime.GOARCH != "amd64" {
		return 0
	}
	return gotsc.TSCOverhead()
}

type row struct {
	name  string
	width uint /* zero for hashes without blocks */
	run   func(msg []byte)
}

func rows() []row {
	out := make([]row, 0, len(widths)+3)
	for _, w := range widths {
		d := hwvl.New(w)
		out = append(out, row{Sprintf("HWVL/%d", w), w, func(msg []byte) {
			d.Write(msg)
			d.Sum(nil)
			d.Reset()
		}})
	}
	return append(out,
		row{"SHA-256 (sha256-simd)", 0, func(msg []byte) { sha256.Sum256(msg) }},
		row{"BLAKE3", 0, func(msg []byte) { blake3.Sum256(msg) }},
		row{"XXH3", 0, func(msg []byte) { xxh3.Hash(msg) }},
	)
}

func payload(size int) []byte {
	msg := make([]byte, size)
	for i := range msg {
		msg[i] = byte('!' + i%94)
	}
	return msg
}

// cycleRate samples the TSC in the background until stop is closed and returns a function reporting
// the mean cycles per second observed. It reports zero where no TSC is available.
func cycleRate(stop chan struct{}) func() float64 {
	var total, polls uint64
	mut := &sync.Mutex{}
	if calltime > 0 {
		go func() {
			for {
				select {
				case <-stop:
					return
				case <-time.After(9 * time.Millisecond):
				}
				tsc1 := gotsc.BenchStart()
				time.Sleep(time.Millisecond)
				tsc2 := gotsc.BenchEnd()
				mut.Lock()
				total += tsc2 - tsc1 - calltime
				polls++
				mut.Unlock()
			}
		}()
	}
	return func() float64 {
		mut.Lock()
		defer mut.Unlock()
		if polls == 0 {
			return 0
		}
		return float64(total) * 1000 / float64(polls)
	}
}

// measure benchmarks r over one payload and returns MB/s, cycles per byte, bytes allocated per op and
// microseconds per block (zero for rows without blocks).
func measure(r row, msg []byte) (mbps, cpb, allocs, perBlock float64) {
	stop := make(chan struct{})
	hz := cycleRate(stop)
	res := testing.Benchmark(func(b *testing.B) {
		b.SetBytes(int64(len(msg)))
		b.ReportAllocs()
		b.ResetTimer()
		for i := b.N; i > 0; i-- {
			r.run(msg)
		}
	})
	close(stop)

	bps := float64(res.Bytes*int64(res.N)) / res.T.Seconds()
	if rate := hz(); rate > 0 {
		cpb = rate / bps
	}
	if r.width > 0 {
		blocks := (len(msg) + int(r.width) - 1) / int(r.width)
		perBlock = float64(res.NsPerOp()) / 1e3 / float64(blocks)
	}
	return bps / 1e6, cpb, float64(res.AllocedBytesPerOp()), perBlock
}

func features() string {
	switch {
	case cpu.X86.HasAVX512F:
		return "AVX-512"
	case cpu.X86.HasAVX2:
		return "AVX2"
	case cpu.ARM64.HasASIMD:
		return "ASIMD"
	default:
		return "generic"
	}
}

func main() {
	Printf("Running bench on %d CPUs!\n%s/%s (%s)\n\n", runtime.NumCPU(), runtime.GOOS, runtime.GOARCH, features())
	t := time.Now()

	for _, r := range rows() {
		Println(r.name)
		for _, size := range sizes {
			mbps, cpb, allocs, perBlock := measure(r, payload(size))
			line := Sprintf("  %7d B  %10.3f MB/s  %10.0f B/op", size, mbps, allocs)
			if cpb > 0 {
				line += Sprintf("  %10.1f cpb", cpb)
			}
			if perBlock > 0 {
				line += Sprintf("  %9.2f µs/block", perBlock)
			}
			Println(line)
		}
		Println()
	}

	Println("Finished in " + time.Since(t).Truncate(time.Millisecond).String() + ".")
}
