package main

import (
	"context"
	. "fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/p7r0x7/hwvl/registry"
	"github.com/p7r0x7/hwvl/statz"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// hwvlstat compares HWVL with standard hash functions: avalanche behaviour, entropy, bit runs and
// speed over random inputs, followed by brute-force collision and preimage probes.

var (
	pConfig   = pflag.StringP("config", "c", "", "read run settings from a YAML file")
	pTests    = pflag.IntP("tests", "n", 0, "avalanche trials (default 500)")
	pTries    = pflag.Int("tries", 0, "guesses per preimage probe (default 100000)")
	pSeed     = pflag.Uint64("seed", 0, "seed for the random inputs")
	pAlgs     = pflag.StringSliceP("algorithm", "a", nil, "evaluate only the named algorithms")
	pNoProbe  = pflag.Bool("no-probes", false, "skip the collision and preimage probes")
	pLogLevel = pflag.String("log-level", "info", "logrus level: debug, info, warn, error")
)

func main() { os.Exit(program()) }

func program() int {
	pflag.CommandLine.SortFlags = false
	pflag.Parse()
	logger := setupLogger(*pLogLevel)

	cfg, err := config()
	if err != nil {
		logger.WithError(err).Error("invalid configuration")
		return 2
	}
	algs, err := registry.Select(cfg.Algorithms)
	if err != nil {
		logger.WithError(err).Error("selecting algorithms")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	Printf("Running hwvlstat on %d CPUs!\n%s/%s\n\n", runtime.NumCPU(), runtime.GOOS, runtime.GOARCH)
	t := time.Now()

	logger.WithField("tests", cfg.Tests).Info("running avalanche trials")
	res, err := statz.Run(ctx, cfg, algs, statz.NewSource(cfg.Seed, 0))
	if res != nil {
		printSummaries(res.Summaries())
	}
	if err != nil {
		logger.WithError(err).Warn("avalanche trials interrupted")
		return 1
	}

	Println()
	for _, a := range algs {
		ints, rands := statz.Monobit(a.Digest, cfg.Tests, cfg.Length, statz.NewSource(cfg.Seed, uint64(len(algs))+1))
		Printf("%-9s - Integer input Monobit test: %6.3f%%, Random input Monobit test: %6.3f%%\n", a.Name, ints, rands)
	}

	if !*pNoProbe {
		Printf("\n--- Security Tests (%d tries) ---\n", cfg.ProbeTries)
		results, err := statz.ProbeAll(ctx, algs, cfg)
		for _, r := range results {
			if r.Err != nil {
				logger.WithField("algorithm", r.Name).WithError(r.Err).Warn("skipped due to error")
				continue
			}
			Printf("Collision %s: %t\n", r.Name, r.Collision)
			Printf("Preimage %s: %t\n", r.Name, r.Preimage)
			Printf("Second Preimage %s: %t\n", r.Name, r.SecondPreimage)
		}
		if err != nil {
			logger.WithError(err).Warn("probes interrupted")
			return 1
		}
	}

	Println("\nFinished in " + time.Since(t).Truncate(time.Millisecond).String() + ".")
	return 0
}

// config layers command-line flags over the optional YAML file over the defaults.
func config() (statz.Config, error) {
	cfg := statz.DefaultConfig()
	if *pConfig != "" {
		var err error
		if cfg, err = statz.LoadConfig(*pConfig); err != nil {
			return cfg, err
		}
	}
	if *pTests > 0 {
		cfg.Tests = *pTests
	}
	if *pTries > 0 {
		cfg.ProbeTries = *pTries
	}
	if pflag.CommandLine.Changed("seed") {
		cfg.Seed = *pSeed
	}
	if len(*pAlgs) > 0 {
		cfg.Algorithms = *pAlgs
	}
	return cfg, cfg.Validate()
}

func setupLogger(level string) log.FieldLogger {
	logger := log.WithField("app", "hwvlstat")
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.WithError(err).Warnf("invalid log level %q, using info", level)
		lvl = log.InfoLevel
	}
	logger.Logger.SetLevel(lvl)
	logger.Logger.SetOutput(os.Stderr)
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "01-02-2006 15:04:05",
	})
	return logger
}

func printSummaries(sums []statz.Summary) {
	for _, s := range sums {
		line := Sprintf("%-9s - Avalanche: %6.2f%%, Entropy: %.2f, Max Run: %.2f, Time: %s",
			s.Name, s.Avalanche, s.Entropy, s.MaxRun, s.Elapsed)
		if s.Cycles > 0 {
			line += Sprintf(", Cycles: %.f", s.Cycles)
		}
		Println(line)
	}
}
