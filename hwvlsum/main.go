package main

import (
	. "fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/p7r0x7/hwvl"
	"github.com/p7r0x7/hwvl/registry"
	"github.com/p7r0x7/vainpath"
	. "github.com/spf13/pflag"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure = 0, 1

var warnings = 0

func main() { os.Exit(program()) }

// help prints a usage menu. To consistently correctly render this menu in most terminal windows, its
// content should be no wider than 80 columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "hwvlsum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "HWVL: a printable, non-cryptographic text digest.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h] [--list]"+n,
		spaces, "[-t] [-a <name>] [-l <uint>] [--quiet|no-codes] [--strict] -|PATH..."+n,
		spaces, "[-t] [-a <name>] [-l <uint>] [--quiet|no-codes] [--strict] -s STRING..."+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+n+
		"specified, signaling the end of parsed flags. Long-form flag equivalents are"+n+
		"above. `-` is treated as a reference to ", os.Stdin.Name(), " on this platform."+n)
}

// This program is a command-line interface for HWVL and its registered peers: it handles various
// flags and an unlimited number of arguments, processing strings, files, or STDIN as requested.
func program() int {
	if pDebug {
		cf, err := os.Create("cpu.prof")
		if err != nil {
			panic(err)
		}
		_ = pprof.StartCPUProfile(cf)
		defer pprof.StopCPUProfile()
	}

	if pList {
		for _, name := range registry.Names() {
			Println(name)
		}
		return success
	}
	if pHelp || NArg() == 0 {
		help()
		return success
	}

	if pWidth > hwvl.MaxWidth {
		Fprint(os.Stderr, purp, "Block width must not exceed ", hwvl.MaxWidth, ".", zero, n)
		return failure
	}
	alg, err := registry.Lookup(pAlgorithm)
	if err != nil {
		Fprint(os.Stderr, purp, err, zero, n)
		return failure
	}
	if alg.Name == "HWVL1" {
		alg.Digest = registry.HWVL(pWidth)
	}

	for _, target := range Args() {
		start, delta := time.Now(), ""
		sum, err := digest(alg, target)
		if err != nil {
			warn(err)
			continue
		}

		if pTime {
			d := time.Since(start)
			if d.Microseconds() > 99 {
				d = d.Truncate(10 * time.Microsecond)
			}
			delta = " (" + d.String() + ")"
		}

		if pQuiet {
			Print(sum, n)
		} else if pString {
			Print(yell, sum, zero, `  "`, target, `"`, delta, n)
		} else if pNoCodes {
			Print(sum, `  `, filepath.Clean(target), delta, n)
		} else {
			Print(yell, sum, zero, `  `, und, vainpath.Simplify(target), zero, delta, n)
		}
	}

	if !pQuiet {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "target is a directory or is otherwise inaccessible.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "targets are directories or are otherwise inaccessible.", zero, n)
		}
	}
	if warnings > 0 {
		return failure
	}
	return success
}

// digest hashes one argument. HWVL streams files and STDIN through hwvl.Digest; every other algorithm
// works on whole strings and reads its input into memory first.
func digest(alg registry.Algorithm, target string) (string, error) {
	if pString {
		return alg.Digest.Compute(target), nil
	}

	var r io.Reader
	if target == "-" || target == os.Stdin.Name() {
		r = os.Stdin
		defer os.Stdin.Close() /* STDIN should not be reused. */
	} else {
		file, err := os.Open(target)
		if err != nil {
			return "", err
		}
		defer file.Close()
		r = file
	}

	if alg.Name == "HWVL1" {
		d := hwvl.New(pWidth)
		if _, err := io.Copy(d, r); err != nil {
			return "", err
		}
		return string(d.Sum(nil)), nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return alg.Digest.Compute(string(b)), nil
}

func warn(err ...interface{}) {
	if pStrict {
		panic(err)
	}
	warnings++
}
