package main

import (
	"os"

	. "github.com/spf13/pflag"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var pWidth, pAlgorithm, pNoCodesDefault = uint(0), "", false
var pHelp, pList, pNoCodes, pQuiet, pStrict, pString, pTime, pDebug bool
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"

func init() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes || pNoCodesDefault {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	StringVarP(&pAlgorithm, "algorithm", "a", "HWVL1",
		purp+"digest with the named algorithm instead"+zero+" (see --list)")

	BoolVar(&pDebug, "debug", false, "")
	CommandLine.MarkHidden("debug")

	UintVarP(&pWidth, "length", "l", 32,
		purp+"set HWVL block width, which is also its digest length"+zero+
			n+purp+"in characters"+zero)

	BoolVar(&pList, "list", false,
		purp+"list the available algorithms and exit"+zero)

	Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	Bool("quiet", false,
		purp+"suppress non-breaking errors and print ONLY digests"+zero+
			n+"(enables --no-codes)")

	BoolVar(&pStrict, "strict", false,
		purp+"cause hwvlsum to panic on any error"+zero)

	BoolVarP(&pString, "string", "s", false,
		purp+"process arguments instead as UTF-8 strings to be hashed"+zero)

	BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken to read and hash each message"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
	Parse()
	pStrict = pStrict || pDebug
}
