//go:build windows

package main

import (
	"os"

	"golang.org/x/sys/windows"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Windows consoles only render the ANSI codes used for digests once virtual terminal processing is
// switched on; where that fails, output falls back to plain text.
func init() {
	pNoCodesDefault = !enableVT(os.Stdout) || !enableVT(os.Stderr)
	if pNoCodesDefault {
		pNoCodes = true
	}
}

func enableVT(f *os.File) bool {
	h := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return true
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
