package main

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/nanolang/nano/internal/config"
)

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

// useColor is decided once in main from the options and the terminal.
var useColor bool

func colorEnabled(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return detectColor()
}

func detectColor() bool {
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return true
}

func ansiWrap(code, s string) string {
	if !useColor {
		return s
	}
	return code + s + ansiReset
}

func red(s string) string   { return ansiWrap(ansiRed, s) }
func green(s string) string { return ansiWrap(ansiGreen, s) }
