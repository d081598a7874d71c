package main

import "testing"

func TestColorEnabledModes(t *testing.T) {
	if !colorEnabled("always") {
		t.Error("always mode should enable color")
	}
	if colorEnabled("never") {
		t.Error("never mode should disable color")
	}
}

func TestNoColorConvention(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if colorEnabled("auto") {
		t.Error("auto mode should respect NO_COLOR")
	}
}

func TestAnsiWrap(t *testing.T) {
	useColor = false
	if got := red("boom"); got != "boom" {
		t.Errorf("disabled color should pass through, got %q", got)
	}

	useColor = true
	defer func() { useColor = false }()
	if got := green("ok"); got != ansiGreen+"ok"+ansiReset {
		t.Errorf("wrong wrapped string: %q", got)
	}
}
