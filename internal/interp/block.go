package interp

import (
	"strings"

	"github.com/nanolang/nano/internal/config"
)

type BlockKind int

const (
	BlockIf BlockKind = iota
	BlockElif
	BlockElse
	BlockWhile
)

func (k BlockKind) String() string {
	switch k {
	case BlockIf:
		return "if"
	case BlockElif:
		return "elif"
	case BlockElse:
		return "else"
	case BlockWhile:
		return "while"
	default:
		return "unknown"
	}
}

// bodyLine is one buffered body line together with its original 1-based
// position, so replay-time exceptions point at the right place.
type bodyLine struct {
	text string
	num  int
}

// frame is one open block. Frames live on a stack, so blocks opened inside
// a replayed body nest instead of corrupting the outer block's bookkeeping.
type frame struct {
	kind BlockKind

	// condition is the truth value captured when an if/elif opened.
	condition bool
	// conditionText is the raw while condition, re-evaluated per iteration.
	conditionText string

	openLine int
	openText string

	body []bodyLine
	// depth counts nested block openers seen while collecting, so an inner
	// closing brace does not end this frame.
	depth int
}

// opensNestedBlock reports whether a collected line would itself open a
// block when replayed.
func opensNestedBlock(line string) bool {
	if !strings.HasSuffix(line, config.OpenBrace) {
		return false
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case config.IfKeyword, config.ElifKeyword, config.ElseKeyword, config.WhileKeyword:
		return true
	}
	return false
}
