// Package interp executes nano programs line by line: a keyword dispatcher
// for statements and a stack-based block engine for if/elif/else chains and
// while loops. Expression work is delegated to the evaluator; all statement
// failures are logged and never abort the run.
package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/nanolang/nano/internal/config"
	"github.com/nanolang/nano/internal/diagnostics"
	"github.com/nanolang/nano/internal/evaluator"
)

type Interpreter struct {
	opts   config.Options
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer

	tracing bool
	runID   string

	env    *evaluator.Environment
	stack  []*frame
	chains []bool
	log    *diagnostics.Log
}

// Result is the outcome of one program run: the ordered exception log and
// its count, which doubles as the process exit status.
type Result struct {
	Records []diagnostics.Record
	Count   int
}

func (r *Result) ExitCode() int {
	return r.Count
}

func New(opts config.Options) *Interpreter {
	return NewWithIO(opts, os.Stdin, os.Stdout, os.Stderr)
}

func NewWithIO(opts config.Options, in io.Reader, out, errOut io.Writer) *Interpreter {
	return &Interpreter{
		opts:    opts,
		in:      bufio.NewReader(in),
		out:     out,
		errOut:  errOut,
		tracing: opts.Trace || os.Getenv(config.TraceEnv) == "1",
	}
}

// Run executes source from a fresh state: new environment, empty block
// stack, empty exception log. Nothing carries over between runs.
func (i *Interpreter) Run(source string) *Result {
	i.env = evaluator.NewEnvironment()
	i.stack = nil
	i.chains = nil
	i.log = &diagnostics.Log{}
	i.runID = uuid.NewString()

	for n, raw := range strings.Split(source, "\n") {
		i.interpretLine(strings.TrimSpace(raw), n+1)
	}

	return &Result{Records: i.log.Records(), Count: i.log.Count()}
}

// Env exposes the variable environment of the last run, for inspection.
func (i *Interpreter) Env() *evaluator.Environment {
	return i.env
}

func (i *Interpreter) interpretLine(line string, num int) {
	if len(i.stack) > 0 {
		i.collectLine(line, num)
		return
	}

	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return // skip empty lines
	}

	keyword := tokens[0]
	i.trace("line %d: %s", num, keyword)

	switch keyword {
	case config.LetKeyword:
		i.execLet(line, num)
	case config.PrintKeyword:
		i.execPrint(line, num)
	case config.IfKeyword, config.ElifKeyword:
		i.openConditional(keyword, line, num)
	case config.ElseKeyword:
		i.openElse(line, num)
	case config.WhileKeyword:
		i.openWhile(line, num)
	case config.InputKeyword:
		i.execInput(line, num)
	default:
		i.raise(diagnostics.UnknownCommand, num, line)
	}
}

// collectLine buffers one line into the innermost open block, tracking
// nested openers so only the matching closing brace ends the frame.
func (i *Interpreter) collectLine(line string, num int) {
	top := i.stack[len(i.stack)-1]

	if line == config.CloseBrace {
		if top.depth > 0 {
			top.depth--
			top.body = append(top.body, bodyLine{text: line, num: num})
			return
		}
		i.stack = i.stack[:len(i.stack)-1]
		i.trace("close %s block from line %d", top.kind, top.openLine)
		i.replay(top)
		return
	}

	if opensNestedBlock(line) {
		top.depth++
	}
	top.body = append(top.body, bodyLine{text: line, num: num})
}

func (i *Interpreter) execLet(line string, num int) {
	// Expect format: let <name> = <expression>
	parts := splitFieldsN(line, 3)
	if len(parts) < 3 || !strings.HasPrefix(parts[2], "=") {
		i.raise(diagnostics.InvalidSyntax, num, line)
		return
	}
	name := parts[1]
	exprText := strings.TrimSpace(strings.TrimPrefix(parts[2], "="))

	value, err := evaluator.Evaluate(exprText, i.env)
	if err != nil {
		i.raise(diagnostics.InvalidSyntax, num, line)
		return
	}
	i.env.Set(name, value)
}

func (i *Interpreter) execPrint(line string, num int) {
	exprText := strings.TrimSpace(line[len(config.PrintKeyword):])
	value, err := evaluator.Evaluate(exprText, i.env)
	if err != nil {
		i.raise(diagnostics.InvalidSyntax, num, line)
		return
	}
	fmt.Fprintln(i.out, value.Inspect())
}

func (i *Interpreter) openConditional(keyword, line string, num int) {
	rest := strings.TrimSpace(line[len(keyword):])
	if !strings.HasSuffix(rest, config.OpenBrace) {
		i.raise(diagnostics.MissingOpeningBrace, num, line)
		return
	}
	condText := strings.TrimSpace(strings.TrimSuffix(rest, config.OpenBrace))

	kind := BlockIf
	if keyword == config.ElifKeyword {
		kind = BlockElif
	} else {
		// A fresh if begins a fresh chain at this nesting depth.
		i.setChain(len(i.stack), false)
	}

	// The condition's truth value is captured once, here at open time.
	// A failing condition is logged and the block collects as false.
	condition := false
	if value, err := evaluator.Evaluate(condText, i.env); err != nil {
		i.raise(diagnostics.InvalidSyntax, num, line)
	} else {
		condition = evaluator.IsTruthy(value)
	}

	i.stack = append(i.stack, &frame{
		kind:      kind,
		condition: condition,
		openLine:  num,
		openText:  line,
	})
}

func (i *Interpreter) openElse(line string, num int) {
	rest := strings.TrimSpace(line[len(config.ElseKeyword):])
	if rest != config.OpenBrace {
		i.raise(diagnostics.MissingOpeningBrace, num, line)
		return
	}
	i.stack = append(i.stack, &frame{kind: BlockElse, openLine: num, openText: line})
}

func (i *Interpreter) openWhile(line string, num int) {
	rest := strings.TrimSpace(line[len(config.WhileKeyword):])
	if !strings.HasSuffix(rest, config.OpenBrace) {
		i.raise(diagnostics.MissingOpeningBrace, num, line)
		return
	}
	condText := strings.TrimSpace(strings.TrimSuffix(rest, config.OpenBrace))

	i.stack = append(i.stack, &frame{
		kind:          BlockWhile,
		conditionText: condText,
		openLine:      num,
		openText:      line,
	})
}

func (i *Interpreter) execInput(line string, num int) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		i.raise(diagnostics.InvalidSyntax, num, line)
		return
	}
	name := parts[1]

	if idx := strings.Index(line, config.PromptKeyword); idx >= 0 {
		prompt := strings.TrimSpace(line[idx+len(config.PromptKeyword):])
		prompt = strings.Trim(prompt, `"`)
		if prompt != "" {
			fmt.Fprint(i.out, prompt)
		}
	}

	text, err := i.in.ReadString('\n')
	if err != nil && text == "" {
		i.raise(diagnostics.InvalidSyntax, num, line)
		return
	}
	text = strings.TrimRight(text, "\r\n")
	i.env.Set(name, parseInputValue(text))
}

// parseInputValue follows the input coercion order: integer, then float,
// then the raw string.
func parseInputValue(text string) evaluator.Object {
	trimmed := strings.TrimSpace(text)
	if v, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return &evaluator.Integer{Value: v}
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return &evaluator.Float{Value: v}
	}
	return &evaluator.String{Value: text}
}

// replay executes a closed frame's body according to its kind. The frame has
// already been popped, so body lines dispatch at this frame's depth and may
// open nested blocks of their own.
func (i *Interpreter) replay(f *frame) {
	depth := len(i.stack)

	switch f.kind {
	case BlockWhile:
		i.replayWhile(f)
	case BlockElse:
		if !i.chainAt(depth) {
			i.replayBody(f)
		}
		// An else always terminates its chain.
		i.setChain(depth, false)
	case BlockIf, BlockElif:
		if f.condition && !i.chainAt(depth) {
			i.replayBody(f)
			i.setChain(depth, true)
		}
	}
}

func (i *Interpreter) replayBody(f *frame) {
	for _, bl := range f.body {
		i.interpretLine(bl.text, bl.num)
	}
}

func (i *Interpreter) replayWhile(f *frame) {
	base := len(i.stack)
	iterations := 0
	for {
		value, err := evaluator.Evaluate(f.conditionText, i.env)
		if err != nil {
			// Logged once; the loop is then treated as closed.
			i.raise(diagnostics.InvalidSyntax, f.openLine, f.openText)
			return
		}
		if !evaluator.IsTruthy(value) {
			return
		}

		for _, bl := range f.body {
			// A literal break directly in the while body ends the whole
			// loop, not just this pass. Lines belonging to a nested block
			// are still collecting and are not ours to interpret.
			if bl.text == config.BreakKeyword && len(i.stack) == base {
				return
			}
			i.interpretLine(bl.text, bl.num)
		}

		iterations++
		if i.opts.MaxLoopIterations > 0 && iterations >= i.opts.MaxLoopIterations {
			i.raise(diagnostics.IllegalStatement, f.openLine, f.openText)
			return
		}
	}
}

func (i *Interpreter) chainAt(depth int) bool {
	if depth < len(i.chains) {
		return i.chains[depth]
	}
	return false
}

func (i *Interpreter) setChain(depth int, taken bool) {
	for len(i.chains) <= depth {
		i.chains = append(i.chains, false)
	}
	i.chains[depth] = taken
}

func (i *Interpreter) raise(kind diagnostics.ExceptionKind, line int, source string) {
	i.log.Append(kind, line, source)
	i.trace("raised %q at line %d", kind, line)
}

func (i *Interpreter) trace(format string, args ...interface{}) {
	if !i.tracing {
		return
	}
	fmt.Fprintf(i.errOut, "[run %.8s] %s\n", i.runID, fmt.Sprintf(format, args...))
}

// splitFieldsN splits s on runs of whitespace into at most n fields; the
// final field keeps its internal spacing.
func splitFieldsN(s string, n int) []string {
	var fields []string
	rest := strings.TrimSpace(s)
	for len(fields) < n-1 && rest != "" {
		idx := strings.IndexFunc(rest, unicode.IsSpace)
		if idx < 0 {
			break
		}
		fields = append(fields, rest[:idx])
		rest = strings.TrimLeftFunc(rest[idx:], unicode.IsSpace)
	}
	if rest != "" {
		fields = append(fields, rest)
	}
	return fields
}
