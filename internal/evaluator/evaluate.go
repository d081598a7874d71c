package evaluator

import (
	"github.com/nanolang/nano/internal/diagnostics"
	"github.com/nanolang/nano/internal/lexer"
	"github.com/nanolang/nano/internal/parser"
	"github.com/nanolang/nano/internal/pipeline"
)

// Evaluate parses expression text through the lex/parse pipeline and walks
// the result against env. Parse-stage diagnostics are folded into the
// evaluator's error kinds: whitelist rejections become UnsupportedExpression,
// everything else SyntaxError.
func Evaluate(expression string, env *Environment) (Object, *EvalError) {
	ctx := pipeline.NewPipelineContext(expression)

	processing := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
	)
	ctx = processing.Run(ctx)

	if len(ctx.Errors) > 0 {
		first := ctx.Errors[0]
		for _, err := range ctx.Errors {
			if err.Code == diagnostics.ErrP002 {
				first = err
				break
			}
		}
		if first.Code == diagnostics.ErrP002 {
			return nil, newError(UnsupportedExpression, "%s", first.Message)
		}
		return nil, newError(SyntaxError, "%s", first.Message)
	}
	if ctx.AstRoot == nil {
		return nil, newError(SyntaxError, "empty expression")
	}

	return New().Eval(ctx.AstRoot, env)
}
