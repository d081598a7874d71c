package pipeline

import (
	"github.com/nanolang/nano/internal/ast"
	"github.com/nanolang/nano/internal/diagnostics"
	"github.com/nanolang/nano/internal/token"
)

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries one expression through the lexing and parsing
// stages. Stages read what earlier stages produced and append errors rather
// than failing fast.
type PipelineContext struct {
	SourceCode  string
	FilePath    string
	TokenStream *token.Stream
	AstRoot     ast.Expression
	Errors      []*diagnostics.DiagnosticError
}

func NewPipelineContext(sourceCode string) *PipelineContext {
	return &PipelineContext{SourceCode: sourceCode}
}
