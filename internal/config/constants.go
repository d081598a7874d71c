package config

const SourceFileExt = ".nano"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".nano", ".nn"}

// Statement keywords, in dispatch order.
const (
	LetKeyword   = "let"
	PrintKeyword = "print"
	IfKeyword    = "if"
	ElifKeyword  = "elif"
	ElseKeyword  = "else"
	WhileKeyword = "while"
	InputKeyword = "input"
	BreakKeyword = "break"
)

// Block delimiters
const (
	OpenBrace  = "{"
	CloseBrace = "}"
)

// PromptKeyword introduces the optional prompt text of an input statement.
const PromptKeyword = "prompt"

// TraceEnv enables per-line dispatch tracing when set to "1".
const TraceEnv = "NANO_TRACE"

// OptionsFileName is the optional per-project options file.
const OptionsFileName = "nano.yaml"
