package consts

// Path tokenizing
const (
	StrSlash = "/"
)

// Labels of the built-in captures.
// Labels are for display only; matching never looks at them.
const (
	LabelInt    = "int"
	LabelDouble = "double"
	LabelString = "string"
	LabelUUID   = "uuid"
)

// Tokens used when rendering a route tree as text
const (
	TokLiteral  = "literal"
	TokCapture  = "capture"
	TokChoice   = "choice"
	TokTerminal = "terminal"
	TokEmpty    = "empty"
)

// Environment keys read by the command line tool
const (
	EnvLogLevel = "SEGROUTE_LOG_LEVEL"
	EnvOptimize = "SEGROUTE_OPTIMIZE"
	EnvVerbose  = "SEGROUTE_VERBOSE"
)
