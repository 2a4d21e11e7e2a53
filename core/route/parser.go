package route

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rohanthewiz/segroute/consts"
	"github.com/rohanthewiz/segroute/internal/segparse"
)

// parserIDs hands out parser identities. 0 is never used.
var parserIDs atomic.Uint64

// Parser converts a single segment into a T.
//
// Every parser carries an identity assigned by NewParser. The optimizer merges
// captures only when they use the same parser, so create a parser once and
// share it rather than calling NewParser per route.
// The parse function must be pure: the optimizer calls it on literal texts to
// decide whether a capture can accept them, and remembers the answers.
type Parser[T any] struct {
	id    uint64
	label string
	parse func(segment string) (T, bool)

	// known memoizes accepts for literal texts
	known sync.Map
}

// NewParser returns a parser with a fresh identity.
// label only shows up in diagnostics.
func NewParser[T any](label string, parse func(segment string) (T, bool)) *Parser[T] {
	return &Parser[T]{
		id:    parserIDs.Add(1),
		label: label,
		parse: parse,
	}
}

// ID returns the identity of the parser.
func (p *Parser[T]) ID() uint64 { return p.id }

// Label returns the display label of the parser.
func (p *Parser[T]) Label() string { return p.label }

// Parse converts segment.
func (p *Parser[T]) Parse(segment string) (T, bool) {
	return p.parse(segment)
}

func (p *Parser[T]) scan(segment string) (any, bool) {
	v, ok := p.parse(segment)
	if !ok {
		return nil, false
	}
	return box[T]{v}, true
}

// accepts reports whether p converts text. Only literal texts of a grammar
// are passed in, so the memo stays as small as the grammar.
func (p *Parser[T]) accepts(text string) bool {
	if ok, found := p.known.Load(text); found {
		return ok.(bool)
	}

	_, ok := p.parse(text)
	p.known.Store(text, ok)
	return ok
}

// segmentParser is a Parser seen without its result type.
type segmentParser interface {
	ID() uint64
	Label() string
	scan(segment string) (any, bool)
	accepts(text string) bool
}

// box carries a parsed value from a capture node to its typed continuation.
type box[T any] struct {
	v T
}

// Built-in parsers. Routes built from them share identities and can be merged.
var (
	IntParser    = NewParser(consts.LabelInt, segparse.Int)
	FloatParser  = NewParser(consts.LabelDouble, segparse.Double)
	StringParser = NewParser(consts.LabelString, segparse.String)
	UUIDParser   = NewParser(consts.LabelUUID, segparse.UUID)
)

// Int captures a base 10 integer segment.
func Int() Route[int] { return Capture(IntParser) }

// Float captures a floating point segment. Digit separators are rejected.
func Float() Route[float64] { return Capture(FloatParser) }

// String captures any segment as is.
func String() Route[string] { return Capture(StringParser) }

// UUID captures a segment holding a UUID.
func UUID() Route[uuid.UUID] { return Capture(UUIDParser) }
