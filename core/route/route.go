// Package route implements path-segment routes as an explicit variant tree.
//
// A Route is built bottom-up from literals, captures, choices and terminal
// values, then evaluated against an already-split list of path segments:
//
//	r := route.KeepRight(route.Literal("users"), route.Int())
//	id, ok := r.Run([]string{"users", "42"}) // 42, true
//
// Because the tree is inspectable, Optimize can merge alternatives that start
// with the same literal or the same capture so that the shared step runs once.
package route

import "github.com/rohanthewiz/segroute/consts"

// Kind tags the variant held by a Route.
type Kind uint8

const (
	KindEmpty    Kind = iota // always fails
	KindLiteral              // one segment equal to a fixed text
	KindCapture              // one segment converted by a Parser
	KindChoice               // ordered alternatives, first success wins
	KindTerminal             // succeeds with a value, consumes nothing
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return consts.TokLiteral
	case KindCapture:
		return consts.TokCapture
	case KindChoice:
		return consts.TokChoice
	case KindTerminal:
		return consts.TokTerminal
	default:
		return consts.TokEmpty
	}
}

// Unit is the value produced by routes that only recognize input.
type Unit = struct{}

// Route is an immutable routing grammar producing a V.
// The zero value is the empty route.
type Route[V any] struct {
	node *node[V]
}

// node is one variant of the tree. Only the fields of its kind are set.
type node[V any] struct {
	kind  Kind
	text  string             // literal text, or the capture label
	next  Route[V]           // literal continuation
	head  segmentParser      // capture parser
	bind  func(any) Route[V] // capture continuation, receives the parser's box
	alts  []Route[V]         // choice alternatives
	value V                  // terminal value
}

// Empty returns the route that never matches.
func Empty[V any]() Route[V] {
	return Route[V]{}
}

// Pure returns a route that matches without consuming anything and yields v.
func Pure[V any](v V) Route[V] {
	return Route[V]{&node[V]{kind: KindTerminal, value: v}}
}

// LiteralThen matches one segment equal to text and continues with next.
func LiteralThen[V any](text string, next Route[V]) Route[V] {
	return Route[V]{&node[V]{kind: KindLiteral, text: text, next: next}}
}

// Literal matches one segment equal to text.
func Literal(text string) Route[Unit] {
	return LiteralThen(text, Pure(Unit{}))
}

// CaptureThen converts one segment with p and continues with the route k
// builds from the converted value.
func CaptureThen[T, V any](p *Parser[T], k func(T) Route[V]) Route[V] {
	return newCapture(p, func(x any) Route[V] {
		b, ok := x.(box[T])
		if !ok {
			return Empty[V]()
		}
		return k(b.v)
	})
}

// Capture converts one segment with p and yields the converted value.
func Capture[T any](p *Parser[T]) Route[T] {
	return CaptureThen(p, Pure[T])
}

// Choice tries routes in order against the same input; the first match wins.
func Choice[V any](routes ...Route[V]) Route[V] {
	if len(routes) == 0 {
		return Empty[V]()
	}

	alts := make([]Route[V], len(routes))
	copy(alts, routes)
	return newChoice(alts)
}

func newCapture[V any](head segmentParser, bind func(any) Route[V]) Route[V] {
	return Route[V]{&node[V]{kind: KindCapture, text: head.Label(), head: head, bind: bind}}
}

// newChoice takes ownership of alts.
func newChoice[V any](alts []Route[V]) Route[V] {
	return Route[V]{&node[V]{kind: KindChoice, alts: alts}}
}

// Kind reports which variant r holds.
func (r Route[V]) Kind() Kind {
	if r.node == nil {
		return KindEmpty
	}
	return r.node.kind
}

// Text returns the literal text of a literal route or the label of a capture.
func (r Route[V]) Text() string {
	if r.node == nil {
		return ""
	}
	return r.node.text
}

// Next returns the continuation of a literal route.
func (r Route[V]) Next() Route[V] {
	if r.Kind() != KindLiteral {
		return Empty[V]()
	}
	return r.node.next
}

// Alternatives returns a copy of the alternatives of a choice route.
func (r Route[V]) Alternatives() []Route[V] {
	if r.Kind() != KindChoice {
		return nil
	}

	alts := make([]Route[V], len(r.node.alts))
	copy(alts, r.node.alts)
	return alts
}

// Value returns the value of a terminal route.
func (r Route[V]) Value() (V, bool) {
	if r.Kind() != KindTerminal {
		var empty V
		return empty, false
	}
	return r.node.value, true
}

// ParserID returns the identity of the parser of a capture route, or 0.
func (r Route[V]) ParserID() uint64 {
	if r.Kind() != KindCapture {
		return 0
	}
	return r.node.head.ID()
}
