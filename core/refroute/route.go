// Package refroute is the closure based reference router.
//
// A Route here is just a function from the remaining segments to what is left
// after a match plus the matched value. It has the same combinators as
// package route but can't be inspected or optimized; it exists to check the
// structural router against the simplest possible semantics.
//
// One difference is deliberate. Sequencing commits to the first alternative
// of a choice that matches: in Apply(Choice(a, b), r), when a matches and r
// then fails, b is not tried. The structural router would try b.
// Whenever this router matches, both agree on the value.
package refroute

import (
	"github.com/google/uuid"
	"github.com/rohanthewiz/segroute/internal/segparse"
)

// Unit is the value produced by routes that only recognize input.
type Unit = struct{}

// Route parses a prefix of the segments.
type Route[V any] struct {
	parse func(segments []string) (rest []string, value V, ok bool)
}

// Run matches r against segments. Unconsumed segments are ignored.
func (r Route[V]) Run(segments []string) (V, bool) {
	_, value, ok := r.step(segments)
	return value, ok
}

// step treats the zero Route as Empty.
func (r Route[V]) step(segments []string) ([]string, V, bool) {
	if r.parse == nil {
		var empty V
		return segments, empty, false
	}
	return r.parse(segments)
}

// Empty never matches.
func Empty[V any]() Route[V] {
	return Route[V]{func(segments []string) ([]string, V, bool) {
		var empty V
		return segments, empty, false
	}}
}

// Pure matches without consuming anything.
func Pure[V any](v V) Route[V] {
	return Route[V]{func(segments []string) ([]string, V, bool) {
		return segments, v, true
	}}
}

// Or tries a, and b on the original input when a fails.
func Or[V any](a, b Route[V]) Route[V] {
	return Route[V]{func(segments []string) ([]string, V, bool) {
		if rest, value, ok := a.step(segments); ok {
			return rest, value, true
		}
		return b.step(segments)
	}}
}

// Choice folds Or over routes, starting from Empty.
func Choice[V any](routes ...Route[V]) Route[V] {
	r := Empty[V]()
	for _, next := range routes {
		r = Or(r, next)
	}
	return r
}

// Map transforms the value produced by r.
func Map[V1, V2 any](r Route[V1], f func(V1) V2) Route[V2] {
	return Route[V2]{func(segments []string) ([]string, V2, bool) {
		rest, value, ok := r.step(segments)
		if !ok {
			var empty V2
			return segments, empty, false
		}
		return rest, f(value), true
	}}
}

// Apply runs rf, then r on what rf left over.
func Apply[V1, V2 any](rf Route[func(V1) V2], r Route[V1]) Route[V2] {
	return Route[V2]{func(segments []string) ([]string, V2, bool) {
		rest, f, ok := rf.step(segments)
		if !ok {
			var empty V2
			return segments, empty, false
		}
		return Map(r, f).step(rest)
	}}
}

// ApplyTo is Apply with the argument route first.
func ApplyTo[V1, V2 any](r Route[V1], rf Route[func(V1) V2]) Route[V2] {
	return Apply(Map(r, func(v V1) func(func(V1) V2) V2 {
		return func(f func(V1) V2) V2 { return f(v) }
	}), rf)
}

// KeepLeft matches a then b and keeps the value of a.
func KeepLeft[V1, V2 any](a Route[V1], b Route[V2]) Route[V1] {
	return Apply(Map(a, func(v V1) func(V2) V1 {
		return func(V2) V1 { return v }
	}), b)
}

// KeepRight matches a then b and keeps the value of b.
func KeepRight[V1, V2 any](a Route[V1], b Route[V2]) Route[V2] {
	return Apply(Map(a, func(V1) func(V2) V2 {
		return func(v V2) V2 { return v }
	}), b)
}

// Replace yields v whenever r matches.
func Replace[V1, V2 any](r Route[V1], v V2) Route[V2] {
	return Map(r, func(V1) V2 { return v })
}

// Lift2 matches a then b and combines the values with f.
func Lift2[A, B, V any](f func(A, B) V, a Route[A], b Route[B]) Route[V] {
	return Apply(Map(a, func(x A) func(B) V {
		return func(y B) V { return f(x, y) }
	}), b)
}

// Lift3 matches a, b then c and combines the values with f.
func Lift3[A, B, C, V any](f func(A, B, C) V, a Route[A], b Route[B], c Route[C]) Route[V] {
	return Apply(Lift2(func(x A, y B) func(C) V {
		return func(z C) V { return f(x, y, z) }
	}, a, b), c)
}

// Capture consumes one segment converted by parse.
func Capture[T any](parse func(segment string) (T, bool)) Route[T] {
	return Route[T]{func(segments []string) ([]string, T, bool) {
		if len(segments) > 0 {
			if value, ok := parse(segments[0]); ok {
				return segments[1:], value, true
			}
		}
		var empty T
		return segments, empty, false
	}}
}

// Literal consumes one segment equal to text.
func Literal(text string) Route[Unit] {
	return Capture(func(segment string) (Unit, bool) {
		return Unit{}, segment == text
	})
}

// Int captures a base 10 integer.
func Int() Route[int] {
	return Capture(segparse.Int)
}

// Float captures a floating point number.
func Float() Route[float64] {
	return Capture(segparse.Double)
}

// String captures any segment.
func String() Route[string] {
	return Capture(segparse.String)
}

// UUID captures a UUID.
func UUID() Route[uuid.UUID] {
	return Capture(segparse.UUID)
}
