package route

// Map transforms the value produced by r. It never changes which inputs match.
func Map[V1, V2 any](r Route[V1], f func(V1) V2) Route[V2] {
	node := r.node
	if node == nil {
		return Empty[V2]()
	}

	switch node.kind {
	case KindLiteral:
		return LiteralThen(node.text, Map(node.next, f))

	case KindCapture:
		bind := node.bind
		return newCapture(node.head, func(x any) Route[V2] {
			return Map(bind(x), f)
		})

	case KindChoice:
		alts := make([]Route[V2], len(node.alts))
		for i, alt := range node.alts {
			alts[i] = Map(alt, f)
		}
		return newChoice(alts)

	case KindTerminal:
		return Pure(f(node.value))
	}

	return Empty[V2]()
}

// Apply runs rf, then r on the segments rf left over, and applies the
// function produced by rf to the value produced by r.
//
// Sequencing is pushed down to every terminal of rf. A choice inside rf
// therefore becomes a choice between complete sequences: if one alternative
// matches but r then fails, the next alternative is tried.
func Apply[V1, V2 any](rf Route[func(V1) V2], r Route[V1]) Route[V2] {
	node := rf.node
	if node == nil {
		return Empty[V2]()
	}

	switch node.kind {
	case KindLiteral:
		return LiteralThen(node.text, Apply(node.next, r))

	case KindCapture:
		bind := node.bind
		return newCapture(node.head, func(x any) Route[V2] {
			return Apply(bind(x), r)
		})

	case KindChoice:
		alts := make([]Route[V2], len(node.alts))
		for i, alt := range node.alts {
			alts[i] = Apply(alt, r)
		}
		return newChoice(alts)

	case KindTerminal:
		return Map(r, node.value)
	}

	return Empty[V2]()
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

// Or tries a, then b on the same input.
func Or[V any](a, b Route[V]) Route[V] {
	return newChoice([]Route[V]{a, b})
}

// Lift2 matches a then b and combines their values with f.
func Lift2[A, B, V any](f func(A, B) V, a Route[A], b Route[B]) Route[V] {
	return Apply(Map(a, Curry2(f)), b)
}

// Lift3 matches a, b then c and combines their values with f.
func Lift3[A, B, C, V any](f func(A, B, C) V, a Route[A], b Route[B], c Route[C]) Route[V] {
	return Apply(Apply(Map(a, Curry3(f)), b), c)
}
