package route

import "strings"

// order is the outcome of comparing two alternatives while sorting.
type order int

// Literals sort before captures, captures before anything else.
const (
	orderLess    order = -1
	orderSame    order = 0
	orderGreater order = 1
)

// rank places the variants in the sort order: literal, capture, other.
func rank(k Kind) int {
	switch k {
	case KindLiteral:
		return 0
	case KindCapture:
		return 1
	default:
		return 2
	}
}

// compareRoutes orders literals by text (then by what follows them) and
// captures by parser identity. Everything else compares as equal so a stable
// sort leaves it where it was.
func compareRoutes[V any](a, b Route[V]) order {
	ka, kb := a.Kind(), b.Kind()

	if ra, rb := rank(ka), rank(kb); ra != rb {
		if ra < rb {
			return orderLess
		}
		return orderGreater
	}

	switch ka {
	case KindLiteral:
		if c := strings.Compare(a.node.text, b.node.text); c != 0 {
			return order(c)
		}
		return compareRoutes(a.node.next, b.node.next)

	case KindCapture:
		ia, ib := a.node.head.ID(), b.node.head.ID()
		switch {
		case ia < ib:
			return orderLess
		case ia > ib:
			return orderGreater
		}
	}

	return orderSame
}

// sameHead reports whether a and b start with the same step: the same literal
// text, or a capture through the same parser.
func sameHead[V any](a, b Route[V]) bool {
	ka, kb := a.Kind(), b.Kind()
	if ka != kb {
		return false
	}

	switch ka {
	case KindLiteral:
		return a.node.text == b.node.text
	case KindCapture:
		return a.node.head.ID() == b.node.head.ID()
	}
	return false
}

// disjoint reports whether a and b can never both match the same input, which
// holds when no first segment is accepted by both.
// Only then may the optimizer swap them without changing which one wins.
func disjoint[V any](a, b Route[V]) bool {
	ka, kb := a.Kind(), b.Kind()

	switch {
	case ka == KindEmpty || kb == KindEmpty:
		return true
	case ka == KindLiteral && kb == KindLiteral:
		return a.node.text != b.node.text
	case ka == KindLiteral && kb == KindCapture:
		return !b.node.head.accepts(a.node.text)
	case ka == KindCapture && kb == KindLiteral:
		return !a.node.head.accepts(b.node.text)
	}

	return false
}
