package route

import "slices"

// Optimize is shorthand for r.Optimize().
func Optimize[V any](r Route[V]) Route[V] {
	return r.Optimize()
}

// Optimize returns a route that matches exactly like r, with alternatives that
// share a leading literal or capture merged under a single step.
//
// Capture continuations are optimized lazily, once a parsed value exists.
func (r Route[V]) Optimize() Route[V] {
	node := r.node
	if node == nil {
		return r
	}

	switch node.kind {
	case KindLiteral:
		return LiteralThen(node.text, node.next.Optimize())

	case KindCapture:
		bind := node.bind
		return newCapture(node.head, func(x any) Route[V] {
			return bind(x).Optimize()
		})

	case KindChoice:
		return optimizeChoice(node.alts)
	}

	return r
}

// group collects alternatives starting with the same step, in input order.
type group[V any] struct {
	head    Route[V]
	members []Route[V]
}

// optimizeChoice rewrites the alternatives of a choice:
//
//  1. nested choices are flattened, empty routes dropped and everything after
//     a terminal dropped, since a terminal always matches
//  2. each alternative joins the closest earlier group with the same head,
//     provided every group in between is disjoint from it
//  3. runs of mutually disjoint groups are sorted
//  4. every group of two or more is merged behind its shared step
func optimizeChoice[V any](alts []Route[V]) Route[V] {
	flat, _ := flatten(nil, alts)

	if len(flat) == 1 {
		return flat[0].Optimize()
	}

	groups := make([]group[V], 0, len(flat))
	for _, alt := range flat {
		groups = place(groups, alt)
	}

	sortRuns(groups)

	routes := make([]Route[V], 0, len(groups))
	for i := range groups {
		routes = append(routes, groups[i].merge())
	}

	switch len(routes) {
	case 0:
		return Empty[V]()
	case 1:
		return routes[0]
	}
	return newChoice(routes)
}

// flatten appends alts to dst, splicing in nested choices.
// It reports true once a terminal was appended.
func flatten[V any](dst []Route[V], alts []Route[V]) ([]Route[V], bool) {
	for _, alt := range alts {
		switch alt.Kind() {
		case KindEmpty:
			continue

		case KindChoice:
			var stop bool
			if dst, stop = flatten(dst, alt.node.alts); stop {
				return dst, true
			}

		case KindTerminal:
			return append(dst, alt), true

		default:
			dst = append(dst, alt)
		}
	}

	return dst, false
}

// place adds alt to the last group that shares its head, as long as alt can be
// moved in front of every group after that one. Otherwise alt opens a group.
func place[V any](groups []group[V], alt Route[V]) []group[V] {
	for i := len(groups) - 1; i >= 0; i-- {
		g := &groups[i]

		if sameHead(g.head, alt) {
			g.members = append(g.members, alt)
			return groups
		}

		if !disjoint(g.head, alt) {
			break
		}
	}

	return append(groups, group[V]{head: alt, members: []Route[V]{alt}})
}

// sortRuns sorts every maximal run of pairwise disjoint groups.
// Inside such a run at most one group can match any input, so the order
// within it does not affect the result.
func sortRuns[V any](groups []group[V]) {
	start := 0

	for start < len(groups) {
		end := start + 1

	extend:
		for end < len(groups) {
			for i := start; i < end; i++ {
				if !disjoint(groups[i].head, groups[end].head) {
					break extend
				}
			}
			end++
		}

		if end-start > 1 {
			slices.SortStableFunc(groups[start:end], func(a, b group[V]) int {
				return int(compareRoutes(a.head, b.head))
			})
		}

		start = end
	}
}

// merge builds the route for a group.
func (g *group[V]) merge() Route[V] {
	if len(g.members) == 1 {
		return g.head.Optimize()
	}

	node := g.head.node

	switch node.kind {
	case KindLiteral:
		nexts := make([]Route[V], len(g.members))
		for i, m := range g.members {
			nexts[i] = m.node.next
		}
		return LiteralThen(node.text, optimizeChoice(nexts))

	case KindCapture:
		binds := make([]func(any) Route[V], len(g.members))
		for i, m := range g.members {
			binds[i] = m.node.bind
		}

		// One parse, then the continuations are tried in their original order.
		return newCapture(node.head, func(x any) Route[V] {
			routes := make([]Route[V], len(binds))
			for i, bind := range binds {
				routes[i] = bind(x)
			}
			return optimizeChoice(routes)
		})
	}

	return g.head.Optimize()
}
