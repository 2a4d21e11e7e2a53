package route

// Run matches r against segments and returns the value of the first match.
//
// A match only needs a prefix of segments: once a terminal is reached any
// remaining segments are ignored, so Literal("R") matches ["R", "extra"].
func (r Route[V]) Run(segments []string) (V, bool) {
	node := r.node

	// Literal and capture steps each consume one segment, so walk them in a
	// loop and only recurse into choices.
	for node != nil {
		switch node.kind {
		case KindLiteral:
			if len(segments) == 0 || segments[0] != node.text {
				goto notFound
			}
			segments = segments[1:]
			node = node.next.node

		case KindCapture:
			if len(segments) == 0 {
				goto notFound
			}

			parsed, ok := node.head.scan(segments[0])
			if !ok {
				goto notFound
			}
			segments = segments[1:]
			node = node.bind(parsed).node

		case KindChoice:
			for _, alt := range node.alts {
				if value, ok := alt.Run(segments); ok {
					return value, true
				}
			}
			goto notFound

		case KindTerminal:
			return node.value, true

		default:
			goto notFound
		}
	}

notFound:
	var empty V
	return empty, false
}
