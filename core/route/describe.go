package route

import (
	"fmt"
	"strconv"

	"github.com/rohanthewiz/segroute/consts"
	"github.com/valyala/bytebufferpool"
)

// String renders the shape of r, for example
//
//	literal("R", choice[literal("foo", capture(int)), terminal(7)])
//
// Capture continuations are functions and are not expanded.
// The format is meant for people and may change.
func (r Route[V]) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	r.describe(buf)
	return buf.String()
}

func (r Route[V]) describe(buf *bytebufferpool.ByteBuffer) {
	node := r.node
	if node == nil {
		buf.WriteString(consts.TokEmpty)
		return
	}

	switch node.kind {
	case KindLiteral:
		buf.WriteString(consts.TokLiteral)
		buf.WriteByte('(')
		buf.WriteString(strconv.Quote(node.text))
		buf.WriteString(", ")
		node.next.describe(buf)
		buf.WriteByte(')')

	case KindCapture:
		buf.WriteString(consts.TokCapture)
		buf.WriteByte('(')
		buf.WriteString(node.text)
		buf.WriteByte(')')

	case KindChoice:
		buf.WriteString(consts.TokChoice)
		buf.WriteByte('[')
		for i, alt := range node.alts {
			if i > 0 {
				buf.WriteString(", ")
			}
			alt.describe(buf)
		}
		buf.WriteByte(']')

	case KindTerminal:
		buf.WriteString(consts.TokTerminal)
		buf.WriteByte('(')
		fmt.Fprintf(buf, "%v", node.value)
		buf.WriteByte(')')

	default:
		buf.WriteString(consts.TokEmpty)
	}
}
