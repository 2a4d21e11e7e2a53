package segroute

import (
	"fmt"
	"html"
	"strconv"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/segroute/core/route"
)

// DescribeHTML renders r as a nested HTML list, one item per node.
// Capture continuations are not expanded.
func DescribeHTML[V any](r route.Route[V]) string {
	b := element.NewBuilder()

	b.Ul("class", "route").R(
		describeNode(b, r),
	)

	return b.String()
}

func describeNode[V any](b *element.Builder, r route.Route[V]) any {
	kind := r.Kind()

	switch kind {
	case route.KindLiteral:
		b.Li("class", kind.String()).R(
			b.Span("class", "kind").T(kind.String()),
			b.Span("class", "text").T(html.EscapeString(strconv.Quote(r.Text()))),
			b.Ul().R(
				describeNode(b, r.Next()),
			),
		)

	case route.KindCapture:
		b.Li("class", kind.String()).R(
			b.Span("class", "kind").T(kind.String()),
			b.Span("class", "label").T(html.EscapeString(r.Text())),
		)

	case route.KindChoice:
		b.Li("class", kind.String()).R(
			b.Span("class", "kind").T(kind.String()),
			b.Ul().R(
				func() any {
					for _, alt := range r.Alternatives() {
						describeNode(b, alt)
					}
					return nil
				}(),
			),
		)

	case route.KindTerminal:
		value, _ := r.Value()
		b.Li("class", kind.String()).R(
			b.Span("class", "kind").T(kind.String()),
			b.Span("class", "value").T(html.EscapeString(fmt.Sprintf("%v", value))),
		)

	default:
		b.Li("class", kind.String()).R(
			b.Span("class", "kind").T(kind.String()),
		)
	}

	return nil
}
