package segroute_test

import (
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/segroute"
	"github.com/rohanthewiz/segroute/core/route"
	"github.com/rohanthewiz/segroute/internal/demo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRouterMatch(t *testing.T) {
	r := segroute.New(demo.Route())

	cases := []struct {
		path string
		want demo.Sitemap
	}{
		{"/R/foo/123", demo.Foo(123)},
		{"/R/foo/bar", demo.FooBar},
		{"/R/bar/4.5", demo.Bar(4.5)},
		{"/R/baz/xyz", demo.Baz("xyz")},
		{"/9/foo/8", demo.Foo2(9, 8)},
		{"/9/foo/bar", demo.FooBar2(9)},
		{"/R/foo/xxx", demo.NotFound},
		{"/", demo.NotFound},
		{"", demo.NotFound},
	}

	for _, c := range cases {
		got, ok := r.Match(c.path)
		assert.True(t, ok)
		assert.Equal(t, got, c.want)
	}
}

func TestRouterOptimizes(t *testing.T) {
	src := route.Choice(
		route.Replace(route.KeepRight(route.Literal("b"), route.Literal("x")), 1),
		route.Replace(route.KeepRight(route.Literal("a"), route.Literal("x")), 2),
		route.Replace(route.KeepRight(route.Literal("b"), route.Literal("y")), 3),
	)

	r := segroute.New(src)
	assert.Equal(t, r.Source().String(), src.String())
	assert.Equal(t, r.Describe(),
		`choice[literal("a", literal("x", terminal(2))), literal("b", choice[literal("x", terminal(1)), literal("y", terminal(3))])]`)

	n, ok := r.Match("/b/y")
	assert.True(t, ok)
	assert.Equal(t, n, 3)

	raw := segroute.New(src, segroute.Options{SkipOptimize: true})
	assert.Equal(t, raw.Describe(), src.String())

	n, ok = raw.Match("/b/y")
	assert.True(t, ok)
	assert.Equal(t, n, 3)
}

func TestRouterNoMatch(t *testing.T) {
	r := segroute.New(route.KeepRight(route.Literal("users"), route.Int()))

	n, ok := r.Match("/users/x")
	assert.False(t, ok)
	assert.Equal(t, n, 0)

	n, ok = r.MatchSegments([]string{"users", "7"})
	assert.True(t, ok)
	assert.Equal(t, n, 7)
}

func TestRouterLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	r := segroute.New(route.Replace(route.Literal("home"), "Home"), segroute.Options{
		Verbose: true,
		Logger:  logger,
	})

	compiled := logs.FilterMessage("sitemap compiled").All()
	assert.Equal(t, len(compiled), 1)
	assert.Equal(t, compiled[0].ContextMap()["optimized"], true)

	_, ok := r.Match("/home")
	assert.True(t, ok)
	assert.Equal(t, logs.FilterMessage("no match").Len(), 0)

	_, ok = r.Match("/away/x")
	assert.False(t, ok)

	misses := logs.FilterMessage("no match").All()
	assert.Equal(t, len(misses), 1)
	assert.Equal(t, misses[0].Level, zapcore.InfoLevel)

	// Quiet unless verbose
	quiet := segroute.New(route.Literal("home"), segroute.Options{Logger: logger})
	_, ok = quiet.Match("/away")
	assert.False(t, ok)
	assert.Equal(t, logs.FilterMessage("no match").Len(), 1)
}

func TestRouterConcurrentMatch(t *testing.T) {
	r := segroute.New(demo.Route())
	done := make(chan bool)

	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				got, ok := r.Match("/R/foo/123")
				if !ok || got != demo.Foo(123) {
					done <- false
					return
				}
			}
			done <- true
		}()
	}

	for i := 0; i < 8; i++ {
		assert.True(t, <-done)
	}
}

func TestDescribeHTML(t *testing.T) {
	r := segroute.New(route.KeepRight(route.Literal("R"), route.Choice(
		route.KeepRight(route.Literal("foo"), route.Int()),
		route.Pure(7),
	)))

	out := r.DescribeHTML()
	assert.True(t, strings.HasPrefix(out, "<ul"))
	assert.Contains(t, out, `class="route"`)
	assert.Contains(t, out, `class="literal"`)
	assert.Contains(t, out, `class="choice"`)
	assert.Contains(t, out, `class="capture"`)
	assert.Contains(t, out, "int")
	assert.Contains(t, out, "foo")
	assert.Contains(t, out, `class="terminal"`)
	assert.Contains(t, out, ">7<")

	empty := segroute.DescribeHTML(route.Empty[int]())
	assert.Contains(t, empty, `class="empty"`)
}
