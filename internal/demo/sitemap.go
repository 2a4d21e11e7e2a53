// Package demo holds a small sitemap used by the command line tool and tests.
package demo

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rohanthewiz/segroute/core/refroute"
	"github.com/rohanthewiz/segroute/core/route"
)

// Page names the page a path resolved to.
type Page int

const (
	PageNotFound Page = iota // 404
	PageFoo                  // /R/foo/{int}
	PageBar                  // /R/bar/{double}
	PageBaz                  // /R/baz/{string}
	PageFooBar               // /R/foo/bar
	PageUser                 // /R/users/{uuid}
	PageFoo2                 // /{int}/foo/{int}
	PageBar2                 // /{int}/bar/{double}
	PageBaz2                 // /{int}/baz/{string}
	PageFooBar2              // /{int}/foo/bar
)

var pageNames = map[Page]string{
	PageNotFound: "notFound",
	PageFoo:      "foo",
	PageBar:      "bar",
	PageBaz:      "baz",
	PageFooBar:   "fooBar",
	PageUser:     "user",
	PageFoo2:     "foo2",
	PageBar2:     "bar2",
	PageBaz2:     "baz2",
	PageFooBar2:  "fooBar2",
}

func (p Page) String() string {
	if name, ok := pageNames[p]; ok {
		return name
	}
	return fmt.Sprintf("page(%d)", int(p))
}

// Sitemap is a resolved page with the values captured from the path.
// Only the fields of the page are set.
type Sitemap struct {
	Page Page
	N    int
	M    int
	F    float64
	S    string
	User uuid.UUID
}

// Foo is /R/foo/{int}.
func Foo(n int) Sitemap { return Sitemap{Page: PageFoo, N: n} }

// Bar is /R/bar/{double}.
func Bar(f float64) Sitemap { return Sitemap{Page: PageBar, F: f} }

// Baz is /R/baz/{string}.
func Baz(s string) Sitemap { return Sitemap{Page: PageBaz, S: s} }

// User is /R/users/{uuid}.
func User(id uuid.UUID) Sitemap { return Sitemap{Page: PageUser, User: id} }

// Foo2 is /{int}/foo/{int}.
func Foo2(n, m int) Sitemap { return Sitemap{Page: PageFoo2, N: n, M: m} }

// Bar2 is /{int}/bar/{double}.
func Bar2(n int, f float64) Sitemap { return Sitemap{Page: PageBar2, N: n, F: f} }

// Baz2 is /{int}/baz/{string}.
func Baz2(n int, s string) Sitemap { return Sitemap{Page: PageBaz2, N: n, S: s} }

// FooBar2 is /{int}/foo/bar.
func FooBar2(n int) Sitemap { return Sitemap{Page: PageFooBar2, N: n} }

var (
	// FooBar is /R/foo/bar.
	FooBar = Sitemap{Page: PageFooBar}

	// NotFound is any other path.
	NotFound = Sitemap{Page: PageNotFound}
)

func (s Sitemap) String() string {
	switch s.Page {
	case PageFoo:
		return fmt.Sprintf("foo(%d)", s.N)
	case PageBar:
		return fmt.Sprintf("bar(%g)", s.F)
	case PageBaz:
		return fmt.Sprintf("baz(%q)", s.S)
	case PageUser:
		return fmt.Sprintf("user(%s)", s.User)
	case PageFoo2:
		return fmt.Sprintf("foo2(%d, %d)", s.N, s.M)
	case PageBar2:
		return fmt.Sprintf("bar2(%d, %g)", s.N, s.F)
	case PageBaz2:
		return fmt.Sprintf("baz2(%d, %q)", s.N, s.S)
	case PageFooBar2:
		return fmt.Sprintf("fooBar2(%d)", s.N)
	}
	return s.Page.String()
}

// Route is the demo sitemap:
//
//	/R/foo/{int}        foo
//	/R/bar/{double}     bar
//	/R/baz/{string}     baz
//	/R/foo/bar          fooBar
//	/R/users/{uuid}     user
//	/{int}/foo/{int}    foo2
//	/{int}/bar/{double} bar2
//	/{int}/baz/{string} baz2
//	/{int}/foo/bar      fooBar2
//	anything else       notFound
func Route() route.Route[Sitemap] {
	return route.Choice(
		route.KeepRight(route.Literal("R"), route.Choice(
			route.Map(route.KeepRight(route.Literal("foo"), route.Int()), Foo),
			route.Map(route.KeepRight(route.Literal("bar"), route.Float()), Bar),
			route.Map(route.KeepRight(route.Literal("baz"), route.String()), Baz),
			route.KeepRight(route.Literal("foo"), route.KeepRight(route.Literal("bar"), route.Pure(FooBar))),
			route.Map(route.KeepRight(route.Literal("users"), route.UUID()), User),
		)),
		route.ApplyTo(route.Int(), route.Choice(
			route.Map(route.KeepRight(route.Literal("foo"), route.Int()), flip(Foo2)),
			route.Map(route.KeepRight(route.Literal("bar"), route.Float()), flip(Bar2)),
			route.Map(route.KeepRight(route.Literal("baz"), route.String()), flip(Baz2)),
			route.KeepRight(route.Literal("foo"), route.Replace(route.Literal("bar"), FooBar2)),
		)),
		route.Pure(NotFound),
	)
}

// Reference is Route built with the reference router.
func Reference() refroute.Route[Sitemap] {
	return refroute.Choice(
		refroute.KeepRight(refroute.Literal("R"), refroute.Choice(
			refroute.Map(refroute.KeepRight(refroute.Literal("foo"), refroute.Int()), Foo),
			refroute.Map(refroute.KeepRight(refroute.Literal("bar"), refroute.Float()), Bar),
			refroute.Map(refroute.KeepRight(refroute.Literal("baz"), refroute.String()), Baz),
			refroute.KeepRight(refroute.Literal("foo"), refroute.KeepRight(refroute.Literal("bar"), refroute.Pure(FooBar))),
			refroute.Map(refroute.KeepRight(refroute.Literal("users"), refroute.UUID()), User),
		)),
		refroute.ApplyTo(refroute.Int(), refroute.Choice(
			refroute.Map(refroute.KeepRight(refroute.Literal("foo"), refroute.Int()), flip(Foo2)),
			refroute.Map(refroute.KeepRight(refroute.Literal("bar"), refroute.Float()), flip(Bar2)),
			refroute.Map(refroute.KeepRight(refroute.Literal("baz"), refroute.String()), flip(Baz2)),
			refroute.KeepRight(refroute.Literal("foo"), refroute.Replace(refroute.Literal("bar"), FooBar2)),
		)),
		refroute.Pure(NotFound),
	)
}

// flip turns f(first, second) into second -> first -> result, the shape
// ApplyTo expects when the first value is captured before the choice.
func flip[A, B, V any](f func(A, B) V) func(B) func(A) V {
	return func(b B) func(A) V {
		return func(a A) V {
			return f(a, b)
		}
	}
}
