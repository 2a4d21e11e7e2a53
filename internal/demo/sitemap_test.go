package demo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rohanthewiz/assert"
)

func TestSitemapString(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	assert.Equal(t, Foo(1).String(), "foo(1)")
	assert.Equal(t, Bar(2.5).String(), "bar(2.5)")
	assert.Equal(t, Baz("x").String(), `baz("x")`)
	assert.Equal(t, User(id).String(), "user(6ba7b810-9dad-11d1-80b4-00c04fd430c8)")
	assert.Equal(t, Foo2(1, 2).String(), "foo2(1, 2)")
	assert.Equal(t, Bar2(1, 0.5).String(), "bar2(1, 0.5)")
	assert.Equal(t, Baz2(1, "y").String(), `baz2(1, "y")`)
	assert.Equal(t, FooBar.String(), "fooBar")
	assert.Equal(t, FooBar2(3).String(), "fooBar2(3)")
	assert.Equal(t, NotFound.String(), "notFound")
	assert.Equal(t, Page(99).String(), "page(99)")
}

func TestRouteAndReferenceAgree(t *testing.T) {
	r := Route().Optimize()
	ref := Reference()

	inputs := [][]string{
		nil,
		{"R"},
		{"R", "foo", "7"},
		{"R", "foo", "bar"},
		{"R", "foo", "x"},
		{"R", "bar", "7"},
		{"R", "baz", "7"},
		{"R", "users", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{"7", "foo", "8"},
		{"7", "foo", "bar"},
		{"7", "foo"},
		{"7", "bar", "8"},
		{"7", "baz", "8"},
		{"7", "bop", "8"},
		{"x", "foo", "8"},
	}

	for _, in := range inputs {
		want, wantOK := ref.Run(in)
		got, ok := r.Run(in)
		assert.Equal(t, ok, wantOK)
		assert.Equal(t, got, want)
	}
}
