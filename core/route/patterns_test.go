package route_test

import (
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/segroute/core/route"
	"github.com/rohanthewiz/segroute/core/route/testdata"
)

// concrete fills the placeholders of a pattern with matching segments.
func concrete(p testdata.Pattern) []string {
	segments := p.Segments()
	out := make([]string, len(segments))

	for i, s := range segments {
		switch s {
		case "{int}":
			out[i] = "42"
		case "{double}":
			out[i] = "4.2"
		case "{uuid}":
			out[i] = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
		case "{string}":
			out[i] = "name"
		default:
			out[i] = s
		}
	}
	return out
}

func TestGitHubPatterns(t *testing.T) {
	patterns := testdata.Patterns("testdata/github.txt")
	assert.True(t, len(patterns) > 100)

	naive := testdata.Build(patterns)
	optimized := naive.Optimize()

	var inputs [][]string
	for _, p := range patterns {
		in := concrete(p)
		inputs = append(inputs, in, in[:len(in)-1], append(in, "extra"))

		// Every pattern matches its own path, though an earlier prefix may win.
		_, ok := naive.Run(in)
		assert.True(t, ok)
	}
	assertSameRuns(t, "github", optimized, naive, inputs)

	cases := []struct {
		path string
		want string
		ok   bool
	}{
		{"GET /user", "/user", true},
		{"DELETE /gists/3", "/gists/{int}", true},
		{"GET /search/code", "/search/code", true},
		{"PUT /teams/7/members/ann", "/teams/{int}/members/{string}", true},
		{"GET /teams/x", "", false},
		{"PATCH /user", "", false},
	}

	for _, c := range cases {
		method, path, _ := strings.Cut(c.path, " ")
		in := testdata.Pattern{Method: method, Path: path}.Segments()

		got, ok := optimized.Run(in)
		assert.Equal(t, ok, c.ok)
		assert.Equal(t, got, c.want)
	}
}

func TestOptimizeGroupsMethods(t *testing.T) {
	optimized := testdata.Build(testdata.Patterns("testdata/github.txt")).Optimize()

	// One literal group per method, sorted by text.
	alts := optimized.Alternatives()
	methods := make([]string, len(alts))
	for i, alt := range alts {
		assert.Equal(t, alt.Kind(), route.KindLiteral)
		methods[i] = alt.Text()
	}
	assert.Equal(t, strings.Join(methods, ","), "DELETE,GET,POST,PUT")
}
