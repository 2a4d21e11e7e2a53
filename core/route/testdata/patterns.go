package testdata

import (
	"bufio"
	"os"
	"strings"

	"github.com/rohanthewiz/segroute/core/route"
)

// Pattern represents a single line in a pattern file.
type Pattern struct {
	Method string
	Path   string
}

// Segments returns the method followed by the path segments.
func (p Pattern) Segments() []string {
	return append([]string{p.Method}, strings.Split(strings.TrimPrefix(p.Path, "/"), "/")...)
}

// Patterns loads all patterns from a text file.
func Patterns(fileName string) []Pattern {
	var patterns []Pattern

	for line := range Lines(fileName) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, " ")
		patterns = append(patterns, Pattern{
			Method: parts[0],
			Path:   parts[1],
		})
	}

	return patterns
}

// Build turns patterns into one choice, in file order. A route matches the
// method as its first segment and yields its own path.
// {int}, {double}, {uuid} and {string} capture a segment, anything else is a literal.
func Build(patterns []Pattern) route.Route[string] {
	alts := make([]route.Route[string], 0, len(patterns))

	for _, p := range patterns {
		r := route.Pure(p.Path)
		segments := p.Segments()

		for i := len(segments) - 1; i >= 0; i-- {
			r = step(segments[i], r)
		}

		alts = append(alts, r)
	}

	return route.Choice(alts...)
}

func step(segment string, next route.Route[string]) route.Route[string] {
	switch segment {
	case "{int}":
		return route.KeepRight(route.Int(), next)
	case "{double}":
		return route.KeepRight(route.Float(), next)
	case "{uuid}":
		return route.KeepRight(route.UUID(), next)
	case "{string}":
		return route.KeepRight(route.String(), next)
	}
	return route.LiteralThen(segment, next)
}

// Lines is a utility function to easily read every line in a text file.
func Lines(fileName string) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)
		file, err := os.Open(fileName)

		if err != nil {
			return
		}

		defer file.Close()
		scanner := bufio.NewScanner(file)

		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return lines
}
