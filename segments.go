package segroute

import (
	"strings"

	"github.com/rohanthewiz/segroute/consts"
)

// Split turns a path into segments: one leading slash is removed and the
// rest is split on slashes. Segments are not decoded and empty segments are
// kept, so "/a/" gives ["a", ""]. "" and "/" give no segments.
func Split(path string) []string {
	path = strings.TrimPrefix(path, consts.StrSlash)
	if path == "" {
		return nil
	}
	return strings.Split(path, consts.StrSlash)
}
