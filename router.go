package segroute

import (
	"github.com/rohanthewiz/segroute/core/route"
	"go.uber.org/zap"
)

// Options configures a Router.
type Options struct {
	// SkipOptimize matches with the route as built
	SkipOptimize bool

	// Verbose logs every path that fails to match
	Verbose bool

	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// Router is a compiled sitemap. It is safe for concurrent use.
type Router[V any] struct {
	source   route.Route[V]
	compiled route.Route[V]
	verbose  bool
	logger   *zap.Logger
}

// New compiles r. Only the first Options value is used.
func New[V any](r route.Route[V], opts ...Options) *Router[V] {
	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}

	logger := opt.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	compiled := r
	if !opt.SkipOptimize {
		compiled = r.Optimize()
	}

	logger.Debug("sitemap compiled",
		zap.Bool("optimized", !opt.SkipOptimize),
		zap.Stringer("kind", compiled.Kind()),
		zap.Stringer("shape", compiled),
	)

	return &Router[V]{
		source:   r,
		compiled: compiled,
		verbose:  opt.Verbose,
		logger:   logger,
	}
}

// Match splits path and matches the segments.
func (rt *Router[V]) Match(path string) (V, bool) {
	return rt.MatchSegments(Split(path))
}

// MatchSegments matches already split segments.
func (rt *Router[V]) MatchSegments(segments []string) (V, bool) {
	value, ok := rt.compiled.Run(segments)
	if !ok && rt.verbose {
		rt.logger.Info("no match", zap.Strings("segments", segments))
	}
	return value, ok
}

// Route returns the route used for matching.
func (rt *Router[V]) Route() route.Route[V] {
	return rt.compiled
}

// Source returns the route passed to New.
func (rt *Router[V]) Source() route.Route[V] {
	return rt.source
}

// Describe renders the compiled route as text.
func (rt *Router[V]) Describe() string {
	return rt.compiled.String()
}

// DescribeHTML renders the compiled route as a nested HTML list.
func (rt *Router[V]) DescribeHTML() string {
	return DescribeHTML(rt.compiled)
}
