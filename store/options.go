package store

import "log"

// Option configures a GraphStore at construction time, following the
// functional-options idiom used throughout this module, in the style of
// GraphOption/EdgeOption.
type Option func(*GraphStore)

// WithLogger attaches a *log.Logger that receives one line per Commit,
// reporting how many edges were folded into PERMANENT and how many were
// removed. A nil logger (the default) disables this entirely; GraphStore
// never requires a logger to function.
func WithLogger(logger *log.Logger) Option {
	return func(s *GraphStore) { s.logger = logger }
}
