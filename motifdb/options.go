package motifdb

import (
	"log"

	"github.com/motifquery/motifgraph/join"
	"github.com/motifquery/motifgraph/registry"
	"github.com/motifquery/motifgraph/store"
)

// config collects Option values before New constructs a Database, following
// the same pattern store.Option and join.Option use: options close over a
// mutable config rather than a variadic Database constructor.
type config struct {
	storeOpts []store.Option
	joinOpts  []join.Option
	reg       *registry.TypeRegistry
	logger    *log.Logger
}

// Option configures a Database at construction time.
type Option func(*config)

// WithLogger sets the logger AddEdge/DeleteEdge/Commit and per-delta-plan
// ContinuousMatch milestones are reported to. A nil logger (the default) disables reporting.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithStoreOptions forwards opts to store.NewGraphStore.
func WithStoreOptions(opts ...store.Option) Option {
	return func(c *config) { c.storeOpts = append(c.storeOpts, opts...) }
}

// WithJoinOptions forwards opts to every join.NewExecutor this Database
// constructs.
func WithJoinOptions(opts ...join.Option) Option {
	return func(c *config) { c.joinOpts = append(c.joinOpts, opts...) }
}

// WithRegistry supplies a pre-populated TypeRegistry instead of the empty
// one New creates by default — useful when several Database values, or a
// Database and a test harness, must share one interning namespace.
func WithRegistry(reg *registry.TypeRegistry) Option {
	return func(c *config) { c.reg = reg }
}
