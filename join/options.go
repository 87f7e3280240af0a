package join

import (
	"context"
	"log"
)

// DefaultBatchSize is the batch size used when Options is not given
// WithBatchSize. No observable behavior depends on its value beyond
// memory/recursion shape — batching is an execution-strategy detail, not a
// semantic one.
const DefaultBatchSize = 64

// Options configures a single Executor run. The zero value is not used
// directly; construct via NewOptions so Ctx and BatchSize normalize to
// their defaults.
type Options struct {
	Ctx       context.Context
	Logger    *log.Logger
	BatchSize int
}

// Option configures an Options value, following the functional-options
// idiom used throughout this module's stack (store.Option, core.GraphOption).
type Option func(*Options)

// WithContext sets the cancellation context checked between stages.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithLogger sets the logger milestones (the start and end of each Execute
// call, including each half of an ExecuteDelta) are reported to. A nil
// logger (the default) disables reporting.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithBatchSize overrides the number of extended prefixes buffered before
// the executor recurses into the next stage. Panics if size <= 0, mirroring
// dijkstra.WithMaxDistance's panic-on-invalid-input convention: batch size
// is a programmer-supplied tuning knob, not user input.
func WithBatchSize(size int) Option {
	if size <= 0 {
		panic("join: batch size must be positive")
	}
	return func(o *Options) { o.BatchSize = size }
}

// NewOptions builds an Options from opts, normalizing Ctx to
// context.Background() and BatchSize to DefaultBatchSize when unset.
func NewOptions(opts ...Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	o.normalize()

	return o
}

// normalize fills in defaults for fields left zero-valued, mirroring
// flow.FlowOptions.normalize().
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
}
