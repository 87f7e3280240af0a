package join

import (
	"sort"

	"github.com/google/uuid"

	"github.com/motifquery/motifgraph/plan"
	"github.com/motifquery/motifgraph/propval"
	"github.com/motifquery/motifgraph/sink"
	"github.com/motifquery/motifgraph/sortedids"
	"github.com/motifquery/motifgraph/store"
)

// Executor runs plan.Plan and plan.DeltaPlan values against a GraphStore,
// implementing the generic-join algorithm: a length-2 seed enumerated from
// AllEdges, then a sequence of stages that each extend every live prefix by
// one variable via a min-count-ordered multiway intersection of adjacency
// lists.
//
// An Executor is not safe for concurrent use by multiple goroutines; each
// call to Execute or ExecuteDelta runs single-threaded.
type Executor struct {
	store *store.GraphStore
	opts  Options
	stats Stats
}

// NewExecutor returns an Executor reading from s, configured by opts.
func NewExecutor(s *store.GraphStore, opts ...Option) *Executor {
	return &Executor{store: s, opts: NewOptions(opts...)}
}

// Stats returns instrumentation from the most recently completed Execute
// or ExecuteDelta call.
func (e *Executor) Stats() Stats {
	return e.stats
}

// Execute runs p to completion, emitting one sink.Tuple per matched prefix
// to sk, tagged p.ResultTag.
//
// Complexity: O(sum over stages of the smallest adjacency operand at each
// live prefix) — the multiway intersection never materializes the full
// cross product.
func (e *Executor) Execute(p *plan.Plan, sk sink.Sink) error {
	e.stats = Stats{}
	runID := uuid.New()
	if e.opts.Logger != nil {
		e.opts.Logger.Printf("join: run %s start order=%v tag=%s", runID, p.Order, p.ResultTag)
	}

	seeds, err := e.seedPrefixes(p)
	if err != nil {
		return err
	}

	err = e.extend(0, seeds, p, func(prefix Prefix) error {
		if err := e.opts.Ctx.Err(); err != nil {
			return ErrCanceled
		}
		t := sink.Tuple{Tag: p.ResultTag, Columns: prefixToColumns(prefix)}
		if err := sk.Append(t); err != nil {
			return err
		}
		e.stats.TuplesEmitted++

		return nil
	})

	if e.opts.Logger != nil {
		e.opts.Logger.Printf("join: run %s done tuples=%d scanned=%d err=%v", runID, e.stats.TuplesEmitted, e.stats.IntersectionElementsScanned, err)
	}

	return err
}

// ExecuteDelta runs both halves of a plan.DeltaPlan — the EMERGED sub-plan
// against DIFF_PLUS, then the DELETED sub-plan against DIFF_MINUS — against
// the same sink. Stats afterwards sums both halves.
func (e *Executor) ExecuteDelta(dp *plan.DeltaPlan, sk sink.Sink) error {
	if err := e.Execute(dp.Emerged, sk); err != nil {
		return err
	}
	emerged := e.stats

	err := e.Execute(dp.Deleted, sk)
	e.stats.IntersectionElementsScanned += emerged.IntersectionElementsScanned
	e.stats.TuplesEmitted += emerged.TuplesEmitted

	return err
}

// seedPrefixes enumerates the initial prefixes for p: prefixes [v, v] from
// the self-loop edges for a self-loop-only pattern, length-2 prefixes
// otherwise, one per edge
// AllEdges returns under the seed rule's version and type, oriented so
// prefix[0] corresponds to p.Order[0].
func (e *Executor) seedPrefixes(p *plan.Plan) ([]Prefix, error) {
	if len(p.Seed) == 0 {
		return nil, ErrUnresolvedVariable
	}
	primary := p.Seed[0]
	edges := e.store.AllEdges(primary.Version, primary.EdgeType)

	if len(p.Order) == 1 {
		out := make([]Prefix, 0, len(edges))
		for _, ed := range edges {
			if ed.Src == ed.Dst {
				out = append(out, Prefix{ed.Src, ed.Dst})
			}
		}

		return out, nil
	}

	out := make([]Prefix, 0, len(edges))
	for _, ed := range edges {
		var prefix Prefix
		if primary.Direction == store.Forward {
			prefix = Prefix{ed.Src, ed.Dst}
		} else {
			prefix = Prefix{ed.Dst, ed.Src}
		}
		if e.satisfiesRules(prefix, p.Seed[1:]) {
			out = append(out, prefix)
		}
	}

	return out, nil
}

// satisfiesRules reports whether prefix's last-bound variable is present in
// every one of extra's adjacency sets — used for seed rules beyond the
// first, covering patterns with parallel edges between the first two
// ordered variables.
func (e *Executor) satisfiesRules(prefix Prefix, extra []plan.Rule) bool {
	if len(extra) == 0 {
		return true
	}
	target := prefix[len(prefix)-1]
	for _, r := range extra {
		adj := e.store.Adjacency(prefix[r.PrefixIndex], r.Direction, r.Version, r.EdgeType)
		if !containsSorted(adj, int32(target)) {
			return false
		}
	}

	return true
}

// extend recursively applies p.Stages starting at stageIdx to prefixes,
// buffering extensions into batches of at most e.opts.BatchSize before
// recursing into the next stage. Batch size affects only memory/recursion
// shape, never the emitted set.
func (e *Executor) extend(stageIdx int, prefixes []Prefix, p *plan.Plan, emit func(Prefix) error) error {
	if err := e.opts.Ctx.Err(); err != nil {
		return ErrCanceled
	}

	if stageIdx == len(p.Stages) {
		for _, prefix := range prefixes {
			if err := emit(prefix); err != nil {
				return err
			}
		}

		return nil
	}

	stage := p.Stages[stageIdx]
	batch := make([]Prefix, 0, e.opts.BatchSize)
	for _, prefix := range prefixes {
		candidates := e.extendOne(prefix, stage)
		for _, x := range candidates {
			batch = append(batch, prefix.extended(store.VertexID(x)))
			if len(batch) == e.opts.BatchSize {
				if err := e.extend(stageIdx+1, batch, p, emit); err != nil {
					return err
				}
				batch = make([]Prefix, 0, e.opts.BatchSize)
			}
		}
	}
	if len(batch) > 0 {
		return e.extend(stageIdx+1, batch, p, emit)
	}

	return nil
}

// extendOne computes the set of candidate extensions of prefix at stage, by
// intersecting one adjacency list per rule via the min-count rule:
// sortedids.IntersectMany orders operands smallest-first so the running
// intersection never grows past the smallest participating adjacency list.
func (e *Executor) extendOne(prefix Prefix, stage plan.Stage) []int32 {
	lists := make([]*sortedids.SortedIdList, len(stage))
	smallest := -1
	for i, r := range stage {
		lists[i] = e.store.Adjacency(prefix[r.PrefixIndex], r.Direction, r.Version, r.EdgeType)
		if smallest == -1 || lists[i].Len() < smallest {
			smallest = lists[i].Len()
		}
	}
	if smallest > 0 {
		e.stats.IntersectionElementsScanned += int64(smallest)
	}

	return sortedids.IntersectMany(lists).Slice()
}

// containsSorted reports whether target appears in list's ascending IDs,
// via binary search.
func containsSorted(list *sortedids.SortedIdList, target int32) bool {
	n := list.Len()
	i := sort.Search(n, func(i int) bool { return list.At(i) >= target })

	return i < n && list.At(i) == target
}

// prefixToColumns converts a bound prefix into a sink.Tuple's raw vertex-ID
// columns, the MATCHED/EMERGED/DELETED tuple shape before any projection.
func prefixToColumns(prefix Prefix) []propval.PropertyValue {
	out := make([]propval.PropertyValue, len(prefix))
	for i, v := range prefix {
		out[i] = propval.NewInt(int32(v))
	}

	return out
}
