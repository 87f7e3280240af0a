package join

import (
	"fmt"

	"github.com/motifquery/motifgraph/propval"
	"github.com/motifquery/motifgraph/querygraph"
	"github.com/motifquery/motifgraph/sink"
)

// Aggregator accumulates a single RETURN-clause aggregation (COUNT, SUM,
// MIN, MAX, AVG) across a group of rows.
type Aggregator interface {
	// Add folds one row's value into the running aggregate. Returns
	// ErrNonNumericAggregand if the aggregator requires a numeric value and
	// v is not one.
	Add(v propval.PropertyValue) error
	// Finalize returns the aggregate's value once every row in the group
	// has been added.
	Finalize() propval.PropertyValue
}

// NewAggregator returns a fresh, zero-state Aggregator for fn.
func NewAggregator(fn querygraph.AggFunc) Aggregator {
	switch fn {
	case querygraph.AggSum:
		return &sumAggregator{}
	case querygraph.AggMin:
		return &extremumAggregator{wantMin: true}
	case querygraph.AggMax:
		return &extremumAggregator{wantMin: false}
	case querygraph.AggAvg:
		return &avgAggregator{}
	default:
		return &countAggregator{}
	}
}

// countAggregator implements COUNT(*) and COUNT(variable.property): every
// Add call counts a row regardless of the value carried, matching SQL
// COUNT(*) semantics rather than COUNT(column) (which would skip NULLs —
// this module has no NULL, only "absent", and absent rows are dropped
// before GroupByAndAggregate sees them, by Project's skip-if-absent rule).
type countAggregator struct{ n int64 }

func (a *countAggregator) Add(propval.PropertyValue) error {
	a.n++
	return nil
}

func (a *countAggregator) Finalize() propval.PropertyValue {
	return propval.NewInt(int32(a.n))
}

// sumAggregator accumulates INT or DOUBLE values, widening to DOUBLE the
// first time a DOUBLE value is seen and staying there for the rest of the
// group (mixed-kind groups are not expected, since a property key holds one
// Kind consistently by convention, but this avoids silently truncating a
// DOUBLE sum to INT if that convention is ever violated).
type sumAggregator struct {
	intSum    int64
	doubleSum float64
	isDouble  bool
}

func (a *sumAggregator) Add(v propval.PropertyValue) error {
	switch v.Kind {
	case propval.KindInt:
		iv, _ := v.IntValue()
		a.intSum += int64(iv)
	case propval.KindDouble:
		dv, _ := v.DoubleValue()
		a.doubleSum += dv
		a.isDouble = true
	default:
		return ErrNonNumericAggregand
	}
	return nil
}

func (a *sumAggregator) Finalize() propval.PropertyValue {
	if a.isDouble {
		return propval.NewDouble(a.doubleSum + float64(a.intSum))
	}
	return propval.NewInt(int32(a.intSum))
}

// avgAggregator always finalizes as DOUBLE, since an integer mean is
// generally fractional.
type avgAggregator struct {
	sum   float64
	count int64
}

func (a *avgAggregator) Add(v propval.PropertyValue) error {
	switch v.Kind {
	case propval.KindInt:
		iv, _ := v.IntValue()
		a.sum += float64(iv)
	case propval.KindDouble:
		dv, _ := v.DoubleValue()
		a.sum += dv
	default:
		return ErrNonNumericAggregand
	}
	a.count++
	return nil
}

func (a *avgAggregator) Finalize() propval.PropertyValue {
	if a.count == 0 {
		return propval.NewDouble(0)
	}
	return propval.NewDouble(a.sum / float64(a.count))
}

// extremumAggregator implements both MIN and MAX via PropertyValue.Less,
// ordering INT, DOUBLE, and STRING values; a BOOLEAN aggregand surfaces
// Less's ErrKindMismatch.
type extremumAggregator struct {
	wantMin bool
	have    bool
	cur     propval.PropertyValue
	err     error
}

func (a *extremumAggregator) Add(v propval.PropertyValue) error {
	if !a.have {
		a.cur, a.have = v, true
		return nil
	}
	less, err := v.Less(a.cur)
	if err != nil {
		a.err = err
		return err
	}
	if (a.wantMin && less) || (!a.wantMin && !less && !v.Equal(a.cur)) {
		a.cur = v
	}
	return nil
}

func (a *extremumAggregator) Finalize() propval.PropertyValue {
	return a.cur
}

// AggregationColumn binds one RETURN-clause aggregation to a column index
// within the rows GroupByAndAggregate receives. ColumnIndex is -1 for
// COUNT(*), which ignores its argument.
type AggregationColumn struct {
	Func        querygraph.AggFunc
	ColumnIndex int
}

// GroupByAndAggregate groups rows by their first numGroupCols columns and
// folds the remaining columns through cols, one Aggregator per entry,
// emitting one sink.Tuple per distinct group: group columns followed by
// finalized aggregates, in the order groups were first seen (deterministic
// for a deterministic row order, per the store/planner's sorted iteration).
//
// A row missing a property an aggregation or group key depends on is
// already dropped upstream by Project's skip-if-absent return — every row
// GroupByAndAggregate receives is aggregated, including zero-length rows
// from a bare COUNT(*) with no RETURN columns.
func GroupByAndAggregate(rows [][]propval.PropertyValue, numGroupCols int, cols []AggregationColumn) ([]sink.Tuple, error) {
	type group struct {
		keyCols []propval.PropertyValue
		aggs    []Aggregator
	}

	order := make([]string, 0)
	groups := make(map[string]*group)

	for _, row := range rows {
		key := groupKey(row[:numGroupCols])
		g, ok := groups[key]
		if !ok {
			g = &group{keyCols: append([]propval.PropertyValue(nil), row[:numGroupCols]...)}
			for _, c := range cols {
				g.aggs = append(g.aggs, NewAggregator(c.Func))
			}
			groups[key] = g
			order = append(order, key)
		}
		for i, c := range cols {
			if c.ColumnIndex < 0 {
				if err := g.aggs[i].Add(propval.PropertyValue{}); err != nil {
					return nil, err
				}
				continue
			}
			if err := g.aggs[i].Add(row[c.ColumnIndex]); err != nil {
				return nil, err
			}
		}
	}

	out := make([]sink.Tuple, 0, len(order))
	for _, key := range order {
		g := groups[key]
		columns := append([]propval.PropertyValue(nil), g.keyCols...)
		for _, agg := range g.aggs {
			columns = append(columns, agg.Finalize())
		}
		out = append(out, sink.Tuple{Tag: sink.Matched, Columns: columns})
	}

	return out, nil
}

// groupKey renders cols as a string suitable for use as a map key. Kind is
// included per value so, e.g., INT(0) and a hypothetical future zero-value
// of another Kind never collide.
func groupKey(cols []propval.PropertyValue) string {
	s := ""
	for _, c := range cols {
		s += fmt.Sprintf("%d:%v|", c.Kind, c.Raw())
	}
	return s
}
