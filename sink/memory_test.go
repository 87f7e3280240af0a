// Package sink_test exercises MemorySink and FileSink against the
// OutputSink contract.
package sink_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"

	"github.com/motifquery/motifgraph/propval"
	"github.com/motifquery/motifgraph/sink"
)

func row(tag sink.Tag, ids ...int32) sink.Tuple {
	cols := make([]propval.PropertyValue, len(ids))
	for i, id := range ids {
		cols[i] = propval.NewInt(id)
	}
	return sink.Tuple{Tag: tag, Columns: cols}
}

// TestMemorySink_AppendAndLen covers basic append/retrieve behavior.
func TestMemorySink_AppendAndLen(t *testing.T) {
	m := sink.NewMemorySink()
	if err := m.Append(row(sink.Matched, 0, 1, 3)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := m.Append(row(sink.Matched, 1, 3, 0)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if got := m.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
}

// TestMemorySink_MultisetEquality exercises a typical triangle-match
// multiset: order of discovery should not matter, only set membership with
// multiplicity, verified via go-cmp with cmpopts.SortSlices.
func TestMemorySink_MultisetEquality(t *testing.T) {
	m := sink.NewMemorySink()
	for _, ids := range [][3]int32{{0, 1, 3}, {1, 3, 4}, {3, 0, 1}} {
		if err := m.Append(row(sink.Matched, ids[0], ids[1], ids[2])); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	want := []sink.Tuple{
		row(sink.Matched, 3, 0, 1),
		row(sink.Matched, 0, 1, 3),
		row(sink.Matched, 1, 3, 4),
	}

	less := func(a, b sink.Tuple) bool {
		for i := range a.Columns {
			if i >= len(b.Columns) {
				return false
			}
			av, _ := a.Columns[i].IntValue()
			bv, _ := b.Columns[i].IntValue()
			if av != bv {
				return av < bv
			}
		}
		return false
	}

	if diff := cmp.Diff(want, m.Tuples(), cmpopts.SortSlices(less)); diff != "" {
		t.Fatalf("multiset mismatch (-want +got):\n%s", diff)
	}
}

// TestMemorySink_ByTag covers a typical "one EMERGED, zero DELETED"
// assertion shape.
func TestMemorySink_ByTag(t *testing.T) {
	m := sink.NewMemorySink()
	if err := m.Append(row(sink.Emerged, 0, 1, 3)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := m.Append(row(sink.Matched, 1, 2, 3)); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if got := m.ByTag(sink.Emerged); len(got) != 1 {
		t.Fatalf("ByTag(Emerged) len = %d, want 1", len(got))
	}
	if got := m.ByTag(sink.Deleted); len(got) != 0 {
		t.Fatalf("ByTag(Deleted) len = %d, want 0", len(got))
	}
}

// TestFileSink_WritesOneLinePerTuple verifies the human-readable format:
// space-separated columns followed by the tag keyword.
func TestFileSink_WritesOneLinePerTuple(t *testing.T) {
	var buf bytes.Buffer
	fs := sink.NewFileSink(&buf)

	storeID := uuid.New()
	if err := fs.WriteHeader(storeID); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if err := fs.Append(row(sink.Matched, 0, 1, 3)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := fs.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "# store "+storeID.String()) {
		t.Fatalf("header line = %q, want prefix %q", lines[0], "# store "+storeID.String())
	}
	if lines[1] != "0 1 3 MATCHED" {
		t.Fatalf("tuple line = %q, want %q", lines[1], "0 1 3 MATCHED")
	}
}

// TestFileSink_AppendAfterCloseFails verifies the closed-sink error.
func TestFileSink_AppendAfterCloseFails(t *testing.T) {
	var buf bytes.Buffer
	fs := sink.NewFileSink(&buf)
	if err := fs.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if err := fs.Append(row(sink.Matched, 0)); err == nil {
		t.Fatal("Append after Close: want error, got nil")
	}
}
