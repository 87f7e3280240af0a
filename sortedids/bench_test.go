package sortedids_test

import (
	"testing"

	"github.com/motifquery/motifgraph/sortedids"
)

// BenchmarkIntersect_Skewed measures intersection throughput when one
// operand is much larger than the other, the shape the generic-join
// executor's min-count rule is designed to exploit.
func BenchmarkIntersect_Skewed(b *testing.B) {
	big := make([]int32, 100000)
	for i := range big {
		big[i] = int32(i)
	}
	small := []int32{17, 42, 99, 12345}

	bigList := sortedids.New(big...)
	smallList := sortedids.New(small...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bigList.Intersect(smallList)
	}
}
