package ingest

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Bucketize discretizes values into numBuckets equal-frequency bins,
// returning one bucket index (0..numBuckets-1) per input value. It is the
// idiomatic equivalent of a quantile-based cut: build the cut points from
// the sorted values, then assign each original value to its interval.
//
// Constant attribute columns (min == max) can't be split into more than
// one bucket; Bucketize returns all zeros in that case rather than erroring.
func Bucketize(values []float64, numBuckets int) ([]int, error) {
	if numBuckets < 1 {
		return nil, errors.New("ingest: numBuckets must be >= 1")
	}
	if len(values) == 0 {
		return []int{}, nil
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	cuts := make([]float64, numBuckets-1)
	for i := range cuts {
		q := float64(i+1) / float64(numBuckets)
		cuts[i] = stat.Quantile(q, stat.Empirical, sorted, nil)
	}

	out := make([]int, len(values))
	for i, v := range values {
		b := 0
		for b < len(cuts) && v > cuts[b] {
			b++
		}
		out[i] = b
	}
	return out, nil
}
