package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketize_EqualFrequencySplit(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	buckets, err := Bucketize(values, 4)
	require.NoError(t, err)
	require.Len(t, buckets, len(values))
	for _, b := range buckets {
		assert.GreaterOrEqual(t, b, 0)
		assert.Less(t, b, 4)
	}
}

func TestBucketize_ConstantColumnStaysInOneBucket(t *testing.T) {
	values := []float64{5, 5, 5, 5}
	buckets, err := Bucketize(values, 3)
	require.NoError(t, err)
	for _, b := range buckets {
		assert.Equal(t, 0, b)
	}
}

func TestBucketize_SingleBucketIsNoOp(t *testing.T) {
	values := []float64{1, 9, 3}
	buckets, err := Bucketize(values, 1)
	require.NoError(t, err)
	for _, b := range buckets {
		assert.Equal(t, 0, b)
	}
}

func TestBucketize_RejectsNonPositiveBucketCount(t *testing.T) {
	_, err := Bucketize([]float64{1, 2}, 0)
	require.Error(t, err)
}

func TestBucketize_EmptyInput(t *testing.T) {
	buckets, err := Bucketize(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, buckets)
}
