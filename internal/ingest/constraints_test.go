package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqpat"
)

func TestResolveConstraints_MapsNamesToIndices(t *testing.T) {
	specs := []ConstraintSpec{
		{Kind: seqpat.UpperGap, Attr: "dur", Limit: 5},
		{Kind: seqpat.LowerAverage, Attr: "ts", Limit: 1},
	}
	out, err := ResolveConstraints(specs, []string{"ts", "dur"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].Attr)
	assert.Equal(t, 0, out[1].Attr)
}

func TestResolveConstraints_RejectsUndeclaredAttribute(t *testing.T) {
	specs := []ConstraintSpec{{Kind: seqpat.UpperGap, Attr: "missing", Limit: 5}}
	_, err := ResolveConstraints(specs, []string{"ts"})
	require.Error(t, err)
}

func TestResolveConstraints_EmptySpecs(t *testing.T) {
	out, err := ResolveConstraints(nil, []string{"ts"})
	require.NoError(t, err)
	assert.Empty(t, out)
}
