package ml

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float32{1, 2, 3}, []float32{1, 2, 3}), 1e-9)
	assert.InDelta(t, -1.0, Cosine([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Equal(t, 0.0, Cosine([]float32{0, 0}, []float32{1, 1}))
	assert.Equal(t, 0.0, Cosine(nil, []float32{1}))
}

func TestRankSortsDescending(t *testing.T) {
	query := []float32{1, 0}
	candidates := []Candidate{
		{Label: "orthogonal", Vector: []float32{0, 1}},
		{Label: "same", Vector: []float32{2, 0}},
		{Label: "opposite", Vector: []float32{-1, 0}},
		{Label: "diagonal", Vector: []float32{1, 1}},
	}

	got := Rank(query, candidates)
	require.Len(t, got, 4)
	assert.Equal(t, "same", got[0].Label)
	assert.Equal(t, "diagonal", got[1].Label)
	assert.Equal(t, "orthogonal", got[2].Label)
	assert.Equal(t, "opposite", got[3].Label)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
}

func TestRankStableOnTies(t *testing.T) {
	query := []float32{1, 0}
	// all candidates score exactly 1.0
	candidates := []Candidate{
		{Label: "c", Vector: []float32{1, 0}},
		{Label: "a", Vector: []float32{3, 0}},
		{Label: "b", Vector: []float32{2, 0}},
	}

	got := Rank(query, candidates)
	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].Label)
	assert.Equal(t, "a", got[1].Label)
	assert.Equal(t, "b", got[2].Label)
}

func TestRankTruncatesToTopK(t *testing.T) {
	query := []float32{1, 0}
	var candidates []Candidate
	for i := 0; i < 12; i++ {
		candidates = append(candidates, Candidate{
			Label:  fmt.Sprintf("label-%d", i),
			Vector: []float32{1, float32(i)},
		})
	}

	got := Rank(query, candidates)
	assert.Len(t, got, TopK)
	// label-0 aligns perfectly with the query
	assert.Equal(t, "label-0", got[0].Label)
}

func TestRankFewerCandidatesThanTopK(t *testing.T) {
	got := Rank([]float32{1}, []Candidate{{Label: "only", Vector: []float32{1}}})
	require.Len(t, got, 1)
	assert.Equal(t, "only", got[0].Label)
	assert.InDelta(t, 1.0, got[0].Score, 1e-9)
}

func TestRankDoesNotClampScores(t *testing.T) {
	got := Rank([]float32{1, 0}, []Candidate{{Label: "opposite", Vector: []float32{-1, 0}}})
	require.Len(t, got, 1)
	assert.InDelta(t, -1.0, got[0].Score, 1e-9)
}
