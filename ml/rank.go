package ml

import (
	"math"
	"sort"
)

// TopK is the maximum number of ranked results returned per prediction.
const TopK = 5

// ScoredLabel pairs a candidate label name with its raw cosine similarity.
type ScoredLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Candidate is a label name together with its pooled embedding.
type Candidate struct {
	Label  string
	Vector []float32
}

// Rank scores every candidate against the query vector and returns at most
// TopK results ordered by descending cosine similarity. The sort is stable:
// equal-score candidates keep their relative input order. Scores are the raw
// cosine values, neither clamped nor renormalized.
func Rank(query []float32, candidates []Candidate) []ScoredLabel {
	out := make([]ScoredLabel, 0, len(candidates))
	for _, cand := range candidates {
		out = append(out, ScoredLabel{Label: cand.Label, Score: Cosine(query, cand.Vector)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > TopK {
		out = out[:TopK]
	}
	return out
}

// Cosine computes the cosine similarity of two vectors. A zero-magnitude
// input yields 0. Mismatched lengths compare over the shorter prefix.
func Cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		af, bf := float64(a[i]), float64(b[i])
		dot += af * bf
		na += af * af
		nb += bf * bf
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
