package pipeline

import (
	"context"

	"zeroshot/ml"
	"zeroshot/models"

	"github.com/jinzhu/gorm"
)

// PredictResult carries the committed history id alongside the ranked list.
type PredictResult struct {
	HistoryID int64
	Results   []ml.ScoredLabel
}

// CandidateLabels unions the currently active global labels with the
// caller's ad-hoc labels. Deduplication is exact-string and the first
// occurrence wins, so active labels keep their store order and ad-hoc
// labels their request order. That input order is what the ranker's stable
// sort preserves on score ties.
func CandidateLabels(db *gorm.DB, adHoc []string) ([]string, error) {
	var globals []models.GlobalLabel
	if err := db.Where("is_active = ?", true).Order("id asc").Find(&globals).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(globals)+len(adHoc))
	out := make([]string, 0, len(globals)+len(adHoc))
	for _, g := range globals {
		if _, ok := seen[g.Label]; ok {
			continue
		}
		seen[g.Label] = struct{}{}
		out = append(out, g.Label)
	}
	for _, label := range adHoc {
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out, nil
}

// Predict runs one query through the full pipeline: candidate assembly,
// ranking and a synchronous history write. The returned id resolves to a
// committed record by the time the caller sees it.
func Predict(ctx context.Context, db *gorm.DB, engine *ml.Engine, text string, customLabels []string) (*PredictResult, error) {
	candidates, err := CandidateLabels(db, customLabels)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidateLabels
	}

	results, err := engine.Predict(ctx, text, candidates)
	if err != nil {
		return nil, err
	}

	record := models.QueryHistory{QueryText: text}
	if err := record.SetResults(results); err != nil {
		return nil, err
	}
	if err := db.Create(&record).Error; err != nil {
		return nil, err
	}

	return &PredictResult{HistoryID: record.ID, Results: results}, nil
}
