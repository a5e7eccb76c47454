package pipeline

import (
	"context"
	"log"

	"zeroshot/ml"
	"zeroshot/models"

	"github.com/jinzhu/gorm"
)

// FailedLabel is the sentinel top label of a failed bulk item.
const FailedLabel = "ERROR"

// BulkItem is one entry of a bulk prediction response. A failed item keeps
// the sentinel fields (-1 history id, "ERROR" label, zero confidence, empty
// list); callers distinguish failures by those fields, never by an error.
// Failed tags the variant for in-process consumers.
type BulkItem struct {
	HistoryID  int64            `json:"history_id"`
	Text       string           `json:"text"`
	TopLabel   string           `json:"top_label"`
	Confidence float64          `json:"confidence"`
	TopResults []ml.ScoredLabel `json:"top_results"`
	Failed     bool             `json:"-"`
}

func failedItem(text string) BulkItem {
	return BulkItem{
		HistoryID:  -1,
		Text:       text,
		TopLabel:   FailedLabel,
		Confidence: 0,
		TopResults: []ml.ScoredLabel{},
		Failed:     true,
	}
}

// PredictBatch applies Predict to every item sequentially, one inference in
// flight at a time. The size bound and the empty-label-universe check run
// before any item is scored and reject the whole batch; past that point a
// fault on one item becomes a failure-marker result and never aborts the
// rest. Output order equals input order.
func PredictBatch(ctx context.Context, db *gorm.DB, engine *ml.Engine, texts []string, maxItems int) ([]BulkItem, error) {
	if maxItems > 0 && len(texts) > maxItems {
		return nil, ErrBatchTooLarge
	}

	var active int
	if err := db.Model(&models.GlobalLabel{}).Where("is_active = ?", true).Count(&active).Error; err != nil {
		return nil, err
	}
	if active == 0 {
		return nil, ErrNoGlobalLabels
	}

	out := make([]BulkItem, 0, len(texts))
	for _, text := range texts {
		res, err := Predict(ctx, db, engine, text, nil)
		if err != nil || len(res.Results) == 0 {
			if err != nil {
				log.Printf("bulk predict: item failed: %v", err)
			}
			out = append(out, failedItem(text))
			continue
		}

		top := res.Results[0]
		topResults := res.Results
		if len(topResults) > 3 {
			topResults = topResults[:3]
		}
		out = append(out, BulkItem{
			HistoryID:  res.HistoryID,
			Text:       text,
			TopLabel:   top.Label,
			Confidence: top.Score,
			TopResults: topResults,
		})
	}
	return out, nil
}
