package pipeline

import (
	"time"

	"zeroshot/ml"
	"zeroshot/models"

	"github.com/jinzhu/gorm"
)

// SubmitFeedback flags a history record as corrected and stores the label
// verbatim. The label is deliberately not checked against the label store,
// so a corrector can supply a category that has not been formalized yet.
// Resubmitting overwrites the previous correction.
func SubmitFeedback(db *gorm.DB, historyID int64, correctLabel string) error {
	var record models.QueryHistory
	if err := db.First(&record, historyID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return ErrHistoryNotFound
		}
		return err
	}

	record.UserReportedWrong = true
	record.CorrectLabel = correctLabel
	return db.Save(&record).Error
}

// HistoryItem is one history listing entry with the stored ranked list
// deserialized back into structured form.
type HistoryItem struct {
	ID                int64            `json:"id"`
	Timestamp         *time.Time       `json:"timestamp"`
	QueryText         string           `json:"query_text"`
	ModelResults      []ml.ScoredLabel `json:"model_results"`
	UserReportedWrong bool             `json:"user_reported_wrong"`
	CorrectLabel      string           `json:"correct_label,omitempty"`
}

// History returns the most recent records first, up to limit (default 10).
func History(db *gorm.DB, limit int) ([]HistoryItem, error) {
	if limit <= 0 {
		limit = 10
	}

	var records []models.QueryHistory
	if err := db.Order("id desc").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}

	out := make([]HistoryItem, 0, len(records))
	for _, r := range records {
		results, err := r.Results()
		if err != nil {
			return nil, err
		}
		out = append(out, HistoryItem{
			ID:                r.ID,
			Timestamp:         r.CreatedAt,
			QueryText:         r.QueryText,
			ModelResults:      results,
			UserReportedWrong: r.UserReportedWrong,
			CorrectLabel:      r.CorrectLabel,
		})
	}
	return out, nil
}
