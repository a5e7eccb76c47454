package models

import (
	"encoding/json"
	"time"

	"zeroshot/ml"
)

// QueryHistory is the persisted snapshot of one prediction request and its
// eventual correction status. ModelResults holds the full ranked list
// exactly as produced at prediction time; it is written once and never
// recomputed. Feedback is the only mutation the record ever sees.
type QueryHistory struct {
	ID                int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	QueryText         string     `gorm:"type:text" json:"query_text"`
	ModelResults      string     `gorm:"type:text" json:"-"`
	UserReportedWrong bool       `gorm:"not null;default:false" json:"user_reported_wrong"`
	CorrectLabel      string     `json:"correct_label,omitempty"`
	CreatedAt         *time.Time `json:"timestamp"`
}

// SetResults serializes the ranked list into the ModelResults column.
func (h *QueryHistory) SetResults(results []ml.ScoredLabel) error {
	b, err := json.Marshal(results)
	if err != nil {
		return err
	}
	h.ModelResults = string(b)
	return nil
}

// Results deserializes the ranked list stored at prediction time.
func (h *QueryHistory) Results() ([]ml.ScoredLabel, error) {
	if h.ModelResults == "" {
		return []ml.ScoredLabel{}, nil
	}
	var out []ml.ScoredLabel
	if err := json.Unmarshal([]byte(h.ModelResults), &out); err != nil {
		return nil, err
	}
	return out, nil
}
