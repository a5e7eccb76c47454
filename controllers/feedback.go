package controllers

import (
	"net/http"
	"strconv"

	dbpkg "zeroshot/db"
	"zeroshot/pipeline"

	"github.com/gin-gonic/gin"
)

type FeedbackPayload struct {
	HistoryID    int64  `json:"history_id"`
	CorrectLabel string `json:"correct_label"`
}

// PATCH /api/feedback
func SubmitFeedback(c *gin.Context) {
	var payload FeedbackPayload
	if err := c.BindJSON(&payload); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.HistoryID <= 0 {
		RespondError(c, "history_id is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	if err := pipeline.SubmitFeedback(db, payload.HistoryID, payload.CorrectLabel); err != nil {
		respondPipelineError(c, err)
		return
	}

	RespondSuccess(c, gin.H{"message": "Feedback received. Thank you for improving the model."})
}

// GET /api/history?limit=N
func GetHistory(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	items, err := pipeline.History(db, limit)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	RespondSuccess(c, items)
}
