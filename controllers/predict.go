package controllers

import (
	"net/http"
	"strings"

	dbpkg "zeroshot/db"
	"zeroshot/pipeline"

	"github.com/gin-gonic/gin"
)

type PredictPayload struct {
	Text         string   `json:"text"`
	CustomLabels []string `json:"custom_labels"`
}

type BulkPredictItem struct {
	Text string `json:"text"`
}

// POST /api/predict
func Predict(c *gin.Context) {
	var payload PredictPayload
	if err := c.BindJSON(&payload); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(payload.Text) == "" {
		RespondError(c, "text is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}
	engine := EngineInstance(c)
	if engine == nil {
		RespondError(c, "engine not configured in context", http.StatusInternalServerError)
		return
	}

	res, err := pipeline.Predict(c.Request.Context(), db, engine, payload.Text, payload.CustomLabels)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	RespondSuccess(c, gin.H{
		"history_id":  res.HistoryID,
		"text":        payload.Text,
		"top_results": res.Results,
	})
}

// POST /api/predict/bulk
func PredictBulk(c *gin.Context) {
	var items []BulkPredictItem
	if err := c.BindJSON(&items); err != nil {
		RespondError(c, "body must be a JSON list of objects with a 'text' key", http.StatusBadRequest)
		return
	}
	texts := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Text) == "" {
			RespondError(c, "every item must carry a non-empty 'text'", http.StatusBadRequest)
			return
		}
		texts = append(texts, item.Text)
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}
	engine := EngineInstance(c)
	if engine == nil {
		RespondError(c, "engine not configured in context", http.StatusInternalServerError)
		return
	}

	results, err := pipeline.PredictBatch(c.Request.Context(), db, engine, texts, conf.Batch.MaxPredictItems)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	RespondSuccess(c, gin.H{
		"total_processed": len(results),
		"results":         results,
	})
}
