package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type ExplainPayload struct {
	Text       string   `json:"text"`
	Label      string   `json:"label"`
	Confidence *float64 `json:"confidence"`
}

// POST /api/explain
func Explain(c *gin.Context) {
	var payload ExplainPayload
	if err := c.BindJSON(&payload); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(payload.Text) == "" || strings.TrimSpace(payload.Label) == "" {
		RespondError(c, "text and label are required", http.StatusBadRequest)
		return
	}

	engine := EngineInstance(c)
	if engine == nil {
		RespondError(c, "engine not configured in context", http.StatusInternalServerError)
		return
	}

	explanation, err := engine.Explain(c.Request.Context(), payload.Text, payload.Label, payload.Confidence)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	RespondSuccess(c, gin.H{
		"text":        payload.Text,
		"label":       payload.Label,
		"explanation": explanation,
	})
}
