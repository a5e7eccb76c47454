package controllers

import (
	"fmt"
	"net/http"
	"strings"

	dbpkg "zeroshot/db"
	"zeroshot/pipeline"

	"github.com/gin-gonic/gin"
)

type LabelPayload struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// GET /api/labels
func GetLabels(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}
	labels, err := pipeline.ActiveLabels(db)
	if err != nil {
		respondPipelineError(c, err)
		return
	}
	RespondSuccess(c, labels)
}

// POST /api/admin/labels
func CreateLabel(c *gin.Context) {
	var payload LabelPayload
	if err := c.BindJSON(&payload); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(payload.Label) == "" {
		RespondError(c, "label is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	label, err := pipeline.AddLabel(db, payload.Label, payload.Description)
	if err != nil {
		respondPipelineError(c, err)
		return
	}
	RespondSuccess(c, gin.H{
		"message": fmt.Sprintf("Label '%s' added.", label.Label),
		"id":      label.ID,
	})
}

// PUT /api/admin/labels/:id
func UpdateLabel(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var payload LabelPayload
	if err := c.BindJSON(&payload); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	label, err := pipeline.UpdateLabel(db, id, payload.Label, payload.Description)
	if err != nil {
		respondPipelineError(c, err)
		return
	}
	RespondSuccess(c, gin.H{"message": fmt.Sprintf("Label updated to '%s'", label.Label)})
}

// DELETE /api/admin/labels/:id
func DeleteLabel(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}
	if err := pipeline.DeleteLabel(db, id); err != nil {
		respondPipelineError(c, err)
		return
	}
	RespondSuccess(c, gin.H{"message": "Label deleted successfully"})
}

// POST /api/admin/labels/bulk
func BulkUploadLabels(c *gin.Context) {
	var items []pipeline.LabelUpload
	if err := c.BindJSON(&items); err != nil {
		RespondError(c, "body must be a JSON list of objects", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	res, err := pipeline.BulkAddLabels(db, items)
	if err != nil {
		respondPipelineError(c, err)
		return
	}
	RespondSuccess(c, gin.H{
		"message": "Bulk processing complete",
		"added":   res.Added,
		"skipped": res.Skipped,
		"errors":  res.Errors,
	})
}
