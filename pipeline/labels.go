package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"zeroshot/models"

	"github.com/jinzhu/gorm"
)

// ActiveLabels returns the active global labels in store order.
func ActiveLabels(db *gorm.DB) ([]models.GlobalLabel, error) {
	var labels []models.GlobalLabel
	if err := db.Where("is_active = ?", true).Order("id asc").Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

// AddLabel creates a new active label. Any existing label with the same
// name, active or not, rejects the insert.
func AddLabel(db *gorm.DB, name, description string) (*models.GlobalLabel, error) {
	var existing models.GlobalLabel
	err := db.Where("label = ?", name).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateLabel
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	label := models.GlobalLabel{Label: name, Description: description, IsActive: true}
	if err := db.Create(&label).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

// UpdateLabel renames/redescribes a label. Uniqueness is re-checked only
// when the name actually changes, and only against other labels.
func UpdateLabel(db *gorm.DB, id int64, name, description string) (*models.GlobalLabel, error) {
	var label models.GlobalLabel
	if err := db.First(&label, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrLabelNotFound
		}
		return nil, err
	}

	if name != "" && name != label.Label {
		var existing models.GlobalLabel
		err := db.Where("label = ? AND id <> ?", name, id).First(&existing).Error
		if err == nil {
			return nil, ErrDuplicateLabel
		}
		if !gorm.IsRecordNotFoundError(err) {
			return nil, err
		}
		label.Label = name
	}
	label.Description = description

	if err := db.Save(&label).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

// DeleteLabel hard-deletes a label. There is no tombstone: re-adding the
// same name afterwards is valid.
func DeleteLabel(db *gorm.DB, id int64) error {
	var label models.GlobalLabel
	if err := db.First(&label, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return ErrLabelNotFound
		}
		return err
	}
	return db.Delete(&label).Error
}

// LabelUpload is one entry of a bulk label upload.
type LabelUpload struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// BulkUploadResult accumulates the per-item outcome of a bulk upload.
type BulkUploadResult struct {
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

// BulkAddLabels inserts every item it can: duplicates are skipped, items
// without a name are recorded as errors, and nothing aborts the batch.
func BulkAddLabels(db *gorm.DB, items []LabelUpload) (*BulkUploadResult, error) {
	res := &BulkUploadResult{Errors: []string{}}
	for i, item := range items {
		if strings.TrimSpace(item.Label) == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("item %d: missing label name", i))
			continue
		}
		_, err := AddLabel(db, item.Label, item.Description)
		switch {
		case err == nil:
			res.Added++
		case errors.Is(err, ErrDuplicateLabel):
			res.Skipped++
		default:
			res.Errors = append(res.Errors, fmt.Sprintf("error adding %s: %v", item.Label, err))
		}
	}
	return res, nil
}
