package pipeline

import (
	"testing"

	"zeroshot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLabelRejectsDuplicate(t *testing.T) {
	db := openTestDB(t)

	first, err := AddLabel(db, "Sports", "ball games")
	require.NoError(t, err)
	assert.True(t, first.IsActive)

	_, err = AddLabel(db, "Sports", "again")
	assert.ErrorIs(t, err, ErrDuplicateLabel)
}

func TestAddLabelRejectsDuplicateOfInactive(t *testing.T) {
	db := openTestDB(t)
	inactive := models.GlobalLabel{Label: "Archive", IsActive: false}
	require.NoError(t, db.Create(&inactive).Error)

	_, err := AddLabel(db, "Archive", "")
	assert.ErrorIs(t, err, ErrDuplicateLabel)
}

func TestDeleteThenReAdd(t *testing.T) {
	db := openTestDB(t)

	label, err := AddLabel(db, "Sports", "")
	require.NoError(t, err)

	require.NoError(t, DeleteLabel(db, label.ID))

	// hard deletion leaves no tombstone
	again, err := AddLabel(db, "Sports", "")
	require.NoError(t, err)
	assert.NotEqual(t, label.ID, again.ID)
}

func TestDeleteLabelNotFound(t *testing.T) {
	db := openTestDB(t)
	assert.ErrorIs(t, DeleteLabel(db, 999), ErrLabelNotFound)
}

func TestUpdateLabelNotFound(t *testing.T) {
	db := openTestDB(t)
	_, err := UpdateLabel(db, 999, "Anything", "")
	assert.ErrorIs(t, err, ErrLabelNotFound)
}

func TestUpdateLabelRename(t *testing.T) {
	db := openTestDB(t)
	label, err := AddLabel(db, "Sprots", "typo")
	require.NoError(t, err)

	updated, err := UpdateLabel(db, label.ID, "Sports", "fixed")
	require.NoError(t, err)
	assert.Equal(t, "Sports", updated.Label)
	assert.Equal(t, "fixed", updated.Description)
}

func TestUpdateLabelUniquenessOnlyWhenNameChanges(t *testing.T) {
	db := openTestDB(t)
	label, err := AddLabel(db, "Sports", "")
	require.NoError(t, err)
	_, err = AddLabel(db, "Finance", "")
	require.NoError(t, err)

	// same name, new description: no duplicate check against itself
	_, err = UpdateLabel(db, label.ID, "Sports", "updated description")
	require.NoError(t, err)

	// renaming onto an existing label is rejected
	_, err = UpdateLabel(db, label.ID, "Finance", "")
	assert.ErrorIs(t, err, ErrDuplicateLabel)
}

func TestBulkAddLabels(t *testing.T) {
	db := openTestDB(t)
	_, err := AddLabel(db, "Sports", "")
	require.NoError(t, err)

	res, err := BulkAddLabels(db, []LabelUpload{
		{Label: "Sports"},
		{Label: "Politics", Description: "elections"},
		{Label: ""},
		{Label: "Weather"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "missing label name")

	labels, err := ActiveLabels(db)
	require.NoError(t, err)
	assert.Len(t, labels, 3)
}
