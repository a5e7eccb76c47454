package pipeline

import (
	"context"
	"testing"

	"zeroshot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitFeedbackUnknownID(t *testing.T) {
	db := openTestDB(t)
	err := SubmitFeedback(db, 12345, "Travel")
	assert.ErrorIs(t, err, ErrHistoryNotFound)
}

func TestSubmitFeedbackStoresLabelVerbatim(t *testing.T) {
	db := openTestDB(t)
	seedLabel(t, db, "Travel")

	res, err := Predict(context.Background(), db, testEngine(romeEncoder()), "booked a flight to Rome", nil)
	require.NoError(t, err)

	// the corrected label need not exist in the label store
	require.NoError(t, SubmitFeedback(db, res.HistoryID, "Leisure & Holidays"))

	var record models.QueryHistory
	require.NoError(t, db.First(&record, res.HistoryID).Error)
	assert.True(t, record.UserReportedWrong)
	assert.Equal(t, "Leisure & Holidays", record.CorrectLabel)
}

func TestSubmitFeedbackOverwritesPriorCorrection(t *testing.T) {
	db := openTestDB(t)
	seedLabel(t, db, "Travel")

	res, err := Predict(context.Background(), db, testEngine(romeEncoder()), "booked a flight to Rome", nil)
	require.NoError(t, err)

	require.NoError(t, SubmitFeedback(db, res.HistoryID, "First"))
	require.NoError(t, SubmitFeedback(db, res.HistoryID, "Second"))

	var record models.QueryHistory
	require.NoError(t, db.First(&record, res.HistoryID).Error)
	assert.Equal(t, "Second", record.CorrectLabel)
}

func TestFeedbackDoesNotRecomputeStoredResults(t *testing.T) {
	db := openTestDB(t)
	seedLabel(t, db, "Travel")

	res, err := Predict(context.Background(), db, testEngine(romeEncoder()), "booked a flight to Rome", nil)
	require.NoError(t, err)
	require.NoError(t, SubmitFeedback(db, res.HistoryID, "Other"))

	var record models.QueryHistory
	require.NoError(t, db.First(&record, res.HistoryID).Error)
	stored, err := record.Results()
	require.NoError(t, err)
	assert.Equal(t, res.Results, stored)
}

func TestHistoryMostRecentFirstWithLimit(t *testing.T) {
	db := openTestDB(t)
	seedLabel(t, db, "Travel")
	engine := testEngine(romeEncoder())

	var ids []int64
	for _, text := range []string{"first", "second", "third"} {
		res, err := Predict(context.Background(), db, engine, text, nil)
		require.NoError(t, err)
		ids = append(ids, res.HistoryID)
	}

	items, err := History(db, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, ids[2], items[0].ID)
	assert.Equal(t, "third", items[0].QueryText)
	assert.Equal(t, ids[1], items[1].ID)

	// default limit kicks in for non-positive values
	all, err := History(db, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	require.NotEmpty(t, all[0].ModelResults)
	assert.Equal(t, "Travel", all[0].ModelResults[0].Label)
}
