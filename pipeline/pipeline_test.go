package pipeline

import (
	"context"
	"errors"
	"testing"

	"zeroshot/ml"
	"zeroshot/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// a second pooled connection would see a different in-memory database
	db.DB().SetMaxOpenConns(1)
	db.LogMode(false)
	require.NoError(t, db.AutoMigrate(&models.GlobalLabel{}, &models.QueryHistory{}).Error)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedLabel(t *testing.T, db *gorm.DB, name string) models.GlobalLabel {
	t.Helper()
	label := models.GlobalLabel{Label: name, IsActive: true}
	require.NoError(t, db.Create(&label).Error)
	return label
}

// stubEncoder serves hand-crafted vectors; unknown text gets a zero vector
// so it scores 0 against everything.
type stubEncoder struct {
	vectors map[string][]float32
	failOn  string
}

func (s *stubEncoder) Embed(_ context.Context, text string) ([]float32, error) {
	if s.failOn != "" && text == s.failOn {
		return nil, errors.New("stub encoder fault")
	}
	if vec, ok := s.vectors[text]; ok {
		return vec, nil
	}
	return []float32{0, 0}, nil
}

func (s *stubEncoder) Close() error { return nil }

func testEngine(encoder ml.Encoder) *ml.Engine {
	return ml.NewEngine(encoder, nil)
}

func romeEncoder() *stubEncoder {
	return &stubEncoder{vectors: map[string][]float32{
		"booked a flight to Rome": {0.9, 0.1},
		"Travel":                  {1, 0},
		"Finance":                 {0, 1},
	}}
}
