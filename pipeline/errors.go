package pipeline

import "errors"

// Client-class errors: surfaced directly to the caller, never retried.
var (
	ErrNoCandidateLabels = errors.New("no labels provided (global or custom)")
	ErrBatchTooLarge     = errors.New("batch size limit exceeded")
	ErrNoGlobalLabels    = errors.New("no global labels found in database")
	ErrHistoryNotFound   = errors.New("history record not found")
	ErrLabelNotFound     = errors.New("label not found")
	ErrDuplicateLabel    = errors.New("label already exists")
)
