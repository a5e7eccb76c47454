package ml

import "errors"

var (
	// ErrEncoderUnavailable is returned when a prediction is attempted
	// before an encoder has been loaded.
	ErrEncoderUnavailable = errors.New("encoder not loaded")

	// ErrGeneratorUnavailable is returned when an explanation is attempted
	// before a generator has been configured.
	ErrGeneratorUnavailable = errors.New("generator not loaded")
)

// PredictionError wraps a lower-layer fault (encoder or ranking) raised
// while serving a prediction. It is a server-class error.
type PredictionError struct {
	Err error
}

func (e *PredictionError) Error() string { return "prediction failed: " + e.Err.Error() }
func (e *PredictionError) Unwrap() error { return e.Err }

// ExplanationError wraps a generator fault raised while producing an
// explanation. It is a server-class error.
type ExplanationError struct {
	Err error
}

func (e *ExplanationError) Error() string { return "explanation failed: " + e.Err.Error() }
func (e *ExplanationError) Unwrap() error { return e.Err }
