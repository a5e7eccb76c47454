package ml

import (
	"context"
	"fmt"
	"sync"
)

// Engine is the single process-wide model pair shared by all requests.
// The mutex guards hot swaps: predictions and explanations hold the read
// lock for the whole inference, so an administrator-triggered swap never
// replaces a model out from under an in-flight request.
type Engine struct {
	mu        sync.RWMutex
	encoder   Encoder
	generator Generator
}

// NewEngine builds an engine; either capability may be nil until loaded.
func NewEngine(encoder Encoder, generator Generator) *Engine {
	return &Engine{encoder: encoder, generator: generator}
}

// Predict encodes the query text once and every candidate label name once
// (the name, never the description), then returns the ranked top results.
func (e *Engine) Predict(ctx context.Context, text string, labels []string) ([]ScoredLabel, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.encoder == nil {
		return nil, ErrEncoderUnavailable
	}

	query, err := e.encoder.Embed(ctx, text)
	if err != nil {
		return nil, &PredictionError{Err: err}
	}

	candidates := make([]Candidate, 0, len(labels))
	for _, label := range labels {
		vec, err := e.encoder.Embed(ctx, label)
		if err != nil {
			return nil, &PredictionError{Err: err}
		}
		candidates = append(candidates, Candidate{Label: label, Vector: vec})
	}

	return Rank(query, candidates), nil
}

// Explain asks the generator to justify a prediction in one line. The
// returned text always starts with the fixed template sentence; the model's
// continuation is appended after it.
func (e *Engine) Explain(ctx context.Context, text, label string, score *float64) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.generator == nil {
		return "", ErrGeneratorUnavailable
	}

	scoreInfo := ""
	if score != nil {
		scoreInfo = fmt.Sprintf(" The similarity score was %.3f.", *score)
	}
	prompt := fmt.Sprintf(
		"Explain in one concise line why the text %q matches the category %q.%s Do not restate the text.",
		text, label, scoreInfo,
	)

	generated, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		return "", &ExplanationError{Err: err}
	}

	prefix := fmt.Sprintf("This text aligns with the %s category based on its meaning", label)
	if score != nil {
		prefix += fmt.Sprintf(", supported by a similarity score of %.3f", *score)
	}
	prefix += "."
	return prefix + " " + generated, nil
}

// SwapEncoder replaces the encoder under the exclusive lock, waiting out
// in-flight predictions, and closes the previous one.
func (e *Engine) SwapEncoder(encoder Encoder) error {
	e.mu.Lock()
	old := e.encoder
	e.encoder = encoder
	e.mu.Unlock()

	if old != nil {
		return old.Close()
	}
	return nil
}

// SwapGenerator replaces the generator under the exclusive lock.
func (e *Engine) SwapGenerator(generator Generator) {
	e.mu.Lock()
	e.generator = generator
	e.mu.Unlock()
}
