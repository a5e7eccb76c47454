package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Generator turns a prompt into generated continuation text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// OpenAIGenerator calls an OpenAI-compatible chat completions endpoint.
// Decoding is deterministic: temperature 0 and a bounded max_tokens budget.
// Pointing BaseURL at a local server (llama.cpp, vLLM, ollama) works the
// same way.
type OpenAIGenerator struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int

	client *http.Client
}

// NewOpenAIGenerator builds a generator client with a request timeout.
func NewOpenAIGenerator(baseURL, apiKey, model string, maxTokens int) *OpenAIGenerator {
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	if maxTokens <= 0 {
		maxTokens = 30
	}
	return &OpenAIGenerator{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		APIKey:    apiKey,
		Model:     model,
		MaxTokens: maxTokens,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Generate sends the prompt and returns the model's continuation text.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]any{
		"model": g.Model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"temperature": 0,
		"max_tokens":  g.MaxTokens,
	}

	b, _ := json.Marshal(reqBody)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		g.BaseURL+"/v1/chat/completions",
		bytes.NewReader(b),
	)
	if err != nil {
		return "", err
	}
	if g.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.APIKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("generator error %d: %s", resp.StatusCode, string(body))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	out := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return out, nil
}
