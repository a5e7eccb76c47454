package ml

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	ort "github.com/yalue/onnxruntime_go"
	"golang.org/x/text/unicode/norm"
)

// Encoder turns arbitrary text into a single fixed-size vector.
type Encoder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Close() error
}

// OrtConfig configures the local ONNX encoder.
type OrtConfig struct {
	OrtDLL        string `json:"ort_dll"`
	ModelPath     string `json:"model_path"`
	TokenizerPath string `json:"tokenizer_path"`
	MaxSeqLen     int    `json:"max_seq_len"`
}

// OrtEncoder runs a sentence-transformer ONNX model locally and mean-pools
// the token states into one vector. Same text always yields the same vector,
// so embeddings are cached by normalized input; label names in particular
// are not re-encoded on every request.
type OrtEncoder struct {
	session *ort.DynamicAdvancedSession
	tk      *tokenizer.Tokenizer
	cfg     OrtConfig

	mu    sync.RWMutex
	cache map[string][]float32
}

// NewOrtEncoder loads the tokenizer and opens the ONNX session. The
// onnxruntime environment is initialized once per process.
func NewOrtEncoder(cfg OrtConfig) (*OrtEncoder, error) {
	if cfg.MaxSeqLen <= 0 {
		cfg.MaxSeqLen = 512
	}
	if !ort.IsInitialized() {
		if cfg.OrtDLL != "" {
			ort.SetSharedLibraryPath(cfg.OrtDLL)
		}
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("init onnxruntime: %w", err)
		}
	}
	tk, err := pretrained.FromFile(cfg.TokenizerPath)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer: %w", err)
	}
	session, err := ort.NewDynamicAdvancedSession(
		cfg.ModelPath,
		[]string{"input_ids", "attention_mask"},
		[]string{"last_hidden_state"},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("load encoder model: %w", err)
	}
	return &OrtEncoder{
		session: session,
		tk:      tk,
		cfg:     cfg,
		cache:   make(map[string][]float32),
	}, nil
}

// Embed tokenizes, truncates to the configured sequence length and returns
// the mean-pooled hidden state. Over-length input is truncated, never
// rejected.
func (o *OrtEncoder) Embed(_ context.Context, text string) ([]float32, error) {
	key := NormalizeText(text)
	if vec := o.fromCache(key); vec != nil {
		return vec, nil
	}

	encoding, err := o.tk.EncodeSingle(key, true)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	ids := encoding.Ids
	if len(ids) > o.cfg.MaxSeqLen {
		ids = ids[:o.cfg.MaxSeqLen]
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("tokenizer produced no tokens")
	}

	inputIDs := make([]int64, len(ids))
	mask := make([]int64, len(ids))
	for i, id := range ids {
		inputIDs[i] = int64(id)
		mask[i] = 1
	}

	shape := ort.NewShape(1, int64(len(ids)))
	idsTensor, err := ort.NewTensor(shape, inputIDs)
	if err != nil {
		return nil, err
	}
	defer idsTensor.Destroy()
	maskTensor, err := ort.NewTensor(shape, mask)
	if err != nil {
		return nil, err
	}
	defer maskTensor.Destroy()

	outputs := []ort.Value{nil}
	if err := o.session.Run([]ort.Value{idsTensor, maskTensor}, outputs); err != nil {
		return nil, fmt.Errorf("encoder inference: %w", err)
	}
	hidden, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, fmt.Errorf("unexpected encoder output type %T", outputs[0])
	}
	defer hidden.Destroy()

	dims := hidden.GetShape()
	width := int(dims[len(dims)-1])
	vec := meanPool(hidden.GetData(), len(ids), width)
	o.store(key, vec)
	return vec, nil
}

// Close releases the ONNX session.
func (o *OrtEncoder) Close() error {
	if o == nil {
		return nil
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cache = nil
	if o.session != nil {
		err := o.session.Destroy()
		o.session = nil
		return err
	}
	return nil
}

func (o *OrtEncoder) fromCache(key string) []float32 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if vec, ok := o.cache[key]; ok {
		return cloneVector(vec)
	}
	return nil
}

func (o *OrtEncoder) store(key string, vec []float32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.cache != nil {
		o.cache[key] = cloneVector(vec)
	}
}

// meanPool averages the per-token states into one fixed-size vector.
func meanPool(data []float32, seq, width int) []float32 {
	vec := make([]float32, width)
	if seq == 0 || width == 0 {
		return vec
	}
	for t := 0; t < seq && (t+1)*width <= len(data); t++ {
		row := data[t*width : (t+1)*width]
		for i, v := range row {
			vec[i] += v
		}
	}
	inv := 1 / float32(seq)
	for i := range vec {
		vec[i] *= inv
	}
	return vec
}

func cloneVector(vec []float32) []float32 {
	out := make([]float32, len(vec))
	copy(out, vec)
	return out
}

// NormalizeText applies NFKC normalization, trims whitespace and strips
// control characters other than newlines and tabs.
func NormalizeText(text string) string {
	normed := norm.NFKC.String(text)
	normed = strings.TrimSpace(normed)
	normed = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, normed)
	return normed
}
