package controllers

import (
	"net/http"
	"os"

	"zeroshot/ml"

	"github.com/gin-gonic/gin"
)

type ModelSwapPayload struct {
	EncoderPath    string `json:"encoder_path"`
	TokenizerPath  string `json:"tokenizer_path"`
	GeneratorModel string `json:"generator_model"`
}

// POST /api/admin/model/swap
//
// Loads the replacement model first and only then swaps it in; the engine
// lock serializes the swap against in-flight predictions.
func SwapModel(c *gin.Context) {
	var payload ModelSwapPayload
	if err := c.BindJSON(&payload); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.EncoderPath == "" && payload.GeneratorModel == "" {
		RespondError(c, "encoder_path or generator_model is required", http.StatusBadRequest)
		return
	}

	engine := EngineInstance(c)
	if engine == nil {
		RespondError(c, "engine not configured in context", http.StatusInternalServerError)
		return
	}

	swapped := gin.H{}

	if payload.EncoderPath != "" {
		tokenizerPath := payload.TokenizerPath
		if tokenizerPath == "" {
			tokenizerPath = conf.Models.TokenizerPath
		}
		encoder, err := ml.NewOrtEncoder(ml.OrtConfig{
			OrtDLL:        conf.Models.OrtDLL,
			ModelPath:     payload.EncoderPath,
			TokenizerPath: tokenizerPath,
			MaxSeqLen:     conf.Models.MaxSeqLen,
		})
		if err != nil {
			RespondError(c, "failed to load model: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if err := engine.SwapEncoder(encoder); err != nil {
			// the new encoder is already live; closing the old one failed
			RespondError(c, "swap done, previous encoder close failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		swapped["encoder"] = payload.EncoderPath
	}

	if payload.GeneratorModel != "" {
		engine.SwapGenerator(ml.NewOpenAIGenerator(
			conf.Models.GeneratorBaseURL,
			os.Getenv("OPENAI_API_KEY"),
			payload.GeneratorModel,
			conf.Models.MaxNewTokens,
		))
		swapped["generator"] = payload.GeneratorModel
	}

	RespondSuccess(c, gin.H{"message": "model swapped", "swapped": swapped})
}

// POST /api/admin/fine-tune
//
// The training loop does not exist yet; this endpoint only acknowledges the
// request so the admin UI has something to call.
func TriggerFineTune(c *gin.Context) {
	RespondSuccess(c, gin.H{
		"message": "Fine-tuning job triggered. The system will gather corrected data from DB and update weights in the background.",
		"status":  "In Development",
	})
}
