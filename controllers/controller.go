package controllers

import (
	"errors"
	"log"
	"net/http"

	"zeroshot/config"
	"zeroshot/ml"
	"zeroshot/pipeline"

	"github.com/gin-gonic/gin"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(200, payload)
}

const engineKey = "ml_engine"

// SetEngineToContext exposes the process-wide model engine to handlers.
// Use it as a middleware in the gin setup, next to SetDBtoContext.
func SetEngineToContext(engine *ml.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(engineKey, engine)
		c.Next()
	}
}

func EngineInstance(c *gin.Context) *ml.Engine {
	v, ok := c.Get(engineKey)
	if !ok {
		return nil
	}
	engine, _ := v.(*ml.Engine)
	return engine
}

// respondPipelineError maps the error taxonomy to HTTP statuses: client
// errors are 400/404, everything else (encoder/generator unavailable,
// wrapped inference faults) is a logged 500.
func respondPipelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pipeline.ErrNoCandidateLabels),
		errors.Is(err, pipeline.ErrBatchTooLarge),
		errors.Is(err, pipeline.ErrNoGlobalLabels),
		errors.Is(err, pipeline.ErrDuplicateLabel):
		RespondError(c, err.Error(), http.StatusBadRequest)
	case errors.Is(err, pipeline.ErrHistoryNotFound),
		errors.Is(err, pipeline.ErrLabelNotFound):
		RespondError(c, err.Error(), http.StatusNotFound)
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		RespondError(c, err.Error(), http.StatusInternalServerError)
	}
}
