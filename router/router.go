package router

import (
	"log"
	"net/http"

	"zeroshot/config"
	"zeroshot/controllers"
	"zeroshot/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares: public client routes plus
// the admin group (label curation, model operations).
func Initialize(r *gin.Engine, cfg config.Configuration) {
	_ = cfg

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")

	// Client endpoints
	api.GET("/labels", Logger(), controllers.GetLabels)
	api.POST("/predict", Logger(), controllers.Predict)
	api.POST("/predict/bulk", Logger(), controllers.PredictBulk)
	api.PATCH("/feedback", Logger(), controllers.SubmitFeedback)
	api.GET("/history", Logger(), controllers.GetHistory)
	api.POST("/explain", Logger(), controllers.Explain)

	// Admin endpoints
	admin := api.Group("/admin")
	admin.POST("/labels", Logger(), controllers.CreateLabel)
	admin.PUT("/labels/:id", Logger(), controllers.UpdateLabel)
	admin.DELETE("/labels/:id", Logger(), controllers.DeleteLabel)
	admin.POST("/labels/bulk", Logger(), controllers.BulkUploadLabels)
	admin.POST("/model/swap", Logger(), controllers.SwapModel)
	admin.POST("/fine-tune", Logger(), controllers.TriggerFineTune)

	log.Printf("Routes initialized")
}
