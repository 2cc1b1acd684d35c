package api

import (
	"net/http"

	classificationDelivery "classificador-backend/internal/classification/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, classificationHandler *classificationDelivery.ClassificationHandler, settingsHandler *SettingsHandler, metricsHandler http.Handler) {
	r.GET("/metrics", gin.WrapH(metricsHandler))

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Classification routes
		classificador := api.Group("/classificador")
		{
			classificador.POST("", classificationHandler.Classify)
			classificador.GET("", classificationHandler.ListClassifications)
			classificador.GET("/:id", classificationHandler.GetClassification)
		}

		// Settings routes - runtime Ollama configuration
		settings := api.Group("/settings")
		{
			settings.GET("/ollama", settingsHandler.GetOllamaSettings)
			settings.PUT("/ollama", settingsHandler.UpdateOllamaSettings)
			settings.POST("/ollama/test", settingsHandler.TestOllamaConnection)
		}
	}
}
