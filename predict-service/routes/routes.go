package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tasktime/task-predictor/predict-service/config"
	"github.com/tasktime/task-predictor/predict-service/handlers"
	"github.com/tasktime/task-predictor/shared/middleware"
	sharedmodels "github.com/tasktime/task-predictor/shared/models"
	"github.com/tasktime/task-predictor/shared/utils"
	"go.uber.org/zap"
)

func SetupRoutes(hm *handlers.HandlerManager, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	utils.UseJSONFieldNames()

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		gin.Recovery(),
		cors.New(corsConfig(cfg)),
	)

	r.POST("/predict", hm.PredictHandler.Predict)
	r.GET("/health", hm.HealthHandler.Health)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, sharedmodels.ErrorResponse(http.StatusNotFound, "not found", nil))
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, sharedmodels.ErrorResponse(http.StatusMethodNotAllowed, "method not allowed", nil))
	})

	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader, handlers.ModelHeader},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowsAnyOrigin() {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return cc
}
