package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tasktime/task-predictor/predict-service/models"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}
