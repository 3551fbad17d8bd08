package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tasktime/task-predictor/predict-service/models"
	"github.com/tasktime/task-predictor/predict-service/services"
	sharedmodels "github.com/tasktime/task-predictor/shared/models"
	"github.com/tasktime/task-predictor/shared/utils"
	"go.uber.org/zap"
)

// ModelHeader names the estimator that produced predicted_hours.
const ModelHeader = "X-Prediction-Model"

type PredictHandler struct {
	predictService services.PredictService
	logger         *zap.Logger
}

func NewPredictHandler(predictService services.PredictService, logger *zap.Logger) *PredictHandler {
	return &PredictHandler{
		predictService: predictService,
		logger:         logger,
	}
}

func (h *PredictHandler) Predict(c *gin.Context) {
	var req models.PredictRequest
	if err := utils.BindJSONStrict(c, &req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, sharedmodels.ValidationErrorResponse(utils.BindingErrors(err)))
		return
	}

	task := services.Task{
		Title:       *req.Title,
		Description: req.Description,
	}

	hours, err := h.predictService.PredictHours(c.Request.Context(), task)
	if err != nil {
		h.logger.Error("prediction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError,
			sharedmodels.ErrorResponse(http.StatusInternalServerError, "prediction failed", nil))
		return
	}

	c.Header(ModelHeader, h.predictService.Model())
	c.JSON(http.StatusOK, models.PredictResponse{PredictedHours: hours})
}
