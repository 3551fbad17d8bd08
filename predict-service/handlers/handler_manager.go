package handlers

import (
	"github.com/tasktime/task-predictor/predict-service/services"
	"go.uber.org/zap"
)

type HandlerManager struct {
	PredictHandler *PredictHandler
	HealthHandler  *HealthHandler
}

func NewHandlerManager(sm *services.ServiceManager, logger *zap.Logger) *HandlerManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HandlerManager{
		PredictHandler: NewPredictHandler(sm.PredictService, logger),
		HealthHandler:  NewHealthHandler(),
	}
}
