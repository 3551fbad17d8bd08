package services

import "go.uber.org/zap"

type ServiceManager struct {
	PredictService PredictService
}

func NewServiceManager(estimator Estimator, logger *zap.Logger) *ServiceManager {
	return &ServiceManager{
		PredictService: NewPredictService(estimator, logger),
	}
}
