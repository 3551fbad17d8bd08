package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// PlaceholderModel names the estimator used until a trained model exists.
const PlaceholderModel = "placeholder"

var ErrNonFiniteEstimate = errors.New("estimator returned a non-finite value")

// Task is a validated prediction input.
type Task struct {
	Title       string
	Description *string
}

// Estimator turns a task into an estimate in hours.
type Estimator interface {
	Estimate(ctx context.Context, task Task) (float64, error)
	Model() string
}

// placeholderEstimator always answers 0: no model has been trained yet.
type placeholderEstimator struct{}

func NewPlaceholderEstimator() Estimator {
	return placeholderEstimator{}
}

func (placeholderEstimator) Estimate(context.Context, Task) (float64, error) {
	return 0, nil
}

func (placeholderEstimator) Model() string {
	return PlaceholderModel
}

type PredictService interface {
	PredictHours(ctx context.Context, task Task) (float64, error)
	Model() string
}

type predictService struct {
	estimator Estimator
	logger    *zap.Logger
}

func NewPredictService(estimator Estimator, logger *zap.Logger) PredictService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &predictService{
		estimator: estimator,
		logger:    logger,
	}
}

func (s *predictService) PredictHours(ctx context.Context, task Task) (float64, error) {
	hours, err := s.estimator.Estimate(ctx, task)
	if err != nil {
		return 0, fmt.Errorf("estimate %q: %w", task.Title, err)
	}
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0, fmt.Errorf("estimate %q: %w", task.Title, ErrNonFiniteEstimate)
	}

	s.logger.Debug("task estimated",
		zap.String("model", s.estimator.Model()),
		zap.Int("title_len", len(task.Title)),
		zap.Bool("has_description", task.Description != nil),
		zap.Float64("predicted_hours", hours))

	return hours, nil
}

func (s *predictService) Model() string {
	return s.estimator.Model()
}
