package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/tasktime/task-predictor/predict-service/config"
	"github.com/tasktime/task-predictor/predict-service/handlers"
	"github.com/tasktime/task-predictor/predict-service/routes"
	"github.com/tasktime/task-predictor/predict-service/services"
	"github.com/tasktime/task-predictor/shared/logger"
	"github.com/tasktime/task-predictor/shared/server"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zl.Sync()

	gin.SetMode(cfg.GinMode)

	// Create service manager; the placeholder stands in until a model is trained
	serviceManager := services.NewServiceManager(services.NewPlaceholderEstimator(), zl)

	// Create handler manager with service manager
	handlerManager := handlers.NewHandlerManager(serviceManager, zl)

	// Setup routes
	r := routes.SetupRoutes(handlerManager, cfg, zl)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zl.Info("prediction service starting",
		zap.String("addr", cfg.Addr()),
		zap.String("model", serviceManager.PredictService.Model()))

	srv := server.New(server.Config{Addr: cfg.Addr(), ShutdownTimeout: cfg.ShutdownTimeout}, r, zl)
	if err := srv.Run(ctx); err != nil {
		zl.Fatal("prediction service stopped", zap.Error(err))
	}
}
