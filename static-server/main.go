package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/tasktime/task-predictor/shared/logger"
	"github.com/tasktime/task-predictor/shared/server"
	"github.com/tasktime/task-predictor/static-server/fileserver"
	"go.uber.org/zap"
)

const addr = "localhost:8001"

func main() {
	zl, err := logger.New("info")
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zl.Sync()

	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zl.Info("static file server starting", zap.String("addr", addr), zap.String("root", "."))

	srv := server.New(server.Config{Addr: addr}, fileserver.New(".", zl), zl)
	if err := srv.Run(ctx); err != nil {
		zl.Fatal("static file server stopped", zap.Error(err))
	}
}
