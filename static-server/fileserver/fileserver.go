package fileserver

import (
	"net/http"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/tasktime/task-predictor/shared/middleware"
	"go.uber.org/zap"
)

// New serves root with net/http's FileServer, so directory listings,
// MIME sniffing, range requests and 404s are the standard library's.
// Only GET and HEAD are routed; anything else gets 405.
func New(root string, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		gin.Recovery(),
		secure.New(secure.Config{
			FrameDeny:          true,
			ContentTypeNosniff: true,
			BrowserXssFilter:   true,
			ReferrerPolicy:     "strict-origin-when-cross-origin",
		}),
	)

	files := gin.WrapH(http.FileServer(http.Dir(root)))
	r.GET("/*filepath", files)
	r.HEAD("/*filepath", files)

	return r
}
