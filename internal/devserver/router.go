package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lead-console/internal/config"
	"lead-console/internal/shared/middleware"
)

// NewRouter wires the stub's routes the same way the real backend lays out
// its API surface.
func NewRouter(cfg config.DevServerConfig) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	handler := NewHandler(cfg)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		leads := v1.Group("/leads", middleware.BearerAuth(cfg.Token))
		{
			leads.POST("/bulk-upload/inspect", handler.Inspect)
			leads.POST("/bulk-upload", handler.Commit)
		}
	}

	return router
}
