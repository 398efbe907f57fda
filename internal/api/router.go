package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter configures the HTTP routes for the application.
func NewRouter(server *Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(server.Log))
	server.RegisterRoutes(r)
	return r
}

// requestLogger emits one structured line per request.
func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if log == nil {
			c.Next()
			return
		}
		started := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(started).String(),
		}).Info("request handled")
	}
}
