package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"skillmatrix/internal/metrics"
	"skillmatrix/internal/services"
)

// Server wires handlers to the import and export services.
type Server struct {
	Database *sql.DB
	Imports  *services.ImportService
	Exports  *services.ExportService
	Metrics  *metrics.Metrics
	Log      logrus.FieldLogger

	// MaxUploadBytes caps the uploaded workbook size.
	MaxUploadBytes int64
}

// RegisterRoutes attaches handlers to the gin engine.
func (s *Server) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", s.handleHealth)
	if s.Metrics != nil {
		router.GET("/metrics", gin.WrapH(s.Metrics.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		v1.POST("/import", s.handleImport)
		v1.GET("/matrices/:id/template", s.handleTemplate)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	payload := gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)}
	if s.Database != nil {
		if err := s.Database.PingContext(c.Request.Context()); err != nil {
			payload["database"] = gin.H{"status": "unavailable", "error": err.Error()}
		} else {
			payload["database"] = gin.H{"status": "ok"}
		}
	}
	c.JSON(http.StatusOK, payload)
}
