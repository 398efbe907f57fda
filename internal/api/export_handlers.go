package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillmatrix/internal/store"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleTemplate renders the empty assessment workbook for a matrix, laid out
// exactly the way the importer reads it back.
func (s *Server) handleTemplate(c *gin.Context) {
	matrixID := c.Param("id")
	data, err := s.Exports.Template(c.Request.Context(), matrixID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if s.Log != nil {
			s.Log.WithError(err).Error("template export failed")
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "template export failed"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "assessment-"+matrixID+".xlsx"))
	c.Data(http.StatusOK, xlsxContentType, data)
}
