package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillmatrix/internal/services"
	"skillmatrix/internal/store"
	"skillmatrix/internal/workbook"
)

// handleImport accepts the multipart submission carrying the workbook file
// plus the org identifiers and runs one synchronous import.
func (s *Server) handleImport(c *gin.Context) {
	req := services.ImportRequest{
		MatrixID:      c.PostForm("matrixId"),
		EmployeeName:  c.PostForm("employeeName"),
		EmployeeEmail: c.PostForm("employeeEmail"),
		ManagerName:   c.PostForm("managerName"),
		ManagerEmail:  c.PostForm("managerEmail"),
		Function:      c.PostForm("function"),
		OrgUnit:       c.PostForm("orgUnit"),
		Archetype:     c.PostForm("archetype"),
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if s.MaxUploadBytes > 0 && fileHeader.Size > s.MaxUploadBytes {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "file could not be read"})
		return
	}
	defer file.Close()
	req.Workbook, err = io.ReadAll(file)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "file could not be read"})
		return
	}

	result, err := s.Imports.Run(c.Request.Context(), req)
	if err != nil {
		s.abortImport(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// abortImport maps import failures onto status codes: bad requests for
// missing fields, unprocessable input for unknown entities and malformed
// workbooks, internal errors for everything else.
func (s *Server) abortImport(c *gin.Context, err error) {
	var missingSheet *workbook.MissingSheetError
	switch {
	case errors.Is(err, services.ErrMissingField):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &missingSheet),
		errors.Is(err, workbook.ErrInvalidWorkbook),
		errors.Is(err, store.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		if s.Log != nil {
			s.Log.WithError(err).Error("import failed")
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "import failed"})
	}
}
