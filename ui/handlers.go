package ui

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"skillboard/adapters/excel"
	"skillboard/app"
	"skillboard/domain/core"
	"skillboard/internal/errors"
)

// handleUpload ingests an uploaded spreadsheet. Every sheet of an .xlsx
// workbook becomes its own template; .csv files yield one.
func (s *Server) handleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}
	defer file.Close()

	if header.Size > s.upload.MaxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	reader := excel.NewTemplateReader(header.Filename)
	if !reader.Supported() {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "unsupported file type"})
		return
	}

	sheets, err := reader.ReadWorkbook(file)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(sheets) > s.upload.SheetLimit {
		sheets = sheets[:s.upload.SheetLimit]
	}

	name := c.PostForm("name")
	if name == "" {
		name = strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	}

	var views []*app.TemplateView
	for _, sm := range sheets {
		if len(sm.Matrix) == 0 {
			continue
		}
		view, err := s.templates.Ingest(c.Request.Context(), name, header.Filename, sm.Name, sm.Matrix)
		if err != nil {
			respondError(c, err)
			return
		}
		views = append(views, view)
	}
	if len(views) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "workbook contains no data"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"templates": views})
}

func (s *Server) handleList(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	templates, err := s.templates.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

func (s *Server) handleGet(c *gin.Context) {
	view, err := s.templates.Get(c.Request.Context(), core.ID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleDelete(c *gin.Context) {
	if err := s.templates.Delete(c.Request.Context(), core.ID(c.Param("id"))); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type editCellRequest struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Value string `json:"value"`
}

func (s *Server) handleEditCell(c *gin.Context) {
	var req editCellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := s.templates.EditCell(c.Request.Context(), core.ID(c.Param("id")), req.Row, req.Col, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type addRowRequest struct {
	Category string `json:"category"`
}

func (s *Server) handleAddRow(c *gin.Context) {
	var req addRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	idx, view, err := s.templates.AddRow(c.Request.Context(), core.ID(c.Param("id")), req.Category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"row": idx, "view": view})
}

func (s *Server) handleDeleteRow(c *gin.Context) {
	row, err := strconv.Atoi(c.Param("row"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "row must be an integer"})
		return
	}

	view, err := s.templates.DeleteRow(c.Request.Context(), core.ID(c.Param("id")), row)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleSave(c *gin.Context) {
	if err := s.templates.Save(c.Request.Context(), core.ID(c.Param("id"))); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// respondError maps application error codes onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeInvalidIndex:
		status = http.StatusUnprocessableEntity
	case errors.CodeUnsupportedMedia:
		status = http.StatusUnsupportedMediaType
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": errors.GetCode(err)})
}
