package ui

import (
	"github.com/gin-gonic/gin"

	"skillboard/app"
	"skillboard/internal/config"
)

// Server exposes the template API over HTTP.
type Server struct {
	router    *gin.Engine
	templates *app.TemplateService
	upload    config.UploadConfig
}

// NewServer creates the API server around a template service.
func NewServer(templates *app.TemplateService, cfg *config.Config) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:    gin.Default(),
		templates: templates,
		upload:    cfg.Upload,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")

	api.POST("/templates", s.handleUpload)
	api.GET("/templates", s.handleList)
	api.GET("/templates/:id", s.handleGet)
	api.DELETE("/templates/:id", s.handleDelete)

	// Mutations against a template's canonical matrix
	api.PUT("/templates/:id/cells", s.handleEditCell)
	api.POST("/templates/:id/rows", s.handleAddRow)
	api.DELETE("/templates/:id/rows/:row", s.handleDeleteRow)
	api.POST("/templates/:id/save", s.handleSave)
}

// Run starts the HTTP server on the given port.
func (s *Server) Run(port string) error {
	return s.router.Run(":" + port)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
