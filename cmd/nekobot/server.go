package main

import (
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path/filepath"

	"nekobot/internal/requestid"
	"nekobot/internal/templates"

	"github.com/gin-gonic/gin"
)

const displayName = "NekoBot"

// versionResponse is the JSON body of GET /version
type versionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Server wraps a [gin.Engine], exposing the resolved framework version to
// other services and to humans
type Server struct {
	r       *gin.Engine
	logger  *slog.Logger
	version string
}

// NewServer creates and configures a new Server instance
func NewServer(router *gin.Engine, version string, logger *slog.Logger) *Server {
	var s = &Server{
		r:       router,
		logger:  logger,
		version: version,
	}

	s.r.Use(requestid.Middleware())
	s.r.GET("/version", s.handleVersion)
	s.r.GET("/", s.handleAbout)
	s.r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return s
}

// loadTemplates is a general-case helper to load either from local disk for
// hot-reloads, or from an embedded filesystem. Disk is only used in gin debug
// mode with an explicit dir.
func (s *Server) loadTemplates(dir string, fs fs.FS) {
	if dir != "" && gin.Mode() == gin.DebugMode {
		s.logger.Debug("Loading templates from disk", "dir", dir)
		s.r.LoadHTMLGlob(filepath.Join(dir, templates.Pattern))
		return
	}
	s.r.SetHTMLTemplate(template.Must(templates.Parse(fs)))
}

// Run starts the server listening on the configured address
func (s *Server) Run(addr string) error {
	return s.r.Run(addr)
}

func (s *Server) handleVersion(c *gin.Context) {
	s.logger.Debug("Serving version", "requestID", requestid.Get(c), "version", s.version)
	c.JSON(http.StatusOK, versionResponse{Name: displayName, Version: s.version})
}

func (s *Server) handleAbout(c *gin.Context) {
	c.HTML(http.StatusOK, "about.go.html", gin.H{
		"Name":    displayName,
		"Version": s.version,
	})
}
