package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/invoice-studio/internal/export"
	"github.com/rezonia/invoice-studio/internal/fonts"
	"github.com/rezonia/invoice-studio/internal/model"
	"github.com/rezonia/invoice-studio/internal/render"
	"github.com/rezonia/invoice-studio/internal/store"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server exposes the composer over HTTP: the mutation API for editing
// surfaces, the render API for previews and the export trigger.
type Server struct {
	config   *Config
	router   *gin.Engine
	store    *store.Store
	registry *render.Registry
	exporter *export.Exporter
}

// NewServer creates a new API server with a fresh editing session.
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	registry := render.NewRegistry()

	s := &Server{
		config:   config,
		router:   router,
		store:    store.New(),
		registry: registry,
		exporter: export.NewExporter(registry),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/invoice", s.handleGetInvoice)
		v1.PUT("/invoice/sender", s.handleUpdateSender)
		v1.PUT("/invoice/receiver", s.handleUpdateReceiver)
		v1.PUT("/invoice/details", s.handleUpdateDetails)
		v1.POST("/invoice/items", s.handleAddItem)
		v1.PUT("/invoice/items/:id", s.handleUpdateItem)
		v1.DELETE("/invoice/items/:id", s.handleRemoveItem)
		v1.PUT("/invoice/footer", s.handleUpdateFooter)
		v1.POST("/invoice/reset", s.handleReset)

		v1.PUT("/design", s.handleUpdateDesign)
		v1.GET("/fonts", s.handleFonts)

		v1.GET("/render", s.handleRender)
		v1.POST("/export", s.handleExport)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleGetInvoice(c *gin.Context) {
	invoice, design := s.store.Snapshot()
	c.JSON(http.StatusOK, InvoiceResponse{
		Invoice: invoice,
		Design:  design,
		Totals:  s.store.Totals(),
	})
}

// mutate runs one field mutation and writes the outcome. Rejected
// mutations never change state, so the error string is the whole
// failure surface.
func (s *Server) mutate(c *gin.Context, apply func(field, value string) error) {
	var req FieldUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Field == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing field name"})
		return
	}

	if err := apply(req.Field, req.Value); err != nil {
		c.JSON(mutationStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": true})
}

func mutationStatus(err error) int {
	if errors.Is(err, model.ErrLineItemNotFound) {
		return http.StatusNotFound
	}
	return http.StatusUnprocessableEntity
}

func (s *Server) handleUpdateSender(c *gin.Context) {
	s.mutate(c, s.store.UpdateSenderField)
}

func (s *Server) handleUpdateReceiver(c *gin.Context) {
	s.mutate(c, s.store.UpdateReceiverField)
}

func (s *Server) handleUpdateDetails(c *gin.Context) {
	s.mutate(c, s.store.UpdateDetailsField)
}

func (s *Server) handleAddItem(c *gin.Context) {
	id := s.store.AddLineItem()
	c.JSON(http.StatusCreated, ItemCreatedResponse{ID: id})
}

func (s *Server) handleUpdateItem(c *gin.Context) {
	id := c.Param("id")
	s.mutate(c, func(field, value string) error {
		return s.store.UpdateLineItem(id, field, value)
	})
}

func (s *Server) handleRemoveItem(c *gin.Context) {
	if err := s.store.RemoveLineItem(c.Param("id")); err != nil {
		c.JSON(mutationStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": true})
}

func (s *Server) handleUpdateFooter(c *gin.Context) {
	var req FooterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	s.store.UpdateFooter(req.Text)
	c.JSON(http.StatusOK, gin.H{"applied": true})
}

func (s *Server) handleReset(c *gin.Context) {
	s.store.Reset()
	c.JSON(http.StatusOK, gin.H{"applied": true})
}

func (s *Server) handleUpdateDesign(c *gin.Context) {
	var req DesignUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing design key"})
		return
	}

	if err := s.store.SetDesignProperty(req.Key, req.Value); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": true})
}

func (s *Server) handleFonts(c *gin.Context) {
	c.JSON(http.StatusOK, FontsResponse{
		Serif: fonts.ByCategory(fonts.CategorySerif),
		Sans:  fonts.ByCategory(fonts.CategorySans),
		Mono:  fonts.ByCategory(fonts.CategoryMono),
	})
}

func (s *Server) handleRender(c *gin.Context) {
	invoice, design := s.store.Snapshot()

	pdf, err := s.registry.Render(invoice, design, render.DefaultTitle)
	if err != nil {
		slog.Error("render failed", "template", design.Template, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (s *Server) handleExport(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	invoice, design := s.store.Snapshot()
	capture, err := s.exporter.Export(invoice, design, req.Title)
	if err != nil {
		slog.Error("export failed", "template", design.Template, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+capture.Title+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", capture.PDF)
}
