package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ReyMelin/FabledGalaxyWebsite/internal/config"
	"github.com/ReyMelin/FabledGalaxyWebsite/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// Services are the handlers' dependencies. Identity is nil when sign-in is
// not configured.
type Services struct {
	Gallery       Gallery
	Submissions   Submitter
	Contributions Contributor
	Moderation    Moderation
	Access        ModeratorChecker
	Identity      ports.IdentityProvider
}

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	svc        Services
	sessions   *Sessions
	maxImport  int
}

func NewServer(cfg *config.Config, svc Services) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())
	router.Use(metricsMiddleware())

	s := &Server{
		router:    router,
		svc:       svc,
		sessions:  NewSessions(cfg.SessionSecret, cfg.SessionTTL, cfg.CookieSecure),
		maxImport: cfg.MaxImportWorlds,
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(s.loadSession())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.GET("/login", s.handleLogin)
		auth.GET("/callback", s.handleCallback)
		auth.POST("/logout", s.handleLogout)
	}

	api := r.Group("/api")
	{
		api.GET("/me", s.handleMe)
		api.GET("/types", s.handleTypes)
		api.GET("/stats", s.handleStats)
		api.GET("/map", s.handleMap)
		api.GET("/worlds", s.handleListWorlds)
		api.GET("/worlds/:id", s.handleGetWorld)
		api.POST("/worlds", s.handleSubmit)
		api.POST("/worlds/:id/contributions", s.handleContribute)
		api.GET("/forms/steps", s.handleSteps)
		api.POST("/forms/steps/:step/validate", s.handleValidateStep)
	}

	admin := api.Group("/admin")
	admin.Use(requireUser(), requireModerator(s.svc.Access))
	{
		admin.GET("/pending", s.handlePending)
		admin.POST("/worlds/:id/approve", s.handleApprove)
		admin.POST("/worlds/:id/reject", s.handleReject)
		admin.DELETE("/worlds/:id", s.handleDelete)
		admin.GET("/export", s.handleExport)
		admin.POST("/import", s.handleImport)
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves in the background until Shutdown is called.
func (s *Server) Start() {
	go func() {
		slog.Info("HTTP server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
