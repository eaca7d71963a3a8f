package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gitsish/aaishop-ibm-project/internal/app"
)

// Pinger reports storage health for the readiness probe.
type Pinger interface {
	Ping() error
}

// Deps carries everything the router needs.
type Deps struct {
	App *app.App
	// Pinger is optional; a purely in-memory store has nothing to probe.
	Pinger Pinger
	// CORSOrigins lists browser origins allowed to call the facade.
	CORSOrigins []string
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server over the storefront app.
func New(addr string, logger *log.Logger, deps Deps) (*Server, error) {
	if deps.App == nil {
		return nil, errors.New("httpserver: app is required")
	}
	router := buildRouter(logger, deps)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(pinger Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pinger == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
			return
		}
		if err := pinger.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "store not writable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
