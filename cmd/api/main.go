package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gitsish/aaishop-ibm-project/internal/app"
	"github.com/gitsish/aaishop-ibm-project/internal/catalog"
	"github.com/gitsish/aaishop-ibm-project/internal/config"
	"github.com/gitsish/aaishop-ibm-project/internal/httpserver"
	"github.com/gitsish/aaishop-ibm-project/internal/storage"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	store := storage.OpenFile(cfg.StorePath, logger)
	if err := store.Ping(); err != nil {
		// Degraded but usable: the storefront keeps working in memory.
		logger.Printf("store %s not writable, persistence disabled: %v", cfg.StorePath, err)
	}

	storefront, err := app.New(store, catalog.New(), logger)
	if err != nil {
		logger.Fatalf("init app: %v", err)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		App:         storefront,
		Pinger:      store,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
