// fixserve serves test fixtures over HTTP with byte-range support so that
// remote partial-read access (HTTP Virtual File Driver reads against .h5ad
// files) can be exercised without downloading whole fixtures.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	flag "github.com/spf13/pflag"

	"github.com/honicky/anndata-duckdb-extension/config"
	"github.com/honicky/anndata-duckdb-extension/internal"
	"github.com/honicky/anndata-duckdb-extension/internal/httpx"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	flag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	flag.StringVarP(&cfg.Directory, "directory", "d", cfg.Directory, "directory to serve files from")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (DEBUG, INFO, WARN, ERROR)")
	flag.Parse()

	internal.InitLogger(internal.ParseLogLevel(cfg.LogLevel), "")

	root, err := cfg.ResolveRoot()
	if err != nil {
		internal.LogError("cannot serve %s: %v", cfg.Directory, err)
		os.Exit(1)
	}

	catalog := internal.NewCatalog(root)
	if err := catalog.Rescan(); err != nil {
		internal.LogWarn("initial catalog scan: %v", err)
	}

	var watcher *internal.FixtureWatcher
	if cfg.WatcherEnabled {
		watcher, err = internal.NewFixtureWatcher(catalog, root)
		if err != nil {
			internal.LogWarn("file watcher unavailable, inventory will rely on periodic rescans: %v", err)
		} else if err := watcher.Start(); err != nil {
			internal.LogWarn("file watcher failed to start: %v", err)
			watcher = nil
		}
	}
	if watcher != nil {
		defer watcher.Stop()
	}

	// Periodic full rescan catches anything the watcher missed.
	go func() {
		defer func() {
			if r := recover(); r != nil {
				internal.LogError("rescan goroutine panicked: %v", r)
			}
		}()
		for {
			time.Sleep(config.CatalogRescanInterval)
			if err := catalog.Rescan(); err != nil {
				internal.LogError("catalog rescan: %v", err)
			}
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	httpx.Routes(r, root, catalog, watcher)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		internal.LogInfo("serving %s at http://localhost:%d", root, cfg.Port)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			internal.LogError("server: %v", err)
			os.Exit(1)
		}
	case sig := <-stop:
		internal.LogInfo("received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			internal.LogWarn("shutdown: %v", err)
		}
		internal.LogInfo("server stopped")
	}
}
