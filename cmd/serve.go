package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/juson/ghibliai/internal/content"
	"github.com/juson/ghibliai/internal/handlers"
	"github.com/juson/ghibliai/internal/storage"
	"github.com/juson/ghibliai/web"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		port   int
		dbPath string
		delay  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the mock server with the site, generate route and resource API",
		Long: `Starts the GhibliAI mock server.

It serves the landing page, the studio form at /create, POST /generate-image
and a JSON resource API over the database file (GET /db, /{resource}, /{resource}/{id}).`,
		Example: `  # Start server on default port 3000
  ghibliai serve

  # Custom port, database and delay
  ghibliai serve --port 8080 --db data.json --delay 500ms`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("db") {
				cfg.DBPath = dbPath
			}
			if cmd.Flags().Changed("delay") {
				cfg.GenerateDelay = delay
			}

			catalog, err := content.Load()
			if err != nil {
				return err
			}
			db, err := storage.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			slog.Info("Database loaded", "path", db.Path(), "resources", len(db.Snapshot()))

			handler := handlers.New(catalog, newGenerator(cfg.GenerateDelay, cfg.Seed), handlers.WithDB(db))
			router := handlers.NewServerRouter(handler, web.Static())

			return runServer(cmd.Context(), ":"+strconv.Itoa(cfg.Port), router, cfg.ShutdownTimeout)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "Port to listen on (env PORT)")
	cmd.Flags().StringVar(&dbPath, "db", "db.json", "Path of the JSON database file (env DB_PATH)")
	cmd.Flags().DurationVar(&delay, "delay", 1500*time.Millisecond, "Artificial generation delay (env GENERATE_DELAY)")

	return cmd
}

// runServer serves handler on addr until ctx is cancelled, then shuts down
// gracefully within timeout.
func runServer(ctx context.Context, addr string, handler http.Handler, timeout time.Duration) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("GhibliAI available", "addr", addr, "url", "http://localhost"+addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for context cancellation (Ctrl+C) or server error
	select {
	case <-ctx.Done():
		slog.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "err", err)
			return err
		}
		slog.Info("Server stopped")
		return nil
	case err := <-serverErr:
		return err
	}
}
