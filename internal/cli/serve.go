package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	httpapi "github.com/aretw0/todi/pkg/adapters/http"
)

const shutdownTimeout = 5 * time.Second

// Serve runs the HTTP API until ctx is cancelled, then shuts down gracefully.
// An empty port uses server.port from the config.
func Serve(ctx context.Context, opts Options, port string) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	logger := createLogger(cfg, opts.Debug)
	if port == "" {
		port = cfg.Server.Port
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           httpapi.NewHandler(httpapi.WithLogger(logger)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		printSystemMessage(opts.out(), "Start shutdown...")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			return srv.Close()
		}
		printSystemMessage(opts.out(), "Server stopped gracefully.")
		return nil
	}
}
