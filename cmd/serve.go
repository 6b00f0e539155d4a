package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/odaklab/adaptiq/internal/adaptive"
	"github.com/odaklab/adaptiq/internal/api"
	"github.com/odaklab/adaptiq/internal/config"
	"github.com/odaklab/adaptiq/internal/llm"
	"github.com/odaklab/adaptiq/internal/logger"
	"github.com/odaklab/adaptiq/internal/questionbank"
	"github.com/odaklab/adaptiq/internal/store"
	"github.com/odaklab/adaptiq/internal/tracker"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfg := config.Load()

	log, err := logger.New(cfg.Mode)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	if err := cfg.LLM.Validate(); err != nil {
		return err
	}

	recorder, closeStore, err := openRecorder(cmd, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, recorder, log)
	if err != nil {
		return err
	}

	tr := tracker.New(log)
	gen := adaptive.NewGenerator(tr, provider, questionbank.New(nil), adaptive.WithLogger(log))
	srv := api.NewServer(tr, gen, provider, recorder, log)

	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           srv.Router(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      90 * time.Second, // generation calls can be slow on small hardware
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		log.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			log.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	log.Info("starting server",
		zap.String("address", cfg.ServerAddress),
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", provider.ModelID()))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// openRecorder opens the event store, resolving the path from the
// --db flag, then ADAPTIQ_DB, then the default data directory.
// "off" disables persistence entirely.
func openRecorder(cmd *cobra.Command, cfg config.Config, log *zap.Logger) (store.EventRecorder, func(), error) {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		path = cfg.DBPath
	}
	if path == "off" {
		return store.NopRecorder{}, func() {}, nil
	}
	if path == "" {
		var err error
		path, err = store.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open event store: %w", err)
	}
	log.Info("event store opened", zap.String("path", path))
	return st, func() { st.Close() }, nil
}
