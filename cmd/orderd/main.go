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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pizzaorder/internal/api"
	"pizzaorder/internal/app"
	"pizzaorder/internal/config"
	"pizzaorder/internal/domain"
	"pizzaorder/internal/logging"
)

var (
	addr       string
	configPath string
	ratePerSec float64
	burst      int
	verbose    bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "orderd",
		Short:        "Development order endpoint for the pizza form",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			log, err := logging.New(logging.Options{Config: cfg.Log, Verbose: verbose})
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			w, err := app.NewWire(app.Config{Settings: cfg, Logger: log})
			if err != nil {
				return err
			}
			return serve(ctx, w, cfg.SizeWordMap())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":9009", "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file (catalog and messages)")
	cmd.Flags().Float64Var(&ratePerSec, "rate", 0, "accepted orders per second (0 = unlimited)")
	cmd.Flags().IntVar(&burst, "burst", 5, "rate limiter burst")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func serve(ctx context.Context, w *app.Wire, sizeWords map[domain.Size]string) error {
	log := w.Log
	handler := api.NewRouter(api.Options{
		Validator:     w.Validator,
		Catalog:       w.Catalog,
		SizeWords:     sizeWords,
		Logger:        log,
		RatePerSecond: ratePerSec,
		Burst:         burst,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		defer close(idleConnsClosed)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("HTTP server shutdown", zap.Error(err))
		}
	}()

	log.Info("starting orderd", zap.String("addr", addr), zap.Float64("rate", ratePerSec))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	<-idleConnsClosed
	log.Info("server stopped")
	return nil
}
