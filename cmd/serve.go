package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"tableview/backend/internal/config"
	"tableview/backend/internal/handler"
	"tableview/backend/internal/logger"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	addServeFlags(cmd.Flags())
	return cmd
}

func addServeFlags(flags *pflag.FlagSet) {
	flags.String("env-file", ".env", "dotenv file to load before reading the environment, ignored when missing")
	flags.Int("port", 0, "port to listen on, overrides PORT")
	flags.String("log-level", "", "debug, info, warn or error, overrides LOG_LEVEL")
}

// loadServeConfig reads the environment and applies flag overrides. The
// result is validated once, after the overrides.
func loadServeConfig(flags *pflag.FlagSet) (*config.Config, error) {
	envFile, err := flags.GetString("env-file")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Parse(envFile)
	if err != nil {
		return nil, err
	}

	if flags.Changed("port") {
		if cfg.Port, err = flags.GetInt("port"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("log-level") {
		if cfg.LogLevel, err = flags.GetString("log-level"); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadServeConfig(cmd.Flags())
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()
	defer zap.ReplaceGlobals(log)()

	log.Info("starting tableview", zap.String("version", Version))

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handler.NewRouter(cfg, log),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	log.Info("HTTP server shut down complete")
	return nil
}
