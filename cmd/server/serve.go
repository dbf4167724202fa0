package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bastianbuilt.com/internal/app"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the web server",
	RunE:    runServe,
}

func init() {
	serveCmd.Flags().StringP("addr", "a", "", "address to listen on (default :8080)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	site := app.New(cfg)
	logger := site.Logger.WithComponent("server")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !cfg.MailEnabled() {
		logger.Warn(ctx, nil, "RESEND_API_KEY is not set, contact emails will not be sent")
	}
	if _, err := cfg.DatabaseURL(); err != nil {
		logger.Warn(ctx, err, "Contact submissions will fail until a database is configured")
	}

	srv := site.Server()
	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "Server starting", "addr", srv.Addr, "site_url", cfg.SiteURL())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			_ = site.Close(context.Background())
			return err
		}
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	shutdownErr := srv.Shutdown(shutdownCtx)
	if shutdownErr != nil {
		logger.Error(shutdownCtx, shutdownErr, "Server forced to shutdown")
	}
	if err := site.Close(shutdownCtx); err != nil && shutdownErr == nil {
		shutdownErr = err
	}
	return shutdownErr
}
