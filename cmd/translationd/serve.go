package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	_ "translationhub/docs"
	delivery "translationhub/internal/delivery/http"
	"translationhub/internal/delivery/http/controllers"
	"translationhub/internal/repository/postgres"
)

func newServeCmd() *cobra.Command {
	var runMigrations bool
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			ctx := cmd.Context()

			a, err := newApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			if runMigrations {
				if err := postgres.MigrateUp(a.db); err != nil {
					return err
				}
				logger.Info("migrations applied")
			}

			exportCache, err := a.exportCache(ctx)
			if err != nil {
				return err
			}
			authService, err := a.authService()
			if err != nil {
				return err
			}

			mux := delivery.NewRouter(delivery.Controllers{
				Auth:         controllers.NewAuthController(logger, authService),
				Translations: controllers.NewTranslationController(logger, a.translationService()),
				Export:       controllers.NewExportController(logger, a.exportService(exportCache)),
				Locales:      controllers.NewLocaleController(logger, a.localeService()),
				Health:       controllers.NewHealthController(logger, a.db),
			}, authService, logger)

			srv := &http.Server{
				Addr:              ":" + cfg.Port,
				Handler:           delivery.NewHandler(mux, logger, cfg.CORSOrigins),
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment, "version", version)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err := <-errCh:
				return err
			case sig := <-quit:
				logger.Info("shutting down server", "signal", sig.String())
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("server forced to shutdown", "err", err)
				return err
			}
			authService.Wait()
			logger.Info("server exited gracefully")
			return nil
		},
	}

	cmd.Flags().BoolVar(&runMigrations, "migrate", false, "apply pending migrations before serving")
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}
