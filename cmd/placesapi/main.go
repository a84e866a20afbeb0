// Command placesapi runs the Place CRUD API.
//
//	placesapi            start the HTTP server (same as "serve")
//	placesapi migrate    apply schema migrations and exit
//	placesapi teardown   revert every migration, dropping the places table
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/places-api/internal/config"
	"github.com/deppfellow/places-api/internal/database"
	"github.com/deppfellow/places-api/internal/handler"
	"github.com/deppfellow/places-api/internal/logger"
	"github.com/deppfellow/places-api/internal/repository"
	"github.com/deppfellow/places-api/internal/router"
	"github.com/deppfellow/places-api/internal/server"
	"github.com/deppfellow/places-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const migrationTimeout = time.Minute

// app is what every subcommand needs before it can do any work.
type app struct {
	cfg           *config.Config
	log           zerolog.Logger
	loggerService *logger.LoggerService
}

func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	return &app{
		cfg:           cfg,
		log:           logger.NewLoggerWithService(cfg.Observability, loggerService),
		loggerService: loggerService,
	}, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "placesapi",
		Short:         "Place CRUD API backed by PostgreSQL",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Apply migrations and start the HTTP server",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply schema migrations and exit",
			Args:  cobra.NoArgs,
			RunE:  runMigrate,
		},
		&cobra.Command{
			Use:   "teardown",
			Short: "Revert every migration, dropping the places table",
			Args:  cobra.NoArgs,
			RunE:  runTeardown,
		},
	)

	return root
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.loggerService.Shutdown()

	ctx, cancel := context.WithTimeout(cmd.Context(), migrationTimeout)
	defer cancel()

	return database.Migrate(ctx, &a.log, a.cfg)
}

func runTeardown(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.loggerService.Shutdown()

	ctx, cancel := context.WithTimeout(cmd.Context(), migrationTimeout)
	defer cancel()

	return database.Revert(ctx, &a.log, a.cfg)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}

	migrateCtx, cancel := context.WithTimeout(cmd.Context(), migrationTimeout)
	err = database.Migrate(migrateCtx, &a.log, a.cfg)
	cancel()
	if err != nil {
		a.loggerService.Shutdown()
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	srv, err := server.New(a.cfg, &a.log, a.loggerService)
	if err != nil {
		a.loggerService.Shutdown()
		return err
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(repos)
	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err = <-serveErr:
		a.log.Error().Err(err).Msg("server stopped unexpectedly")
	case <-ctx.Done():
		a.log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(a.cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		a.log.Error().Err(shutdownErr).Msg("server forced to shutdown")
		if err == nil {
			err = shutdownErr
		}
	}

	a.log.Info().Msg("server exited")
	return err
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "placesapi:", err)
		os.Exit(1)
	}
}
