package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/charlinto/MedRemApp/internal/infra/handler"
	"github.com/charlinto/MedRemApp/internal/infra/scheduler"
	"github.com/charlinto/MedRemApp/internal/observability/logging"
	"github.com/charlinto/MedRemApp/internal/observability/middleware"
)

const shutdownTimeout = 30 * time.Second

var flagNoRunner bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API and run the dispatch loop",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&flagNoRunner, "no-runner", false, "serve the API without the periodic dispatch loop")
}

func serve(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := c.close(closeCtx); err != nil {
			slog.Warn("failed to release resources", "error", err)
		}
	}()

	var runner *scheduler.Runner

	if !flagNoRunner {
		runner, err = scheduler.NewRunner(c.dispatch, c.cfg.Dispatch.TickPeriod)
		if err != nil {
			return err
		}

		if err := runner.Start(logging.WithModule(ctx, logging.ModuleDispatch)); err != nil {
			return err
		}

		slog.Info("next dispatch tick scheduled", "at", runner.NextRun())
	}

	router := setupRouter(c)

	srv := &http.Server{
		Addr:         c.cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  c.cfg.Server.ReadTimeout,
		WriteTimeout: c.cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)

	go func() {
		slog.Info("starting server", "address", c.cfg.Server.Address())
		serverErr <- srv.ListenAndServe()
	}()

	var errs []error

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			errs = append(errs, fmt.Errorf("server exited with error: %w", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown server: %w", err))
	}

	if runner != nil {
		if err := runner.Stop(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) == 0 {
		slog.Info("server exited properly")
	}

	return errors.Join(errs...)
}

func setupRouter(comp *components) *gin.Engine {
	router := gin.New()

	router.Use(middleware.PanicRecoveryGin())
	router.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:      []string{"/ping", "/metrics"},
		ModuleResolver: resolveModule,
		TracerName:     serviceName,
		HTTPMetrics:    comp.httpMetrics,
	}))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if comp.metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(comp.metricsHandler))
	}

	loc := comp.cfg.Schedule.Location

	v1 := router.Group("/api/v1")
	handler.RegisterRoutes(v1,
		handler.NewScheduleHandler(comp.schedules, loc),
		handler.NewOccurrenceHandler(comp.occurrences, loc),
		handler.NewOwnerHandler(comp.owners),
		handler.NewDispatchHandler(comp.dispatch, comp.cfg.Dispatch.AdminToken),
	)

	return router
}

func resolveModule(c *gin.Context) logging.Module {
	path := strings.TrimPrefix(c.FullPath(), "/api/v1")

	switch {
	case strings.HasPrefix(path, "/schedules"):
		return logging.ModuleSchedule
	case strings.HasPrefix(path, "/occurrences"):
		return logging.ModuleOccurrence
	case strings.HasPrefix(path, "/owner"):
		return logging.ModuleOwner
	case strings.HasPrefix(path, "/dispatch"):
		return logging.ModuleDispatch
	default:
		return ""
	}
}
