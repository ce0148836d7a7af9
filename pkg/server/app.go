package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	domrepo "stratosim/internal/domain/repository"
	"stratosim/pkg/config"
	xhttp "stratosim/pkg/http"
	applogger "stratosim/pkg/logger"
	"stratosim/pkg/queue"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	handler    xhttp.Handler
	runs       domrepo.RunStore
	events     domrepo.EventPublisher
	jobQueue   *queue.RedisQueue
	httpServer *xhttp.Server
}

// New creates an App instance with all dependencies. Nil runs, events or
// jobQueue mean the corresponding subsystem is disabled.
func New(
	cfg *config.Config,
	lgr *applogger.Logger,
	handler xhttp.Handler,
	runs domrepo.RunStore,
	events domrepo.EventPublisher,
	jobQueue *queue.RedisQueue,
) *App {
	return &App{
		cfg:      cfg,
		logger:   lgr,
		handler:  handler,
		runs:     runs,
		events:   events,
		jobQueue: jobQueue,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.jobQueue != nil {
		if err := a.jobQueue.Start(); err != nil {
			a.logger.Error("job queue start failed", applogger.Error(err))
			return err
		}
	}

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("env", a.cfg.Environment),
		applogger.Bool("history", a.runs != nil),
		applogger.Bool("events", a.events != nil),
		applogger.Bool("jobs", a.jobQueue != nil))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	if a.jobQueue != nil {
		if err := a.jobQueue.Stop(shutdownCtx); err != nil {
			a.logger.Warn("job queue stop error", applogger.Error(err))
		}
	}

	if a.events != nil {
		if err := a.events.Close(); err != nil {
			a.logger.Warn("event publisher close error", applogger.Error(err))
		}
	}

	if a.runs != nil {
		if err := a.runs.Close(); err != nil {
			a.logger.Warn("run store close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
