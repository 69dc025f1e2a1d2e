package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	domrepo "FormPull/internal/domain/repository"
	"FormPull/internal/usecase"
	"FormPull/pkg/config"
	xhttp "FormPull/pkg/http"
	applogger "FormPull/pkg/logger"
)

// App encapsulates the application lifecycle: one pipeline run for the
// configured date, then serve the result over HTTP until signalled.
type App struct {
	cfg       *config.Config
	log       *applogger.Logger
	pipeline  *usecase.Pipeline
	store     *usecase.TipStore
	publisher domrepo.Publisher
	handler   xhttp.Handler

	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies. publisher may be
// nil when Kafka delivery is disabled.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	pipeline *usecase.Pipeline,
	store *usecase.TipStore,
	publisher domrepo.Publisher,
	handler xhttp.Handler,
) *App {
	return &App{
		cfg:       cfg,
		log:       log,
		pipeline:  pipeline,
		store:     store,
		publisher: publisher,
		handler:   handler,
	}
}

// Run executes the pipeline for date and, unless once is set, serves the
// tip sheet over HTTP until interrupted.
func (a *App) Run(date string, once bool) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sheet, err := a.pipeline.Run(ctx, date)
	if err != nil {
		return err
	}
	a.store.Set(sheet)

	if a.cfg.Output.Dir != "" {
		path, err := usecase.WriteTipSheetCSV(sheet, a.cfg.Output.Dir)
		if err != nil {
			a.log.Error("tip sheet csv write failed", applogger.Error(err))
		} else {
			a.log.Info("tip sheet written", applogger.String("path", path))
		}
	}

	if once {
		return a.shutdown(ctx)
	}

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithLogger(a.log),
	)
	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("serving tip sheet", applogger.Int("port", a.cfg.Server.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	if a.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := a.httpServer.Stop(shutdownCtx); err != nil {
			a.log.Error("http shutdown error", applogger.Error(err))
		}
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.Warn("publisher close error", applogger.Error(err))
		}
	}

	a.log.Info("shutdown complete")
	return nil
}
