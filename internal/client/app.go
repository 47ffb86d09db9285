package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-list-sync/internal/logger"
	"github.com/MKhiriev/go-list-sync/internal/service"
	"github.com/MKhiriev/go-list-sync/internal/workers"
)

var errMissingDependency = errors.New("client app dependency is not set")

type App struct {
	services   *service.ClientServices
	dispatcher workers.Worker
	ui         UI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, dispatcher workers.Worker, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || dispatcher == nil || ui == nil {
		return nil, errMissingDependency
	}

	return &App{services: services, dispatcher: dispatcher, ui: ui, logger: logger}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

// run keeps the dispatcher and the sync job alive for as long as the UI runs.
func (a *App) run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	background := workers.NewWorkers(a.dispatcher, a.services.SyncJob)
	done := make(chan struct{})
	go func() {
		defer close(done)
		background.Run(ctx)
	}()

	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "*App.run").Msg("ui stopped with error")
	}

	cancel()
	<-done
	a.logger.Info().Msg("client stopped")

	return err
}
