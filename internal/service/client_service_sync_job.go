package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-list-sync/internal/logger"
	"github.com/MKhiriev/go-list-sync/internal/workers"
)

type clientSyncJob struct {
	controller ListController
	interval   time.Duration

	logger *logger.Logger
}

// NewClientSyncJob creates a worker that calls controller.Sync every interval.
// A zero or negative interval disables the job: Run returns immediately.
func NewClientSyncJob(controller ListController, interval time.Duration, logger *logger.Logger) workers.Worker {
	return &clientSyncJob{controller: controller, interval: interval, logger: logger}
}

// Run implements [workers.Worker]. It blocks until ctx is cancelled. A tick that
// arrives while a Load or Sync is in flight is skipped.
func (j *clientSyncJob) Run(ctx context.Context) {
	if j.interval <= 0 {
		return
	}

	t := time.NewTicker(j.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			j.tick(ctx)
		}
	}
}

func (j *clientSyncJob) tick(ctx context.Context) {
	err := j.controller.Sync(ctx)
	switch {
	case err == nil:
		j.logger.Debug().Str("func", "*clientSyncJob.tick").Msg("periodic sync finished")
	case errors.Is(err, ErrOperationInProgress):
		j.logger.Debug().Str("func", "*clientSyncJob.tick").Msg("periodic sync skipped, operation in progress")
	case ctx.Err() != nil:
	default:
		j.logger.Err(err).Str("func", "*clientSyncJob.tick").Msg("periodic sync failed")
	}
}
