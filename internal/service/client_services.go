package service

import (
	"github.com/MKhiriev/go-list-sync/internal/adapter"
	"github.com/MKhiriev/go-list-sync/internal/config"
	"github.com/MKhiriev/go-list-sync/internal/logger"
	"github.com/MKhiriev/go-list-sync/internal/workers"
)

type ClientServices struct {
	ListController ListController
	SyncJob        workers.Worker
}

func NewClientServices(repository adapter.RepositoryAdapter, dispatcher Dispatcher, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	controller := NewListController(repository, dispatcher, logger)

	return &ClientServices{
		ListController: controller,
		SyncJob:        NewClientSyncJob(controller, cfg.SyncInterval, logger),
	}
}
