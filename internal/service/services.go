package service

import (
	"github.com/MKhiriev/go-list-sync/internal/config"
	"github.com/MKhiriev/go-list-sync/internal/logger"
	"github.com/MKhiriev/go-list-sync/internal/store"
)

type Services struct {
	EntityService  EntityService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.Version, logger)
	if err != nil {
		return nil, err
	}

	entityService := NewEntityValidationService().Wrap(
		NewEntityService(storages.EntityRepository, logger),
	)

	return &Services{
		EntityService:  entityService,
		AppInfoService: appInfoService,
	}, nil
}
