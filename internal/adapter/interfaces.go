// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer client of the entity
// repository served by the list-sync server.
//
// The primary abstraction is [RepositoryAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRepositoryAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from transport failures and
// HTTP status codes by mapHTTPError so that callers can use [errors.Is]
// without knowing about HTTP (e.g. [ErrNotFound] for 404, [ErrTransport]
// when the server cannot be reached).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-list-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RepositoryAdapter is the client-side proxy of the remote entity repository.
// Every call is a single request with no retries; failures are reported as
// one of the sentinel errors of this package.
type RepositoryAdapter interface {
	// GetAll returns every entity stored on the server. An empty repository
	// yields an empty, non-nil slice. A response without a payload is
	// reported as [ErrNullResult].
	GetAll(ctx context.Context) ([]models.Entity, error)

	// GetByID returns the entity with the given id, or [ErrNotFound].
	GetByID(ctx context.Context, id string) (models.Entity, error)

	// Search returns the entities whose name starts with prefix.
	Search(ctx context.Context, prefix string) ([]models.Entity, error)

	// Upsert stores entity on the server and returns the stored version,
	// including any server-assigned fields.
	Upsert(ctx context.Context, entity models.Entity) (models.Entity, error)
}
