package service

import (
	"context"

	"github.com/MKhiriev/go-list-sync/models"
)

// ListController owns the client's editable copy of the remote entity
// collection and reconciles it with the server.
//
// All mutations of the collection and of the status happen on the
// dispatcher goroutine, one block at a time, so an observer never sees a
// half-replaced collection.
type ListController interface {
	// Load replaces the collection with the server's current entities.
	// Every loaded record starts unmodified. On failure the collection is
	// left untouched and the status carries the error text.
	// Returns ErrOperationInProgress while another Load or Sync is running.
	Load(ctx context.Context) error

	// Sync pushes every modified record to the server, one upsert at a time
	// in collection order, then reloads the collection. The first failed
	// upsert stops the round and is returned as a *SyncError; no reload is
	// done in that case so unpushed records stay modified.
	// Returns ErrOperationInProgress while another Load or Sync is running.
	Sync(ctx context.Context) error

	// Edit applies fn to the record with the given id. fn runs on the
	// dispatcher goroutine and must not call back into the controller.
	// Edits made while a Load or Sync is in flight are discarded by the
	// refresh that ends it.
	Edit(id string, fn func(r *models.EditableRecord)) error

	// Select marks the record with the given id as selected. An empty id
	// clears the selection.
	Select(id string) error

	// Snapshot returns a consistent copy of the collection and status.
	Snapshot() models.ListSnapshot
	Records() []models.EditableRecord
	Status() models.SyncStatus

	// Subscribe registers fn to receive a snapshot after every mutation,
	// in mutation order. fn runs on the dispatcher goroutine and must not
	// call Load, Sync, Edit or Select synchronously. The returned function
	// removes the subscription.
	Subscribe(fn func(models.ListSnapshot)) (unsubscribe func())
}

// Dispatcher runs fn on the single goroutine that owns the controller's
// state and returns once fn has finished.
type Dispatcher interface {
	Dispatch(fn func()) error
}
