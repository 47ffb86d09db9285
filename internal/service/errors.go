package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrOperationInProgress is returned by Load and Sync while another
	// Load or Sync of the same controller has not finished.
	ErrOperationInProgress = errors.New("load or sync already in progress")
	// ErrRecordNotFound is returned by Edit and Select for an id that is not
	// in the current collection.
	ErrRecordNotFound = errors.New("record not found in list")
)

// SyncError reports a push round that stopped at the first failed upsert.
// Pushed records are already stored on the server; the rest were never sent.
type SyncError struct {
	Pushed int
	Total  int
	// FailedID is the id of the record whose upsert failed.
	FailedID string
	Err      error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("pushed %d of %d modified records, record %q failed: %v", e.Pushed, e.Total, e.FailedID, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
