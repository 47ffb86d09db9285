// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncState is the tagged state of the list controller.
type SyncState int32

const (
	// SyncStateIdle means no load or sync is in flight.
	SyncStateIdle SyncState = iota
	// SyncStateLoading means a Load is in flight.
	SyncStateLoading
	// SyncStateSyncing means a Sync (push plus trailing refresh) is in flight.
	SyncStateSyncing
)

func (s SyncState) String() string {
	switch s {
	case SyncStateIdle:
		return "idle"
	case SyncStateLoading:
		return "loading"
	case SyncStateSyncing:
		return "syncing"
	default:
		return "unknown"
	}
}

// SyncStatus is the observable scalar status of the list controller.
//
// IsLoading is true for the whole duration of a Load or a Sync and mirrors
// State != SyncStateIdle. ErrorText and Selected are nil when unset.
type SyncStatus struct {
	State     SyncState
	IsLoading bool
	ErrorText *string
	Selected  *string
}

// ListSnapshot is a consistent copy of the controller's collection and
// status taken inside one mutation block.
type ListSnapshot struct {
	Status  SyncStatus
	Records []EditableRecord
}

// ModifiedCount returns the number of records with local edits.
func (s ListSnapshot) ModifiedCount() int {
	n := 0
	for _, r := range s.Records {
		if r.IsModified() {
			n++
		}
	}
	return n
}
