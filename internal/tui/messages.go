package tui

import (
	"github.com/MKhiriev/go-list-sync/models"
)

type operation int

const (
	opLoad operation = iota
	opSync
	opEdit
	opSelect
)

// snapshotMsg carries a controller snapshot published after a mutation.
type snapshotMsg struct {
	snapshot models.ListSnapshot
}

type opDoneMsg struct {
	op  operation
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
