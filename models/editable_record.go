// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EditableRecord wraps one [Entity] for local editing on the client.
//
// The modified flag is derived purely from local mutation history: every
// setter call marks the record modified, even when it writes back the value
// already stored. Only a fresh load replaces the record and clears the flag.
//
// EditableRecord is a value type; copies handed to observers do not alias
// the controller's collection.
type EditableRecord struct {
	model      Entity
	isModified bool
}

// NewEditableRecord wraps a freshly loaded entity. The record starts
// unmodified.
func NewEditableRecord(e Entity) EditableRecord {
	return EditableRecord{model: e}
}

// Model returns the entity as last loaded or as locally edited.
func (r EditableRecord) Model() Entity {
	return r.model
}

// ID returns the identifier of the wrapped entity.
func (r EditableRecord) ID() string {
	return r.model.ID
}

// IsModified reports whether any setter was called since the record was
// loaded.
func (r EditableRecord) IsModified() bool {
	return r.isModified
}

func (r *EditableRecord) SetName(name string) {
	r.model.Name = name
	r.isModified = true
}

func (r *EditableRecord) SetDescription(description string) {
	r.model.Description = description
	r.isModified = true
}

func (r *EditableRecord) SetPrice(price float64) {
	r.model.Price = price
	r.isModified = true
}
