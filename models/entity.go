// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Entity is a uniquely identified business record stored by the repository.
//
// Identity is ID. Name is the searchable field: prefix search matches it
// case-sensitively. CreatedAt and UpdatedAt are assigned by the server and
// ignored on upsert input.
type Entity struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SameFields reports whether e and other carry identical business fields.
// Server-assigned timestamps are not compared.
func (e Entity) SameFields(other Entity) bool {
	return e.ID == other.ID &&
		e.Name == other.Name &&
		e.Description == other.Description &&
		e.Price == other.Price
}
