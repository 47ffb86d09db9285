// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the business rules an entity must satisfy before
// the server persists it. Validators are injected into services, keeping
// the rules out of the HTTP and storage layers.
package validators

import "context"

// Validator validates an arbitrary value. When fields are given, only those
// named fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
