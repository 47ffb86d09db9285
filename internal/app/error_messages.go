// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// list-sync server handlers and the terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, log entries or the client's status line. Keeping them
// in one place ensures consistent wording on both sides of the wire.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or the entity fails validation (e.g. blank name).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgEntityNotFound is returned when a point lookup targets an id that is
	// not stored.
	MsgEntityNotFound = "entity not found"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgVersionIsNotSpecified is returned by the version endpoint when the
	// server was started without an application version.
	MsgVersionIsNotSpecified = "version is not specified"

	// MsgServerUnreachable is shown by the client when a request never got
	// an HTTP response.
	MsgServerUnreachable = "server unreachable"

	// MsgServerReturnedNothing is shown by the client when the server
	// answered successfully but without a payload.
	MsgServerReturnedNothing = "server returned no data"

	// MsgSyncFailed prefixes the client status line when a push round stops
	// before every modified record was sent.
	MsgSyncFailed = "sync failed"

	// MsgLoadFailed prefixes the client status line when a load fails.
	MsgLoadFailed = "load failed"
)
