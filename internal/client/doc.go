// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal UI together with the state dispatcher and the
// background sync job, and stops all of them when the UI exits.
package client
