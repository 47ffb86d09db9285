// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-list-sync/internal/service"
)

var (
	errNoController = errors.New("list controller is not set")

	errEmptyName    = errors.New("название обязательно")
	errInvalidPrice = errors.New("цена должна быть неотрицательным числом")
)

// operationErrorText renders an error returned by a controller call. Load
// and sync failures are already on the status line, so only the rejection
// of a concurrent request is reported for them.
func operationErrorText(op operation, err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrOperationInProgress):
		return "операция уже выполняется"
	case errors.Is(err, service.ErrRecordNotFound):
		return "запись не найдена"
	case op == opLoad || op == opSync:
		return ""
	}

	return err.Error()
}
