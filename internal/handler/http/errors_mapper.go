package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-list-sync/internal/app"
	"github.com/MKhiriev/go-list-sync/internal/service"
	"github.com/MKhiriev/go-list-sync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	store.ErrEntityNotFound: http.StatusNotFound,
	store.ErrEntityNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError responds with the status mapped from err. Validation failures
// echo the error text so the client can show it; everything else gets a
// fixed message.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	switch status {
	case http.StatusBadRequest:
		http.Error(w, err.Error(), status)
	case http.StatusNotFound:
		http.Error(w, app.MsgEntityNotFound, status)
	default:
		http.Error(w, app.MsgInternalServerError, status)
	}
}
