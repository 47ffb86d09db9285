package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-list-sync/internal/app"
	"github.com/MKhiriev/go-list-sync/internal/logger"
)

const hashHeader = "HashSHA256"

// withHashCheck rejects a request whose body does not match its HashSHA256
// header. It is a pass-through when the server runs without a hash key.
func (h *Handler) withHashCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Debug().Str("func", "*Handler.withHashCheck").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashCheck").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashFromRequest := r.Header.Get(hashHeader)
		if !h.hasher.Verify(body, hashFromRequest) {
			log.Error().Str("func", "*Handler.withHashCheck").
				Str("hash from request", hashFromRequest).
				Str("hashed body", h.hasher.SumHex(body)).
				Msg("hashes are not equal")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		log.Debug().Str("func", "*Handler.withHashCheck").
			Str("hash from request", hashFromRequest).
			Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
