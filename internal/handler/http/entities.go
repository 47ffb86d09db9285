package http

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-list-sync/internal/app"
	"github.com/MKhiriev/go-list-sync/internal/logger"
	"github.com/MKhiriev/go-list-sync/internal/utils"
	"github.com/MKhiriev/go-list-sync/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getAllEntities(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	entities, err := h.services.EntityService.GetAll(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAllEntities").Msg("error getting entities")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, entities, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getAllEntities").Msg("error writing response")
	}
}

func (h *Handler) searchEntities(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	prefix := r.URL.Query().Get("value")

	entities, err := h.services.EntityService.Search(r.Context(), prefix)
	if err != nil {
		log.Err(err).Str("func", "*Handler.searchEntities").Str("prefix", prefix).Msg("error searching entities")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, entities, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.searchEntities").Msg("error writing response")
	}
}

func (h *Handler) getEntityByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := entityIDParam(r)

	entity, err := h.services.EntityService.GetByID(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getEntityByID").Str("entity_id", id).Msg("error getting entity")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, entity, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getEntityByID").Msg("error writing response")
	}
}

func (h *Handler) upsertEntity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var entity models.Entity
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		log.Err(err).Str("func", "*Handler.upsertEntity").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	stored, err := h.services.EntityService.Upsert(r.Context(), entity)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upsertEntity").Str("entity_id", entity.ID).Msg("error storing entity")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, stored, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.upsertEntity").Msg("error writing response")
	}
}

// entityIDParam returns the decoded {id} path value. chi routes on RawPath
// when the request carries one, so the value is still escaped in that case.
func entityIDParam(r *http.Request) string {
	id := chi.URLParam(r, "id")
	if r.URL.RawPath == "" {
		return id
	}
	if unescaped, err := url.PathUnescape(id); err == nil {
		return unescaped
	}
	return id
}
