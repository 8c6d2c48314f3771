package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"bloomwatch/reforesta/internal/common"
	"bloomwatch/reforesta/internal/constants"
	"bloomwatch/reforesta/internal/models/dtos"
)

// ListSpecies handles GET /api/v1/admin/species
func (h *Handlers) ListSpecies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		page, err := h.deps.Services.Species.GetSpeciesPage(r.Context(), r.URL.Query().Get("name"), queryPage(r))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list species")
			return
		}

		common.RespondSuccess(w, initTime, "Species retrieved", page)
	}
}

// GetSpecies handles GET /api/v1/admin/species/{id}
func (h *Handlers) GetSpecies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid species id", http.StatusBadRequest)
			return
		}

		item, err := h.deps.Services.Species.GetSpecies(r.Context(), id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespondError(w, initTime, nil, constants.MsgSpeciesNotFound, http.StatusNotFound)
			return
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load species")
			return
		}

		common.RespondSuccess(w, initTime, "Species retrieved", item)
	}
}

// CreateSpecies handles POST /api/v1/admin/species
func (h *Handlers) CreateSpecies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SpeciesReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		item, err := h.deps.Services.Species.CreateSpecies(r.Context(), req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create species")
			return
		}

		common.RespondSuccess(w, initTime, "Species created", item, http.StatusCreated)
	}
}

// UpdateSpecies handles PUT /api/v1/admin/species/{id}
func (h *Handlers) UpdateSpecies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid species id", http.StatusBadRequest)
			return
		}

		var req dtos.SpeciesReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		item, err := h.deps.Services.Species.UpdateSpecies(r.Context(), id, req)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespondError(w, initTime, nil, constants.MsgSpeciesNotFound, http.StatusNotFound)
			return
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to update species")
			return
		}

		common.RespondSuccess(w, initTime, "Species updated", item)
	}
}

// DeleteSpecies handles DELETE /api/v1/admin/species/{id}
func (h *Handlers) DeleteSpecies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid species id", http.StatusBadRequest)
			return
		}

		err = h.deps.Services.Species.DeleteSpecies(r.Context(), id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespondError(w, initTime, nil, constants.MsgSpeciesNotFound, http.StatusNotFound)
			return
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to delete species")
			return
		}

		common.RespondSuccess(w, initTime, "Species deleted", nil)
	}
}
