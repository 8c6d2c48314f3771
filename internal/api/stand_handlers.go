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

// ListStands handles GET /api/v1/admin/stands
func (h *Handlers) ListStands() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		q := r.URL.Query()
		page, err := h.deps.Services.Stand.GetStandPage(
			r.Context(),
			q.Get("province"),
			q.Get("district"),
			q.Get("locality"),
			queryPage(r),
		)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list stands")
			return
		}

		common.RespondSuccess(w, initTime, "Stands retrieved", page)
	}
}

// GetStand handles GET /api/v1/admin/stands/{id}
func (h *Handlers) GetStand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid stand id", http.StatusBadRequest)
			return
		}

		item, err := h.deps.Services.Stand.GetStand(r.Context(), id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespondError(w, initTime, nil, constants.MsgStandNotFound, http.StatusNotFound)
			return
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load stand")
			return
		}

		common.RespondSuccess(w, initTime, "Stand retrieved", item)
	}
}

// CreateStand handles POST /api/v1/admin/stands
func (h *Handlers) CreateStand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.StandReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		item, err := h.deps.Services.Stand.CreateStand(r.Context(), req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create stand", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Stand created", item, http.StatusCreated)
	}
}

// UpdateStand handles PUT /api/v1/admin/stands/{id}
func (h *Handlers) UpdateStand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid stand id", http.StatusBadRequest)
			return
		}

		var req dtos.StandReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		item, err := h.deps.Services.Stand.UpdateStand(r.Context(), id, req)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespondError(w, initTime, nil, constants.MsgStandNotFound, http.StatusNotFound)
			return
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to update stand", http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Stand updated", item)
	}
}

// DeleteStand handles DELETE /api/v1/admin/stands/{id}
func (h *Handlers) DeleteStand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid stand id", http.StatusBadRequest)
			return
		}

		err = h.deps.Services.Stand.DeleteStand(r.Context(), id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespondError(w, initTime, nil, constants.MsgStandNotFound, http.StatusNotFound)
			return
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to delete stand")
			return
		}

		common.RespondSuccess(w, initTime, "Stand deleted", nil)
	}
}
