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

// ListCampaigns handles GET /api/v1/admin/campaigns
func (h *Handlers) ListCampaigns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		page, err := h.deps.Services.Campaign.GetCampaignPage(r.Context(), r.URL.Query().Get("year"), queryPage(r))
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list campaigns")
			return
		}

		common.RespondSuccess(w, initTime, "Campaigns retrieved", page)
	}
}

// GetCampaign handles GET /api/v1/admin/campaigns/{id}
//
// Returns the campaign with its full detail rows (species and stand joined
// in), the view the review screen renders.
func (h *Handlers) GetCampaign() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid campaign id", http.StatusBadRequest)
			return
		}

		view, err := h.deps.Services.Campaign.GetCampaignView(r.Context(), id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespondError(w, initTime, nil, constants.MsgCampaignNotFound, http.StatusNotFound)
			return
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load campaign")
			return
		}

		common.RespondSuccess(w, initTime, "Campaign retrieved", view)
	}
}

// CreateCampaign handles POST /api/v1/admin/campaigns
func (h *Handlers) CreateCampaign() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CampaignReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		item, err := h.deps.Services.Campaign.CreateCampaign(r.Context(), req)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create campaign")
			return
		}

		common.RespondSuccess(w, initTime, "Campaign created", item, http.StatusCreated)
	}
}

// UpdateCampaign handles PUT /api/v1/admin/campaigns/{id}
func (h *Handlers) UpdateCampaign() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid campaign id", http.StatusBadRequest)
			return
		}

		var req dtos.CampaignReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		item, err := h.deps.Services.Campaign.UpdateCampaign(r.Context(), id, req)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespondError(w, initTime, nil, constants.MsgCampaignNotFound, http.StatusNotFound)
			return
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to update campaign")
			return
		}

		common.RespondSuccess(w, initTime, "Campaign updated", item)
	}
}

// DeleteCampaign handles DELETE /api/v1/admin/campaigns/{id}
//
// Deleting a campaign also removes its detail rows. Catalog species and
// stands stay.
func (h *Handlers) DeleteCampaign() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid campaign id", http.StatusBadRequest)
			return
		}

		err = h.deps.Services.Campaign.DeleteCampaign(r.Context(), id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.RespondError(w, initTime, nil, constants.MsgCampaignNotFound, http.StatusNotFound)
			return
		}
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to delete campaign")
			return
		}

		common.RespondSuccess(w, initTime, "Campaign deleted", nil)
	}
}
