package api

import (
	"encoding/json"
	"net/http"
	"time"

	"bloomwatch/reforesta/internal/common"
	"bloomwatch/reforesta/internal/constants"
	"bloomwatch/reforesta/internal/logging"
	"bloomwatch/reforesta/internal/middleware"
	"bloomwatch/reforesta/internal/models/dtos"
)

// ProcessImport handles POST /api/v1/admin/import/process
//
// Stages a survey GeoJSON export against the catalog and returns the staged
// bundle for review. Nothing is written to the database here.
func (h *Handlers) ProcessImport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ProcessImportReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		bundle, err := h.deps.Services.Import.ProcessFeatureCollection(r.Context(), req.GeoJSONData, req.Campaign)
		if err != nil {
			h.deps.Metrics.ImportsTotal.WithLabelValues("rejected").Inc()
			common.RespondError(w, initTime, err, "Import batch rejected", http.StatusBadRequest)
			return
		}

		h.deps.Metrics.ImportsTotal.WithLabelValues("staged").Inc()
		h.deps.Metrics.FeaturesStagedTotal.Add(float64(len(bundle.Details)))

		logging.WithImport(
			middleware.RequestIDFromContext(r.Context()),
			bundle.Campaign.Name,
			bundle.Campaign.Year,
		).Infow("Import batch staged",
			"species", len(bundle.Species),
			"stands", len(bundle.Stands),
			"details", len(bundle.Details),
		)

		common.RespondSuccess(w, initTime, "Import batch staged", bundle)
	}
}

// CommitImport handles POST /api/v1/admin/import/commit
//
// Persists a reviewed bundle in a single transaction.
func (h *Handlers) CommitImport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var bundle *dtos.ImportBundle
		if err := json.NewDecoder(r.Body).Decode(&bundle); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		// A literal JSON null decodes without error; reject it here so an
		// empty bundle never reaches the transaction.
		if bundle == nil {
			common.RespondError(w, initTime, nil, constants.MsgBundleInvalid, http.StatusBadRequest)
			return
		}

		commitStart := time.Now()
		result := h.deps.Services.Import.CommitBundle(r.Context(), bundle)
		h.deps.Metrics.ImportCommitDuration.Observe(time.Since(commitStart).Seconds())

		if !result.Success {
			h.deps.Metrics.ImportsTotal.WithLabelValues("failed").Inc()
			common.RespondError(w, initTime, nil, result.Message, http.StatusInternalServerError)
			return
		}

		h.deps.Metrics.ImportsTotal.WithLabelValues("committed").Inc()
		common.RespondSuccess(w, initTime, result.Message, result)
	}
}
