package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"bloomwatch/reforesta/internal/common"
	"bloomwatch/reforesta/internal/constants"
)

const mapCacheTTL = 5 * time.Minute

// GetCampaignMap handles GET /public/map/campaign
//
// Returns one campaign's activity as a GeoJSON feature collection. Without a
// campaign_id the newest campaign is served. Responses are cached; the map
// widget polls this endpoint on every pan.
func (h *Handlers) GetCampaignMap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		var campaignID *int64
		campaignKey := "latest"
		if raw := q.Get("campaign_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				common.RespondError(w, initTime, err, "Invalid campaign id", http.StatusBadRequest)
				return
			}
			campaignID = &id
			campaignKey = raw
		}

		province := q.Get("province")
		district := q.Get("district")
		locality := q.Get("locality")

		cacheKey := fmt.Sprintf("%s%s:%s:%s:%s",
			constants.CachePrefixMapData, campaignKey, province, district, locality)

		if cached, found := h.deps.Services.Cache.Get(cacheKey); found {
			h.deps.Metrics.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixMapData)).Inc()
			common.RespondSuccess(w, initTime, "Campaign map retrieved", cached)
			return
		}
		h.deps.Metrics.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixMapData)).Inc()

		fc, err := h.deps.Services.Map.GetCampaignFeatureCollection(r.Context(), campaignID, province, district, locality)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to build campaign map")
			return
		}

		h.deps.Services.Cache.Set(cacheKey, fc, mapCacheTTL)
		common.RespondSuccess(w, initTime, "Campaign map retrieved", fc)
	}
}

// GetPlaceStats handles GET /public/map/stats
//
// Aggregates a campaign's plantings for the charting widgets, optionally
// scoped to one province or district.
func (h *Handlers) GetPlaceStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		campaignID, err := strconv.ParseInt(q.Get("campaign_id"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid campaign id", http.StatusBadRequest)
			return
		}

		placeLevel := q.Get("place_level")
		placeName := q.Get("place_name")

		cacheKey := fmt.Sprintf("%s%d:%s:%s",
			constants.CachePrefixPlaceStats, campaignID, placeLevel, placeName)

		if cached, found := h.deps.Services.Cache.Get(cacheKey); found {
			h.deps.Metrics.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixPlaceStats)).Inc()
			common.RespondSuccess(w, initTime, "Place stats retrieved", cached)
			return
		}
		h.deps.Metrics.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixPlaceStats)).Inc()

		stats, err := h.deps.Services.Map.GetPlaceStats(r.Context(), campaignID, placeLevel, placeName)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to build place stats")
			return
		}

		h.deps.Services.Cache.Set(cacheKey, stats, mapCacheTTL)
		common.RespondSuccess(w, initTime, "Place stats retrieved", stats)
	}
}

// ListProvinces handles GET /public/regions/provinces
func (h *Handlers) ListProvinces() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		common.RespondSuccess(w, initTime, "Provinces retrieved", h.deps.Services.Ubigeo.Provinces())
	}
}

// ListDistricts handles GET /public/regions/districts
func (h *Handlers) ListDistricts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		districts, err := h.deps.Services.Ubigeo.Districts(r.URL.Query().Get("province"))
		if err != nil {
			common.RespondError(w, initTime, err, "Unknown province", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Districts retrieved", districts)
	}
}

// ListLocalities handles GET /public/regions/localities
func (h *Handlers) ListLocalities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		localities, err := h.deps.Services.Ubigeo.Localities(r.URL.Query().Get("district"))
		if err != nil {
			common.RespondError(w, initTime, err, "Unknown district", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Localities retrieved", localities)
	}
}
