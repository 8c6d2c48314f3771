package dtos

import (
	"time"

	"github.com/shopspring/decimal"
)

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// ---- Admin listings ----

type CampaignItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Year        string    `json:"year"`
	ProcessDate time.Time `json:"process_date"`
}

type CampaignPage struct {
	Campaigns  []CampaignItem `json:"campaigns"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	YearFilter string         `json:"year_filter"`
}

type SpeciesItem struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	CommonName *string `json:"common_name,omitempty"`
	Image      []byte  `json:"image,omitempty"`
}

type SpeciesPage struct {
	Species    []SpeciesItem `json:"species"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	NameFilter string        `json:"name_filter"`
}

type StandItem struct {
	ID           int64           `json:"id"`
	Department   string          `json:"department"`
	Province     string          `json:"province"`
	District     string          `json:"district"`
	Locality     string          `json:"locality"`
	AreaHectares decimal.Decimal `json:"area_hectares"`
	Easting      decimal.Decimal `json:"easting"`
	Northing     decimal.Decimal `json:"northing"`
	GeoJSON      *string         `json:"geojson,omitempty"`
}

type StandPage struct {
	Stands         []StandItem `json:"stands"`
	Page           int         `json:"page"`
	TotalPages     int         `json:"total_pages"`
	ProvinceFilter string      `json:"province_filter"`
	DistrictFilter string      `json:"district_filter"`
	LocalityFilter string      `json:"locality_filter"`
}

// ---- Campaign detail view ----

type CampaignDetailItem struct {
	ID            int64           `json:"id"`
	ActivityType  string          `json:"activity_type"`
	ActivityState string          `json:"activity_state"`
	ActivityDate  *time.Time      `json:"activity_date"`
	ElementCount  int64           `json:"element_count"`
	Mortality     *int64          `json:"mortality,omitempty"`
	StandValue    decimal.Decimal `json:"stand_value"`
	Agroforestry  decimal.Decimal `json:"agroforestry"`
	Species       SpeciesItem     `json:"species"`
	Stand         StandItem       `json:"stand"`
}

type CampaignView struct {
	Campaign CampaignItem         `json:"campaign"`
	Details  []CampaignDetailItem `json:"details"`
}

// ---- Public map ----

// PlaceStats feeds the charting widgets on the public map: planting totals
// for a campaign scoped to an optional place, plus per-species planted
// element counts ordered descending.
type PlaceStats struct {
	PlantingCount    int64           `json:"planting_count"`
	PlantingElements int64           `json:"planting_elements"`
	PlantingArea     decimal.Decimal `json:"planting_area"`
	SpeciesLabels    []string        `json:"species_labels"`
	SpeciesCounts    []int64         `json:"species_counts"`
}
