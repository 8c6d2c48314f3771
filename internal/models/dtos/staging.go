package dtos

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignPayload is the campaign header as entered on the import screen,
// before it has an id.
type CampaignPayload struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Year        string    `json:"year"`
	ProcessDate time.Time `json:"process_date"`
}

// StagedSpecies is one distinct species found in an import batch. Key is the
// trimmed, lower-cased name; Exists reports whether the catalog already has a
// row (in which case ID carries the catalog id, otherwise 0).
type StagedSpecies struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	CommonName *string `json:"common_name,omitempty"`
	Image      []byte  `json:"image,omitempty"`
	Key        string  `json:"key"`
	Exists     bool    `json:"exists"`
}

// StagedStand is one distinct stand found in an import batch, keyed by the
// "easting-northing" coordinate pair. Descriptive attributes and geometry are
// taken from the first feature that produced the key.
type StagedStand struct {
	ID           int64           `json:"id"`
	Department   string          `json:"department"`
	Province     string          `json:"province"`
	District     string          `json:"district"`
	Locality     string          `json:"locality"`
	AreaHectares decimal.Decimal `json:"area_hectares"`
	Easting      decimal.Decimal `json:"easting"`
	Northing     decimal.Decimal `json:"northing"`
	GeoJSON      *string         `json:"geojson"`
	Key          string          `json:"key"`
	Exists       bool            `json:"exists"`
}

// StagedDetail is one activity record per input feature. SpeciesID and
// StandID are provisional (0 for catalog-new records); the commit phase
// re-resolves them through SpeciesKey and StandKey.
type StagedDetail struct {
	CampaignID    int64           `json:"campaign_id"`
	SpeciesKey    string          `json:"species_key"`
	StandKey      string          `json:"stand_key"`
	SpeciesID     int64           `json:"species_id"`
	StandID       int64           `json:"stand_id"`
	ActivityType  string          `json:"activity_type"`
	ActivityState string          `json:"activity_state"`
	ActivityDate  *time.Time      `json:"activity_date"`
	ElementCount  int64           `json:"element_count"`
	StandValue    decimal.Decimal `json:"stand_value"`
	Agroforestry  decimal.Decimal `json:"agroforestry"`
}

// ImportBundle is the staged change-set for one import batch. It round-trips
// to the review screen as JSON and comes back (possibly edited, keys intact)
// for commit.
type ImportBundle struct {
	Campaign CampaignPayload `json:"campaign"`
	Species  []StagedSpecies `json:"species"`
	Stands   []StagedStand   `json:"stands"`
	Details  []StagedDetail  `json:"details"`
}

// ImportResult reports the outcome of a commit. Failures surface here rather
// than as transport errors so the transaction is always rolled back before
// the caller sees anything.
type ImportResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	CampaignID int64  `json:"campaign_id,omitempty"`
}
