package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"bloomwatch/reforesta/internal/constants"
	"bloomwatch/reforesta/internal/geo"
	"bloomwatch/reforesta/internal/models/dtos"
)

// ImportRepository persists a reviewed staging bundle in one transaction:
// campaign first, then catalog-new species and stands (capturing generated
// ids), then every activity detail with ids re-resolved through the
// natural-key maps. Any failure rolls the whole batch back.
type ImportRepository struct {
	db *sqlx.DB
}

func NewImportRepository(db *sqlx.DB) *ImportRepository {
	return &ImportRepository{db}
}

func (r *ImportRepository) SaveBundle(ctx context.Context, bundle *dtos.ImportBundle) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() // safe even after Commit

	/* --- 1. campaign row ----------------------------------------- */
	var campaignID int64
	if err := tx.QueryRowxContext(ctx, constants.InsertCampaign,
		bundle.Campaign.Name,
		bundle.Campaign.Year,
		bundle.Campaign.ProcessDate,
	).Scan(&campaignID); err != nil {
		return 0, fmt.Errorf("insert campaign: %w", err)
	}

	/* --- 2. catalog-new species, key → final id ------------------ */
	speciesIDs := make(map[string]int64, len(bundle.Species))
	for i := range bundle.Species {
		sp := &bundle.Species[i]
		if sp.Exists {
			speciesIDs[sp.Key] = sp.ID
			continue
		}

		if err := tx.QueryRowxContext(ctx, constants.InsertSpecies,
			sp.Name,
			sp.Image,
		).Scan(&sp.ID); err != nil {
			return 0, fmt.Errorf("insert species %q: %w", sp.Name, err)
		}
		speciesIDs[sp.Key] = sp.ID
	}

	/* --- 3. catalog-new stands, key → final id ------------------- */
	standIDs := make(map[string]int64, len(bundle.Stands))
	for i := range bundle.Stands {
		st := &bundle.Stands[i]
		if st.Exists {
			standIDs[st.Key] = st.ID
			continue
		}

		var geometry geo.Geometry
		if st.GeoJSON != nil {
			parsed, err := geo.Unmarshal(*st.GeoJSON)
			if err != nil {
				return 0, fmt.Errorf("parse stand %q geometry: %w", st.Key, err)
			}
			geometry.Geometry = parsed
		}

		if err := tx.QueryRowxContext(ctx, constants.InsertStand,
			st.Department,
			st.Province,
			st.District,
			st.Locality,
			st.AreaHectares,
			st.Easting,
			st.Northing,
			geometry,
		).Scan(&st.ID); err != nil {
			return 0, fmt.Errorf("insert stand %q: %w", st.Key, err)
		}
		standIDs[st.Key] = st.ID
	}

	/* --- 4. details, ids resolved by natural key ----------------- */
	for _, detail := range bundle.Details {
		speciesID, ok := speciesIDs[detail.SpeciesKey]
		if !ok {
			return 0, fmt.Errorf("detail references unknown species key %q", detail.SpeciesKey)
		}
		standID, ok := standIDs[detail.StandKey]
		if !ok {
			return 0, fmt.Errorf("detail references unknown stand key %q", detail.StandKey)
		}

		var detailID int64
		if err := tx.QueryRowxContext(ctx, constants.InsertCampaignDetail,
			campaignID,
			speciesID,
			standID,
			detail.ActivityType,
			detail.ActivityState,
			detail.ActivityDate,
			detail.ElementCount,
			detail.StandValue,
			detail.Agroforestry,
		).Scan(&detailID); err != nil {
			return 0, fmt.Errorf("insert campaign detail: %w", err)
		}
	}

	/* --- Commit -------------------------------------------------- */
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return campaignID, nil
}
