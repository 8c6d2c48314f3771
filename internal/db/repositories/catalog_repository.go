package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"bloomwatch/reforesta/internal/constants"
	"bloomwatch/reforesta/internal/models/entities"
)

// CatalogRepository answers the read-side lookups of the import pipeline:
// species by normalized name, stands by coordinate pair. A missing record is
// reported as (nil, nil), not as an error.
type CatalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db}
}

func (r *CatalogRepository) FindSpeciesByName(ctx context.Context, normalizedName string) (*entities.Species, error) {
	var species entities.Species

	err := r.db.QueryRowxContext(ctx, constants.FindSpeciesByNormalizedName, normalizedName).StructScan(&species)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &species, nil
}

func (r *CatalogRepository) FindStandByCoordinates(ctx context.Context, easting, northing decimal.Decimal) (*entities.Stand, error) {
	var stand entities.Stand

	err := r.db.QueryRowxContext(ctx, constants.FindStandByCoordinates, easting, northing).StructScan(&stand)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &stand, nil
}
