package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"

	"bloomwatch/reforesta/internal/constants"
)

func TestFindSpeciesByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(constants.FindSpeciesByNormalizedName)).
		WithArgs("pinus radiata").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "common_name", "image"}).
			AddRow(11, "Pinus radiata", "Pino", nil))

	species, err := repo.FindSpeciesByName(context.Background(), "pinus radiata")
	if err != nil {
		t.Fatalf("FindSpeciesByName failed: %v", err)
	}
	if species == nil || species.ID != 11 {
		t.Fatalf("Expected species id 11, got %+v", species)
	}
	if species.CommonName == nil || *species.CommonName != "Pino" {
		t.Errorf("Expected common name Pino, got %v", species.CommonName)
	}
}

func TestFindSpeciesByName_NoMatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(constants.FindSpeciesByNormalizedName)).
		WithArgs("fantasma").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "common_name", "image"}))

	species, err := repo.FindSpeciesByName(context.Background(), "fantasma")
	if err != nil {
		t.Fatalf("Expected no error on miss, got %v", err)
	}
	if species != nil {
		t.Errorf("Expected nil on miss, got %+v", species)
	}
}

func TestFindStandByCoordinates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(constants.FindStandByCoordinates)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "department", "province", "district", "locality",
			"area_hectares", "easting", "northing", "geometry",
		}).AddRow(4, "Apurímac", "Abancay", "Abancay", "Quisapata",
			"1.25", "729551.2", "8491123.5", nil))

	stand, err := repo.FindStandByCoordinates(context.Background(),
		decimal.NewFromFloat(729551.2), decimal.NewFromFloat(8491123.5))
	if err != nil {
		t.Fatalf("FindStandByCoordinates failed: %v", err)
	}
	if stand == nil || stand.ID != 4 {
		t.Fatalf("Expected stand id 4, got %+v", stand)
	}
	if !stand.Easting.Equal(decimal.NewFromFloat(729551.2)) {
		t.Errorf("Unexpected easting %s", stand.Easting)
	}
}

func TestFindStandByCoordinates_NoMatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(constants.FindStandByCoordinates)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "department", "province", "district", "locality",
			"area_hectares", "easting", "northing", "geometry",
		}))

	stand, err := repo.FindStandByCoordinates(context.Background(), decimal.Zero, decimal.Zero)
	if err != nil {
		t.Fatalf("Expected no error on miss, got %v", err)
	}
	if stand != nil {
		t.Errorf("Expected nil on miss, got %+v", stand)
	}
}
