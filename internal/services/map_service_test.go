package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bloomwatch/reforesta/internal/constants"
	gormModels "bloomwatch/reforesta/internal/models/gorm"
)

func seedMapData(t *testing.T) (db *gorm.DB, oldID, newID int64) {
	t.Helper()

	gdb := newGormTestDB(t)

	older := gormModels.Campaign{Name: "Campaña 2023", Year: "2023", ProcessDate: time.Now()}
	newer := gormModels.Campaign{Name: "Campaña 2024", Year: "2024", ProcessDate: time.Now()}
	for _, c := range []*gormModels.Campaign{&older, &newer} {
		if err := gdb.Create(c).Error; err != nil {
			t.Fatalf("Failed to seed campaign: %v", err)
		}
	}

	pinus := gormModels.Species{Name: "Pinus radiata"}
	quenua := gormModels.Species{Name: "Queñua"}
	for _, s := range []*gormModels.Species{&pinus, &quenua} {
		if err := gdb.Create(s).Error; err != nil {
			t.Fatalf("Failed to seed species: %v", err)
		}
	}

	point := `{"type":"Point","coordinates":[-72.88,-13.63]}`
	abancay := gormModels.Stand{
		Province: "Abancay", District: "Abancay", Locality: "Quisapata",
		AreaHectares: decimal.NewFromFloat(1.25), Geometry: &point,
	}
	grau := gormModels.Stand{
		Province: "Grau", District: "Progreso", Locality: "Record",
		AreaHectares: decimal.NewFromFloat(0.5), Geometry: &point,
	}
	unsurveyed := gormModels.Stand{Province: "Abancay", District: "Circa"}
	for _, s := range []*gormModels.Stand{&abancay, &grau, &unsurveyed} {
		if err := gdb.Create(s).Error; err != nil {
			t.Fatalf("Failed to seed stand: %v", err)
		}
	}

	details := []gormModels.CampaignDetail{
		{CampaignID: newer.ID, SpeciesID: pinus.ID, StandID: abancay.ID,
			ActivityType: constants.ActivityTypeReforestation, ActivityState: constants.ActivityStatePlanting, ElementCount: 350},
		{CampaignID: newer.ID, SpeciesID: quenua.ID, StandID: grau.ID,
			ActivityType: constants.ActivityTypeReforestation, ActivityState: constants.ActivityStatePlanting, ElementCount: 500},
		{CampaignID: newer.ID, SpeciesID: pinus.ID, StandID: grau.ID,
			ActivityType: constants.ActivityTypeReforestation, ActivityState: constants.ActivityStatePitDigging, ElementCount: 120},
		{CampaignID: newer.ID, SpeciesID: pinus.ID, StandID: unsurveyed.ID,
			ActivityType: constants.ActivityTypeReforestation, ActivityState: constants.ActivityStatePlanting, ElementCount: 40},
		{CampaignID: older.ID, SpeciesID: pinus.ID, StandID: abancay.ID,
			ActivityType: constants.ActivityTypeReforestation, ActivityState: constants.ActivityStatePlanting, ElementCount: 990},
	}
	for i := range details {
		if err := gdb.Create(&details[i]).Error; err != nil {
			t.Fatalf("Failed to seed detail: %v", err)
		}
	}

	return gdb, older.ID, newer.ID
}

func TestGetCampaignFeatureCollection_DefaultsToNewestCampaign(t *testing.T) {
	gdb, _, _ := seedMapData(t)
	svc := NewMapService(gdb)

	fc, err := svc.GetCampaignFeatureCollection(context.Background(), nil, "", "", "")
	if err != nil {
		t.Fatalf("GetCampaignFeatureCollection failed: %v", err)
	}

	// Newest campaign has four details; the one on the unsurveyed stand has
	// no geometry and is not drawn.
	if len(fc.Features) != 3 {
		t.Fatalf("Expected 3 features, got %d", len(fc.Features))
	}
	for _, f := range fc.Features {
		if f.Properties["activity_type"] != constants.ActivityTypeReforestation {
			t.Errorf("Unexpected activity type %v", f.Properties["activity_type"])
		}
	}
}

func TestGetCampaignFeatureCollection_ExplicitCampaignAndFilter(t *testing.T) {
	gdb, oldID, newID := seedMapData(t)
	svc := NewMapService(gdb)

	fc, err := svc.GetCampaignFeatureCollection(context.Background(), &oldID, "", "", "")
	if err != nil {
		t.Fatalf("GetCampaignFeatureCollection failed: %v", err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("Expected 1 feature for older campaign, got %d", len(fc.Features))
	}

	fc, err = svc.GetCampaignFeatureCollection(context.Background(), &newID, "Grau", "", "")
	if err != nil {
		t.Fatalf("GetCampaignFeatureCollection failed: %v", err)
	}
	if len(fc.Features) != 2 {
		t.Fatalf("Expected 2 features in Grau, got %d", len(fc.Features))
	}
	for _, f := range fc.Features {
		if f.Properties["province"] != "Grau" {
			t.Errorf("Expected only Grau features, got %v", f.Properties["province"])
		}
	}
}

func TestGetPlaceStats_CountsPlantingsOnly(t *testing.T) {
	gdb, _, newID := seedMapData(t)
	svc := NewMapService(gdb)

	stats, err := svc.GetPlaceStats(context.Background(), newID, "", "")
	if err != nil {
		t.Fatalf("GetPlaceStats failed: %v", err)
	}

	if stats.PlantingCount != 3 {
		t.Errorf("Expected 3 plantings, got %d", stats.PlantingCount)
	}
	if stats.PlantingElements != 890 {
		t.Errorf("Expected 890 planted elements, got %d", stats.PlantingElements)
	}
	if !stats.PlantingArea.Equal(decimal.NewFromFloat(1.75)) {
		t.Errorf("Expected planted area 1.75, got %s", stats.PlantingArea)
	}

	// Species series ordered by planted elements, descending.
	if len(stats.SpeciesLabels) != 2 || stats.SpeciesLabels[0] != "Queñua" {
		t.Fatalf("Expected Queñua first, got %v", stats.SpeciesLabels)
	}
	if stats.SpeciesCounts[0] != 500 || stats.SpeciesCounts[1] != 390 {
		t.Errorf("Unexpected species counts %v", stats.SpeciesCounts)
	}
}

func TestGetPlaceStats_ScopedToProvince(t *testing.T) {
	gdb, _, newID := seedMapData(t)
	svc := NewMapService(gdb)

	// Place names match case-insensitively.
	stats, err := svc.GetPlaceStats(context.Background(), newID, "province", "grau")
	if err != nil {
		t.Fatalf("GetPlaceStats failed: %v", err)
	}

	if stats.PlantingCount != 1 {
		t.Errorf("Expected 1 planting in Grau, got %d", stats.PlantingCount)
	}
	if stats.PlantingElements != 500 {
		t.Errorf("Expected 500 planted elements, got %d", stats.PlantingElements)
	}
}
