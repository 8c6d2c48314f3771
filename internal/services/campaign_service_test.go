package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bloomwatch/reforesta/internal/constants"
	"bloomwatch/reforesta/internal/models/dtos"
	gormModels "bloomwatch/reforesta/internal/models/gorm"
)

func newGormTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&gormModels.Campaign{},
		&gormModels.Species{},
		&gormModels.Stand{},
		&gormModels.CampaignDetail{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}

	return db
}

func TestGetCampaignPage_PaginatesAndClamps(t *testing.T) {
	db := newGormTestDB(t)
	svc := NewCampaignService(db)
	ctx := context.Background()

	for i := 0; i < constants.CampaignsPerPage+2; i++ {
		campaign := gormModels.Campaign{
			Name:        fmt.Sprintf("Campaña %02d", i),
			Year:        "2024",
			ProcessDate: time.Now(),
		}
		if err := db.Create(&campaign).Error; err != nil {
			t.Fatalf("Failed to seed campaign: %v", err)
		}
	}

	page, err := svc.GetCampaignPage(ctx, "", 1)
	if err != nil {
		t.Fatalf("GetCampaignPage failed: %v", err)
	}
	if page.TotalPages != 2 {
		t.Errorf("Expected 2 total pages, got %d", page.TotalPages)
	}
	if len(page.Campaigns) != constants.CampaignsPerPage {
		t.Errorf("Expected a full first page, got %d rows", len(page.Campaigns))
	}

	// A page past the end clamps to the last page.
	page, err = svc.GetCampaignPage(ctx, "", 99)
	if err != nil {
		t.Fatalf("GetCampaignPage failed: %v", err)
	}
	if page.Page != 2 {
		t.Errorf("Expected clamp to page 2, got %d", page.Page)
	}
	if len(page.Campaigns) != 2 {
		t.Errorf("Expected 2 rows on last page, got %d", len(page.Campaigns))
	}

	// Page zero clamps to the first page.
	page, err = svc.GetCampaignPage(ctx, "", 0)
	if err != nil {
		t.Fatalf("GetCampaignPage failed: %v", err)
	}
	if page.Page != 1 {
		t.Errorf("Expected clamp to page 1, got %d", page.Page)
	}
}

func TestGetCampaignPage_FiltersByYear(t *testing.T) {
	db := newGormTestDB(t)
	svc := NewCampaignService(db)
	ctx := context.Background()

	for _, year := range []string{"2023", "2024", "2024-2025"} {
		campaign := gormModels.Campaign{Name: "Campaña " + year, Year: year, ProcessDate: time.Now()}
		if err := db.Create(&campaign).Error; err != nil {
			t.Fatalf("Failed to seed campaign: %v", err)
		}
	}

	page, err := svc.GetCampaignPage(ctx, "2024", 1)
	if err != nil {
		t.Fatalf("GetCampaignPage failed: %v", err)
	}
	if len(page.Campaigns) != 2 {
		t.Fatalf("Expected 2 campaigns matching '2024', got %d", len(page.Campaigns))
	}
	if page.YearFilter != "2024" {
		t.Errorf("Expected filter echoed back, got %q", page.YearFilter)
	}
}

func TestGetCampaignView_JoinsSpeciesAndStand(t *testing.T) {
	db := newGormTestDB(t)
	svc := NewCampaignService(db)
	ctx := context.Background()

	campaign := gormModels.Campaign{Name: "Campaña 2024", Year: "2024", ProcessDate: time.Now()}
	if err := db.Create(&campaign).Error; err != nil {
		t.Fatalf("Failed to seed campaign: %v", err)
	}
	species := gormModels.Species{Name: "Pinus radiata"}
	if err := db.Create(&species).Error; err != nil {
		t.Fatalf("Failed to seed species: %v", err)
	}
	stand := gormModels.Stand{Province: "Abancay", District: "Abancay", Locality: "Quisapata"}
	if err := db.Create(&stand).Error; err != nil {
		t.Fatalf("Failed to seed stand: %v", err)
	}
	detail := gormModels.CampaignDetail{
		CampaignID:    campaign.ID,
		SpeciesID:     species.ID,
		StandID:       stand.ID,
		ActivityType:  constants.ActivityTypeReforestation,
		ActivityState: constants.ActivityStatePlanting,
		ElementCount:  350,
	}
	if err := db.Create(&detail).Error; err != nil {
		t.Fatalf("Failed to seed detail: %v", err)
	}

	view, err := svc.GetCampaignView(ctx, campaign.ID)
	if err != nil {
		t.Fatalf("GetCampaignView failed: %v", err)
	}
	if view.Campaign.Name != "Campaña 2024" {
		t.Errorf("Unexpected campaign name %q", view.Campaign.Name)
	}
	if len(view.Details) != 1 {
		t.Fatalf("Expected 1 detail, got %d", len(view.Details))
	}
	if view.Details[0].Species.Name != "Pinus radiata" {
		t.Errorf("Expected joined species, got %q", view.Details[0].Species.Name)
	}
	if view.Details[0].Stand.Locality != "Quisapata" {
		t.Errorf("Expected joined stand, got %q", view.Details[0].Stand.Locality)
	}
}

func TestGetCampaignView_NotFound(t *testing.T) {
	db := newGormTestDB(t)
	svc := NewCampaignService(db)

	_, err := svc.GetCampaignView(context.Background(), 999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Expected record-not-found, got %v", err)
	}
}

func TestDeleteCampaign_RemovesDetails(t *testing.T) {
	db := newGormTestDB(t)
	svc := NewCampaignService(db)
	ctx := context.Background()

	campaign := gormModels.Campaign{Name: "Campaña 2024", Year: "2024", ProcessDate: time.Now()}
	if err := db.Create(&campaign).Error; err != nil {
		t.Fatalf("Failed to seed campaign: %v", err)
	}
	detail := gormModels.CampaignDetail{CampaignID: campaign.ID, SpeciesID: 1, StandID: 1}
	if err := db.Create(&detail).Error; err != nil {
		t.Fatalf("Failed to seed detail: %v", err)
	}

	if err := svc.DeleteCampaign(ctx, campaign.ID); err != nil {
		t.Fatalf("DeleteCampaign failed: %v", err)
	}

	var count int64
	db.Model(&gormModels.CampaignDetail{}).Where("campaign_id = ?", campaign.ID).Count(&count)
	if count != 0 {
		t.Errorf("Expected details removed with campaign, %d left", count)
	}
}

func TestCreateAndUpdateCampaign(t *testing.T) {
	db := newGormTestDB(t)
	svc := NewCampaignService(db)
	ctx := context.Background()

	item, err := svc.CreateCampaign(ctx, dtos.CampaignReq{Name: "Campaña 2024", Year: "2024", ProcessDate: time.Now()})
	if err != nil {
		t.Fatalf("CreateCampaign failed: %v", err)
	}
	if item.ID == 0 {
		t.Fatal("Expected generated id")
	}

	updated, err := svc.UpdateCampaign(ctx, item.ID, dtos.CampaignReq{Name: "Campaña 2024-2025", Year: "2024-2025", ProcessDate: time.Now()})
	if err != nil {
		t.Fatalf("UpdateCampaign failed: %v", err)
	}
	if updated.Year != "2024-2025" {
		t.Errorf("Expected updated year, got %q", updated.Year)
	}
}
