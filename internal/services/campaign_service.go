package services

import (
	"context"
	"fmt"
	"math"

	"gorm.io/gorm"

	"bloomwatch/reforesta/internal/constants"
	"bloomwatch/reforesta/internal/models/dtos"
	gormModels "bloomwatch/reforesta/internal/models/gorm"
)

// CampaignService backs the admin campaign screens: paginated listing,
// CRUD, and the detail view joining activity records with their species and
// stands.
type CampaignService struct {
	db *gorm.DB
}

func NewCampaignService(db *gorm.DB) *CampaignService {
	return &CampaignService{db: db}
}

// GetCampaignPage returns one page of campaigns, newest year first,
// optionally filtered by a year substring. Out-of-range pages are clamped.
func (svc *CampaignService) GetCampaignPage(ctx context.Context, yearFilter string, page int) (*dtos.CampaignPage, error) {
	query := svc.db.WithContext(ctx).Model(&gormModels.Campaign{})

	if yearFilter != "" {
		query = query.Where("year LIKE ?", "%"+yearFilter+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count campaigns: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(constants.CampaignsPerPage)))
	if page < 1 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	campaigns := []gormModels.Campaign{}
	if total > 0 {
		err := query.
			Order("year DESC").
			Offset(constants.CampaignsPerPage * (page - 1)).
			Limit(constants.CampaignsPerPage).
			Find(&campaigns).Error
		if err != nil {
			return nil, fmt.Errorf("list campaigns: %w", err)
		}
	}

	result := &dtos.CampaignPage{
		Campaigns:  make([]dtos.CampaignItem, 0, len(campaigns)),
		Page:       page,
		TotalPages: totalPages,
		YearFilter: yearFilter,
	}
	for _, c := range campaigns {
		result.Campaigns = append(result.Campaigns, campaignItem(c))
	}
	return result, nil
}

// GetCampaignView loads a campaign with its activity details, each joined
// with species and stand data.
func (svc *CampaignService) GetCampaignView(ctx context.Context, id int64) (*dtos.CampaignView, error) {
	var campaign gormModels.Campaign
	err := svc.db.WithContext(ctx).
		Preload("Details.Species").
		Preload("Details.Stand").
		Preload("Details").
		First(&campaign, id).Error
	if err != nil {
		return nil, err
	}

	view := &dtos.CampaignView{
		Campaign: campaignItem(campaign),
		Details:  make([]dtos.CampaignDetailItem, 0, len(campaign.Details)),
	}

	for _, d := range campaign.Details {
		view.Details = append(view.Details, dtos.CampaignDetailItem{
			ID:            d.ID,
			ActivityType:  d.ActivityType,
			ActivityState: d.ActivityState,
			ActivityDate:  d.ActivityDate,
			ElementCount:  d.ElementCount,
			Mortality:     d.Mortality,
			StandValue:    d.StandValue,
			Agroforestry:  d.Agroforestry,
			Species: dtos.SpeciesItem{
				ID:         d.Species.ID,
				Name:       d.Species.Name,
				CommonName: d.Species.CommonName,
			},
			Stand: dtos.StandItem{
				ID:           d.Stand.ID,
				Department:   d.Stand.Department,
				Province:     d.Stand.Province,
				District:     d.Stand.District,
				Locality:     d.Stand.Locality,
				AreaHectares: d.Stand.AreaHectares,
				Easting:      d.Stand.Easting,
				Northing:     d.Stand.Northing,
			},
		})
	}

	return view, nil
}

func (svc *CampaignService) CreateCampaign(ctx context.Context, req dtos.CampaignReq) (*dtos.CampaignItem, error) {
	campaign := gormModels.Campaign{
		Name:        req.Name,
		Year:        req.Year,
		ProcessDate: req.ProcessDate,
	}

	if err := svc.db.WithContext(ctx).Create(&campaign).Error; err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	item := campaignItem(campaign)
	return &item, nil
}

func (svc *CampaignService) UpdateCampaign(ctx context.Context, id int64, req dtos.CampaignReq) (*dtos.CampaignItem, error) {
	var campaign gormModels.Campaign
	if err := svc.db.WithContext(ctx).First(&campaign, id).Error; err != nil {
		return nil, err
	}

	campaign.Name = req.Name
	campaign.Year = req.Year
	campaign.ProcessDate = req.ProcessDate

	if err := svc.db.WithContext(ctx).Save(&campaign).Error; err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}

	item := campaignItem(campaign)
	return &item, nil
}

// DeleteCampaign removes a campaign; its details go with it (cascade).
func (svc *CampaignService) DeleteCampaign(ctx context.Context, id int64) error {
	var campaign gormModels.Campaign
	if err := svc.db.WithContext(ctx).First(&campaign, id).Error; err != nil {
		return err
	}

	return svc.db.WithContext(ctx).
		Select("Details").
		Delete(&campaign).Error
}

func campaignItem(c gormModels.Campaign) dtos.CampaignItem {
	return dtos.CampaignItem{
		ID:          c.ID,
		Name:        c.Name,
		Year:        c.Year,
		ProcessDate: c.ProcessDate,
	}
}
