package services

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bloomwatch/reforesta/internal/constants"
	"bloomwatch/reforesta/internal/geo"
	"bloomwatch/reforesta/internal/models/dtos"
	gormModels "bloomwatch/reforesta/internal/models/gorm"
)

// StandService backs the forest stand catalog screens.
type StandService struct {
	db *gorm.DB
}

func NewStandService(db *gorm.DB) *StandService {
	return &StandService{db: db}
}

func (svc *StandService) GetStandPage(ctx context.Context, province, district, locality string, page int) (*dtos.StandPage, error) {
	query := svc.db.WithContext(ctx).Model(&gormModels.Stand{})

	if province != "" {
		query = query.Where("province LIKE ?", "%"+province+"%")
	}
	if district != "" {
		query = query.Where("district LIKE ?", "%"+district+"%")
	}
	if locality != "" {
		query = query.Where("locality LIKE ?", "%"+locality+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count stands: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(constants.StandsPerPage)))
	if page < 1 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	stands := []gormModels.Stand{}
	if total > 0 {
		err := query.
			Order("province").
			Offset(constants.StandsPerPage * (page - 1)).
			Limit(constants.StandsPerPage).
			Find(&stands).Error
		if err != nil {
			return nil, fmt.Errorf("list stands: %w", err)
		}
	}

	result := &dtos.StandPage{
		Stands:         make([]dtos.StandItem, 0, len(stands)),
		Page:           page,
		TotalPages:     totalPages,
		ProvinceFilter: province,
		DistrictFilter: district,
		LocalityFilter: locality,
	}
	for _, s := range stands {
		result.Stands = append(result.Stands, standItem(s))
	}
	return result, nil
}

func (svc *StandService) GetStand(ctx context.Context, id int64) (*dtos.StandItem, error) {
	var stand gormModels.Stand
	if err := svc.db.WithContext(ctx).First(&stand, id).Error; err != nil {
		return nil, err
	}

	item := standItem(stand)
	return &item, nil
}

func (svc *StandService) CreateStand(ctx context.Context, req dtos.StandReq) (*dtos.StandItem, error) {
	stand, err := standFromReq(req)
	if err != nil {
		return nil, err
	}

	if err := svc.db.WithContext(ctx).Create(stand).Error; err != nil {
		return nil, fmt.Errorf("create stand: %w", err)
	}

	item := standItem(*stand)
	return &item, nil
}

func (svc *StandService) UpdateStand(ctx context.Context, id int64, req dtos.StandReq) (*dtos.StandItem, error) {
	var existing gormModels.Stand
	if err := svc.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return nil, err
	}

	updated, err := standFromReq(req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID

	if err := svc.db.WithContext(ctx).Save(updated).Error; err != nil {
		return nil, fmt.Errorf("update stand: %w", err)
	}

	item := standItem(*updated)
	return &item, nil
}

func (svc *StandService) DeleteStand(ctx context.Context, id int64) error {
	var stand gormModels.Stand
	if err := svc.db.WithContext(ctx).First(&stand, id).Error; err != nil {
		return err
	}

	return svc.db.WithContext(ctx).Delete(&stand).Error
}

// standFromReq validates the request: coordinates and area must be decimal
// text, the geometry (when present) must be parseable GeoJSON.
func standFromReq(req dtos.StandReq) (*gormModels.Stand, error) {
	area, err := decimal.NewFromString(req.AreaHectares)
	if err != nil {
		return nil, fmt.Errorf("invalid area %q: %w", req.AreaHectares, err)
	}
	easting, err := decimal.NewFromString(req.Easting)
	if err != nil {
		return nil, fmt.Errorf("invalid easting %q: %w", req.Easting, err)
	}
	northing, err := decimal.NewFromString(req.Northing)
	if err != nil {
		return nil, fmt.Errorf("invalid northing %q: %w", req.Northing, err)
	}

	if req.GeoJSON != nil {
		if _, err := geo.Unmarshal(*req.GeoJSON); err != nil {
			return nil, err
		}
	}

	return &gormModels.Stand{
		Department:   req.Department,
		Province:     req.Province,
		District:     req.District,
		Locality:     req.Locality,
		AreaHectares: area,
		Easting:      easting,
		Northing:     northing,
		Geometry:     req.GeoJSON,
	}, nil
}

func standItem(s gormModels.Stand) dtos.StandItem {
	return dtos.StandItem{
		ID:           s.ID,
		Department:   s.Department,
		Province:     s.Province,
		District:     s.District,
		Locality:     s.Locality,
		AreaHectares: s.AreaHectares,
		Easting:      s.Easting,
		Northing:     s.Northing,
		GeoJSON:      s.Geometry,
	}
}
