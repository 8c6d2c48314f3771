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

// SpeciesService backs the species catalog screens.
type SpeciesService struct {
	db *gorm.DB
}

func NewSpeciesService(db *gorm.DB) *SpeciesService {
	return &SpeciesService{db: db}
}

func (svc *SpeciesService) GetSpeciesPage(ctx context.Context, nameFilter string, page int) (*dtos.SpeciesPage, error) {
	query := svc.db.WithContext(ctx).Model(&gormModels.Species{})

	if nameFilter != "" {
		query = query.Where("name LIKE ?", "%"+nameFilter+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count species: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(constants.SpeciesPerPage)))
	if page < 1 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	species := []gormModels.Species{}
	if total > 0 {
		err := query.
			Order("name").
			Offset(constants.SpeciesPerPage * (page - 1)).
			Limit(constants.SpeciesPerPage).
			Find(&species).Error
		if err != nil {
			return nil, fmt.Errorf("list species: %w", err)
		}
	}

	result := &dtos.SpeciesPage{
		Species:    make([]dtos.SpeciesItem, 0, len(species)),
		Page:       page,
		TotalPages: totalPages,
		NameFilter: nameFilter,
	}
	for _, s := range species {
		result.Species = append(result.Species, speciesItem(s))
	}
	return result, nil
}

func (svc *SpeciesService) GetSpecies(ctx context.Context, id int64) (*dtos.SpeciesItem, error) {
	var species gormModels.Species
	if err := svc.db.WithContext(ctx).First(&species, id).Error; err != nil {
		return nil, err
	}

	item := speciesItem(species)
	return &item, nil
}

func (svc *SpeciesService) CreateSpecies(ctx context.Context, req dtos.SpeciesReq) (*dtos.SpeciesItem, error) {
	species := gormModels.Species{
		Name:       req.Name,
		CommonName: req.CommonName,
		Image:      req.Image,
	}

	if err := svc.db.WithContext(ctx).Create(&species).Error; err != nil {
		return nil, fmt.Errorf("create species: %w", err)
	}

	item := speciesItem(species)
	return &item, nil
}

func (svc *SpeciesService) UpdateSpecies(ctx context.Context, id int64, req dtos.SpeciesReq) (*dtos.SpeciesItem, error) {
	var species gormModels.Species
	if err := svc.db.WithContext(ctx).First(&species, id).Error; err != nil {
		return nil, err
	}

	species.Name = req.Name
	species.CommonName = req.CommonName
	if req.Image != nil {
		species.Image = req.Image
	}

	if err := svc.db.WithContext(ctx).Save(&species).Error; err != nil {
		return nil, fmt.Errorf("update species: %w", err)
	}

	item := speciesItem(species)
	return &item, nil
}

func (svc *SpeciesService) DeleteSpecies(ctx context.Context, id int64) error {
	var species gormModels.Species
	if err := svc.db.WithContext(ctx).First(&species, id).Error; err != nil {
		return err
	}

	return svc.db.WithContext(ctx).Delete(&species).Error
}

func speciesItem(s gormModels.Species) dtos.SpeciesItem {
	return dtos.SpeciesItem{
		ID:         s.ID,
		Name:       s.Name,
		CommonName: s.CommonName,
		Image:      s.Image,
	}
}
