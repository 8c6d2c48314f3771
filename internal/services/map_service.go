package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"sort"

	"github.com/paulmach/orb/geojson"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bloomwatch/reforesta/internal/constants"
	"bloomwatch/reforesta/internal/geo"
	"bloomwatch/reforesta/internal/models/dtos"
	gormModels "bloomwatch/reforesta/internal/models/gorm"
)

// MapService feeds the public map: campaign results as a GeoJSON feature
// collection plus aggregate statistics per place.
type MapService struct {
	db *gorm.DB
}

func NewMapService(db *gorm.DB) *MapService {
	return &MapService{db: db}
}

// GetCampaignFeatureCollection renders one campaign's activity as GeoJSON.
// A nil campaignID selects the newest campaign. Place filters match by
// substring, like the admin listings.
func (svc *MapService) GetCampaignFeatureCollection(ctx context.Context, campaignID *int64, province, district, locality string) (*geojson.FeatureCollection, error) {
	var campaign gormModels.Campaign
	query := svc.db.WithContext(ctx)
	var err error
	if campaignID == nil {
		err = query.Order("id DESC").First(&campaign).Error
	} else {
		err = query.First(&campaign, *campaignID).Error
	}
	if err != nil {
		return nil, err
	}

	var details []gormModels.CampaignDetail
	err = svc.db.WithContext(ctx).
		Joins("JOIN forest_stands ON forest_stands.id = campaign_details.stand_id").
		Where("campaign_details.campaign_id = ?", campaign.ID).
		Where("forest_stands.province LIKE ?", "%"+province+"%").
		Where("forest_stands.district LIKE ?", "%"+district+"%").
		Where("forest_stands.locality LIKE ?", "%"+locality+"%").
		Preload("Species").
		Preload("Stand").
		Find(&details).Error
	if err != nil {
		return nil, fmt.Errorf("load campaign details: %w", err)
	}

	fc := geojson.NewFeatureCollection()
	for _, d := range details {
		// Stands without a surveyed footprint have nothing to draw.
		if d.Stand.Geometry == nil {
			continue
		}

		geometry, err := geo.Unmarshal(*d.Stand.Geometry)
		if err != nil {
			return nil, fmt.Errorf("stand %d geometry: %w", d.Stand.ID, err)
		}

		image := ""
		if len(d.Species.Image) > 0 {
			image = "data:image/png;base64," + base64.StdEncoding.EncodeToString(d.Species.Image)
		}

		activityDate := ""
		if d.ActivityDate != nil {
			activityDate = d.ActivityDate.Format("02/01/2006")
		}

		feature := geojson.NewFeature(geometry)
		feature.Properties = geojson.Properties{
			"id":             d.ID,
			"activity_type":  d.ActivityType,
			"activity_state": d.ActivityState,
			"activity_date":  activityDate,
			"element_count":  d.ElementCount,
			"province":       d.Stand.Province,
			"district":       d.Stand.District,
			"locality":       d.Stand.Locality,
			"area_hectares":  d.Stand.AreaHectares,
			"species_name":   d.Species.Name,
			"common_name":    d.Species.CommonName,
			"species_image":  image,
		}
		fc.Append(feature)
	}

	return fc, nil
}

// GetPlaceStats aggregates a campaign's plantings, optionally scoped to one
// province or district (matched case-insensitively). Species series come out
// ordered by planted elements, descending.
func (svc *MapService) GetPlaceStats(ctx context.Context, campaignID int64, placeLevel, placeName string) (*dtos.PlaceStats, error) {
	query := svc.db.WithContext(ctx).
		Joins("JOIN forest_stands ON forest_stands.id = campaign_details.stand_id").
		Where("campaign_details.campaign_id = ?", campaignID)

	switch placeLevel {
	case "province":
		query = query.Where("LOWER(forest_stands.province) = LOWER(?)", placeName)
	case "district":
		query = query.Where("LOWER(forest_stands.district) = LOWER(?)", placeName)
	}

	var details []gormModels.CampaignDetail
	err := query.
		Preload("Species").
		Preload("Stand").
		Find(&details).Error
	if err != nil {
		return nil, fmt.Errorf("load campaign details: %w", err)
	}

	stats := &dtos.PlaceStats{
		PlantingArea:  decimal.Zero,
		SpeciesLabels: []string{},
		SpeciesCounts: []int64{},
	}
	bySpecies := make(map[string]int64)

	for _, d := range details {
		if d.ActivityState != constants.ActivityStatePlanting {
			continue
		}

		stats.PlantingCount++
		stats.PlantingElements += d.ElementCount
		stats.PlantingArea = stats.PlantingArea.Add(d.Stand.AreaHectares)

		label := d.Species.Name
		if d.Species.CommonName != nil && *d.Species.CommonName != "" {
			label = *d.Species.CommonName
		}
		bySpecies[label] += d.ElementCount
	}

	labels := make([]string, 0, len(bySpecies))
	for label := range bySpecies {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if bySpecies[labels[i]] != bySpecies[labels[j]] {
			return bySpecies[labels[i]] > bySpecies[labels[j]]
		}
		return labels[i] < labels[j]
	})

	for _, label := range labels {
		stats.SpeciesLabels = append(stats.SpeciesLabels, label)
		stats.SpeciesCounts = append(stats.SpeciesCounts, bySpecies[label])
	}

	return stats, nil
}
