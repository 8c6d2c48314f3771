package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/shopspring/decimal"

	"bloomwatch/reforesta/internal/constants"
	"bloomwatch/reforesta/internal/geo"
	"bloomwatch/reforesta/internal/logging"
	"bloomwatch/reforesta/internal/models/dtos"
	"bloomwatch/reforesta/internal/models/entities"
)

// CatalogReader resolves staged records against the existing catalog.
type CatalogReader interface {
	FindSpeciesByName(ctx context.Context, normalizedName string) (*entities.Species, error)
	FindStandByCoordinates(ctx context.Context, easting, northing decimal.Decimal) (*entities.Stand, error)
}

// BundleStore persists a reviewed bundle atomically, returning the generated
// campaign id.
type BundleStore interface {
	SaveBundle(ctx context.Context, bundle *dtos.ImportBundle) (int64, error)
}

// ImportService runs the bulk-import pipeline: it ingests a survey GeoJSON
// feature collection into a staging bundle, reconciling species and stands
// against the catalog, and later commits the reviewed bundle in one
// transaction.
type ImportService struct {
	catalog CatalogReader
	store   BundleStore
}

func NewImportService(catalog CatalogReader, store BundleStore) *ImportService {
	return &ImportService{
		catalog: catalog,
		store:   store,
	}
}

// ProcessFeatureCollection stages one import batch. Species and stands are
// deduplicated by natural key (first occurrence wins, one catalog lookup per
// distinct key); one detail is staged per input feature, in input order.
func (svc *ImportService) ProcessFeatureCollection(ctx context.Context, geojsonData string, campaign dtos.CampaignPayload) (*dtos.ImportBundle, error) {
	if strings.TrimSpace(geojsonData) == "" {
		return nil, errors.New(constants.MsgEmptyFeatureCollection)
	}

	fc, err := geo.UnmarshalFeatureCollection(geojsonData)
	if err != nil {
		return nil, err
	}

	bundle := &dtos.ImportBundle{
		Campaign: campaign,
		Species:  []dtos.StagedSpecies{},
		Stands:   []dtos.StagedStand{},
		Details:  []dtos.StagedDetail{},
	}

	speciesIdx := make(map[string]int)
	standIdx := make(map[string]int)

	for _, feature := range fc.Features {
		props := feature.Properties

		speciesName := propText(props, constants.FieldSpecies)
		department := propText(props, constants.FieldDepartment)
		province := propText(props, constants.FieldProvince)
		district := propText(props, constants.FieldDistrict)
		locality := propText(props, constants.FieldLocality)

		activityState := constants.ActivityStatePitDigging
		dateText := propText(props, constants.FieldPitDate)
		if _, hasPlanting := props[constants.FieldPlantingDate]; hasPlanting {
			activityState = constants.ActivityStatePlanting
			dateText = propText(props, constants.FieldPlantingDate)
		}
		activityDate := parseActivityDate(dateText)

		easting := lenientDecimal(props[constants.FieldEasting])
		northing := lenientDecimal(props[constants.FieldNorthing])
		areaHectares := lenientDecimal(props[constants.FieldAreaHectares])
		standValue := lenientDecimal(props[constants.FieldStandValue])
		agroforestry := lenientDecimal(props[constants.FieldAgroforestry])

		// Element count has no lenient fallback: a feature carrying neither
		// count aborts the whole batch.
		elementCount, err := convertElementCount(props)
		if err != nil {
			return nil, err
		}

		speciesKey := strings.ToLower(strings.TrimSpace(speciesName))
		standKey := strings.TrimSpace(easting.String() + "-" + northing.String())

		if _, seen := speciesIdx[speciesKey]; !seen {
			existing, err := svc.catalog.FindSpeciesByName(ctx, speciesKey)
			if err != nil {
				return nil, fmt.Errorf("lookup species %q: %w", speciesKey, err)
			}

			staged := dtos.StagedSpecies{
				Name: speciesName,
				Key:  speciesKey,
			}
			if existing != nil {
				staged.ID = existing.ID
				staged.CommonName = existing.CommonName
				staged.Image = existing.Image
				staged.Exists = true
			}

			speciesIdx[speciesKey] = len(bundle.Species)
			bundle.Species = append(bundle.Species, staged)
		}

		if _, seen := standIdx[standKey]; !seen {
			existing, err := svc.catalog.FindStandByCoordinates(ctx, easting, northing)
			if err != nil {
				return nil, fmt.Errorf("lookup stand %q: %w", standKey, err)
			}

			var geoText *string
			if feature.Geometry != nil {
				text, err := geo.Marshal(feature.Geometry)
				if err != nil {
					return nil, err
				}
				geoText = &text
			}

			staged := dtos.StagedStand{
				Department:   department,
				Province:     province,
				District:     district,
				Locality:     locality,
				AreaHectares: areaHectares,
				Easting:      easting,
				Northing:     northing,
				GeoJSON:      geoText,
				Key:          standKey,
			}
			if existing != nil {
				staged.ID = existing.ID
				staged.Exists = true
			}

			standIdx[standKey] = len(bundle.Stands)
			bundle.Stands = append(bundle.Stands, staged)
		}

		bundle.Details = append(bundle.Details, dtos.StagedDetail{
			CampaignID:    campaign.ID,
			SpeciesKey:    speciesKey,
			StandKey:      standKey,
			SpeciesID:     bundle.Species[speciesIdx[speciesKey]].ID,
			StandID:       bundle.Stands[standIdx[standKey]].ID,
			ActivityType:  constants.ActivityTypeReforestation,
			ActivityState: activityState,
			ActivityDate:  activityDate,
			ElementCount:  elementCount,
			StandValue:    standValue,
			Agroforestry:  agroforestry,
		})
	}

	logging.Info("Import batch staged",
		"features", len(bundle.Details),
		"species", len(bundle.Species),
		"stands", len(bundle.Stands),
	)

	return bundle, nil
}

// CommitBundle persists a reviewed bundle. Failures come back as a structured
// result, never as a transport fault: the transaction has already been rolled
// back by the time the caller sees the message.
func (svc *ImportService) CommitBundle(ctx context.Context, bundle *dtos.ImportBundle) *dtos.ImportResult {
	if bundle == nil {
		return &dtos.ImportResult{Success: false, Message: constants.MsgBundleInvalid}
	}

	campaignID, err := svc.store.SaveBundle(ctx, bundle)
	if err != nil {
		logging.Error("Import commit failed", "error", err.Error())
		return &dtos.ImportResult{
			Success: false,
			Message: "Ocurrió un error: " + err.Error(),
		}
	}

	logging.Info("Import batch committed",
		"campaign_id", campaignID,
		"details", len(bundle.Details),
	)

	return &dtos.ImportResult{
		Success:    true,
		Message:    constants.MsgBundleSaved,
		CampaignID: campaignID,
	}
}

// propText renders an attribute the way the survey tooling printed it; a
// missing or null attribute becomes the empty string.
func propText(props geojson.Properties, key string) string {
	v, ok := props[key]
	if !ok || v == nil {
		return ""
	}
	if s, isString := v.(string); isString {
		return s
	}
	return fmt.Sprint(v)
}

// lenientDecimal converts a survey attribute to a decimal; anything missing
// or malformed degrades to zero. That tolerance is intentional: field survey
// exports routinely leave numeric columns blank.
func lenientDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero
		}
		return parsed
	default:
		return decimal.Zero
	}
}

// convertElementCount reads the plant count or, failing that, the pit count.
// Unlike the other numeric fields there is no zero fallback for a feature
// missing both: the count is the substance of the record.
func convertElementCount(props geojson.Properties) (int64, error) {
	v, ok := props[constants.FieldPlantCount]
	if !ok {
		v, ok = props[constants.FieldPitCount]
	}
	if !ok {
		return 0, errors.New(constants.MsgElementCountMissing)
	}

	switch n := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return int64(math.Round(n)), nil
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid element count %q: %w", n, err)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("invalid element count of type %T", v)
	}
}

// parseActivityDate extracts the first date from a survey date cell. Cells
// may hold a range ("26/12/2024-20/01/2025"); only the start date counts.
// Empty or unparseable text yields nil rather than failing the batch.
func parseActivityDate(text string) *time.Time {
	if text == "" {
		return nil
	}

	first := strings.TrimSpace(strings.SplitN(text, "-", 2)[0])

	for _, layout := range []string{"2/1/2006", "02/01/2006"} {
		if parsed, err := time.Parse(layout, first); err == nil {
			return &parsed
		}
	}

	return nil
}
