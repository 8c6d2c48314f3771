package geo

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Marshal serializes a geometry to GeoJSON text. GeoJSON geometries are
// always expressed in WGS84 (EPSG:4326), which matches how the stands are
// surveyed.
func Marshal(g orb.Geometry) (string, error) {
	if g == nil {
		return "", fmt.Errorf("geo: cannot marshal nil geometry")
	}

	raw, err := json.Marshal(geojson.NewGeometry(g))
	if err != nil {
		return "", fmt.Errorf("geo: marshal geometry: %w", err)
	}
	return string(raw), nil
}

// Unmarshal parses GeoJSON geometry text back into an orb geometry.
func Unmarshal(text string) (orb.Geometry, error) {
	g, err := geojson.UnmarshalGeometry([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("geo: parse geometry: %w", err)
	}
	return g.Geometry(), nil
}

// UnmarshalFeatureCollection parses a full GeoJSON feature collection, the
// format the field-survey exports arrive in.
func UnmarshalFeatureCollection(text string) (*geojson.FeatureCollection, error) {
	fc, err := geojson.UnmarshalFeatureCollection([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("geo: parse feature collection: %w", err)
	}
	return fc, nil
}
