package geo

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	geometries := []orb.Geometry{
		orb.Point{-72.88, -13.63},
		orb.Polygon{{{-72.9, -13.6}, {-72.8, -13.6}, {-72.8, -13.7}, {-72.9, -13.6}}},
	}

	for _, g := range geometries {
		text, err := Marshal(g)
		if err != nil {
			t.Fatalf("Marshal(%v) failed: %v", g.GeoJSONType(), err)
		}

		parsed, err := Unmarshal(text)
		if err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if parsed.GeoJSONType() != g.GeoJSONType() {
			t.Errorf("Expected %s back, got %s", g.GeoJSONType(), parsed.GeoJSONType())
		}
	}
}

func TestMarshalNilGeometry(t *testing.T) {
	if _, err := Marshal(nil); err == nil {
		t.Error("Expected error for nil geometry")
	}
}

func TestUnmarshalRejectsMalformedText(t *testing.T) {
	for _, text := range []string{"", "{", `{"type":"Nope"}`} {
		if _, err := Unmarshal(text); err == nil {
			t.Errorf("Expected error for %q", text)
		}
	}
}

func TestUnmarshalFeatureCollection(t *testing.T) {
	fc, err := UnmarshalFeatureCollection(`{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature",
			 "geometry": {"type": "Point", "coordinates": [-72.88, -13.63]},
			 "properties": {"Especie": "Queñua", "N__Plant": 40}}
		]
	}`)
	if err != nil {
		t.Fatalf("UnmarshalFeatureCollection failed: %v", err)
	}

	if len(fc.Features) != 1 {
		t.Fatalf("Expected 1 feature, got %d", len(fc.Features))
	}
	if fc.Features[0].Properties["Especie"] != "Queñua" {
		t.Errorf("Expected property to survive parsing, got %v", fc.Features[0].Properties["Especie"])
	}

	if _, err := UnmarshalFeatureCollection("not geojson"); err == nil {
		t.Error("Expected error for malformed collection")
	}
}
