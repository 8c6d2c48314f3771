package geo

import (
	"database/sql/driver"
	"fmt"

	"github.com/paulmach/orb"
)

// Geometry stores an orb geometry in a GeoJSON text/jsonb column. A nil
// inner geometry maps to SQL NULL both ways.
type Geometry struct {
	orb.Geometry
}

func (g Geometry) Value() (driver.Value, error) {
	if g.Geometry == nil {
		return nil, nil
	}
	text, err := Marshal(g.Geometry)
	if err != nil {
		return nil, err
	}
	return text, nil
}

func (g *Geometry) Scan(src any) error {
	if src == nil {
		g.Geometry = nil
		return nil
	}

	var text string
	switch v := src.(type) {
	case []byte:
		text = string(v)
	case string:
		text = v
	default:
		return fmt.Errorf("geo: cannot scan %T into Geometry", src)
	}

	parsed, err := Unmarshal(text)
	if err != nil {
		return err
	}
	g.Geometry = parsed
	return nil
}
