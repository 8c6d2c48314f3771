package entities

import (
	"github.com/shopspring/decimal"

	"bloomwatch/reforesta/internal/geo"
)

// Stand is a georeferenced forest parcel (macizo forestal). Easting and
// northing identify the stand during imports; the geometry column holds the
// surveyed footprint as GeoJSON.
type Stand struct {
	ID           int64           `db:"id"`
	Department   string          `db:"department"`
	Province     string          `db:"province"`
	District     string          `db:"district"`
	Locality     string          `db:"locality"`
	AreaHectares decimal.Decimal `db:"area_hectares"`
	Easting      decimal.Decimal `db:"easting"`
	Northing     decimal.Decimal `db:"northing"`
	Geometry     geo.Geometry    `db:"geometry"`
}
