package gorm

import "github.com/shopspring/decimal"

// Stand mirrors the forest_stands table for the CRUD/listing path. The
// geometry column holds GeoJSON text so the model stays portable across
// postgres and the in-memory sqlite used by tests.
type Stand struct {
	ID           int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Department   string          `gorm:"column:department;size:20"`
	Province     string          `gorm:"column:province;size:35"`
	District     string          `gorm:"column:district;size:35"`
	Locality     string          `gorm:"column:locality;size:35"`
	AreaHectares decimal.Decimal `gorm:"column:area_hectares;type:decimal(18,6)"`
	Easting      decimal.Decimal `gorm:"column:easting;type:decimal(18,6)"`
	Northing     decimal.Decimal `gorm:"column:northing;type:decimal(18,6)"`
	Geometry     *string         `gorm:"column:geometry"`
}

func (Stand) TableName() string {
	return "forest_stands"
}
