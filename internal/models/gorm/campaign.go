package gorm

import (
	"time"

	"github.com/shopspring/decimal"
)

type Campaign struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;size:50;not null"`
	Year        string    `gorm:"column:year;size:15;not null"`
	ProcessDate time.Time `gorm:"column:process_date;not null"`

	// Relationships
	Details []CampaignDetail `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

type CampaignDetail struct {
	ID            int64           `gorm:"column:id;primaryKey;autoIncrement"`
	CampaignID    int64           `gorm:"column:campaign_id;not null;index"`
	SpeciesID     int64           `gorm:"column:species_id;not null;index"`
	StandID       int64           `gorm:"column:stand_id;not null;index"`
	ActivityType  string          `gorm:"column:activity_type;size:15;not null"`
	ActivityState string          `gorm:"column:activity_state;size:15;not null"`
	ActivityDate  *time.Time      `gorm:"column:activity_date"`
	ElementCount  int64           `gorm:"column:element_count"`
	Mortality     *int64          `gorm:"column:mortality"`
	StandValue    decimal.Decimal `gorm:"column:stand_value;type:decimal(18,6)"`
	Agroforestry  decimal.Decimal `gorm:"column:agroforestry;type:decimal(18,6)"`

	// Relationships
	Campaign Campaign `gorm:"foreignKey:CampaignID"`
	Species  Species  `gorm:"foreignKey:SpeciesID"`
	Stand    Stand    `gorm:"foreignKey:StandID"`
}

func (CampaignDetail) TableName() string {
	return "campaign_details"
}
