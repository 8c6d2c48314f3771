package gorm

type Species struct {
	ID         int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name       string  `gorm:"column:name;size:100;not null"`
	CommonName *string `gorm:"column:common_name;size:100"`
	Image      []byte  `gorm:"column:image"`
}

func (Species) TableName() string {
	return "plant_species"
}
