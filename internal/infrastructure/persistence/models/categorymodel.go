package models

import "github.com/potluckhq/potluck/internal/shared/constants"

type CategoryModel struct {
	ID           uint   `gorm:"primaryKey"`
	PotluckID    uint   `gorm:"not null;index"`
	Name         string `gorm:"size:200;not null"`
	Description  string `gorm:"type:text"`
	MaxItems     int    `gorm:"not null;default:10"`
	DisplayOrder int    `gorm:"not null;default:0"`

	Items []ItemModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (CategoryModel) TableName() string {
	return constants.TableCategories
}
