package models

import (
	"time"

	"github.com/potluckhq/potluck/internal/shared/constants"
)

// PotluckModel is the root row. Children are declared so AutoMigrate emits
// ON DELETE CASCADE foreign keys; they are never preloaded.
type PotluckModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	URLSlug     string `gorm:"column:url_slug;size:64;not null;uniqueIndex"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categories []CategoryModel `gorm:"foreignKey:PotluckID;constraint:OnDelete:CASCADE"`
}

func (PotluckModel) TableName() string {
	return constants.TablePotlucks
}
