package models

import (
	"time"

	"github.com/potluckhq/potluck/internal/shared/constants"
)

type ItemModel struct {
	ID             uint   `gorm:"primaryKey"`
	CategoryID     uint   `gorm:"not null;index"`
	Name           string `gorm:"size:200;not null"`
	Description    string `gorm:"type:text"`
	ClaimLimit     int    `gorm:"not null;default:1"`
	CreatedByAdmin bool   `gorm:"not null"` // no gorm default: a false value must reach the insert
	RequireDetails bool   `gorm:"not null"`
	CreatedAt      time.Time

	Claims []ClaimModel `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

func (ItemModel) TableName() string {
	return constants.TableItems
}
