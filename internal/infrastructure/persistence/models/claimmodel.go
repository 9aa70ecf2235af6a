package models

import (
	"time"

	"github.com/potluckhq/potluck/internal/shared/constants"
)

type ClaimModel struct {
	ID           uint      `gorm:"primaryKey"`
	ItemID       uint      `gorm:"not null;index"`
	AttendeeName string    `gorm:"size:200;not null"`
	ItemDetails  string    `gorm:"size:500"`
	SessionID    *string   `gorm:"size:64;index"`
	ClaimedAt    time.Time `gorm:"not null"`
}

func (ClaimModel) TableName() string {
	return constants.TableClaims
}
