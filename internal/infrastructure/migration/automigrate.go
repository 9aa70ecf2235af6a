package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/potluckhq/potluck/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every table in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PotluckModel{},
		&models.CategoryModel{},
		&models.ItemModel{},
		&models.ClaimModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the GORM models.
// Used for tests and `server --auto-migrate`.
type GormAutoMigrateStrategy struct{}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
