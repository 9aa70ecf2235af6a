package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/potluckhq/potluck/internal/domain/potluck"
	"github.com/potluckhq/potluck/internal/infrastructure/persistence/mappers"
	"github.com/potluckhq/potluck/internal/infrastructure/persistence/models"
	"github.com/potluckhq/potluck/internal/shared/db"
	apperrors "github.com/potluckhq/potluck/internal/shared/errors"
)

type PotluckRepositoryImpl struct {
	db     *gorm.DB
	txMgr  *db.TransactionManager
	mapper mappers.PotluckMapper
}

func NewPotluckRepository(gdb *gorm.DB) potluck.PotluckRepository {
	return &PotluckRepositoryImpl{
		db:     gdb,
		txMgr:  db.NewTransactionManager(gdb),
		mapper: mappers.NewPotluckMapper(),
	}
}

func (r *PotluckRepositoryImpl) Create(ctx context.Context, p *potluck.Potluck) error {
	model := r.mapper.ToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || apperrors.IsDuplicateError(err) {
			return potluck.ErrSlugTaken
		}
		return fmt.Errorf("failed to create potluck: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set potluck ID: %w", err)
	}
	return nil
}

func (r *PotluckRepositoryImpl) Update(ctx context.Context, p *potluck.Potluck) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PotluckModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]any{
			"name":        p.Name(),
			"description": p.Description(),
			"updated_at":  p.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update potluck: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("potluck not found")
	}
	return nil
}

func (r *PotluckRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*potluck.Potluck, error) {
	var model models.PotluckModel
	if err := db.GetTxFromContext(ctx, r.db).Where("url_slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get potluck by slug: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *PotluckRepositoryImpl) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PotluckModel{}).
		Where("url_slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check potluck slug: %w", err)
	}
	return count > 0, nil
}

func (r *PotluckRepositoryImpl) List(ctx context.Context) ([]*potluck.Potluck, error) {
	var modelList []*models.PotluckModel
	if err := db.GetTxFromContext(ctx, r.db).
		Order("created_at DESC, id DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list potlucks: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map potluck models to entities: %w", err)
	}
	return entities, nil
}

type countRow struct {
	PotluckID uint
	Total     int64
}

// Stats counts children per potluck with three grouped queries.
func (r *PotluckRepositoryImpl) Stats(ctx context.Context, potluckIDs []uint) (map[uint]potluck.PotluckStats, error) {
	stats := make(map[uint]potluck.PotluckStats, len(potluckIDs))
	if len(potluckIDs) == 0 {
		return stats, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	var categoryCounts, itemCounts, claimCounts []countRow

	if err := tx.Model(&models.CategoryModel{}).
		Select("potluck_id, COUNT(*) AS total").
		Where("potluck_id IN ?", potluckIDs).
		Group("potluck_id").
		Scan(&categoryCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	if err := tx.Model(&models.ItemModel{}).
		Select("categories.potluck_id AS potluck_id, COUNT(*) AS total").
		Joins("JOIN categories ON categories.id = items.category_id").
		Where("categories.potluck_id IN ?", potluckIDs).
		Group("categories.potluck_id").
		Scan(&itemCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	if err := tx.Model(&models.ClaimModel{}).
		Select("categories.potluck_id AS potluck_id, COUNT(*) AS total").
		Joins("JOIN items ON items.id = claims.item_id").
		Joins("JOIN categories ON categories.id = items.category_id").
		Where("categories.potluck_id IN ?", potluckIDs).
		Group("categories.potluck_id").
		Scan(&claimCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count claims: %w", err)
	}

	for _, id := range potluckIDs {
		stats[id] = potluck.PotluckStats{}
	}
	for _, row := range categoryCounts {
		s := stats[row.PotluckID]
		s.CategoryCount = row.Total
		stats[row.PotluckID] = s
	}
	for _, row := range itemCounts {
		s := stats[row.PotluckID]
		s.ItemCount = row.Total
		stats[row.PotluckID] = s
	}
	for _, row := range claimCounts {
		s := stats[row.PotluckID]
		s.ClaimCount = row.Total
		stats[row.PotluckID] = s
	}
	return stats, nil
}

// DeleteCascade removes claims, items, categories and finally the potluck in one transaction.
// The schema carries ON DELETE CASCADE as well; the explicit order keeps engines without
// enforced foreign keys free of orphans.
func (r *PotluckRepositoryImpl) DeleteCascade(ctx context.Context, id uint) error {
	return r.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := db.GetTxFromContext(ctx, r.db)

		categoryIDs := tx.Model(&models.CategoryModel{}).Select("id").Where("potluck_id = ?", id)
		itemIDs := tx.Model(&models.ItemModel{}).Select("id").Where("category_id IN (?)", categoryIDs)

		if err := tx.Where("item_id IN (?)", itemIDs).Delete(&models.ClaimModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete claims: %w", err)
		}
		if err := tx.Where("category_id IN (?)", categoryIDs).Delete(&models.ItemModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete items: %w", err)
		}
		if err := tx.Where("potluck_id = ?", id).Delete(&models.CategoryModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete categories: %w", err)
		}

		result := tx.Delete(&models.PotluckModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete potluck: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("potluck not found")
		}
		return nil
	})
}
