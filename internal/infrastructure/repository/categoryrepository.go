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

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	txMgr  *db.TransactionManager
	mapper mappers.CategoryMapper
}

func NewCategoryRepository(gdb *gorm.DB) potluck.CategoryRepository {
	return &CategoryRepositoryImpl{
		db:     gdb,
		txMgr:  db.NewTransactionManager(gdb),
		mapper: mappers.NewCategoryMapper(),
	}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, c *potluck.Category) error {
	model := r.mapper.ToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set category ID: %w", err)
	}
	return nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, c *potluck.Category) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CategoryModel{}).
		Where("id = ?", c.ID()).
		Updates(map[string]any{
			"name":          c.Name(),
			"description":   c.Description(),
			"max_items":     c.MaxItems(),
			"display_order": c.DisplayOrder(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("category not found")
	}
	return nil
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uint) (*potluck.Category, error) {
	return r.get(db.GetTxFromContext(ctx, r.db), id)
}

func (r *CategoryRepositoryImpl) GetByIDForUpdate(ctx context.Context, id uint) (*potluck.Category, error) {
	return r.get(db.ForUpdate(db.GetTxFromContext(ctx, r.db)), id)
}

func (r *CategoryRepositoryImpl) get(q *gorm.DB, id uint) (*potluck.Category, error) {
	var model models.CategoryModel
	if err := q.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *CategoryRepositoryImpl) ListByPotluckID(ctx context.Context, potluckID uint) ([]*potluck.Category, error) {
	var modelList []*models.CategoryModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("potluck_id = ?", potluckID).
		Order("display_order ASC, id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map category models to entities: %w", err)
	}
	return entities, nil
}

func (r *CategoryRepositoryImpl) DeleteCascade(ctx context.Context, id uint) error {
	return r.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := db.GetTxFromContext(ctx, r.db)

		itemIDs := tx.Model(&models.ItemModel{}).Select("id").Where("category_id = ?", id)
		if err := tx.Where("item_id IN (?)", itemIDs).Delete(&models.ClaimModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete claims: %w", err)
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.ItemModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete items: %w", err)
		}

		result := tx.Delete(&models.CategoryModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("category not found")
		}
		return nil
	})
}
