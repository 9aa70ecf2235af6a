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

type ItemRepositoryImpl struct {
	db     *gorm.DB
	txMgr  *db.TransactionManager
	mapper mappers.ItemMapper
}

func NewItemRepository(gdb *gorm.DB) potluck.ItemRepository {
	return &ItemRepositoryImpl{
		db:     gdb,
		txMgr:  db.NewTransactionManager(gdb),
		mapper: mappers.NewItemMapper(),
	}
}

func (r *ItemRepositoryImpl) Create(ctx context.Context, i *potluck.Item) error {
	model := r.mapper.ToModel(i)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	if err := i.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set item ID: %w", err)
	}
	return nil
}

func (r *ItemRepositoryImpl) Update(ctx context.Context, i *potluck.Item) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ItemModel{}).
		Where("id = ?", i.ID()).
		Updates(map[string]any{
			"name":            i.Name(),
			"description":     i.Description(),
			"claim_limit":     i.ClaimLimit(),
			"require_details": i.RequireDetails(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("item not found")
	}
	return nil
}

func (r *ItemRepositoryImpl) GetByID(ctx context.Context, id uint) (*potluck.Item, error) {
	return r.get(db.GetTxFromContext(ctx, r.db), id)
}

func (r *ItemRepositoryImpl) GetByIDForUpdate(ctx context.Context, id uint) (*potluck.Item, error) {
	return r.get(db.ForUpdate(db.GetTxFromContext(ctx, r.db)), id)
}

func (r *ItemRepositoryImpl) get(q *gorm.DB, id uint) (*potluck.Item, error) {
	var model models.ItemModel
	if err := q.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ItemRepositoryImpl) ListByCategoryIDs(ctx context.Context, categoryIDs []uint) ([]*potluck.Item, error) {
	if len(categoryIDs) == 0 {
		return []*potluck.Item{}, nil
	}

	var modelList []*models.ItemModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("category_id IN ?", categoryIDs).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map item models to entities: %w", err)
	}
	return entities, nil
}

func (r *ItemRepositoryImpl) CountByCategoryID(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ItemModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}

func (r *ItemRepositoryImpl) DeleteCascade(ctx context.Context, id uint) error {
	return r.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		tx := db.GetTxFromContext(ctx, r.db)

		if err := tx.Where("item_id = ?", id).Delete(&models.ClaimModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete claims: %w", err)
		}

		result := tx.Delete(&models.ItemModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete item: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("item not found")
		}
		return nil
	})
}
