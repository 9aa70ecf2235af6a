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

type ClaimRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ClaimMapper
}

func NewClaimRepository(gdb *gorm.DB) potluck.ClaimRepository {
	return &ClaimRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewClaimMapper(),
	}
}

func (r *ClaimRepositoryImpl) Create(ctx context.Context, c *potluck.Claim) error {
	model := r.mapper.ToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create claim: %w", err)
	}
	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set claim ID: %w", err)
	}
	return nil
}

func (r *ClaimRepositoryImpl) Update(ctx context.Context, c *potluck.Claim) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ClaimModel{}).
		Where("id = ?", c.ID()).
		Updates(map[string]any{
			"attendee_name": c.AttendeeName(),
			"item_details":  c.ItemDetails(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update claim: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("claim not found")
	}
	return nil
}

func (r *ClaimRepositoryImpl) GetByID(ctx context.Context, id uint) (*potluck.Claim, error) {
	var model models.ClaimModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ClaimRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ClaimModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete claim: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("claim not found")
	}
	return nil
}

func (r *ClaimRepositoryImpl) ListByItemIDs(ctx context.Context, itemIDs []uint) ([]*potluck.Claim, error) {
	if len(itemIDs) == 0 {
		return []*potluck.Claim{}, nil
	}

	var modelList []*models.ClaimModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("item_id IN ?", itemIDs).
		Order("claimed_at ASC, id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map claim models to entities: %w", err)
	}
	return entities, nil
}

func (r *ClaimRepositoryImpl) CountByItemID(ctx context.Context, itemID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ClaimModel{}).
		Where("item_id = ?", itemID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count claims: %w", err)
	}
	return count, nil
}
