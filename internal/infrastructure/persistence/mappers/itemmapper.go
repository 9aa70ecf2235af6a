package mappers

import (
	"fmt"

	"github.com/potluckhq/potluck/internal/domain/potluck"
	"github.com/potluckhq/potluck/internal/infrastructure/persistence/models"
	"github.com/potluckhq/potluck/internal/shared/mapper"
)

type ItemMapper interface {
	ToEntity(model *models.ItemModel) (*potluck.Item, error)
	ToModel(entity *potluck.Item) *models.ItemModel
	ToEntities(models []*models.ItemModel) ([]*potluck.Item, error)
}

type ItemMapperImpl struct{}

func NewItemMapper() ItemMapper {
	return &ItemMapperImpl{}
}

func (m *ItemMapperImpl) ToEntity(model *models.ItemModel) (*potluck.Item, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := potluck.ReconstructItem(
		model.ID,
		model.CategoryID,
		model.Name,
		model.Description,
		model.ClaimLimit,
		model.CreatedByAdmin,
		model.RequireDetails,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct item entity: %w", err)
	}
	return entity, nil
}

func (m *ItemMapperImpl) ToModel(entity *potluck.Item) *models.ItemModel {
	if entity == nil {
		return nil
	}
	return &models.ItemModel{
		ID:             entity.ID(),
		CategoryID:     entity.CategoryID(),
		Name:           entity.Name(),
		Description:    entity.Description(),
		ClaimLimit:     entity.ClaimLimit(),
		CreatedByAdmin: entity.CreatedByAdmin(),
		RequireDetails: entity.RequireDetails(),
		CreatedAt:      entity.CreatedAt(),
	}
}

func (m *ItemMapperImpl) ToEntities(modelList []*models.ItemModel) ([]*potluck.Item, error) {
	return mapper.MapSliceWithError(modelList, m.ToEntity)
}
