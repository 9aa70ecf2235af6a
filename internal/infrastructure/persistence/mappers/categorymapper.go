package mappers

import (
	"fmt"

	"github.com/potluckhq/potluck/internal/domain/potluck"
	"github.com/potluckhq/potluck/internal/infrastructure/persistence/models"
	"github.com/potluckhq/potluck/internal/shared/mapper"
)

type CategoryMapper interface {
	ToEntity(model *models.CategoryModel) (*potluck.Category, error)
	ToModel(entity *potluck.Category) *models.CategoryModel
	ToEntities(models []*models.CategoryModel) ([]*potluck.Category, error)
}

type CategoryMapperImpl struct{}

func NewCategoryMapper() CategoryMapper {
	return &CategoryMapperImpl{}
}

func (m *CategoryMapperImpl) ToEntity(model *models.CategoryModel) (*potluck.Category, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := potluck.ReconstructCategory(
		model.ID,
		model.PotluckID,
		model.Name,
		model.Description,
		model.MaxItems,
		model.DisplayOrder,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct category entity: %w", err)
	}
	return entity, nil
}

func (m *CategoryMapperImpl) ToModel(entity *potluck.Category) *models.CategoryModel {
	if entity == nil {
		return nil
	}
	return &models.CategoryModel{
		ID:           entity.ID(),
		PotluckID:    entity.PotluckID(),
		Name:         entity.Name(),
		Description:  entity.Description(),
		MaxItems:     entity.MaxItems(),
		DisplayOrder: entity.DisplayOrder(),
	}
}

func (m *CategoryMapperImpl) ToEntities(modelList []*models.CategoryModel) ([]*potluck.Category, error) {
	return mapper.MapSliceWithError(modelList, m.ToEntity)
}
