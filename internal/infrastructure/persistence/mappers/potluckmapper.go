package mappers

import (
	"fmt"

	"github.com/potluckhq/potluck/internal/domain/potluck"
	"github.com/potluckhq/potluck/internal/infrastructure/persistence/models"
	"github.com/potluckhq/potluck/internal/shared/mapper"
)

type PotluckMapper interface {
	ToEntity(model *models.PotluckModel) (*potluck.Potluck, error)
	ToModel(entity *potluck.Potluck) *models.PotluckModel
	ToEntities(models []*models.PotluckModel) ([]*potluck.Potluck, error)
}

type PotluckMapperImpl struct{}

func NewPotluckMapper() PotluckMapper {
	return &PotluckMapperImpl{}
}

func (m *PotluckMapperImpl) ToEntity(model *models.PotluckModel) (*potluck.Potluck, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := potluck.ReconstructPotluck(
		model.ID,
		model.Name,
		model.Description,
		model.URLSlug,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct potluck entity: %w", err)
	}
	return entity, nil
}

func (m *PotluckMapperImpl) ToModel(entity *potluck.Potluck) *models.PotluckModel {
	if entity == nil {
		return nil
	}
	return &models.PotluckModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		URLSlug:     entity.URLSlug(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *PotluckMapperImpl) ToEntities(modelList []*models.PotluckModel) ([]*potluck.Potluck, error) {
	return mapper.MapSliceWithError(modelList, m.ToEntity)
}
