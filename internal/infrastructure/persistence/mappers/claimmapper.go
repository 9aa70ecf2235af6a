package mappers

import (
	"fmt"

	"github.com/potluckhq/potluck/internal/domain/potluck"
	"github.com/potluckhq/potluck/internal/infrastructure/persistence/models"
	"github.com/potluckhq/potluck/internal/shared/mapper"
)

type ClaimMapper interface {
	ToEntity(model *models.ClaimModel) (*potluck.Claim, error)
	ToModel(entity *potluck.Claim) *models.ClaimModel
	ToEntities(models []*models.ClaimModel) ([]*potluck.Claim, error)
}

type ClaimMapperImpl struct{}

func NewClaimMapper() ClaimMapper {
	return &ClaimMapperImpl{}
}

func (m *ClaimMapperImpl) ToEntity(model *models.ClaimModel) (*potluck.Claim, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := potluck.ReconstructClaim(
		model.ID,
		model.ItemID,
		model.AttendeeName,
		model.ItemDetails,
		model.SessionID,
		model.ClaimedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct claim entity: %w", err)
	}
	return entity, nil
}

func (m *ClaimMapperImpl) ToModel(entity *potluck.Claim) *models.ClaimModel {
	if entity == nil {
		return nil
	}
	return &models.ClaimModel{
		ID:           entity.ID(),
		ItemID:       entity.ItemID(),
		AttendeeName: entity.AttendeeName(),
		ItemDetails:  entity.ItemDetails(),
		SessionID:    entity.SessionID(),
		ClaimedAt:    entity.ClaimedAt(),
	}
}

func (m *ClaimMapperImpl) ToEntities(modelList []*models.ClaimModel) ([]*potluck.Claim, error) {
	return mapper.MapSliceWithError(modelList, m.ToEntity)
}
