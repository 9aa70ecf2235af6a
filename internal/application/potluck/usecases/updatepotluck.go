package usecases

import (
	"context"

	"github.com/potluckhq/potluck/internal/application/potluck/dto"
	"github.com/potluckhq/potluck/internal/domain/potluck"
	"github.com/potluckhq/potluck/internal/shared/logger"
)

// UpdatePotluckCommand applies only the fields that are set.
type UpdatePotluckCommand struct {
	Slug        string
	Name        *string
	Description *string
}

type UpdatePotluckUseCase struct {
	scope  *scopeResolver
	repo   potluck.PotluckRepository
	logger logger.Interface
}

func NewUpdatePotluckUseCase(potluckRepo potluck.PotluckRepository, logger logger.Interface) *UpdatePotluckUseCase {
	return &UpdatePotluckUseCase{
		scope:  &scopeResolver{potlucks: potluckRepo},
		repo:   potluckRepo,
		logger: logger,
	}
}

func (uc *UpdatePotluckUseCase) Execute(ctx context.Context, cmd UpdatePotluckCommand) (*dto.PotluckDTO, error) {
	uc.logger.Infow("executing update potluck use case", "slug", cmd.Slug)

	p, err := uc.scope.potluck(ctx, cmd.Slug)
	if err != nil {
		return nil, err
	}

	name, description := p.Name(), p.Description()
	if cmd.Name != nil {
		name = *cmd.Name
	}
	if cmd.Description != nil {
		description = *cmd.Description
	}
	if err := p.Update(name, description); err != nil {
		return nil, invalidInput(err)
	}

	if err := uc.repo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update potluck", "potluck_id", p.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("potluck updated successfully", "potluck_id", p.ID())
	result := dto.ToPotluckDTO(p)
	return &result, nil
}
