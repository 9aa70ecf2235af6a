package usecases

import (
	"context"

	"github.com/potluckhq/potluck/internal/domain/potluck"
	"github.com/potluckhq/potluck/internal/shared/logger"
)

type DeletePotluckUseCase struct {
	scope  *scopeResolver
	repo   potluck.PotluckRepository
	logger logger.Interface
}

func NewDeletePotluckUseCase(potluckRepo potluck.PotluckRepository, logger logger.Interface) *DeletePotluckUseCase {
	return &DeletePotluckUseCase{
		scope:  &scopeResolver{potlucks: potluckRepo},
		repo:   potluckRepo,
		logger: logger,
	}
}

// Execute removes the potluck together with every category, item and claim under it.
func (uc *DeletePotluckUseCase) Execute(ctx context.Context, slug string) error {
	uc.logger.Infow("executing delete potluck use case", "slug", slug)

	p, err := uc.scope.potluck(ctx, slug)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteCascade(ctx, p.ID()); err != nil {
		uc.logger.Errorw("failed to delete potluck", "potluck_id", p.ID(), "error", err)
		return err
	}

	uc.logger.Infow("potluck deleted successfully", "potluck_id", p.ID())
	return nil
}
