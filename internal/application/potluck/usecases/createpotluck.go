package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/potluckhq/potluck/internal/application/potluck/dto"
	"github.com/potluckhq/potluck/internal/domain/potluck"
	"github.com/potluckhq/potluck/internal/shared/constants"
	apperrors "github.com/potluckhq/potluck/internal/shared/errors"
	"github.com/potluckhq/potluck/internal/shared/id"
	"github.com/potluckhq/potluck/internal/shared/logger"
)

type CreatePotluckCommand struct {
	Name        string
	Description string
}

type CreatePotluckUseCase struct {
	potluckRepo potluck.PotluckRepository
	newSlug     id.SlugGenerator
	logger      logger.Interface
}

func NewCreatePotluckUseCase(
	potluckRepo potluck.PotluckRepository,
	newSlug id.SlugGenerator,
	logger logger.Interface,
) *CreatePotluckUseCase {
	if newSlug == nil {
		newSlug = id.NewSlug
	}
	return &CreatePotluckUseCase{
		potluckRepo: potluckRepo,
		newSlug:     newSlug,
		logger:      logger,
	}
}

// Execute creates the potluck under a fresh slug. A slug that is already stored,
// or that loses an insert race, is regenerated up to MaxSlugAttempts times.
func (uc *CreatePotluckUseCase) Execute(ctx context.Context, cmd CreatePotluckCommand) (*dto.PotluckDTO, error) {
	uc.logger.Infow("executing create potluck use case", "name", cmd.Name)

	for attempt := 1; attempt <= constants.MaxSlugAttempts; attempt++ {
		slug, err := uc.newSlug()
		if err != nil {
			uc.logger.Errorw("failed to generate slug", "error", err)
			return nil, fmt.Errorf("failed to generate slug: %w", err)
		}

		exists, err := uc.potluckRepo.ExistsBySlug(ctx, slug)
		if err != nil {
			uc.logger.Errorw("failed to check slug", "error", err)
			return nil, err
		}
		if exists {
			uc.logger.Warnw("slug collision, regenerating", "attempt", attempt)
			continue
		}

		p, err := potluck.NewPotluck(cmd.Name, cmd.Description, slug)
		if err != nil {
			return nil, invalidInput(err)
		}

		if err := uc.potluckRepo.Create(ctx, p); err != nil {
			if errors.Is(err, potluck.ErrSlugTaken) {
				uc.logger.Warnw("slug taken on insert, regenerating", "attempt", attempt)
				continue
			}
			uc.logger.Errorw("failed to create potluck", "error", err)
			return nil, err
		}

		uc.logger.Infow("potluck created successfully", "potluck_id", p.ID(), "slug", p.URLSlug())
		result := dto.ToPotluckDTO(p)
		return &result, nil
	}

	uc.logger.Errorw("exhausted slug attempts", "attempts", constants.MaxSlugAttempts)
	return nil, apperrors.NewInternalError("could not generate a unique potluck link")
}
