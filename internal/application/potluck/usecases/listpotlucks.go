package usecases

import (
	"context"

	"github.com/potluckhq/potluck/internal/application/potluck/dto"
	"github.com/potluckhq/potluck/internal/domain/potluck"
	"github.com/potluckhq/potluck/internal/shared/logger"
	"github.com/potluckhq/potluck/internal/shared/mapper"
)

type ListPotlucksUseCase struct {
	repo   potluck.PotluckRepository
	logger logger.Interface
}

func NewListPotlucksUseCase(potluckRepo potluck.PotluckRepository, logger logger.Interface) *ListPotlucksUseCase {
	return &ListPotlucksUseCase{
		repo:   potluckRepo,
		logger: logger,
	}
}

// Execute returns the admin dashboard: potlucks newest first with child counts.
func (uc *ListPotlucksUseCase) Execute(ctx context.Context) (*dto.DashboardDTO, error) {
	uc.logger.Debugw("executing list potlucks use case")

	potlucks, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list potlucks", "error", err)
		return nil, err
	}

	ids := mapper.MapSlice(potlucks, func(p *potluck.Potluck) uint { return p.ID() })
	stats, err := uc.repo.Stats(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load potluck stats", "error", err)
		return nil, err
	}

	result := &dto.DashboardDTO{Potlucks: make([]dto.PotluckSummaryDTO, 0, len(potlucks))}
	for _, p := range potlucks {
		s := stats[p.ID()]
		result.Potlucks = append(result.Potlucks, dto.PotluckSummaryDTO{
			PotluckDTO:    dto.ToPotluckDTO(p),
			CategoryCount: s.CategoryCount,
			ItemCount:     s.ItemCount,
			ClaimCount:    s.ClaimCount,
		})
		result.TotalClaims += s.ClaimCount
	}
	return result, nil
}
