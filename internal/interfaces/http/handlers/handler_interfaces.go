package handlers

import (
	"context"

	authUsecases "github.com/potluckhq/potluck/internal/application/auth/usecases"
	"github.com/potluckhq/potluck/internal/application/potluck/dto"
	"github.com/potluckhq/potluck/internal/application/potluck/usecases"
)

// Use case interfaces - enable handler unit tests with mocks.

type loginAdminUseCase interface {
	Execute(ctx context.Context, cmd authUsecases.LoginAdminCommand) (*authUsecases.LoginAdminResult, error)
}

type logoutAdminUseCase interface {
	Execute(ctx context.Context, cmd authUsecases.LogoutAdminCommand) error
}

type createPotluckUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePotluckCommand) (*dto.PotluckDTO, error)
}

type updatePotluckUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePotluckCommand) (*dto.PotluckDTO, error)
}

type deleteBySlugUseCase interface {
	Execute(ctx context.Context, slug string) error
}

type getPotluckUseCase interface {
	Execute(ctx context.Context, query usecases.GetPotluckQuery) (*dto.PotluckTreeDTO, error)
}

type listPotlucksUseCase interface {
	Execute(ctx context.Context) (*dto.DashboardDTO, error)
}

type addCategoryUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddCategoryCommand) (*dto.CategoryDTO, error)
}

type updateCategoryUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateCategoryCommand) (*dto.CategoryDTO, error)
}

// deleteChildUseCase removes a category, item or claim addressed by id within a potluck.
type deleteChildUseCase interface {
	Execute(ctx context.Context, slug string, id uint) error
}

type addItemUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddItemCommand) (*dto.ItemDTO, error)
}

type updateItemUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateItemCommand) (*dto.ItemDTO, error)
}

type updateClaimUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateClaimCommand) (*dto.ClaimDTO, error)
}

type claimItemUseCase interface {
	Execute(ctx context.Context, cmd usecases.ClaimItemCommand) (*dto.ClaimDTO, error)
}

type deleteOwnClaimUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteOwnClaimCommand) error
}

type addAttendeeItemUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddAttendeeItemCommand) (*dto.ItemDTO, error)
}
