package usecases

import (
	"context"

	"github.com/potluckhq/potluck/internal/application/potluck/dto"
	"github.com/potluckhq/potluck/internal/domain/potluck"
	"github.com/potluckhq/potluck/internal/shared/constants"
	"github.com/potluckhq/potluck/internal/shared/logger"
)

// AddCategoryCommand leaves MaxItems and DisplayOrder nil to take the defaults.
type AddCategoryCommand struct {
	Slug         string
	Name         string
	Description  string
	MaxItems     *int
	DisplayOrder *int
}

type AddCategoryUseCase struct {
	scope  *scopeResolver
	repo   potluck.CategoryRepository
	logger logger.Interface
}

func NewAddCategoryUseCase(
	potluckRepo potluck.PotluckRepository,
	categoryRepo potluck.CategoryRepository,
	logger logger.Interface,
) *AddCategoryUseCase {
	return &AddCategoryUseCase{
		scope:  &scopeResolver{potlucks: potluckRepo, categories: categoryRepo},
		repo:   categoryRepo,
		logger: logger,
	}
}

func (uc *AddCategoryUseCase) Execute(ctx context.Context, cmd AddCategoryCommand) (*dto.CategoryDTO, error) {
	uc.logger.Infow("executing add category use case", "slug", cmd.Slug, "name", cmd.Name)

	p, err := uc.scope.potluck(ctx, cmd.Slug)
	if err != nil {
		return nil, err
	}

	maxItems := constants.DefaultCategoryMaxItems
	if cmd.MaxItems != nil {
		maxItems = *cmd.MaxItems
	}
	displayOrder := 0
	if cmd.DisplayOrder != nil {
		displayOrder = *cmd.DisplayOrder
	}

	c, err := potluck.NewCategory(p.ID(), cmd.Name, cmd.Description, maxItems, displayOrder)
	if err != nil {
		return nil, invalidInput(err)
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create category", "potluck_id", p.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("category created successfully", "category_id", c.ID(), "potluck_id", p.ID())
	result := dto.ToCategoryDTO(c)
	result.CanAddItem = c.HasRoomForItem(0)
	return &result, nil
}

type UpdateCategoryCommand struct {
	Slug         string
	CategoryID   uint
	Name         *string
	Description  *string
	MaxItems     *int
	DisplayOrder *int
}

type UpdateCategoryUseCase struct {
	scope  *scopeResolver
	repo   potluck.CategoryRepository
	logger logger.Interface
}

func NewUpdateCategoryUseCase(
	potluckRepo potluck.PotluckRepository,
	categoryRepo potluck.CategoryRepository,
	logger logger.Interface,
) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		scope:  &scopeResolver{potlucks: potluckRepo, categories: categoryRepo},
		repo:   categoryRepo,
		logger: logger,
	}
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, cmd UpdateCategoryCommand) (*dto.CategoryDTO, error) {
	uc.logger.Infow("executing update category use case", "slug", cmd.Slug, "category_id", cmd.CategoryID)

	p, err := uc.scope.potluck(ctx, cmd.Slug)
	if err != nil {
		return nil, err
	}
	c, err := uc.scope.category(ctx, p, cmd.CategoryID)
	if err != nil {
		return nil, err
	}

	name, description, maxItems, displayOrder := c.Name(), c.Description(), c.MaxItems(), c.DisplayOrder()
	if cmd.Name != nil {
		name = *cmd.Name
	}
	if cmd.Description != nil {
		description = *cmd.Description
	}
	if cmd.MaxItems != nil {
		maxItems = *cmd.MaxItems
	}
	if cmd.DisplayOrder != nil {
		displayOrder = *cmd.DisplayOrder
	}

	if err := c.Update(name, description, maxItems, displayOrder); err != nil {
		return nil, invalidInput(err)
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update category", "category_id", c.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("category updated successfully", "category_id", c.ID())
	result := dto.ToCategoryDTO(c)
	return &result, nil
}

type DeleteCategoryUseCase struct {
	scope  *scopeResolver
	repo   potluck.CategoryRepository
	logger logger.Interface
}

func NewDeleteCategoryUseCase(
	potluckRepo potluck.PotluckRepository,
	categoryRepo potluck.CategoryRepository,
	logger logger.Interface,
) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		scope:  &scopeResolver{potlucks: potluckRepo, categories: categoryRepo},
		repo:   categoryRepo,
		logger: logger,
	}
}

// Execute removes the category with its items and their claims.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, slug string, categoryID uint) error {
	uc.logger.Infow("executing delete category use case", "slug", slug, "category_id", categoryID)

	p, err := uc.scope.potluck(ctx, slug)
	if err != nil {
		return err
	}
	c, err := uc.scope.category(ctx, p, categoryID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteCascade(ctx, c.ID()); err != nil {
		uc.logger.Errorw("failed to delete category", "category_id", c.ID(), "error", err)
		return err
	}

	uc.logger.Infow("category deleted successfully", "category_id", c.ID())
	return nil
}
