package usecases

import (
	"context"

	"github.com/potluckhq/potluck/internal/application/potluck/dto"
	"github.com/potluckhq/potluck/internal/domain/potluck"
	"github.com/potluckhq/potluck/internal/shared/constants"
	"github.com/potluckhq/potluck/internal/shared/logger"
)

type AddItemCommand struct {
	Slug           string
	CategoryID     uint
	Name           string
	Description    string
	ClaimLimit     *int
	RequireDetails bool
}

// AddItemUseCase is the organizer path. Category max_items only bounds attendee-added items.
type AddItemUseCase struct {
	scope  *scopeResolver
	repo   potluck.ItemRepository
	logger logger.Interface
}

func NewAddItemUseCase(
	potluckRepo potluck.PotluckRepository,
	categoryRepo potluck.CategoryRepository,
	itemRepo potluck.ItemRepository,
	logger logger.Interface,
) *AddItemUseCase {
	return &AddItemUseCase{
		scope:  &scopeResolver{potlucks: potluckRepo, categories: categoryRepo},
		repo:   itemRepo,
		logger: logger,
	}
}

func (uc *AddItemUseCase) Execute(ctx context.Context, cmd AddItemCommand) (*dto.ItemDTO, error) {
	uc.logger.Infow("executing add item use case", "slug", cmd.Slug, "category_id", cmd.CategoryID)

	p, err := uc.scope.potluck(ctx, cmd.Slug)
	if err != nil {
		return nil, err
	}
	c, err := uc.scope.category(ctx, p, cmd.CategoryID)
	if err != nil {
		return nil, err
	}

	claimLimit := constants.DefaultClaimLimit
	if cmd.ClaimLimit != nil {
		claimLimit = *cmd.ClaimLimit
	}

	item, err := potluck.NewItem(c.ID(), cmd.Name, cmd.Description, claimLimit, cmd.RequireDetails, true)
	if err != nil {
		return nil, invalidInput(err)
	}

	if err := uc.repo.Create(ctx, item); err != nil {
		uc.logger.Errorw("failed to create item", "category_id", c.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("item created successfully", "item_id", item.ID(), "category_id", c.ID())
	result := dto.ToItemDTO(item)
	return &result, nil
}

type UpdateItemCommand struct {
	Slug           string
	ItemID         uint
	Name           *string
	Description    *string
	ClaimLimit     *int
	RequireDetails *bool
}

type UpdateItemUseCase struct {
	scope     *scopeResolver
	items     potluck.ItemRepository
	claims    potluck.ClaimRepository
	txManager TransactionManager
	logger    logger.Interface
}

func NewUpdateItemUseCase(
	potluckRepo potluck.PotluckRepository,
	categoryRepo potluck.CategoryRepository,
	itemRepo potluck.ItemRepository,
	claimRepo potluck.ClaimRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		scope:     &scopeResolver{potlucks: potluckRepo, categories: categoryRepo, items: itemRepo},
		items:     itemRepo,
		claims:    claimRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute locks the item so a concurrent claim cannot slip in between the
// claim count and a lowered claim_limit.
func (uc *UpdateItemUseCase) Execute(ctx context.Context, cmd UpdateItemCommand) (*dto.ItemDTO, error) {
	uc.logger.Infow("executing update item use case", "slug", cmd.Slug, "item_id", cmd.ItemID)

	var (
		updated *potluck.Item
		count   int64
	)
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		item, err := uc.scope.lockedItem(txCtx, cmd.Slug, cmd.ItemID)
		if err != nil {
			return err
		}

		count, err = uc.claims.CountByItemID(txCtx, item.ID())
		if err != nil {
			return err
		}

		name, description, claimLimit, requireDetails := item.Name(), item.Description(), item.ClaimLimit(), item.RequireDetails()
		if cmd.Name != nil {
			name = *cmd.Name
		}
		if cmd.Description != nil {
			description = *cmd.Description
		}
		if cmd.ClaimLimit != nil {
			claimLimit = *cmd.ClaimLimit
		}
		if cmd.RequireDetails != nil {
			requireDetails = *cmd.RequireDetails
		}

		if err := item.Update(name, description, claimLimit, requireDetails, count); err != nil {
			return invalidInput(err)
		}
		if err := uc.items.Update(txCtx, item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		if !isClientError(err) {
			uc.logger.Errorw("failed to update item", "item_id", cmd.ItemID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("item updated successfully", "item_id", updated.ID())
	result := dto.ToItemDTO(updated)
	result.ClaimCount = int(count)
	result.CanClaim = updated.CanClaim(count)
	return &result, nil
}

type DeleteItemUseCase struct {
	scope  *scopeResolver
	repo   potluck.ItemRepository
	logger logger.Interface
}

func NewDeleteItemUseCase(
	potluckRepo potluck.PotluckRepository,
	categoryRepo potluck.CategoryRepository,
	itemRepo potluck.ItemRepository,
	logger logger.Interface,
) *DeleteItemUseCase {
	return &DeleteItemUseCase{
		scope:  &scopeResolver{potlucks: potluckRepo, categories: categoryRepo, items: itemRepo},
		repo:   itemRepo,
		logger: logger,
	}
}

// Execute removes the item and its claims.
func (uc *DeleteItemUseCase) Execute(ctx context.Context, slug string, itemID uint) error {
	uc.logger.Infow("executing delete item use case", "slug", slug, "item_id", itemID)

	p, err := uc.scope.potluck(ctx, slug)
	if err != nil {
		return err
	}
	item, err := uc.scope.item(ctx, p, itemID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteCascade(ctx, item.ID()); err != nil {
		uc.logger.Errorw("failed to delete item", "item_id", item.ID(), "error", err)
		return err
	}

	uc.logger.Infow("item deleted successfully", "item_id", item.ID())
	return nil
}
