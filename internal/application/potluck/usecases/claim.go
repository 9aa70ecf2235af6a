package usecases

import (
	"context"

	"github.com/potluckhq/potluck/internal/application/potluck/dto"
	"github.com/potluckhq/potluck/internal/domain/potluck"
	"github.com/potluckhq/potluck/internal/shared/logger"
)

type ClaimItemCommand struct {
	Slug         string
	ItemID       uint
	AttendeeName string
	ItemDetails  string
	// SessionID is the browser session cookie; empty leaves the claim admin-removable only.
	SessionID string
}

type ClaimItemUseCase struct {
	scope     *scopeResolver
	claims    potluck.ClaimRepository
	txManager TransactionManager
	renderer  TextRenderer
	logger    logger.Interface
}

func NewClaimItemUseCase(
	potluckRepo potluck.PotluckRepository,
	categoryRepo potluck.CategoryRepository,
	itemRepo potluck.ItemRepository,
	claimRepo potluck.ClaimRepository,
	txManager TransactionManager,
	renderer TextRenderer,
	logger logger.Interface,
) *ClaimItemUseCase {
	return &ClaimItemUseCase{
		scope:     &scopeResolver{potlucks: potluckRepo, categories: categoryRepo, items: itemRepo},
		claims:    claimRepo,
		txManager: txManager,
		renderer:  renderer,
		logger:    logger,
	}
}

// Execute runs admission in one transaction: lock the item first, validate the
// claimant, check details, count, insert, then recount. A recount above
// claim_limit rolls the insert back so no interleaving can overshoot.
func (uc *ClaimItemUseCase) Execute(ctx context.Context, cmd ClaimItemCommand) (*dto.ClaimDTO, error) {
	uc.logger.Infow("executing claim item use case", "slug", cmd.Slug, "item_id", cmd.ItemID)

	var sessionID *string
	if cmd.SessionID != "" {
		sid := cmd.SessionID
		sessionID = &sid
	}

	var created *potluck.Claim
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		item, err := uc.scope.lockedItem(txCtx, cmd.Slug, cmd.ItemID)
		if err != nil {
			return err
		}

		claim, err := potluck.NewClaim(
			item.ID(),
			uc.renderer.StripTags(cmd.AttendeeName),
			uc.renderer.StripTags(cmd.ItemDetails),
			sessionID,
		)
		if err != nil {
			return invalidInput(err)
		}
		if err := item.CheckClaimDetails(claim.ItemDetails()); err != nil {
			return translateDomainError(err)
		}

		count, err := uc.claims.CountByItemID(txCtx, item.ID())
		if err != nil {
			return err
		}
		if !item.CanClaim(count) {
			return translateDomainError(potluck.ErrItemFull)
		}

		if err := uc.claims.Create(txCtx, claim); err != nil {
			return err
		}

		after, err := uc.claims.CountByItemID(txCtx, item.ID())
		if err != nil {
			return err
		}
		if after > int64(item.ClaimLimit()) {
			return translateDomainError(potluck.ErrItemFull)
		}

		created = claim
		return nil
	})
	if err != nil {
		if isClientError(err) {
			uc.logger.Warnw("claim rejected", "item_id", cmd.ItemID, "error", err)
		} else {
			uc.logger.Errorw("failed to claim item", "item_id", cmd.ItemID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("item claimed successfully", "claim_id", created.ID(), "item_id", cmd.ItemID)
	result := dto.ToClaimDTO(created, cmd.SessionID)
	return &result, nil
}

type UpdateClaimCommand struct {
	Slug         string
	ClaimID      uint
	AttendeeName *string
	ItemDetails  *string
}

type UpdateClaimUseCase struct {
	scope    *scopeResolver
	claims   potluck.ClaimRepository
	renderer TextRenderer
	logger   logger.Interface
}

func NewUpdateClaimUseCase(
	potluckRepo potluck.PotluckRepository,
	categoryRepo potluck.CategoryRepository,
	itemRepo potluck.ItemRepository,
	claimRepo potluck.ClaimRepository,
	renderer TextRenderer,
	logger logger.Interface,
) *UpdateClaimUseCase {
	return &UpdateClaimUseCase{
		scope:    &scopeResolver{potlucks: potluckRepo, categories: categoryRepo, items: itemRepo, claims: claimRepo},
		claims:   claimRepo,
		renderer: renderer,
		logger:   logger,
	}
}

func (uc *UpdateClaimUseCase) Execute(ctx context.Context, cmd UpdateClaimCommand) (*dto.ClaimDTO, error) {
	uc.logger.Infow("executing update claim use case", "slug", cmd.Slug, "claim_id", cmd.ClaimID)

	p, err := uc.scope.potluck(ctx, cmd.Slug)
	if err != nil {
		return nil, err
	}
	claim, err := uc.scope.claim(ctx, p, cmd.ClaimID)
	if err != nil {
		return nil, err
	}

	name, details := claim.AttendeeName(), claim.ItemDetails()
	if cmd.AttendeeName != nil {
		name = uc.renderer.StripTags(*cmd.AttendeeName)
	}
	if cmd.ItemDetails != nil {
		details = uc.renderer.StripTags(*cmd.ItemDetails)
	}
	if err := claim.Update(name, details); err != nil {
		return nil, invalidInput(err)
	}

	if err := uc.claims.Update(ctx, claim); err != nil {
		uc.logger.Errorw("failed to update claim", "claim_id", claim.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("claim updated successfully", "claim_id", claim.ID())
	result := dto.ToClaimDTO(claim, "")
	return &result, nil
}

type DeleteClaimUseCase struct {
	scope  *scopeResolver
	claims potluck.ClaimRepository
	logger logger.Interface
}

func NewDeleteClaimUseCase(
	potluckRepo potluck.PotluckRepository,
	categoryRepo potluck.CategoryRepository,
	itemRepo potluck.ItemRepository,
	claimRepo potluck.ClaimRepository,
	logger logger.Interface,
) *DeleteClaimUseCase {
	return &DeleteClaimUseCase{
		scope:  &scopeResolver{potlucks: potluckRepo, categories: categoryRepo, items: itemRepo, claims: claimRepo},
		claims: claimRepo,
		logger: logger,
	}
}

// Execute is the organizer path and removes any claim in the potluck.
func (uc *DeleteClaimUseCase) Execute(ctx context.Context, slug string, claimID uint) error {
	uc.logger.Infow("executing delete claim use case", "slug", slug, "claim_id", claimID)

	p, err := uc.scope.potluck(ctx, slug)
	if err != nil {
		return err
	}
	claim, err := uc.scope.claim(ctx, p, claimID)
	if err != nil {
		return err
	}

	if err := uc.claims.Delete(ctx, claim.ID()); err != nil {
		uc.logger.Errorw("failed to delete claim", "claim_id", claim.ID(), "error", err)
		return err
	}

	uc.logger.Infow("claim deleted successfully", "claim_id", claim.ID())
	return nil
}

type DeleteOwnClaimCommand struct {
	Slug         string
	ClaimID      uint
	SessionID    string
	AttendeeName string
}

type DeleteOwnClaimUseCase struct {
	scope    *scopeResolver
	claims   potluck.ClaimRepository
	renderer TextRenderer
	logger   logger.Interface
}

func NewDeleteOwnClaimUseCase(
	potluckRepo potluck.PotluckRepository,
	categoryRepo potluck.CategoryRepository,
	itemRepo potluck.ItemRepository,
	claimRepo potluck.ClaimRepository,
	renderer TextRenderer,
	logger logger.Interface,
) *DeleteOwnClaimUseCase {
	return &DeleteOwnClaimUseCase{
		scope:    &scopeResolver{potlucks: potluckRepo, categories: categoryRepo, items: itemRepo, claims: claimRepo},
		claims:   claimRepo,
		renderer: renderer,
		logger:   logger,
	}
}

// Execute removes the claim only when both the session id and the attendee
// name match the stored ones. Every mismatch yields the same denial.
func (uc *DeleteOwnClaimUseCase) Execute(ctx context.Context, cmd DeleteOwnClaimCommand) error {
	uc.logger.Infow("executing delete own claim use case", "slug", cmd.Slug, "claim_id", cmd.ClaimID)

	p, err := uc.scope.potluck(ctx, cmd.Slug)
	if err != nil {
		return err
	}
	claim, err := uc.scope.claim(ctx, p, cmd.ClaimID)
	if err != nil {
		return err
	}

	if !claim.IsOwnedBy(cmd.SessionID, uc.renderer.StripTags(cmd.AttendeeName)) {
		uc.logger.Warnw("claim ownership denied", "claim_id", claim.ID())
		return translateDomainError(potluck.ErrOwnershipDenied)
	}

	if err := uc.claims.Delete(ctx, claim.ID()); err != nil {
		uc.logger.Errorw("failed to delete claim", "claim_id", claim.ID(), "error", err)
		return err
	}

	uc.logger.Infow("own claim deleted successfully", "claim_id", claim.ID())
	return nil
}
