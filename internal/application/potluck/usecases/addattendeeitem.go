package usecases

import (
	"context"

	"github.com/potluckhq/potluck/internal/application/potluck/dto"
	"github.com/potluckhq/potluck/internal/domain/potluck"
	"github.com/potluckhq/potluck/internal/shared/constants"
	"github.com/potluckhq/potluck/internal/shared/logger"
)

type AddAttendeeItemCommand struct {
	Slug        string
	CategoryID  uint
	Name        string
	Description string
}

type AddAttendeeItemUseCase struct {
	scope     *scopeResolver
	items     potluck.ItemRepository
	txManager TransactionManager
	renderer  TextRenderer
	logger    logger.Interface
}

func NewAddAttendeeItemUseCase(
	potluckRepo potluck.PotluckRepository,
	categoryRepo potluck.CategoryRepository,
	itemRepo potluck.ItemRepository,
	txManager TransactionManager,
	renderer TextRenderer,
	logger logger.Interface,
) *AddAttendeeItemUseCase {
	return &AddAttendeeItemUseCase{
		scope:     &scopeResolver{potlucks: potluckRepo, categories: categoryRepo},
		items:     itemRepo,
		txManager: txManager,
		renderer:  renderer,
		logger:    logger,
	}
}

// Execute admits the item only while the category is below max_items. The
// category row is locked for the count and the count is re-read after insert,
// so two racing attendees cannot both take the last slot.
func (uc *AddAttendeeItemUseCase) Execute(ctx context.Context, cmd AddAttendeeItemCommand) (*dto.ItemDTO, error) {
	uc.logger.Infow("executing add attendee item use case", "slug", cmd.Slug, "category_id", cmd.CategoryID)

	var created *potluck.Item
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		category, err := uc.scope.lockedCategory(txCtx, cmd.Slug, cmd.CategoryID)
		if err != nil {
			return err
		}

		item, err := potluck.NewItem(
			category.ID(),
			uc.renderer.StripTags(cmd.Name),
			uc.renderer.StripTags(cmd.Description),
			constants.DefaultClaimLimit,
			false,
			false,
		)
		if err != nil {
			return invalidInput(err)
		}

		count, err := uc.items.CountByCategoryID(txCtx, category.ID())
		if err != nil {
			return err
		}
		if !category.HasRoomForItem(count) {
			return translateDomainError(potluck.ErrCategoryFull)
		}

		if err := uc.items.Create(txCtx, item); err != nil {
			return err
		}

		after, err := uc.items.CountByCategoryID(txCtx, category.ID())
		if err != nil {
			return err
		}
		if after > int64(category.MaxItems()) {
			return translateDomainError(potluck.ErrCategoryFull)
		}

		created = item
		return nil
	})
	if err != nil {
		if isClientError(err) {
			uc.logger.Warnw("attendee item rejected", "category_id", cmd.CategoryID, "error", err)
		} else {
			uc.logger.Errorw("failed to add attendee item", "category_id", cmd.CategoryID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("attendee item created successfully", "item_id", created.ID(), "category_id", cmd.CategoryID)
	result := dto.ToItemDTO(created)
	return &result, nil
}
