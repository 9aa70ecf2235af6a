package usecases

import (
	"context"

	"github.com/potluckhq/potluck/internal/application/potluck/dto"
	"github.com/potluckhq/potluck/internal/domain/potluck"
	"github.com/potluckhq/potluck/internal/shared/logger"
	"github.com/potluckhq/potluck/internal/shared/mapper"
)

type GetPotluckQuery struct {
	Slug string
	// ViewerSessionID marks the viewer's own claims; empty for admins and new browsers.
	ViewerSessionID string
}

type GetPotluckUseCase struct {
	scope      *scopeResolver
	categories potluck.CategoryRepository
	items      potluck.ItemRepository
	claims     potluck.ClaimRepository
	renderer   TextRenderer
	logger     logger.Interface
}

func NewGetPotluckUseCase(
	potluckRepo potluck.PotluckRepository,
	categoryRepo potluck.CategoryRepository,
	itemRepo potluck.ItemRepository,
	claimRepo potluck.ClaimRepository,
	renderer TextRenderer,
	logger logger.Interface,
) *GetPotluckUseCase {
	return &GetPotluckUseCase{
		scope:      &scopeResolver{potlucks: potluckRepo},
		categories: categoryRepo,
		items:      itemRepo,
		claims:     claimRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

// Execute loads the full tree: categories by display order, items by id,
// claims by claim time, each level with its counts and capacity flags.
func (uc *GetPotluckUseCase) Execute(ctx context.Context, query GetPotluckQuery) (*dto.PotluckTreeDTO, error) {
	uc.logger.Debugw("executing get potluck use case", "slug", query.Slug)

	p, err := uc.scope.potluck(ctx, query.Slug)
	if err != nil {
		return nil, err
	}

	categories, err := uc.categories.ListByPotluckID(ctx, p.ID())
	if err != nil {
		uc.logger.Errorw("failed to list categories", "potluck_id", p.ID(), "error", err)
		return nil, err
	}

	categoryIDs := mapper.MapSlice(categories, func(c *potluck.Category) uint { return c.ID() })
	items, err := uc.items.ListByCategoryIDs(ctx, categoryIDs)
	if err != nil {
		uc.logger.Errorw("failed to list items", "potluck_id", p.ID(), "error", err)
		return nil, err
	}

	itemIDs := mapper.MapSlice(items, func(i *potluck.Item) uint { return i.ID() })
	claims, err := uc.claims.ListByItemIDs(ctx, itemIDs)
	if err != nil {
		uc.logger.Errorw("failed to list claims", "potluck_id", p.ID(), "error", err)
		return nil, err
	}

	itemsByCategory := mapper.GroupBy(items, func(i *potluck.Item) uint { return i.CategoryID() })
	claimsByItem := mapper.GroupBy(claims, func(c *potluck.Claim) uint { return c.ItemID() })

	tree := &dto.PotluckTreeDTO{
		PotluckDTO: dto.ToPotluckDTO(p),
		Categories: make([]dto.CategoryDTO, 0, len(categories)),
	}
	tree.DescriptionHTML = uc.render(p.Description())

	for _, c := range categories {
		categoryDTO := dto.ToCategoryDTO(c)
		categoryDTO.DescriptionHTML = uc.render(c.Description())

		categoryItems := itemsByCategory[c.ID()]
		categoryDTO.ItemCount = len(categoryItems)
		categoryDTO.CanAddItem = c.HasRoomForItem(int64(len(categoryItems)))

		for _, i := range categoryItems {
			itemDTO := dto.ToItemDTO(i)
			itemDTO.DescriptionHTML = uc.render(i.Description())

			itemClaims := claimsByItem[i.ID()]
			itemDTO.ClaimCount = len(itemClaims)
			itemDTO.CanClaim = i.CanClaim(int64(len(itemClaims)))
			for _, claim := range itemClaims {
				itemDTO.Claims = append(itemDTO.Claims, dto.ToClaimDTO(claim, query.ViewerSessionID))
			}
			categoryDTO.Items = append(categoryDTO.Items, itemDTO)
		}
		tree.Categories = append(tree.Categories, categoryDTO)
	}

	return tree, nil
}

// render falls back to no HTML when markdown conversion fails; the raw text is still returned.
func (uc *GetPotluckUseCase) render(markdown string) string {
	html, err := uc.renderer.ToHTMLSanitized(markdown)
	if err != nil {
		uc.logger.Warnw("failed to render description", "error", err)
		return ""
	}
	return html
}
