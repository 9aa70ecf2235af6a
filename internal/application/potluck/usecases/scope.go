package usecases

import (
	"context"
	"fmt"

	"github.com/potluckhq/potluck/internal/domain/potluck"
	apperrors "github.com/potluckhq/potluck/internal/shared/errors"
)

// scopeResolver loads children only through the potluck named in the URL.
// An id that exists under a different potluck is reported as not found.
type scopeResolver struct {
	potlucks   potluck.PotluckRepository
	categories potluck.CategoryRepository
	items      potluck.ItemRepository
	claims     potluck.ClaimRepository
}

func (s *scopeResolver) potluck(ctx context.Context, slug string) (*potluck.Potluck, error) {
	p, err := s.potlucks.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to load potluck: %w", err)
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("potluck not found")
	}
	return p, nil
}

func (s *scopeResolver) category(ctx context.Context, p *potluck.Potluck, categoryID uint) (*potluck.Category, error) {
	c, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	return categoryInScope(p, c)
}

// lockedCategory takes the category row lock before any other read in the
// transaction. On REPEATABLE READ engines the snapshot is fixed by the first
// plain read, so it must come after the lock for counts to see rows committed
// by the previous lock holder.
func (s *scopeResolver) lockedCategory(ctx context.Context, slug string, categoryID uint) (*potluck.Category, error) {
	c, err := s.categories.GetByIDForUpdate(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock category: %w", err)
	}
	p, err := s.potluck(ctx, slug)
	if err != nil {
		return nil, err
	}
	return categoryInScope(p, c)
}

func categoryInScope(p *potluck.Potluck, c *potluck.Category) (*potluck.Category, error) {
	if c == nil || !c.BelongsTo(p.ID()) {
		return nil, apperrors.NewNotFoundError("category not found")
	}
	return c, nil
}

func (s *scopeResolver) item(ctx context.Context, p *potluck.Potluck, itemID uint) (*potluck.Item, error) {
	i, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load item: %w", err)
	}
	return s.itemInScope(ctx, p, i)
}

// lockedItem is lockedCategory for items.
func (s *scopeResolver) lockedItem(ctx context.Context, slug string, itemID uint) (*potluck.Item, error) {
	i, err := s.items.GetByIDForUpdate(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock item: %w", err)
	}
	p, err := s.potluck(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.itemInScope(ctx, p, i)
}

func (s *scopeResolver) itemInScope(ctx context.Context, p *potluck.Potluck, i *potluck.Item) (*potluck.Item, error) {
	if i == nil {
		return nil, apperrors.NewNotFoundError("item not found")
	}
	if _, err := s.category(ctx, p, i.CategoryID()); err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("item not found")
		}
		return nil, err
	}
	return i, nil
}

func (s *scopeResolver) claim(ctx context.Context, p *potluck.Potluck, claimID uint) (*potluck.Claim, error) {
	c, err := s.claims.GetByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("failed to load claim: %w", err)
	}
	if c == nil {
		return nil, apperrors.NewNotFoundError("claim not found")
	}
	if _, err := s.item(ctx, p, c.ItemID()); err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("claim not found")
		}
		return nil, err
	}
	return c, nil
}
