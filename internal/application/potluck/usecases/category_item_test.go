package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potluckhq/potluck/internal/domain/potluck"
	apperrors "github.com/potluckhq/potluck/internal/shared/errors"
	"github.com/potluckhq/potluck/internal/shared/logger"
)

func TestAddCategoryUseCase_Defaults(t *testing.T) {
	f := newFixture(t, nil, nil)
	var created *potluck.Category
	f.categories.CreateFunc = func(ctx context.Context, c *potluck.Category) error {
		created = c
		return c.SetID(10)
	}
	uc := NewAddCategoryUseCase(f.potlucks, f.categories, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), AddCategoryCommand{Slug: testSlug, Name: "Desserts"})

	require.NoError(t, err)
	assert.Equal(t, uint(10), result.ID)
	assert.Equal(t, 10, result.MaxItems)
	assert.Equal(t, 0, result.DisplayOrder)
	assert.True(t, result.CanAddItem)
	assert.Equal(t, uint(1), created.PotluckID())
}

func TestAddCategoryUseCase_Validation(t *testing.T) {
	f := newFixture(t, nil, nil)
	uc := NewAddCategoryUseCase(f.potlucks, f.categories, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), AddCategoryCommand{Slug: testSlug, Name: "Desserts", MaxItems: intPtr(0)})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), AddCategoryCommand{Slug: testSlug, Name: "Desserts", DisplayOrder: intPtr(-1)})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestUpdateCategoryUseCase(t *testing.T) {
	category := newTestCategory(t, 10, 1, 10, 0)
	f := newFixture(t, category, nil)
	uc := NewUpdateCategoryUseCase(f.potlucks, f.categories, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), UpdateCategoryCommand{
		Slug:         testSlug,
		CategoryID:   10,
		DisplayOrder: intPtr(3),
	})

	require.NoError(t, err)
	assert.Equal(t, "Mains", result.Name)
	assert.Equal(t, 3, result.DisplayOrder)
	assert.Equal(t, 10, result.MaxItems)
}

func TestCategoryUseCases_ForeignCategoryIsNotFound(t *testing.T) {
	foreign := newTestCategory(t, 10, 2, 10, 0)
	f := newFixture(t, foreign, nil)

	update := NewUpdateCategoryUseCase(f.potlucks, f.categories, logger.NewNopLogger())
	_, err := update.Execute(context.Background(), UpdateCategoryCommand{Slug: testSlug, CategoryID: 10, Name: strPtr("x")})
	assert.True(t, apperrors.IsNotFoundError(err))

	deleted := false
	f.categories.DeleteCascadeFunc = func(ctx context.Context, id uint) error {
		deleted = true
		return nil
	}
	del := NewDeleteCategoryUseCase(f.potlucks, f.categories, logger.NewNopLogger())
	assert.True(t, apperrors.IsNotFoundError(del.Execute(context.Background(), testSlug, 10)))
	assert.False(t, deleted)
}

func TestDeleteCategoryUseCase(t *testing.T) {
	category := newTestCategory(t, 10, 1, 10, 0)
	f := newFixture(t, category, nil)
	var deleted uint
	f.categories.DeleteCascadeFunc = func(ctx context.Context, id uint) error {
		deleted = id
		return nil
	}
	uc := NewDeleteCategoryUseCase(f.potlucks, f.categories, logger.NewNopLogger())

	require.NoError(t, uc.Execute(context.Background(), testSlug, 10))
	assert.Equal(t, uint(10), deleted)
}

func TestAddItemUseCase_AdminItem(t *testing.T) {
	category := newTestCategory(t, 10, 1, 1, 0)
	f := newFixture(t, category, nil)
	var created *potluck.Item
	f.items.CreateFunc = func(ctx context.Context, i *potluck.Item) error {
		created = i
		return i.SetID(100)
	}
	uc := NewAddItemUseCase(f.potlucks, f.categories, f.items, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), AddItemCommand{
		Slug:           testSlug,
		CategoryID:     10,
		Name:           "Salad",
		ClaimLimit:     intPtr(3),
		RequireDetails: true,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(100), result.ID)
	assert.Equal(t, 3, result.ClaimLimit)
	assert.True(t, result.CanClaim)
	assert.True(t, created.CreatedByAdmin())
	assert.True(t, created.RequireDetails())
}

func TestAddItemUseCase_DefaultsAndBounds(t *testing.T) {
	category := newTestCategory(t, 10, 1, 10, 0)
	f := newFixture(t, category, nil)
	uc := NewAddItemUseCase(f.potlucks, f.categories, f.items, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), AddItemCommand{Slug: testSlug, CategoryID: 10, Name: "Salad"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.ClaimLimit)

	_, err = uc.Execute(context.Background(), AddItemCommand{Slug: testSlug, CategoryID: 10, Name: "Salad", ClaimLimit: intPtr(101)})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), AddItemCommand{Slug: testSlug, CategoryID: 99, Name: "Salad"})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdateItemUseCase_RefusesLimitBelowClaims(t *testing.T) {
	category := newTestCategory(t, 10, 1, 10, 0)
	item := newTestItem(t, 100, 10, 3, false)
	f := newFixture(t, category, item)
	f.claims.CountByItemIDFunc = func(ctx context.Context, itemID uint) (int64, error) { return 2, nil }
	updated := false
	f.items.UpdateFunc = func(ctx context.Context, i *potluck.Item) error {
		updated = true
		return nil
	}
	uc := NewUpdateItemUseCase(f.potlucks, f.categories, f.items, f.claims, f.tx, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), UpdateItemCommand{Slug: testSlug, ItemID: 100, ClaimLimit: intPtr(1)})

	assert.True(t, apperrors.IsValidationError(err))
	assert.False(t, updated)
	assert.Equal(t, 1, f.tx.calls)
}

func TestUpdateItemUseCase_Success(t *testing.T) {
	category := newTestCategory(t, 10, 1, 10, 0)
	item := newTestItem(t, 100, 10, 3, false)
	f := newFixture(t, category, item)
	f.claims.CountByItemIDFunc = func(ctx context.Context, itemID uint) (int64, error) { return 2, nil }
	locked := false
	f.items.GetByIDForUpdateFunc = func(ctx context.Context, id uint) (*potluck.Item, error) {
		locked = true
		return item, nil
	}
	uc := NewUpdateItemUseCase(f.potlucks, f.categories, f.items, f.claims, f.tx, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), UpdateItemCommand{
		Slug:           testSlug,
		ItemID:         100,
		ClaimLimit:     intPtr(2),
		RequireDetails: boolPtr(true),
	})

	require.NoError(t, err)
	assert.True(t, locked)
	assert.Equal(t, 2, result.ClaimLimit)
	assert.Equal(t, 2, result.ClaimCount)
	assert.False(t, result.CanClaim)
	assert.True(t, result.RequireDetails)
}

func TestDeleteItemUseCase(t *testing.T) {
	category := newTestCategory(t, 10, 1, 10, 0)
	item := newTestItem(t, 100, 10, 3, false)
	f := newFixture(t, category, item)
	var deleted uint
	f.items.DeleteCascadeFunc = func(ctx context.Context, id uint) error {
		deleted = id
		return nil
	}
	uc := NewDeleteItemUseCase(f.potlucks, f.categories, f.items, logger.NewNopLogger())

	require.NoError(t, uc.Execute(context.Background(), testSlug, 100))
	assert.Equal(t, uint(100), deleted)
	assert.True(t, apperrors.IsNotFoundError(uc.Execute(context.Background(), testSlug, 555)))
}

func TestAddAttendeeItemUseCase_Success(t *testing.T) {
	category := newTestCategory(t, 10, 1, 2, 0)
	f := newFixture(t, category, nil)
	var created *potluck.Item
	count := int64(1)
	f.items.CountByCategoryIDFunc = func(ctx context.Context, categoryID uint) (int64, error) { return count, nil }
	f.items.CreateFunc = func(ctx context.Context, i *potluck.Item) error {
		created = i
		count++
		return i.SetID(200)
	}
	uc := NewAddAttendeeItemUseCase(f.potlucks, f.categories, f.items, f.tx, f.renderer, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), AddAttendeeItemCommand{
		Slug:       testSlug,
		CategoryID: 10,
		Name:       "<b>Lemonade</b>",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(200), result.ID)
	assert.Equal(t, "Lemonade", created.Name())
	assert.False(t, created.CreatedByAdmin())
	assert.False(t, created.RequireDetails())
	assert.Equal(t, 1, created.ClaimLimit())
}

func TestAddAttendeeItemUseCase_CategoryFull(t *testing.T) {
	category := newTestCategory(t, 10, 1, 2, 0)
	f := newFixture(t, category, nil)
	f.items.CountByCategoryIDFunc = func(ctx context.Context, categoryID uint) (int64, error) { return 2, nil }
	inserted := false
	f.items.CreateFunc = func(ctx context.Context, i *potluck.Item) error {
		inserted = true
		return nil
	}
	uc := NewAddAttendeeItemUseCase(f.potlucks, f.categories, f.items, f.tx, f.renderer, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), AddAttendeeItemCommand{Slug: testSlug, CategoryID: 10, Name: "Chips"})

	assert.True(t, apperrors.IsCapacityExceededError(err))
	assert.False(t, inserted)
}

func TestAddAttendeeItemUseCase_RecountRejectsOvershoot(t *testing.T) {
	category := newTestCategory(t, 10, 1, 2, 0)
	f := newFixture(t, category, nil)
	counts := []int64{1, 3}
	calls := 0
	f.items.CountByCategoryIDFunc = func(ctx context.Context, categoryID uint) (int64, error) {
		c := counts[calls]
		calls++
		return c, nil
	}
	uc := NewAddAttendeeItemUseCase(f.potlucks, f.categories, f.items, f.tx, f.renderer, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), AddAttendeeItemCommand{Slug: testSlug, CategoryID: 10, Name: "Chips"})

	assert.True(t, apperrors.IsCapacityExceededError(err))
	assert.Equal(t, 2, calls)
}

func TestAddAttendeeItemUseCase_LocksCategoryBeforeOtherReads(t *testing.T) {
	category := newTestCategory(t, 10, 1, 2, 0)
	f := newFixture(t, category, nil)
	var reads []string
	getBySlug := f.potlucks.GetBySlugFunc
	f.potlucks.GetBySlugFunc = func(ctx context.Context, slug string) (*potluck.Potluck, error) {
		reads = append(reads, "potluck")
		return getBySlug(ctx, slug)
	}
	f.categories.GetByIDForUpdateFunc = func(ctx context.Context, id uint) (*potluck.Category, error) {
		reads = append(reads, "lock category")
		return category, nil
	}
	f.items.CountByCategoryIDFunc = func(ctx context.Context, categoryID uint) (int64, error) {
		reads = append(reads, "count")
		return 0, nil
	}
	uc := NewAddAttendeeItemUseCase(f.potlucks, f.categories, f.items, f.tx, f.renderer, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), AddAttendeeItemCommand{Slug: testSlug, CategoryID: 10, Name: "Chips"})

	require.NoError(t, err)
	assert.Equal(t, []string{"lock category", "potluck", "count", "count"}, reads)
	assert.Equal(t, 1, f.tx.calls)
}

func TestAddAttendeeItemUseCase_UnknownPotluckIsNotFound(t *testing.T) {
	f := newFixture(t, newTestCategory(t, 10, 1, 2, 0), nil)
	uc := NewAddAttendeeItemUseCase(f.potlucks, f.categories, f.items, f.tx, f.renderer, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), AddAttendeeItemCommand{Slug: "missing1", CategoryID: 10, Name: "Chips"})

	assert.True(t, apperrors.IsNotFoundError(err))
}

func boolPtr(b bool) *bool { return &b }
