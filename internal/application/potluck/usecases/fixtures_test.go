package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/potluckhq/potluck/internal/domain/potluck"
)

const testSlug = "aB3_-x9Z"

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func newTestPotluck(t *testing.T, id uint, slug string) *potluck.Potluck {
	t.Helper()
	now := time.Now().UTC()
	p, err := potluck.ReconstructPotluck(id, "Summer BBQ", "Bring **sunscreen**", slug, now, now)
	require.NoError(t, err)
	return p
}

func newTestCategory(t *testing.T, id, potluckID uint, maxItems, displayOrder int) *potluck.Category {
	t.Helper()
	c, err := potluck.ReconstructCategory(id, potluckID, "Mains", "", maxItems, displayOrder)
	require.NoError(t, err)
	return c
}

func newTestItem(t *testing.T, id, categoryID uint, claimLimit int, requireDetails bool) *potluck.Item {
	t.Helper()
	i, err := potluck.ReconstructItem(id, categoryID, "Burgers", "", claimLimit, true, requireDetails, time.Now().UTC())
	require.NoError(t, err)
	return i
}

func newTestClaim(t *testing.T, id, itemID uint, name string, sessionID *string) *potluck.Claim {
	t.Helper()
	c, err := potluck.ReconstructClaim(id, itemID, name, "", sessionID, time.Now().UTC())
	require.NoError(t, err)
	return c
}

// fixture wires mocks around one potluck (id 1) with category 10 and item 100.
type fixture struct {
	potlucks   *mockPotluckRepository
	categories *mockCategoryRepository
	items      *mockItemRepository
	claims     *mockClaimRepository
	tx         *mockTxManager
	renderer   *mockRenderer
}

func newFixture(t *testing.T, category *potluck.Category, item *potluck.Item) *fixture {
	t.Helper()
	p := newTestPotluck(t, 1, testSlug)
	return &fixture{
		potlucks: &mockPotluckRepository{
			GetBySlugFunc: func(ctx context.Context, slug string) (*potluck.Potluck, error) {
				if slug == testSlug {
					return p, nil
				}
				return nil, nil
			},
		},
		categories: &mockCategoryRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*potluck.Category, error) {
				if category != nil && id == category.ID() {
					return category, nil
				}
				return nil, nil
			},
		},
		items: &mockItemRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*potluck.Item, error) {
				if item != nil && id == item.ID() {
					return item, nil
				}
				return nil, nil
			},
		},
		claims:   &mockClaimRepository{},
		tx:       &mockTxManager{},
		renderer: &mockRenderer{},
	}
}
