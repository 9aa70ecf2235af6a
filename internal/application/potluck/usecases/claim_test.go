package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potluckhq/potluck/internal/domain/potluck"
	apperrors "github.com/potluckhq/potluck/internal/shared/errors"
	"github.com/potluckhq/potluck/internal/shared/logger"
)

func newClaimItemUseCase(f *fixture) *ClaimItemUseCase {
	return NewClaimItemUseCase(f.potlucks, f.categories, f.items, f.claims, f.tx, f.renderer, logger.NewNopLogger())
}

func TestClaimItemUseCase_Success(t *testing.T) {
	f := newFixture(t, newTestCategory(t, 10, 1, 10, 0), newTestItem(t, 100, 10, 2, false))
	var stored *potluck.Claim
	count := int64(1)
	f.claims.CountByItemIDFunc = func(ctx context.Context, itemID uint) (int64, error) { return count, nil }
	f.claims.CreateFunc = func(ctx context.Context, c *potluck.Claim) error {
		stored = c
		count++
		return c.SetID(1000)
	}

	result, err := newClaimItemUseCase(f).Execute(context.Background(), ClaimItemCommand{
		Slug:         testSlug,
		ItemID:       100,
		AttendeeName: " <b>Alice</b> ",
		ItemDetails:  "veggie",
		SessionID:    "sid-alice",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1000), result.ID)
	assert.Equal(t, "Alice", result.AttendeeName)
	assert.True(t, result.IsMine)
	require.NotNil(t, stored.SessionID())
	assert.Equal(t, "sid-alice", *stored.SessionID())
	assert.Equal(t, 1, f.tx.calls)
}

func TestClaimItemUseCase_WithoutSession(t *testing.T) {
	f := newFixture(t, newTestCategory(t, 10, 1, 10, 0), newTestItem(t, 100, 10, 2, false))
	var stored *potluck.Claim
	f.claims.CreateFunc = func(ctx context.Context, c *potluck.Claim) error {
		stored = c
		return nil
	}

	result, err := newClaimItemUseCase(f).Execute(context.Background(), ClaimItemCommand{
		Slug: testSlug, ItemID: 100, AttendeeName: "Bob",
	})

	require.NoError(t, err)
	assert.Nil(t, stored.SessionID())
	assert.False(t, result.IsMine)
}

func TestClaimItemUseCase_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		item      *potluck.Item
		existing  int64
		cmd       ClaimItemCommand
		wantCheck func(error) bool
	}{
		{
			name:      "item full",
			existing:  2,
			cmd:       ClaimItemCommand{Slug: testSlug, ItemID: 100, AttendeeName: "Carol"},
			wantCheck: apperrors.IsCapacityExceededError,
		},
		{
			name:      "blank name",
			cmd:       ClaimItemCommand{Slug: testSlug, ItemID: 100, AttendeeName: "   "},
			wantCheck: apperrors.IsValidationError,
		},
		{
			name:      "name too long",
			cmd:       ClaimItemCommand{Slug: testSlug, ItemID: 100, AttendeeName: strings.Repeat("a", 201)},
			wantCheck: apperrors.IsValidationError,
		},
		{
			name:      "details too long",
			cmd:       ClaimItemCommand{Slug: testSlug, ItemID: 100, AttendeeName: "Dan", ItemDetails: strings.Repeat("d", 501)},
			wantCheck: apperrors.IsValidationError,
		},
		{
			name:      "details required",
			item:      newTestItem(t, 100, 10, 2, true),
			cmd:       ClaimItemCommand{Slug: testSlug, ItemID: 100, AttendeeName: "Eve", ItemDetails: "  "},
			wantCheck: apperrors.IsValidationError,
		},
		{
			name:      "unknown item",
			cmd:       ClaimItemCommand{Slug: testSlug, ItemID: 404, AttendeeName: "Fay"},
			wantCheck: apperrors.IsNotFoundError,
		},
		{
			name:      "unknown potluck",
			cmd:       ClaimItemCommand{Slug: "missing1", ItemID: 100, AttendeeName: "Gus"},
			wantCheck: apperrors.IsNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := tt.item
			if item == nil {
				item = newTestItem(t, 100, 10, 2, false)
			}
			f := newFixture(t, newTestCategory(t, 10, 1, 10, 0), item)
			f.claims.CountByItemIDFunc = func(ctx context.Context, itemID uint) (int64, error) { return tt.existing, nil }
			inserted := false
			f.claims.CreateFunc = func(ctx context.Context, c *potluck.Claim) error {
				inserted = true
				return nil
			}

			_, err := newClaimItemUseCase(f).Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.True(t, tt.wantCheck(err), "unexpected error: %v", err)
			assert.False(t, inserted)
		})
	}
}

func TestClaimItemUseCase_DetailsRequiredCarriesFieldDetail(t *testing.T) {
	f := newFixture(t, newTestCategory(t, 10, 1, 10, 0), newTestItem(t, 100, 10, 2, true))

	_, err := newClaimItemUseCase(f).Execute(context.Background(), ClaimItemCommand{
		Slug: testSlug, ItemID: 100, AttendeeName: "Eve",
	})

	require.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, apperrors.GetAppError(err).Details, "item_details")
}

func TestClaimItemUseCase_ItemInOtherPotluckIsNotFound(t *testing.T) {
	foreignCategory := newTestCategory(t, 10, 2, 10, 0)
	f := newFixture(t, foreignCategory, newTestItem(t, 100, 10, 2, false))

	_, err := newClaimItemUseCase(f).Execute(context.Background(), ClaimItemCommand{
		Slug: testSlug, ItemID: 100, AttendeeName: "Hal",
	})

	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestClaimItemUseCase_RecountRejectsOvershoot(t *testing.T) {
	f := newFixture(t, newTestCategory(t, 10, 1, 10, 0), newTestItem(t, 100, 10, 1, false))
	counts := []int64{0, 2}
	calls := 0
	f.claims.CountByItemIDFunc = func(ctx context.Context, itemID uint) (int64, error) {
		c := counts[calls]
		calls++
		return c, nil
	}

	_, err := newClaimItemUseCase(f).Execute(context.Background(), ClaimItemCommand{
		Slug: testSlug, ItemID: 100, AttendeeName: "Ivy",
	})

	assert.True(t, apperrors.IsCapacityExceededError(err))
	assert.Equal(t, 2, calls)
}

func TestClaimItemUseCase_LocksItemBeforeOtherReads(t *testing.T) {
	item := newTestItem(t, 100, 10, 1, false)
	f := newFixture(t, newTestCategory(t, 10, 1, 10, 0), item)
	var reads []string
	getBySlug := f.potlucks.GetBySlugFunc
	f.potlucks.GetBySlugFunc = func(ctx context.Context, slug string) (*potluck.Potluck, error) {
		reads = append(reads, "potluck")
		return getBySlug(ctx, slug)
	}
	f.items.GetByIDForUpdateFunc = func(ctx context.Context, id uint) (*potluck.Item, error) {
		reads = append(reads, "lock item")
		return item, nil
	}
	f.claims.CountByItemIDFunc = func(ctx context.Context, itemID uint) (int64, error) {
		reads = append(reads, "count")
		return 0, nil
	}

	_, err := newClaimItemUseCase(f).Execute(context.Background(), ClaimItemCommand{
		Slug: testSlug, ItemID: 100, AttendeeName: "Jo",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"lock item", "potluck", "count", "count"}, reads)
}

func TestUpdateClaimUseCase(t *testing.T) {
	claim := newTestClaim(t, 1000, 100, "Alice", strPtr("sid-alice"))
	f := newFixture(t, newTestCategory(t, 10, 1, 10, 0), newTestItem(t, 100, 10, 2, false))
	f.claims.GetByIDFunc = func(ctx context.Context, id uint) (*potluck.Claim, error) {
		if id == 1000 {
			return claim, nil
		}
		return nil, nil
	}
	uc := NewUpdateClaimUseCase(f.potlucks, f.categories, f.items, f.claims, f.renderer, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), UpdateClaimCommand{Slug: testSlug, ClaimID: 1000, ItemDetails: strPtr("<b>two</b> trays")})
	require.NoError(t, err)
	assert.Equal(t, "Alice", result.AttendeeName)
	assert.Equal(t, "two trays", result.ItemDetails)
	assert.Equal(t, "sid-alice", *claim.SessionID())

	_, err = uc.Execute(context.Background(), UpdateClaimCommand{Slug: testSlug, ClaimID: 1000, AttendeeName: strPtr("")})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), UpdateClaimCommand{Slug: testSlug, ClaimID: 9, AttendeeName: strPtr("x")})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDeleteClaimUseCase_AdminRemovesAnyClaim(t *testing.T) {
	claim := newTestClaim(t, 1000, 100, "Alice", nil)
	f := newFixture(t, newTestCategory(t, 10, 1, 10, 0), newTestItem(t, 100, 10, 2, false))
	f.claims.GetByIDFunc = func(ctx context.Context, id uint) (*potluck.Claim, error) { return claim, nil }
	var deleted uint
	f.claims.DeleteFunc = func(ctx context.Context, id uint) error {
		deleted = id
		return nil
	}
	uc := NewDeleteClaimUseCase(f.potlucks, f.categories, f.items, f.claims, logger.NewNopLogger())

	require.NoError(t, uc.Execute(context.Background(), testSlug, 1000))
	assert.Equal(t, uint(1000), deleted)
}

func TestDeleteOwnClaimUseCase(t *testing.T) {
	tests := []struct {
		name        string
		stored      *string
		storedName  string
		sessionID   string
		attendee    string
		wantDeleted bool
	}{
		{"exact match", strPtr("sid-1"), "Alice", "sid-1", "Alice", true},
		{"surrounding space is trimmed", strPtr("sid-1"), "Alice", "sid-1", "  Alice ", true},
		{"wrong name", strPtr("sid-1"), "Alice", "sid-1", "Bob", false},
		{"name differs in case", strPtr("sid-1"), "Alice", "sid-1", "alice", false},
		{"wrong session", strPtr("sid-1"), "Alice", "sid-2", "Alice", false},
		{"no viewer session", strPtr("sid-1"), "Alice", "", "Alice", false},
		{"claim without session", nil, "Alice", "sid-1", "Alice", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claim := newTestClaim(t, 1000, 100, tt.storedName, tt.stored)
			f := newFixture(t, newTestCategory(t, 10, 1, 10, 0), newTestItem(t, 100, 10, 2, false))
			f.claims.GetByIDFunc = func(ctx context.Context, id uint) (*potluck.Claim, error) { return claim, nil }
			deleted := false
			f.claims.DeleteFunc = func(ctx context.Context, id uint) error {
				deleted = true
				return nil
			}
			uc := NewDeleteOwnClaimUseCase(f.potlucks, f.categories, f.items, f.claims, f.renderer, logger.NewNopLogger())

			err := uc.Execute(context.Background(), DeleteOwnClaimCommand{
				Slug:         testSlug,
				ClaimID:      1000,
				SessionID:    tt.sessionID,
				AttendeeName: tt.attendee,
			})

			assert.Equal(t, tt.wantDeleted, deleted)
			if tt.wantDeleted {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperrors.IsOwnershipDeniedError(err))
			assert.Equal(t, "You can only remove your own claims", apperrors.GetAppError(err).Message)
		})
	}
}

func TestDeleteOwnClaimUseCase_ClaimInOtherPotluckIsNotFound(t *testing.T) {
	claim := newTestClaim(t, 1000, 100, "Alice", strPtr("sid-1"))
	foreignCategory := newTestCategory(t, 10, 2, 10, 0)
	f := newFixture(t, foreignCategory, newTestItem(t, 100, 10, 2, false))
	f.claims.GetByIDFunc = func(ctx context.Context, id uint) (*potluck.Claim, error) { return claim, nil }
	uc := NewDeleteOwnClaimUseCase(f.potlucks, f.categories, f.items, f.claims, f.renderer, logger.NewNopLogger())

	err := uc.Execute(context.Background(), DeleteOwnClaimCommand{
		Slug: testSlug, ClaimID: 1000, SessionID: "sid-1", AttendeeName: "Alice",
	})

	assert.True(t, apperrors.IsNotFoundError(err))
}
