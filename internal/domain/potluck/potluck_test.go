package potluck

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

// =============================================================================
// Potluck
// =============================================================================

func TestNewPotluck(t *testing.T) {
	p, err := NewPotluck("  Summer BBQ ", "Bring sunscreen", "AbCd_-12")
	require.NoError(t, err)

	assert.Equal(t, uint(0), p.ID())
	assert.Equal(t, "Summer BBQ", p.Name())
	assert.Equal(t, "Bring sunscreen", p.Description())
	assert.Equal(t, "AbCd_-12", p.URLSlug())
	assert.WithinDuration(t, time.Now().UTC(), p.CreatedAt(), 2*time.Second)
}

func TestNewPotluck_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		pName   string
		desc    string
		slug    string
		wantErr string
	}{
		{"blank name", "   ", "", "abcdefgh", "name is required"},
		{"long name", strings.Repeat("x", 201), "", "abcdefgh", "maximum length"},
		{"long description", "ok", strings.Repeat("x", 2001), "abcdefgh", "maximum length"},
		{"empty slug", "ok", "", "", "invalid url slug"},
		{"slug with slash", "ok", "", "ab/cd", "invalid url slug"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPotluck(tt.pName, tt.desc, tt.slug)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPotluck_UpdateKeepsSlug(t *testing.T) {
	p, err := ReconstructPotluck(7, "Old", "", "slug0001", time.Now().Add(-time.Hour), time.Now().Add(-time.Hour))
	require.NoError(t, err)
	before := p.UpdatedAt()

	require.NoError(t, p.Update("New", "desc"))

	assert.Equal(t, "New", p.Name())
	assert.Equal(t, "slug0001", p.URLSlug())
	assert.True(t, p.UpdatedAt().After(before))

	assert.Error(t, p.Update("", "desc"))
	assert.Equal(t, "New", p.Name())
}

func TestPotluck_SetID(t *testing.T) {
	p, err := NewPotluck("Party", "", "slug0001")
	require.NoError(t, err)

	assert.Error(t, p.SetID(0))
	require.NoError(t, p.SetID(3))
	assert.Error(t, p.SetID(4))
	assert.Equal(t, uint(3), p.ID())
}

// =============================================================================
// Category
// =============================================================================

func TestNewCategory_Validation(t *testing.T) {
	c, err := NewCategory(1, "Mains", "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, c.MaxItems())
	assert.True(t, c.BelongsTo(1))
	assert.False(t, c.BelongsTo(2))

	_, err = NewCategory(0, "Mains", "", 10, 0)
	assert.Error(t, err)
	_, err = NewCategory(1, "Mains", "", 0, 0)
	assert.Error(t, err)
	_, err = NewCategory(1, "Mains", "", 101, 0)
	assert.Error(t, err)
	_, err = NewCategory(1, "Mains", "", 10, -1)
	assert.Error(t, err)
}

func TestCategory_HasRoomForItem(t *testing.T) {
	c, err := NewCategory(1, "Drinks", "", 2, 0)
	require.NoError(t, err)

	assert.True(t, c.HasRoomForItem(0))
	assert.True(t, c.HasRoomForItem(1))
	assert.False(t, c.HasRoomForItem(2))
	assert.False(t, c.HasRoomForItem(3))
}

// =============================================================================
// Item
// =============================================================================

func TestItem_CanClaim(t *testing.T) {
	item, err := NewItem(1, "Burgers", "", 2, false, true)
	require.NoError(t, err)

	assert.True(t, item.CanClaim(0))
	assert.True(t, item.CanClaim(1))
	assert.False(t, item.CanClaim(2))
}

func TestNewItem_ClaimLimitBounds(t *testing.T) {
	for _, limit := range []int{0, -1, 101} {
		_, err := NewItem(1, "Chips", "", limit, false, true)
		assert.Error(t, err, "limit %d", limit)
	}
	_, err := NewItem(1, "Chips", "", 100, false, true)
	assert.NoError(t, err)
}

func TestItem_CheckClaimDetails(t *testing.T) {
	required, err := NewItem(1, "Salad", "", 1, true, true)
	require.NoError(t, err)
	optional, err := NewItem(1, "Bread", "", 1, false, true)
	require.NoError(t, err)

	assert.ErrorIs(t, required.CheckClaimDetails(""), ErrDetailsRequired)
	assert.ErrorIs(t, required.CheckClaimDetails("   "), ErrDetailsRequired)
	assert.NoError(t, required.CheckClaimDetails("caesar"))
	assert.NoError(t, optional.CheckClaimDetails(""))
}

func TestItem_UpdateRejectsLimitBelowClaims(t *testing.T) {
	item, err := NewItem(1, "Burgers", "", 3, false, true)
	require.NoError(t, err)

	err = item.Update("Burgers", "", 1, false, 2)
	assert.ErrorIs(t, err, ErrClaimLimitBelowClaims)
	assert.Equal(t, 3, item.ClaimLimit())

	require.NoError(t, item.Update("Veggie burgers", "", 2, true, 2))
	assert.Equal(t, 2, item.ClaimLimit())
	assert.True(t, item.RequireDetails())
}

// =============================================================================
// Claim
// =============================================================================

func TestNewClaim(t *testing.T) {
	c, err := NewClaim(5, " Alice ", " extra spicy ", strPtr("S1"))
	require.NoError(t, err)

	assert.Equal(t, "Alice", c.AttendeeName())
	assert.Equal(t, "extra spicy", c.ItemDetails())
	require.NotNil(t, c.SessionID())
	assert.Equal(t, "S1", *c.SessionID())

	_, err = NewClaim(5, "", "", nil)
	assert.Error(t, err)
	_, err = NewClaim(5, "Bob", strings.Repeat("d", 501), nil)
	assert.Error(t, err)
}

func TestClaim_IsOwnedBy(t *testing.T) {
	c, err := NewClaim(1, "Alice", "", strPtr("S1"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		session string
		who     string
		want    bool
	}{
		{"exact match", "S1", "Alice", true},
		{"wrong session", "S2", "Alice", false},
		{"wrong name", "S1", "Bob", false},
		{"case differs", "S1", "alice", false},
		{"both wrong", "S2", "Bob", false},
		{"empty session", "", "Alice", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsOwnedBy(tt.session, tt.who))
		})
	}
}

func TestClaim_WithoutSessionIsNeverSelfOwned(t *testing.T) {
	c, err := NewClaim(1, "Alice", "", nil)
	require.NoError(t, err)
	assert.False(t, c.IsOwnedBy("", "Alice"))
	assert.False(t, c.IsOwnedBy("S1", "Alice"))
}
