package usecases

import (
	"context"
	"strings"

	"github.com/potluckhq/potluck/internal/domain/potluck"
)

type mockPotluckRepository struct {
	CreateFunc        func(ctx context.Context, p *potluck.Potluck) error
	UpdateFunc        func(ctx context.Context, p *potluck.Potluck) error
	GetBySlugFunc     func(ctx context.Context, slug string) (*potluck.Potluck, error)
	ExistsBySlugFunc  func(ctx context.Context, slug string) (bool, error)
	ListFunc          func(ctx context.Context) ([]*potluck.Potluck, error)
	StatsFunc         func(ctx context.Context, potluckIDs []uint) (map[uint]potluck.PotluckStats, error)
	DeleteCascadeFunc func(ctx context.Context, id uint) error
}

func (m *mockPotluckRepository) Create(ctx context.Context, p *potluck.Potluck) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPotluckRepository) Update(ctx context.Context, p *potluck.Potluck) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPotluckRepository) GetBySlug(ctx context.Context, slug string) (*potluck.Potluck, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockPotluckRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	if m.ExistsBySlugFunc != nil {
		return m.ExistsBySlugFunc(ctx, slug)
	}
	return false, nil
}

func (m *mockPotluckRepository) List(ctx context.Context) ([]*potluck.Potluck, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockPotluckRepository) Stats(ctx context.Context, potluckIDs []uint) (map[uint]potluck.PotluckStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, potluckIDs)
	}
	return map[uint]potluck.PotluckStats{}, nil
}

func (m *mockPotluckRepository) DeleteCascade(ctx context.Context, id uint) error {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return nil
}

type mockCategoryRepository struct {
	CreateFunc           func(ctx context.Context, c *potluck.Category) error
	UpdateFunc           func(ctx context.Context, c *potluck.Category) error
	GetByIDFunc          func(ctx context.Context, id uint) (*potluck.Category, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uint) (*potluck.Category, error)
	ListByPotluckIDFunc  func(ctx context.Context, potluckID uint) ([]*potluck.Category, error)
	DeleteCascadeFunc    func(ctx context.Context, id uint) error
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *potluck.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *potluck.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*potluck.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

// GetByIDForUpdate falls back to GetByIDFunc so tests only stub one lookup.
func (m *mockCategoryRepository) GetByIDForUpdate(ctx context.Context, id uint) (*potluck.Category, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *mockCategoryRepository) ListByPotluckID(ctx context.Context, potluckID uint) ([]*potluck.Category, error) {
	if m.ListByPotluckIDFunc != nil {
		return m.ListByPotluckIDFunc(ctx, potluckID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) DeleteCascade(ctx context.Context, id uint) error {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return nil
}

type mockItemRepository struct {
	CreateFunc            func(ctx context.Context, i *potluck.Item) error
	UpdateFunc            func(ctx context.Context, i *potluck.Item) error
	GetByIDFunc           func(ctx context.Context, id uint) (*potluck.Item, error)
	GetByIDForUpdateFunc  func(ctx context.Context, id uint) (*potluck.Item, error)
	ListByCategoryIDsFunc func(ctx context.Context, categoryIDs []uint) ([]*potluck.Item, error)
	CountByCategoryIDFunc func(ctx context.Context, categoryID uint) (int64, error)
	DeleteCascadeFunc     func(ctx context.Context, id uint) error
}

func (m *mockItemRepository) Create(ctx context.Context, i *potluck.Item) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, i)
	}
	return nil
}

func (m *mockItemRepository) Update(ctx context.Context, i *potluck.Item) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockItemRepository) GetByID(ctx context.Context, id uint) (*potluck.Item, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockItemRepository) GetByIDForUpdate(ctx context.Context, id uint) (*potluck.Item, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *mockItemRepository) ListByCategoryIDs(ctx context.Context, categoryIDs []uint) ([]*potluck.Item, error) {
	if m.ListByCategoryIDsFunc != nil {
		return m.ListByCategoryIDsFunc(ctx, categoryIDs)
	}
	return nil, nil
}

func (m *mockItemRepository) CountByCategoryID(ctx context.Context, categoryID uint) (int64, error) {
	if m.CountByCategoryIDFunc != nil {
		return m.CountByCategoryIDFunc(ctx, categoryID)
	}
	return 0, nil
}

func (m *mockItemRepository) DeleteCascade(ctx context.Context, id uint) error {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return nil
}

type mockClaimRepository struct {
	CreateFunc        func(ctx context.Context, c *potluck.Claim) error
	UpdateFunc        func(ctx context.Context, c *potluck.Claim) error
	GetByIDFunc       func(ctx context.Context, id uint) (*potluck.Claim, error)
	DeleteFunc        func(ctx context.Context, id uint) error
	ListByItemIDsFunc func(ctx context.Context, itemIDs []uint) ([]*potluck.Claim, error)
	CountByItemIDFunc func(ctx context.Context, itemID uint) (int64, error)
}

func (m *mockClaimRepository) Create(ctx context.Context, c *potluck.Claim) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockClaimRepository) Update(ctx context.Context, c *potluck.Claim) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockClaimRepository) GetByID(ctx context.Context, id uint) (*potluck.Claim, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockClaimRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockClaimRepository) ListByItemIDs(ctx context.Context, itemIDs []uint) ([]*potluck.Claim, error) {
	if m.ListByItemIDsFunc != nil {
		return m.ListByItemIDsFunc(ctx, itemIDs)
	}
	return nil, nil
}

func (m *mockClaimRepository) CountByItemID(ctx context.Context, itemID uint) (int64, error) {
	if m.CountByItemIDFunc != nil {
		return m.CountByItemIDFunc(ctx, itemID)
	}
	return 0, nil
}

// mockTxManager runs fn inline and counts invocations.
type mockTxManager struct {
	calls int
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockRenderer struct {
	ToHTMLSanitizedFunc func(markdown string) (string, error)
}

func (m *mockRenderer) ToHTMLSanitized(markdown string) (string, error) {
	if m.ToHTMLSanitizedFunc != nil {
		return m.ToHTMLSanitizedFunc(markdown)
	}
	if markdown == "" {
		return "", nil
	}
	return "<p>" + markdown + "</p>", nil
}

func (m *mockRenderer) StripTags(text string) string {
	text = strings.ReplaceAll(text, "<b>", "")
	text = strings.ReplaceAll(text, "</b>", "")
	return strings.TrimSpace(text)
}
