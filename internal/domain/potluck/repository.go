package potluck

import "context"

// PotluckStats aggregates the child counts shown on the admin dashboard.
type PotluckStats struct {
	CategoryCount int64
	ItemCount     int64
	ClaimCount    int64
}

// PotluckRepository lookups return (nil, nil) when the row does not exist.
type PotluckRepository interface {
	// Create returns ErrSlugTaken when the slug collides with a stored one.
	Create(ctx context.Context, p *Potluck) error
	Update(ctx context.Context, p *Potluck) error
	GetBySlug(ctx context.Context, slug string) (*Potluck, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	// List returns every potluck, newest first.
	List(ctx context.Context) ([]*Potluck, error)
	Stats(ctx context.Context, potluckIDs []uint) (map[uint]PotluckStats, error)
	// DeleteCascade removes the potluck with its categories, items and claims.
	DeleteCascade(ctx context.Context, id uint) error
}

type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id uint) (*Category, error)
	// ListByPotluckID orders by display_order, then id.
	ListByPotluckID(ctx context.Context, potluckID uint) ([]*Category, error)
	DeleteCascade(ctx context.Context, id uint) error
}

type ItemRepository interface {
	Create(ctx context.Context, i *Item) error
	Update(ctx context.Context, i *Item) error
	GetByID(ctx context.Context, id uint) (*Item, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*Item, error)
	// ListByCategoryIDs orders by id.
	ListByCategoryIDs(ctx context.Context, categoryIDs []uint) ([]*Item, error)
	CountByCategoryID(ctx context.Context, categoryID uint) (int64, error)
	DeleteCascade(ctx context.Context, id uint) error
}

type ClaimRepository interface {
	Create(ctx context.Context, c *Claim) error
	Update(ctx context.Context, c *Claim) error
	GetByID(ctx context.Context, id uint) (*Claim, error)
	Delete(ctx context.Context, id uint) error
	// ListByItemIDs orders by claimed_at, then id.
	ListByItemIDs(ctx context.Context, itemIDs []uint) ([]*Claim, error)
	CountByItemID(ctx context.Context, itemID uint) (int64, error)
}
