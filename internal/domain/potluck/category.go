package potluck

import (
	"fmt"

	"github.com/potluckhq/potluck/internal/shared/constants"
)

type Category struct {
	id           uint
	potluckID    uint
	name         string
	description  string
	maxItems     int
	displayOrder int
}

func NewCategory(potluckID uint, name, description string, maxItems, displayOrder int) (*Category, error) {
	if potluckID == 0 {
		return nil, fmt.Errorf("potluck ID is required")
	}
	c := &Category{potluckID: potluckID}
	if err := c.Update(name, description, maxItems, displayOrder); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCategory(id, potluckID uint, name, description string, maxItems, displayOrder int) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if potluckID == 0 {
		return nil, fmt.Errorf("potluck ID is required")
	}
	return &Category{
		id:           id,
		potluckID:    potluckID,
		name:         name,
		description:  description,
		maxItems:     maxItems,
		displayOrder: displayOrder,
	}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) PotluckID() uint {
	return c.potluckID
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) MaxItems() int {
	return c.maxItems
}

func (c *Category) DisplayOrder() int {
	return c.displayOrder
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Category) Update(name, description string, maxItems, displayOrder int) error {
	name, err := normalizeName("name", name)
	if err != nil {
		return err
	}
	description, err = normalizeText("description", description, constants.MaxDescriptionLength)
	if err != nil {
		return err
	}
	if maxItems < 1 || maxItems > constants.MaxCategoryMaxItems {
		return fmt.Errorf("max items must be between 1 and %d", constants.MaxCategoryMaxItems)
	}
	if displayOrder < 0 {
		return fmt.Errorf("display order cannot be negative")
	}
	c.name = name
	c.description = description
	c.maxItems = maxItems
	c.displayOrder = displayOrder
	return nil
}

// HasRoomForItem reports whether an attendee may add one more item.
func (c *Category) HasRoomForItem(currentItemCount int64) bool {
	return currentItemCount < int64(c.maxItems)
}

// BelongsTo reports whether the category is part of the given potluck.
func (c *Category) BelongsTo(potluckID uint) bool {
	return c.potluckID == potluckID
}
