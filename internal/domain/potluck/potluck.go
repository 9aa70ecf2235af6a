// Package potluck holds the event aggregate: a potluck owns ordered categories,
// categories own items, and items own claims.
package potluck

import (
	"fmt"
	"time"

	"github.com/potluckhq/potluck/internal/shared/constants"
	"github.com/potluckhq/potluck/internal/shared/id"
)

type Potluck struct {
	id          uint
	name        string
	description string
	urlSlug     string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPotluck(name, description, urlSlug string) (*Potluck, error) {
	name, err := normalizeName("name", name)
	if err != nil {
		return nil, err
	}
	description, err = normalizeText("description", description, constants.MaxDescriptionLength)
	if err != nil {
		return nil, err
	}
	if urlSlug == "" || !id.IsValidSlug(urlSlug) {
		return nil, fmt.Errorf("invalid url slug")
	}

	now := time.Now().UTC()
	return &Potluck{
		name:        name,
		description: description,
		urlSlug:     urlSlug,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPotluck(id uint, name, description, urlSlug string, createdAt, updatedAt time.Time) (*Potluck, error) {
	if id == 0 {
		return nil, fmt.Errorf("potluck ID cannot be zero")
	}
	if urlSlug == "" {
		return nil, fmt.Errorf("url slug is required")
	}
	return &Potluck{
		id:          id,
		name:        name,
		description: description,
		urlSlug:     urlSlug,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Potluck) ID() uint {
	return p.id
}

func (p *Potluck) Name() string {
	return p.name
}

func (p *Potluck) Description() string {
	return p.description
}

// URLSlug is assigned once at creation and never changes.
func (p *Potluck) URLSlug() string {
	return p.urlSlug
}

func (p *Potluck) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Potluck) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Potluck) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("potluck ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("potluck ID cannot be zero")
	}
	p.id = id
	return nil
}

// Update edits the metadata shown to attendees.
func (p *Potluck) Update(name, description string) error {
	name, err := normalizeName("name", name)
	if err != nil {
		return err
	}
	description, err = normalizeText("description", description, constants.MaxDescriptionLength)
	if err != nil {
		return err
	}
	p.name = name
	p.description = description
	p.updatedAt = time.Now().UTC()
	return nil
}
