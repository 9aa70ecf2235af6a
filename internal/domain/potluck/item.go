package potluck

import (
	"fmt"
	"strings"
	"time"

	"github.com/potluckhq/potluck/internal/shared/constants"
)

type Item struct {
	id             uint
	categoryID     uint
	name           string
	description    string
	claimLimit     int
	createdByAdmin bool
	requireDetails bool
	createdAt      time.Time
}

func NewItem(categoryID uint, name, description string, claimLimit int, requireDetails, createdByAdmin bool) (*Item, error) {
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	name, err := normalizeName("name", name)
	if err != nil {
		return nil, err
	}
	description, err = normalizeText("description", description, constants.MaxDescriptionLength)
	if err != nil {
		return nil, err
	}
	if err := validateClaimLimit(claimLimit); err != nil {
		return nil, err
	}

	return &Item{
		categoryID:     categoryID,
		name:           name,
		description:    description,
		claimLimit:     claimLimit,
		createdByAdmin: createdByAdmin,
		requireDetails: requireDetails,
		createdAt:      time.Now().UTC(),
	}, nil
}

func ReconstructItem(
	id, categoryID uint,
	name, description string,
	claimLimit int,
	createdByAdmin, requireDetails bool,
	createdAt time.Time,
) (*Item, error) {
	if id == 0 {
		return nil, fmt.Errorf("item ID cannot be zero")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	return &Item{
		id:             id,
		categoryID:     categoryID,
		name:           name,
		description:    description,
		claimLimit:     claimLimit,
		createdByAdmin: createdByAdmin,
		requireDetails: requireDetails,
		createdAt:      createdAt,
	}, nil
}

func (i *Item) ID() uint {
	return i.id
}

func (i *Item) CategoryID() uint {
	return i.categoryID
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Description() string {
	return i.description
}

func (i *Item) ClaimLimit() int {
	return i.claimLimit
}

func (i *Item) CreatedByAdmin() bool {
	return i.createdByAdmin
}

func (i *Item) RequireDetails() bool {
	return i.requireDetails
}

func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Item) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("item ID cannot be zero")
	}
	i.id = id
	return nil
}

// Update changes the item. currentClaims is the number of claims already held;
// the limit may not drop below it.
func (i *Item) Update(name, description string, claimLimit int, requireDetails bool, currentClaims int64) error {
	name, err := normalizeName("name", name)
	if err != nil {
		return err
	}
	description, err = normalizeText("description", description, constants.MaxDescriptionLength)
	if err != nil {
		return err
	}
	if err := validateClaimLimit(claimLimit); err != nil {
		return err
	}
	if int64(claimLimit) < currentClaims {
		return ErrClaimLimitBelowClaims
	}
	i.name = name
	i.description = description
	i.claimLimit = claimLimit
	i.requireDetails = requireDetails
	return nil
}

// CanClaim reports whether another claim fits under the limit.
func (i *Item) CanClaim(currentClaimCount int64) bool {
	return currentClaimCount < int64(i.claimLimit)
}

// CheckClaimDetails rejects blank details when the item asks for them.
func (i *Item) CheckClaimDetails(details string) error {
	if i.requireDetails && strings.TrimSpace(details) == "" {
		return ErrDetailsRequired
	}
	return nil
}

func validateClaimLimit(limit int) error {
	if limit < 1 || limit > constants.MaxClaimLimit {
		return fmt.Errorf("claim limit must be between 1 and %d", constants.MaxClaimLimit)
	}
	return nil
}
