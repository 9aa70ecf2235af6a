package potluck

import (
	"fmt"
	"time"

	"github.com/potluckhq/potluck/internal/shared/constants"
)

type Claim struct {
	id           uint
	itemID       uint
	attendeeName string
	itemDetails  string
	sessionID    *string
	claimedAt    time.Time
}

// NewClaim builds a claim. sessionID is nil for claims created outside a browser session.
func NewClaim(itemID uint, attendeeName, itemDetails string, sessionID *string) (*Claim, error) {
	if itemID == 0 {
		return nil, fmt.Errorf("item ID is required")
	}
	c := &Claim{
		itemID:    itemID,
		sessionID: sessionID,
		claimedAt: time.Now().UTC(),
	}
	if err := c.Update(attendeeName, itemDetails); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructClaim(id, itemID uint, attendeeName, itemDetails string, sessionID *string, claimedAt time.Time) (*Claim, error) {
	if id == 0 {
		return nil, fmt.Errorf("claim ID cannot be zero")
	}
	if itemID == 0 {
		return nil, fmt.Errorf("item ID is required")
	}
	return &Claim{
		id:           id,
		itemID:       itemID,
		attendeeName: attendeeName,
		itemDetails:  itemDetails,
		sessionID:    sessionID,
		claimedAt:    claimedAt,
	}, nil
}

func (c *Claim) ID() uint {
	return c.id
}

func (c *Claim) ItemID() uint {
	return c.itemID
}

func (c *Claim) AttendeeName() string {
	return c.attendeeName
}

func (c *Claim) ItemDetails() string {
	return c.itemDetails
}

func (c *Claim) SessionID() *string {
	return c.sessionID
}

func (c *Claim) ClaimedAt() time.Time {
	return c.claimedAt
}

func (c *Claim) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("claim ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("claim ID cannot be zero")
	}
	c.id = id
	return nil
}

// Update edits the attendee-facing fields. The session binding is never changed.
func (c *Claim) Update(attendeeName, itemDetails string) error {
	attendeeName, err := normalizeName("attendee name", attendeeName)
	if err != nil {
		return err
	}
	itemDetails, err = normalizeText("item details", itemDetails, constants.MaxItemDetailsLength)
	if err != nil {
		return err
	}
	c.attendeeName = attendeeName
	c.itemDetails = itemDetails
	return nil
}

// IsOwnedBy requires an exact match on both the session id and the attendee name.
// Claims without a session can only be removed by an admin.
func (c *Claim) IsOwnedBy(sessionID, attendeeName string) bool {
	if c.sessionID == nil || *c.sessionID == "" || sessionID == "" {
		return false
	}
	return *c.sessionID == sessionID && c.attendeeName == attendeeName
}
