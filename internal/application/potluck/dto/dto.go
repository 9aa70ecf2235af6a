package dto

import (
	"time"

	"github.com/potluckhq/potluck/internal/domain/potluck"
)

type PotluckDTO struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html,omitempty"`
	URLSlug         string    `json:"url_slug"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PotluckSummaryDTO is one dashboard row.
type PotluckSummaryDTO struct {
	PotluckDTO
	CategoryCount int64 `json:"category_count"`
	ItemCount     int64 `json:"item_count"`
	ClaimCount    int64 `json:"claim_count"`
}

type DashboardDTO struct {
	Potlucks    []PotluckSummaryDTO `json:"potlucks"`
	TotalClaims int64               `json:"total_claims"`
}

// PotluckTreeDTO is the full event as attendees and admins see it.
type PotluckTreeDTO struct {
	PotluckDTO
	Categories []CategoryDTO `json:"categories"`
}

type CategoryDTO struct {
	ID              uint      `json:"id"`
	PotluckID       uint      `json:"potluck_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html,omitempty"`
	MaxItems        int       `json:"max_items"`
	DisplayOrder    int       `json:"display_order"`
	ItemCount       int       `json:"item_count"`
	CanAddItem      bool      `json:"can_add_item"`
	Items           []ItemDTO `json:"items"`
}

type ItemDTO struct {
	ID              uint       `json:"id"`
	CategoryID      uint       `json:"category_id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	DescriptionHTML string     `json:"description_html,omitempty"`
	ClaimLimit      int        `json:"claim_limit"`
	ClaimCount      int        `json:"claim_count"`
	CanClaim        bool       `json:"can_claim"`
	CreatedByAdmin  bool       `json:"created_by_admin"`
	RequireDetails  bool       `json:"require_details"`
	CreatedAt       time.Time  `json:"created_at"`
	Claims          []ClaimDTO `json:"claims"`
}

// ClaimDTO never carries the session id; IsMine tells the viewer which claims they may remove.
type ClaimDTO struct {
	ID           uint      `json:"id"`
	ItemID       uint      `json:"item_id"`
	AttendeeName string    `json:"attendee_name"`
	ItemDetails  string    `json:"item_details"`
	ClaimedAt    time.Time `json:"claimed_at"`
	IsMine       bool      `json:"is_mine"`
}

func ToPotluckDTO(p *potluck.Potluck) PotluckDTO {
	return PotluckDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		URLSlug:     p.URLSlug(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func ToCategoryDTO(c *potluck.Category) CategoryDTO {
	return CategoryDTO{
		ID:           c.ID(),
		PotluckID:    c.PotluckID(),
		Name:         c.Name(),
		Description:  c.Description(),
		MaxItems:     c.MaxItems(),
		DisplayOrder: c.DisplayOrder(),
		Items:        []ItemDTO{},
	}
}

func ToItemDTO(i *potluck.Item) ItemDTO {
	return ItemDTO{
		ID:             i.ID(),
		CategoryID:     i.CategoryID(),
		Name:           i.Name(),
		Description:    i.Description(),
		ClaimLimit:     i.ClaimLimit(),
		CanClaim:       i.CanClaim(0),
		CreatedByAdmin: i.CreatedByAdmin(),
		RequireDetails: i.RequireDetails(),
		CreatedAt:      i.CreatedAt(),
		Claims:         []ClaimDTO{},
	}
}

// ToClaimDTO marks the claim as the viewer's own when viewerSessionID owns it.
func ToClaimDTO(c *potluck.Claim, viewerSessionID string) ClaimDTO {
	sid := c.SessionID()
	return ClaimDTO{
		ID:           c.ID(),
		ItemID:       c.ItemID(),
		AttendeeName: c.AttendeeName(),
		ItemDetails:  c.ItemDetails(),
		ClaimedAt:    c.ClaimedAt(),
		IsMine:       viewerSessionID != "" && sid != nil && *sid == viewerSessionID,
	}
}
