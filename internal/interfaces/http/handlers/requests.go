package handlers

// Request bodies. Lengths are re-checked by the domain after trimming.

type LoginRequest struct {
	Password string `json:"password" form:"password" binding:"required"`
}

type CreatePotluckRequest struct {
	Name        string `json:"name" form:"name" binding:"required,notblank,max=200"`
	Description string `json:"description" form:"description" binding:"max=2000"`
}

type UpdatePotluckRequest struct {
	Name        *string `json:"name" form:"name" binding:"omitempty,notblank,max=200"`
	Description *string `json:"description" form:"description" binding:"omitempty,max=2000"`
}

type CreateCategoryRequest struct {
	Name         string `json:"name" form:"name" binding:"required,notblank,max=200"`
	Description  string `json:"description" form:"description" binding:"max=2000"`
	MaxItems     *int   `json:"max_items" form:"max_items" binding:"omitempty,gte=1,lte=100"`
	DisplayOrder *int   `json:"display_order" form:"display_order" binding:"omitempty,gte=0"`
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name" form:"name" binding:"omitempty,notblank,max=200"`
	Description  *string `json:"description" form:"description" binding:"omitempty,max=2000"`
	MaxItems     *int    `json:"max_items" form:"max_items" binding:"omitempty,gte=1,lte=100"`
	DisplayOrder *int    `json:"display_order" form:"display_order" binding:"omitempty,gte=0"`
}

type CreateItemRequest struct {
	Name           string `json:"name" form:"name" binding:"required,notblank,max=200"`
	Description    string `json:"description" form:"description" binding:"max=2000"`
	ClaimLimit     *int   `json:"claim_limit" form:"claim_limit" binding:"omitempty,gte=1,lte=100"`
	RequireDetails bool   `json:"require_details" form:"require_details"`
}

type UpdateItemRequest struct {
	Name           *string `json:"name" form:"name" binding:"omitempty,notblank,max=200"`
	Description    *string `json:"description" form:"description" binding:"omitempty,max=2000"`
	ClaimLimit     *int    `json:"claim_limit" form:"claim_limit" binding:"omitempty,gte=1,lte=100"`
	RequireDetails *bool   `json:"require_details" form:"require_details"`
}

type UpdateClaimRequest struct {
	AttendeeName *string `json:"attendee_name" form:"attendee_name" binding:"omitempty,notblank,max=200"`
	ItemDetails  *string `json:"item_details" form:"item_details" binding:"omitempty,max=500"`
}

type ClaimItemRequest struct {
	AttendeeName string `json:"attendee_name" form:"attendee_name" binding:"required,notblank,max=200"`
	ItemDetails  string `json:"item_details" form:"item_details" binding:"max=500"`
}

type DeleteOwnClaimRequest struct {
	AttendeeName string `json:"attendee_name" form:"attendee_name" binding:"required"`
}

type AttendeeItemRequest struct {
	Name        string `json:"name" form:"name" binding:"required,notblank,max=200"`
	Description string `json:"description" form:"description" binding:"max=500"`
}
