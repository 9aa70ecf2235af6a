package potluck

import "errors"

var (
	// ErrItemFull is returned when an item already has claim_limit claims.
	ErrItemFull = errors.New("item is full")

	// ErrCategoryFull is returned when a category already holds max_items items.
	ErrCategoryFull = errors.New("category is full")

	// ErrDetailsRequired is returned when an item requires details and none were given.
	ErrDetailsRequired = errors.New("item details are required for this item")

	// ErrOwnershipDenied is returned when a claim does not belong to the caller.
	ErrOwnershipDenied = errors.New("claim does not belong to this session")

	// ErrSlugTaken is returned by the repository when a slug already exists.
	ErrSlugTaken = errors.New("url slug already taken")

	// ErrClaimLimitBelowClaims is returned when lowering claim_limit would strand existing claims.
	ErrClaimLimitBelowClaims = errors.New("claim limit cannot be lower than the current number of claims")
)
