package usecases

import (
	"errors"

	"github.com/potluckhq/potluck/internal/domain/potluck"
	apperrors "github.com/potluckhq/potluck/internal/shared/errors"
)

// translateDomainError maps domain sentinels onto the HTTP-facing taxonomy.
// Errors that already are AppErrors pass through untouched.
func translateDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.IsAppError(err) || apperrors.IsAuthError(err):
		return err
	case errors.Is(err, potluck.ErrItemFull):
		return apperrors.NewCapacityExceededError("This item is already fully claimed")
	case errors.Is(err, potluck.ErrCategoryFull):
		return apperrors.NewCapacityExceededError("This category cannot take any more items")
	case errors.Is(err, potluck.ErrDetailsRequired):
		return apperrors.NewValidationError("Please provide details about what you're bringing for this item", "item_details: required")
	case errors.Is(err, potluck.ErrOwnershipDenied):
		return apperrors.NewOwnershipDeniedError()
	case errors.Is(err, potluck.ErrClaimLimitBelowClaims):
		return apperrors.NewValidationError(err.Error(), "claim_limit: below current claims")
	default:
		return err
	}
}

// invalidInput reports constructor and setter failures as validation errors
// unless they carry a domain sentinel with its own mapping.
func invalidInput(err error) error {
	if translated := translateDomainError(err); translated != err {
		return translated
	}
	if apperrors.IsAppError(err) || apperrors.IsAuthError(err) {
		return err
	}
	return apperrors.NewValidationError(err.Error())
}

// isClientError reports errors caused by the request rather than the server.
func isClientError(err error) bool {
	if apperrors.IsAuthError(err) {
		return true
	}
	appErr := apperrors.GetAppError(err)
	return appErr != nil && appErr.Type != apperrors.ErrorTypeInternal
}
