package errors

import (
	stderrors "errors"
	"net/http"
)

// Authentication and ownership error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeSessionExpired     ErrorType = "session_expired"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
	ErrorTypeOwnershipDenied    ErrorType = "ownership_denied"
)

// Sentinels returned by session token verification
var (
	ErrSessionTokenExpired = stderrors.New("session token expired")
	ErrSessionTokenInvalid = stderrors.New("session token invalid")
)

// AuthError represents authentication-specific errors with security context
type AuthError struct {
	*AppError
	// ShouldLog determines if this error should be logged at warn level or above
	ShouldLog bool
	// SecurityEvent indicates the failure is worth tracking for abuse detection
	SecurityEvent bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError creates the single admin login failure.
// There is only one account, so the message carries no hint beyond "wrong password".
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "Invalid password",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewSessionExpiredError creates an error for an expired or revoked admin session
func NewSessionExpiredError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeSessionExpired,
			Message: "Session has expired",
			Code:    http.StatusUnauthorized,
			Details: "Please login again",
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// NewTokenInvalidError creates an error for a session token that fails verification
func NewTokenInvalidError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: "Invalid session",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

// NewOwnershipDeniedError is returned for any mismatch on self-service claim removal.
// It never distinguishes a wrong session from a wrong name.
func NewOwnershipDeniedError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeOwnershipDenied,
			Message: "You can only remove your own claims",
			Code:    http.StatusForbidden,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// IsAuthError checks if the error is an AuthError (supports wrapped errors via errors.As)
func IsAuthError(err error) bool {
	var authErr *AuthError
	return stderrors.As(err, &authErr)
}

// GetAuthError extracts AuthError from error chain
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// IsOwnershipDeniedError reports whether err is an ownership denial
func IsOwnershipDeniedError(err error) bool {
	return isType(err, ErrorTypeOwnershipDenied)
}

// IsInvalidCredentialsError reports whether err is a failed admin login
func IsInvalidCredentialsError(err error) bool {
	return isType(err, ErrorTypeInvalidCredentials)
}

// ShouldLogAuthError returns true if the authentication error should be logged
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}

// IsSecurityEvent returns true if the error should be tracked as a security event
func IsSecurityEvent(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.SecurityEvent
	}
	return false
}
