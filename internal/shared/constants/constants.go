package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyAdminSessionID    = "admin_session_id"
	ContextKeyAttendeeSessionID = "attendee_session_id"
	ContextKeyRequestID         = "request_id"

	// Database table names
	TablePotlucks   = "potlucks"
	TableCategories = "categories"
	TableItems      = "items"
	TableClaims     = "claims"

	// Field limits
	MaxNameLength        = 200
	MaxDescriptionLength = 2000
	MaxItemDetailsLength = 500

	// Category defaults
	DefaultCategoryMaxItems = 10
	MaxCategoryMaxItems     = 100

	// Item defaults
	DefaultClaimLimit = 1
	MaxClaimLimit     = 100

	// MaxSlugAttempts bounds slug regeneration on collision.
	MaxSlugAttempts = 5
)
