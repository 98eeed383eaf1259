package utils

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

const (
	ErrValidationFailed   = "Validation failed"
	ErrInternalServer     = "Internal server error"
	ErrUnauthorized       = "Authentication required"
	ErrForbidden          = "Insufficient permissions"
	ErrInvalidCredentials = "Invalid username or password"
	ErrInvalidID          = "Invalid id"
)

const AppName = "gmbtravels"

// DefaultSlugPrefix is used when a title produces an empty slug.
const DefaultSlugPrefix = "kashmir-travel"

const MaxSlugLength = 50
