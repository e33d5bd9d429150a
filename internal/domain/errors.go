package domain

import "errors"

// Domain-level errors
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidLimit     = errors.New("limit must be between 1 and 100")
	ErrStoreUnavailable = errors.New("document store not configured")
	ErrMalformedRecord  = errors.New("malformed product record")
)
