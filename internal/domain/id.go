package domain

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseProductID validates an external identifier string and converts it to
// the store's native ObjectID. It accepts only the 24-character hex form and
// has no side effects.
func ParseProductID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidProductID, raw)
	}

	return id, nil
}
