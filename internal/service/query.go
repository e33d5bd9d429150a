package service

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opencatalog/shopping-api/internal/domain"
)

// Result-size bounds for list queries. Limits outside the range are
// rejected, never silently clamped.
const (
	DefaultLimit = 24
	MinLimit     = 1
	MaxLimit     = 100
)

// ListParams carries the optional list/filter parameters of a catalog query.
// A nil Limit means "use the default".
type ListParams struct {
	Search   string
	Category string
	Limit    *int
}

// buildFilter composes the store-level filter from the optional free-text
// and category parameters. Free text matches as a case-insensitive substring
// of title or description; category matches exactly; both conditions
// combine with AND. Empty parameters produce a match-all filter.
func buildFilter(search, category string) bson.M {
	filter := bson.M{}

	if search != "" {
		// quote the input so it is a substring match, not a raw regex
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	if category != "" {
		filter["category"] = category
	}

	return filter
}

// resolveLimit applies the default for an absent limit and validates the
// rest against [MinLimit, MaxLimit].
func resolveLimit(limit *int) (int64, error) {
	if limit == nil {
		return DefaultLimit, nil
	}

	if *limit < MinLimit || *limit > MaxLimit {
		return 0, fmt.Errorf("%w: got %d", domain.ErrInvalidLimit, *limit)
	}

	return int64(*limit), nil
}
