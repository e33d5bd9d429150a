package service

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opencatalog/shopping-api/internal/domain"
)

// Defaults applied when a stored document omits an optional field.
const (
	defaultInStock = true
	defaultRating  = 4.5
	defaultReviews = 0
)

// docToProduct converts a raw stored document into the outward-facing
// Product. Absent optional fields take the defaults above; a field stored
// with an unexpected type wraps ErrMalformedRecord since that indicates
// store corruption rather than user error.
func docToProduct(doc bson.M) (domain.Product, error) {
	id, err := idField(doc)
	if err != nil {
		return domain.Product{}, err
	}

	title, err := stringField(doc, "title")
	if err != nil {
		return domain.Product{}, err
	}

	description, err := optionalStringField(doc, "description")
	if err != nil {
		return domain.Product{}, err
	}

	price, err := floatField(doc, "price", 0)
	if err != nil {
		return domain.Product{}, err
	}

	category, err := stringField(doc, "category")
	if err != nil {
		return domain.Product{}, err
	}

	inStock, err := boolField(doc, "in_stock", defaultInStock)
	if err != nil {
		return domain.Product{}, err
	}

	image, err := optionalStringField(doc, "image")
	if err != nil {
		return domain.Product{}, err
	}

	rating, err := floatField(doc, "rating", defaultRating)
	if err != nil {
		return domain.Product{}, err
	}

	reviews, err := intField(doc, "reviews", defaultReviews)
	if err != nil {
		return domain.Product{}, err
	}

	return domain.Product{
		ID:          id,
		Title:       title,
		Description: description,
		Price:       price,
		Category:    category,
		InStock:     inStock,
		Image:       image,
		Rating:      rating,
		Reviews:     reviews,
	}, nil
}

// inputToDoc copies the input fields into a raw document and stamps the
// creation/update instants. Nil optionals are omitted so the read-side
// defaults apply on the way back out.
func inputToDoc(input domain.ProductInput, now time.Time) bson.M {
	doc := bson.M{
		"title":      input.Title,
		"price":      input.Price,
		"category":   input.Category,
		"created_at": now.UTC(),
		"updated_at": now.UTC(),
	}

	if input.Description != nil {
		doc["description"] = *input.Description
	}
	if input.InStock != nil {
		doc["in_stock"] = *input.InStock
	}
	if input.Image != nil {
		doc["image"] = *input.Image
	}
	if input.Rating != nil {
		doc["rating"] = *input.Rating
	}
	if input.Reviews != nil {
		doc["reviews"] = *input.Reviews
	}

	return doc
}

func idField(doc bson.M) (string, error) {
	switch id := doc["_id"].(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return "", fmt.Errorf("%w: _id has type %T", domain.ErrMalformedRecord, doc["_id"])
	}
}

func stringField(doc bson.M, key string) (string, error) {
	value, ok := doc[key]
	if !ok || value == nil {
		return "", nil
	}

	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s has type %T", domain.ErrMalformedRecord, key, value)
	}

	return s, nil
}

func optionalStringField(doc bson.M, key string) (*string, error) {
	value, ok := doc[key]
	if !ok || value == nil {
		return nil, nil
	}

	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s has type %T", domain.ErrMalformedRecord, key, value)
	}

	return &s, nil
}

func floatField(doc bson.M, key string, def float64) (float64, error) {
	value, ok := doc[key]
	if !ok || value == nil {
		return def, nil
	}

	switch n := value.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: %s has type %T", domain.ErrMalformedRecord, key, value)
	}
}

func intField(doc bson.M, key string, def int) (int, error) {
	value, ok := doc[key]
	if !ok || value == nil {
		return def, nil
	}

	switch n := value.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: %s has type %T", domain.ErrMalformedRecord, key, value)
	}
}

func boolField(doc bson.M, key string, def bool) (bool, error) {
	value, ok := doc[key]
	if !ok || value == nil {
		return def, nil
	}

	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s has type %T", domain.ErrMalformedRecord, key, value)
	}

	return b, nil
}
