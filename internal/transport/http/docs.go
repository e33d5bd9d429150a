// Package classification of Shopping API
//
// # Documentation for Shopping API
//
// Schemes: http
// BasePath: /
// Version: 1.0.0
//
// Consumes:
// - application/json
//
// Produces:
// - application/json
//
// swagger:meta
package http

import "github.com/opencatalog/shopping-api/internal/domain"

// NOTE: Types defined here are purely for documentation purposes
// These types are not used by any of the handlers

// Generic error message
// swagger:response errorResponse
type errorResponseWrapper struct {
	// Description of the error
	// in: body
	Body ErrorResponse
}

// Validation errors defined as an array of field errors
// swagger:response validationErrorResponse
type validationErrorResponseWrapper struct {
	// Collection of the errors
	// in: body
	Body domain.ValidationErrors
}

// A list of products
// swagger:response productsResponse
type productsResponseWrapper struct {
	// Products matching the query
	// in: body
	Body []domain.Product
}

// A single product
// swagger:response productResponse
type productResponseWrapper struct {
	// The requested product
	// in: body
	Body domain.Product
}

// The identifier assigned to the created product
// swagger:response createProductResponse
type createProductResponseWrapper struct {
	// in: body
	Body string
}

// The distinct non-empty product categories
// swagger:response categoriesResponse
type categoriesResponseWrapper struct {
	// in: body
	Body []string
}
