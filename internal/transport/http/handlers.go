package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	"github.com/opencatalog/shopping-api/internal/domain"
	"github.com/opencatalog/shopping-api/internal/service"
)

// ErrorResponse is the JSON body returned for every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

type CatalogHandler struct {
	catalog service.CatalogService
	logger  hclog.Logger
}

func NewCatalogHandler(cs service.CatalogService, log hclog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: cs,
		logger:  log,
	}
}

// ListProducts handles GET /api/products
//
// swagger:route GET /api/products products listProducts
//
// Returns products matching the optional free-text, category and limit
// parameters.
//
// Responses:
//
//	200: productsResponse
//	400: errorResponse
//	503: errorResponse
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := service.ListParams{
		Search:   query.Get("q"),
		Category: query.Get("category"),
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		params.Limit = &limit
	}

	products, err := h.catalog.ListProducts(r.Context(), params)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	json.NewEncoder(w).Encode(products)
}

// GetProduct handles GET /api/products/{id}
//
// swagger:route GET /api/products/{id} products getProduct
//
// Returns a single product by its identifier.
//
// Responses:
//
//	200: productResponse
//	400: errorResponse
//	404: errorResponse
//	503: errorResponse
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["id"]

	product, err := h.catalog.GetProduct(r.Context(), rawID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	json.NewEncoder(w).Encode(product)
}

// CreateProduct handles POST /api/products
//
// swagger:route POST /api/products products createProduct
//
// Inserts a new product and returns its assigned identifier.
//
// Responses:
//
//	200: createProductResponse
//	422: validationErrorResponse
//	503: errorResponse
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	// the validation middleware decoded and validated the input
	input, ok := r.Context().Value(ContextKeyProductInput).(*domain.ProductInput)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product data")
		return
	}

	id, err := h.catalog.CreateProduct(r.Context(), *input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	json.NewEncoder(w).Encode(id)
}

// ListCategories handles GET /api/categories
//
// swagger:route GET /api/categories categories listCategories
//
// Returns the distinct non-empty product categories.
//
// Responses:
//
//	200: categoriesResponse
//	503: errorResponse
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	json.NewEncoder(w).Encode(categories)
}

// writeServiceError maps domain errors onto HTTP status codes.
func (h *CatalogHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidProductID), errors.Is(err, domain.ErrInvalidLimit):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrProductNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "database not configured")
	default:
		h.logger.Error("Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Message: message})
}
