package service

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/opencatalog/shopping-api/internal/domain"
	"github.com/opencatalog/shopping-api/internal/events"
	"github.com/opencatalog/shopping-api/internal/store"
)

type CatalogService interface {
	ListProducts(ctx context.Context, params ListParams) ([]domain.Product, error)
	GetProduct(ctx context.Context, rawID string) (domain.Product, error)
	CreateProduct(ctx context.Context, input domain.ProductInput) (string, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type catalogService struct {
	store  store.Store
	bus    *events.Bus
	logger hclog.Logger
}

// NewCatalogService wires the catalog operations to the document store.
// st may be nil when no store is configured; every operation then fails
// with ErrStoreUnavailable before touching anything.
func NewCatalogService(st store.Store, bus *events.Bus, logger hclog.Logger) CatalogService {
	return &catalogService{
		store:  st,
		bus:    bus,
		logger: logger,
	}
}

func (s *catalogService) ListProducts(ctx context.Context, params ListParams) ([]domain.Product, error) {
	s.logger.Debug("Listing products",
		"search", params.Search, "category", params.Category)

	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	limit, err := resolveLimit(params.Limit)
	if err != nil {
		return nil, err
	}

	docs, err := s.store.Find(ctx, buildFilter(params.Search, params.Category), limit)
	if err != nil {
		s.logger.Error("Unable to query products", "error", err)
		return nil, err
	}

	products := make([]domain.Product, 0, len(docs))
	for _, doc := range docs {
		product, err := docToProduct(doc)
		if err != nil {
			s.logger.Error("Unable to map stored product", "error", err)
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, rawID string) (domain.Product, error) {
	s.logger.Debug("Getting product", "id", rawID)

	if s.store == nil {
		return domain.Product{}, domain.ErrStoreUnavailable
	}

	// validate before any store call
	id, err := domain.ParseProductID(rawID)
	if err != nil {
		return domain.Product{}, err
	}

	doc, err := s.store.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	product, err := docToProduct(doc)
	if err != nil {
		s.logger.Error("Unable to map stored product", "id", rawID, "error", err)
		return domain.Product{}, err
	}

	return product, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, input domain.ProductInput) (string, error) {
	s.logger.Debug("Creating product", "title", input.Title)

	if s.store == nil {
		return "", domain.ErrStoreUnavailable
	}

	id, err := s.store.Insert(ctx, inputToDoc(input, time.Now()))
	if err != nil {
		s.logger.Error("Unable to insert product", "title", input.Title, "error", err)
		return "", err
	}

	if s.bus != nil {
		s.bus.Publish(events.ProductCreated{
			ID:       id.Hex(),
			Title:    input.Title,
			Category: input.Category,
		})
	}

	return id.Hex(), nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]string, error) {
	s.logger.Debug("Listing categories")

	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	values, err := s.store.Distinct(ctx, "category")
	if err != nil {
		s.logger.Error("Unable to list categories", "error", err)
		return nil, err
	}

	categories := make([]string, 0, len(values))
	for _, value := range values {
		if name, ok := value.(string); ok && name != "" {
			categories = append(categories, name)
		}
	}

	return categories, nil
}
