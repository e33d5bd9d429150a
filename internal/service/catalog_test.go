package service

import (
	"context"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opencatalog/shopping-api/internal/domain"
	"github.com/opencatalog/shopping-api/internal/events"
)

// fakeStore is an in-memory Store that records the filter and limit it was
// handed; filter interpretation itself belongs to the real document store.
type fakeStore struct {
	docs       map[primitive.ObjectID]bson.M
	findResult []bson.M
	distinct   []interface{}

	lastFilter bson.M
	lastLimit  int64
	calls      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[primitive.ObjectID]bson.M{}}
}

func (f *fakeStore) Find(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error) {
	f.calls++
	f.lastFilter = filter
	f.lastLimit = limit
	return f.findResult, nil
}

func (f *fakeStore) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	f.calls++
	doc, ok := f.docs[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return doc, nil
}

func (f *fakeStore) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	f.calls++
	id := primitive.NewObjectID()
	stored := bson.M{"_id": id}
	for key, value := range doc {
		stored[key] = value
	}
	f.docs[id] = stored
	return id, nil
}

func (f *fakeStore) Distinct(ctx context.Context, field string) ([]interface{}, error) {
	f.calls++
	return f.distinct, nil
}

func newTestService(st *fakeStore) CatalogService {
	if st == nil {
		return NewCatalogService(nil, events.NewBus(), hclog.NewNullLogger())
	}
	return NewCatalogService(st, events.NewBus(), hclog.NewNullLogger())
}

func TestOperationsFailWithoutStore(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	_, err := svc.ListProducts(ctx, ListParams{})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = svc.GetProduct(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = svc.CreateProduct(ctx, domain.ProductInput{Title: "x", Category: "y"})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = svc.ListCategories(ctx)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestListProductsPassesFilterAndLimit(t *testing.T) {
	st := newFakeStore()
	st.findResult = []bson.M{
		{"_id": primitive.NewObjectID(), "title": "Toy Truck", "price": 15.0, "category": "toys"},
	}
	svc := newTestService(st)

	limit := 5
	products, err := svc.ListProducts(context.Background(), ListParams{
		Search:   "truck",
		Category: "toys",
		Limit:    &limit,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), st.lastLimit)
	assert.Contains(t, st.lastFilter, "$or")
	assert.Equal(t, "toys", st.lastFilter["category"])

	require.Len(t, products, 1)
	assert.Equal(t, "Toy Truck", products[0].Title)
	assert.True(t, products[0].InStock)
}

func TestListProductsDefaultLimit(t *testing.T) {
	st := newFakeStore()
	svc := newTestService(st)

	products, err := svc.ListProducts(context.Background(), ListParams{})
	require.NoError(t, err)

	assert.Equal(t, int64(DefaultLimit), st.lastLimit)
	assert.NotNil(t, products, "an empty result should still be a slice")
	assert.Empty(t, products)
}

func TestListProductsRejectsOutOfRangeLimitBeforeStoreCall(t *testing.T) {
	st := newFakeStore()
	svc := newTestService(st)

	for _, limit := range []int{0, 101} {
		l := limit
		_, err := svc.ListProducts(context.Background(), ListParams{Limit: &l})
		assert.ErrorIs(t, err, domain.ErrInvalidLimit)
	}

	assert.Zero(t, st.calls, "validation must happen before any store call")
}

func TestGetProductRejectsMalformedIDBeforeStoreCall(t *testing.T) {
	st := newFakeStore()
	svc := newTestService(st)

	_, err := svc.GetProduct(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, domain.ErrInvalidProductID)
	assert.Zero(t, st.calls)
}

func TestGetProductNotFound(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.GetProduct(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc := newTestService(newFakeStore())
	ctx := context.Background()

	description := "Holds coffee"
	inStock := false
	rating := 3.5
	reviews := 7
	input := domain.ProductInput{
		Title:       "Blue Mug",
		Description: &description,
		Price:       12.99,
		Category:    "kitchen",
		InStock:     &inStock,
		Rating:      &rating,
		Reviews:     &reviews,
	}

	id, err := svc.CreateProduct(ctx, input)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	product, err := svc.GetProduct(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, id, product.ID)
	assert.Equal(t, input.Title, product.Title)
	require.NotNil(t, product.Description)
	assert.Equal(t, description, *product.Description)
	assert.Equal(t, input.Price, product.Price)
	assert.Equal(t, input.Category, product.Category)
	assert.Equal(t, inStock, product.InStock)
	assert.Equal(t, rating, product.Rating)
	assert.Equal(t, reviews, product.Reviews)
}

func TestCreateAppliesReadSideDefaults(t *testing.T) {
	svc := newTestService(newFakeStore())
	ctx := context.Background()

	id, err := svc.CreateProduct(ctx, domain.ProductInput{
		Title:    "Plain Mug",
		Price:    9.99,
		Category: "kitchen",
	})
	require.NoError(t, err)

	product, err := svc.GetProduct(ctx, id)
	require.NoError(t, err)

	assert.True(t, product.InStock)
	assert.Equal(t, 4.5, product.Rating)
	assert.Equal(t, 0, product.Reviews)
	assert.Nil(t, product.Description)
}

func TestCreatePublishesProductCreated(t *testing.T) {
	st := newFakeStore()
	bus := events.NewBus()
	created := bus.Subscribe()
	svc := NewCatalogService(st, bus, hclog.NewNullLogger())

	id, err := svc.CreateProduct(context.Background(), domain.ProductInput{
		Title:    "Blue Mug",
		Price:    12.99,
		Category: "kitchen",
	})
	require.NoError(t, err)

	event := <-created
	assert.Equal(t, id, event.ID)
	assert.Equal(t, "Blue Mug", event.Title)
	assert.Equal(t, "kitchen", event.Category)
}

func TestListCategoriesDropsEmptyValues(t *testing.T) {
	st := newFakeStore()
	st.distinct = []interface{}{"kitchen", "", "toys", nil, int32(3), "misc"}
	svc := newTestService(st)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"kitchen", "toys", "misc"}, categories)
}
