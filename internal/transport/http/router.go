package http

import (
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/go-openapi/runtime/middleware"
	gohandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	"github.com/opencatalog/shopping-api/internal/domain"
)

func NewRouter(
	ch *CatalogHandler,
	dh *DiagnosticsHandler,
	validator *domain.Validation,
	logger hclog.Logger,
) http.Handler {
	router := mux.NewRouter()

	mw := NewMiddleware(logger, validator)

	// Apply global middleware
	router.Use(mw.LoggingMiddleware)
	router.Use(mw.ContentTypeMiddleware)

	// Catalog routes
	router.HandleFunc("/api/products", ch.ListProducts).Methods("GET")
	router.HandleFunc("/api/products/{id}", ch.GetProduct).Methods("GET")
	router.HandleFunc("/api/categories", ch.ListCategories).Methods("GET")

	// The create route gets the validation middleware for its request body
	postRouter := router.Methods("POST").Subrouter()
	postRouter.HandleFunc("/api/products", ch.CreateProduct)
	postRouter.Use(mw.ValidationMiddleware)

	// Diagnostics routes
	router.HandleFunc("/", dh.Root).Methods("GET")
	router.HandleFunc("/api/hello", dh.Hello).Methods("GET")
	router.HandleFunc("/test", dh.StoreStatus).Methods("GET")

	// Swagger UI and specification routes
	_, filename, _, _ := runtime.Caller(0)
	basePath := filepath.Dir(filename)                        // .../internal/transport/http
	rootDir := filepath.Join(basePath, "..", "..", "..")      // navigate up to the root
	swaggerFilePath := filepath.Join(rootDir, "swagger.yaml") // .../swagger.yaml

	router.HandleFunc("/swagger.yaml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, swaggerFilePath)
	}).Methods("GET")

	swaggerOpts := middleware.RedocOpts{SpecURL: "/swagger.yaml"}
	router.Handle("/docs", middleware.Redoc(swaggerOpts, nil)).Methods("GET")

	// The storefront may be served from anywhere, so allow all origins like
	// the rest of the API surface expects
	cors := gohandlers.CORS(
		gohandlers.AllowedOrigins([]string{"*"}),
		gohandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		gohandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
	)

	return cors(router)
}
