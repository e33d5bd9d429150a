package http

import (
	"encoding/json"
	"net/http"

	"github.com/hashicorp/go-hclog"

	"github.com/opencatalog/shopping-api/internal/store"
)

// DiagnosticsHandler serves the static status endpoints. It talks to the
// concrete store so it can report connection details; mongo is nil when no
// store was configured at startup.
type DiagnosticsHandler struct {
	mongo  *store.MongoStore
	logger hclog.Logger
}

func NewDiagnosticsHandler(mongo *store.MongoStore, log hclog.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		mongo:  mongo,
		logger: log,
	}
}

// Root handles GET /
func (h *DiagnosticsHandler) Root(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]string{"message": "Shopping API running"})
}

// Hello handles GET /api/hello
func (h *DiagnosticsHandler) Hello(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]string{"message": "Hello from the backend API!"})
}

// storeStatus is the GET /test payload
type storeStatus struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseName     string   `json:"database_name,omitempty"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// StoreStatus handles GET /test and reports whether the document store is
// reachable, plus a sample of its collection names.
func (h *DiagnosticsHandler) StoreStatus(w http.ResponseWriter, r *http.Request) {
	status := storeStatus{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.mongo != nil {
		status.Database = "connected"
		status.DatabaseName = h.mongo.DatabaseName()
		status.ConnectionStatus = "connected"

		collections, err := h.mongo.Collections(r.Context())
		if err != nil {
			h.logger.Error("Unable to list collections", "error", err)
			status.Database = "connected but erroring"
		} else {
			if len(collections) > 10 {
				collections = collections[:10]
			}
			status.Collections = collections
		}
	}

	json.NewEncoder(w).Encode(status)
}
