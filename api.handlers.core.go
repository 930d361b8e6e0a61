package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

var EmptyData = struct{}{}

// Statistics holds app stats for ops.
type Statistics struct {
	version   string
	container bool
	runtime   string
	platform  string
	called    uint64
	started   time.Time
	status    map[int]uint64
	mu        *sync.RWMutex
}

// Maintenance holds app maintenance mode infos.
type Maintenance struct {
	enabled atomic.Bool
	message string
	started time.Time
}

// APIHandler defines the API handler.
type APIHandler struct {
	logger         *zap.Logger
	config         *Config
	stats          *Statistics
	mode           *Maintenance
	clock          Clocker
	idsHandler     UIDHandler
	catalogService CatalogServiceProvider
	orderService   OrderServiceProvider
	authService    AuthServiceProvider
}

// NewAPIHandler provides a new instance of APIHandler.
func NewAPIHandler(
	logger *zap.Logger,
	config *Config,
	stats *Statistics,
	clock Clocker,
	idsHandler UIDHandler,
	catalogService CatalogServiceProvider,
	orderService OrderServiceProvider,
	authService AuthServiceProvider,
) *APIHandler {
	m := &Maintenance{}
	m.enabled.Store(false)
	stats.status = make(map[int]uint64)
	stats.mu = &sync.RWMutex{}
	return &APIHandler{
		logger:         logger,
		config:         config,
		stats:          stats,
		mode:           m,
		clock:          clock,
		idsHandler:     idsHandler,
		catalogService: catalogService,
		orderService:   orderService,
		authService:    authService,
	}
}

// Index provides same details like `Status` handler by redirecting the request.
func (api *APIHandler) Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.Redirect(w, r, "/status", http.StatusSeeOther)
}

// Status provides basics details about the application to the public users.
func (api *APIHandler) Status(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	if err := json.NewEncoder(w).Encode(
		map[string]interface{}{
			"requestid": requestID,
			"status":    fmt.Sprintf("up & running since %.0f mins", api.clock.Now().Sub(api.stats.started).Minutes()),
			"message":   "Hello. Swing Page bookstore api is available. Enjoy :)",
		},
	); err != nil {
		api.logger.Error("failed to send status response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// NotFound answers any unknown route with the standard error envelope.
// It runs outside the middlewares chains so it builds its own request id.
func (api *APIHandler) NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := api.idsHandler.Generate(RequestIDPrefix)
		errResp := NewAPIError(requestID, http.StatusNotFound, "route does not exist", EmptyData)
		if err := WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send not found response", zap.String("request.id", requestID), zap.Error(err))
		}
	})
}
