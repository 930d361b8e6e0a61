package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newRouterTestAPI wires an api handler with fully working services
// over the in-memory stores and no simulated delays.
func newRouterTestAPI(config *Config) *APIHandler {
	catalog := NewMemoryCatalogStorage(zap.NewNop(), SampleBooks(), SampleReviews())
	orders := NewMemoryOrderStorage(zap.NewNop())
	_ = orders.Add(context.Background(), Order{ID: "o:abc", Status: OrderStatusPending})
	queue := &MockQueuer{
		PushFunc: func(ctx context.Context, qid string, order Order) error {
			return nil
		},
	}
	os := NewOrderService(
		zap.NewNop(),
		config,
		NewMockClocker(),
		NewMockUIDHandler("abc", true),
		catalog,
		NewMemoryCartStorage(zap.NewNop()),
		NewMemoryWishlistStorage(zap.NewNop()),
		orders,
		queue,
	)
	return NewAPIHandler(
		zap.NewNop(),
		config,
		&Statistics{started: NewMockClocker().Now()},
		NewMockClocker(),
		NewMockUIDHandler("abc", true),
		NewCatalogService(zap.NewNop(), config, catalog),
		os,
		NewAuthService(zap.NewNop(), config, NewMockClocker(), NewMockUIDHandler("abc", true)),
	)
}

// TestSetupStoreRoutes ensures all expected storefront endpoints are implemented.
func TestSetupStoreRoutes(t *testing.T) {
	testCases := []struct {
		name        string
		request     *http.Request
		implemented bool
	}{
		{
			"index endpoint",
			httptest.NewRequest(http.MethodGet, "/", nil),
			true,
		},
		{
			"status endpoint",
			httptest.NewRequest(http.MethodGet, "/status", nil),
			true,
		},
		{
			"fetch all books endpoint",
			httptest.NewRequest(http.MethodGet, "/v1/books", nil),
			true,
		},
		{
			"fetch all books endpoint with slash",
			httptest.NewRequest(http.MethodGet, "/v1/books/", nil),
			true,
		},
		{
			"fetch single book endpoint",
			httptest.NewRequest(http.MethodGet, "/v1/books/1", nil),
			true,
		},
		{
			"fetch book reviews endpoint",
			httptest.NewRequest(http.MethodGet, "/v1/books/1/reviews", nil),
			true,
		},
		{
			"fetch featured books endpoint",
			httptest.NewRequest(http.MethodGet, "/v1/featured", nil),
			true,
		},
		{
			"fetch genres endpoint",
			httptest.NewRequest(http.MethodGet, "/v1/genres", nil),
			true,
		},
		{
			"fetch cart endpoint",
			httptest.NewRequest(http.MethodGet, "/v1/cart", nil),
			true,
		},
		{
			"add to cart endpoint",
			httptest.NewRequest(http.MethodPost, "/v1/cart", nil),
			true,
		},
		{
			"update cart line endpoint",
			httptest.NewRequest(http.MethodPut, "/v1/cart/1", nil),
			true,
		},
		{
			"remove from cart endpoint",
			httptest.NewRequest(http.MethodDelete, "/v1/cart/1", nil),
			true,
		},
		{
			"checkout endpoint",
			httptest.NewRequest(http.MethodPost, "/v1/checkout", nil),
			true,
		},
		{
			"fetch order endpoint",
			httptest.NewRequest(http.MethodGet, "/v1/orders/o:abc", nil),
			true,
		},
		{
			"fetch wishlist endpoint",
			httptest.NewRequest(http.MethodGet, "/v1/wishlist", nil),
			true,
		},
		{
			"toggle wishlist endpoint",
			httptest.NewRequest(http.MethodPost, "/v1/wishlist/1", nil),
			true,
		},
		{
			"sign in endpoint",
			httptest.NewRequest(http.MethodPost, "/v1/auth/signin", nil),
			true,
		},
		{
			"sign up endpoint",
			httptest.NewRequest(http.MethodPost, "/v1/auth/signup", nil),
			true,
		},
		{
			"reset password endpoint",
			httptest.NewRequest(http.MethodPost, "/v1/auth/reset", nil),
			true,
		},
		{
			"invalid api endpoint",
			httptest.NewRequest(http.MethodGet, "/v1", nil),
			false,
		},
		{
			"invalid books endpoint",
			httptest.NewRequest(http.MethodGet, "/books", nil),
			false,
		},
	}

	api := newRouterTestAPI(newTestConfig())
	router := httprouter.New()
	m := &MiddlewareMap{public: (&Middlewares{}).Chain, ops: (&Middlewares{}).Chain}
	api.SetupStoreRoutes(router, m)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, tc.request)
			if tc.implemented {
				assert.NotEqual(t, 404, w.Code)
			} else {
				assert.Equal(t, 404, w.Code)
			}
		})
	}
}

// TestSetupOpsRoutes ensures all expected operations endpoints are implemented.
func TestSetupOpsRoutes(t *testing.T) {
	testCases := []struct {
		name        string
		request     *http.Request
		implemented bool
	}{
		{
			"fetch configs endpoint",
			httptest.NewRequest(http.MethodGet, "/ops/configs", nil),
			true,
		},
		{
			"fetch stats endpoint",
			httptest.NewRequest(http.MethodGet, "/ops/stats", nil),
			true,
		},
		{
			"maintenance mode endpoint",
			httptest.NewRequest(http.MethodGet, "/ops/maintenance?status=disable", nil),
			true,
		},
		{
			"memory stats endpoint",
			httptest.NewRequest(http.MethodGet, "/ops/debug/vars", nil),
			true,
		},
		{
			"invalid ops endpoint",
			httptest.NewRequest(http.MethodGet, "/ops", nil),
			false,
		},
		{
			"unknown ops endpoint",
			httptest.NewRequest(http.MethodGet, "/ops/unknown", nil),
			false,
		},
		{
			"disabled profiler endpoint",
			httptest.NewRequest(http.MethodGet, "/ops/debug/pprof/", nil),
			false,
		},
	}

	config := newTestConfig()
	config.ProfilerEnable = false
	api := newRouterTestAPI(config)
	router := httprouter.New()
	m := &MiddlewareMap{public: (&Middlewares{}).Chain, ops: (&Middlewares{}).Chain}
	api.SetupOpsRoutes(router, m)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, tc.request)
			if tc.implemented {
				assert.NotEqual(t, 404, w.Code)
			} else {
				assert.Equal(t, 404, w.Code)
			}
		})
	}
}

// TestSetupRoutes ensures ops endpoints only exist when enabled.
func TestSetupRoutes(t *testing.T) {
	testCases := []struct {
		name               string
		OpsEndpointsEnable bool
		request            *http.Request
		implemented        bool
	}{
		{
			"ops disable:fetch configs endpoint",
			false,
			httptest.NewRequest(http.MethodGet, "/ops/configs", nil),
			false,
		},
		{
			"ops enable:fetch configs endpoint",
			true,
			httptest.NewRequest(http.MethodGet, "/ops/configs", nil),
			true,
		},
		{
			"ops disable:disabled profiler endpoint",
			false,
			httptest.NewRequest(http.MethodGet, "/ops/debug/pprof/", nil),
			false,
		},
		{
			"ops enable:disabled profiler endpoint",
			true,
			httptest.NewRequest(http.MethodGet, "/ops/debug/pprof/", nil),
			false,
		},
		{
			"ops disable:fetch all books endpoint",
			false,
			httptest.NewRequest(http.MethodGet, "/v1/books", nil),
			true,
		},
		{
			"ops enable:fetch all books endpoint",
			true,
			httptest.NewRequest(http.MethodGet, "/v1/books", nil),
			true,
		},
	}

	config := newTestConfig()
	api := newRouterTestAPI(config)
	m := &MiddlewareMap{public: (&Middlewares{}).Chain, ops: (&Middlewares{}).Chain}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := httprouter.New()
			config.OpsEndpointsEnable = tc.OpsEndpointsEnable
			api.SetupRoutes(router, m)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, tc.request)
			if tc.implemented {
				assert.NotEqual(t, 404, w.Code)
			} else {
				assert.Equal(t, 404, w.Code)
			}
		})
	}
}

// TestSetupRoutes_NotFound ensures exact status code and json response body when a user requests an inexistant route.
func TestSetupRoutes_NotFound(t *testing.T) {
	m := &MiddlewareMap{public: (&Middlewares{}).Chain, ops: (&Middlewares{}).Chain}
	api := newRouterTestAPI(newTestConfig())
	router := httprouter.New()
	api.SetupRoutes(router, m)
	r := httptest.NewRequest(http.MethodGet, "/x/books/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "application/json; charset=UTF-8", res.Header.Get("Content-Type"))
	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	expected := `{"requestid":"r:abc", "status":404, "message":"route does not exist", "data":{}}`
	assert.JSONEq(t, expected, string(data))
}
