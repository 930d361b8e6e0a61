package main

import (
	"context"
	"time"
)

// This file contains mocks definitions needed to perform unit tests.

type MockCatalogStorage struct {
	GetOneFunc      func(ctx context.Context, id string) (Book, error)
	GetAllFunc      func(ctx context.Context) ([]Book, error)
	GetFeaturedFunc func(ctx context.Context) ([]Book, error)
	FilterFunc      func(ctx context.Context, query CatalogQuery) ([]Book, error)
	GenresFunc      func(ctx context.Context) ([]string, error)
	ReviewsFunc     func(ctx context.Context, bookID string) ([]Review, error)
}

// GetOne mocks the behavior of retrieving a book by the repository.
func (m *MockCatalogStorage) GetOne(ctx context.Context, id string) (Book, error) {
	return m.GetOneFunc(ctx, id)
}

// GetAll mocks the behavior of retrieving all books by the repository.
func (m *MockCatalogStorage) GetAll(ctx context.Context) ([]Book, error) {
	return m.GetAllFunc(ctx)
}

// GetFeatured mocks the behavior of retrieving featured books by the repository.
func (m *MockCatalogStorage) GetFeatured(ctx context.Context) ([]Book, error) {
	return m.GetFeaturedFunc(ctx)
}

// Filter mocks the behavior of filtering books by the repository.
func (m *MockCatalogStorage) Filter(ctx context.Context, query CatalogQuery) ([]Book, error) {
	return m.FilterFunc(ctx, query)
}

// Genres mocks the behavior of listing genre labels by the repository.
func (m *MockCatalogStorage) Genres(ctx context.Context) ([]string, error) {
	return m.GenresFunc(ctx)
}

// Reviews mocks the behavior of retrieving book reviews by the repository.
func (m *MockCatalogStorage) Reviews(ctx context.Context, bookID string) ([]Review, error) {
	return m.ReviewsFunc(ctx, bookID)
}

// MockQueuer implements a fake Queuer.
type MockQueuer struct {
	PushFunc func(ctx context.Context, qid string, order Order) error
	PopFunc  func(ctx context.Context, qids ...string) (string, Order, error)
}

// Push mocks the behavior of pushing an order onto a queue.
func (m *MockQueuer) Push(ctx context.Context, qid string, order Order) error {
	return m.PushFunc(ctx, qid, order)
}

// Pop mocks the behavior of popping an order from a set of queues.
func (m *MockQueuer) Pop(ctx context.Context, qids ...string) (string, Order, error) {
	return m.PopFunc(ctx, qids...)
}

// MockClocker implements a fake Clocker.
type MockClocker struct {
	MockNow time.Time
}

// NewMockClocker returns a mocked instance with fixed time.
func NewMockClocker() *MockClocker {
	return &MockClocker{time.Date(2023, 0o7, 0o2, 0o0, 0o0, 0o0, 0o00000000, time.UTC)}
}

// Now returns an already defined time to be used as mock. This
// equals to `Sun, 02 Jul 2023 00:00:00 UTC` in time.RFC1123 format.
// equals to `2023-07-02 00:00:00 +0000 UTC` in String format.
func (mck *MockClocker) Now() time.Time {
	return mck.MockNow
}

// Zero returns zero time.
func (mck *MockClocker) Zero() time.Time {
	return time.Time{}
}

// MockUIDHandler implements a fake UIDHandler.
type MockUIDHandler struct {
	MockedUID string
	Valid     bool
}

// NewMockUIDHandler returns a mocked instance with predictable id.
func NewMockUIDHandler(id string, valid bool) *MockUIDHandler {
	return &MockUIDHandler{MockedUID: id, Valid: valid}
}

// Generate constructs a predictable id to be used as mock.
func (muid *MockUIDHandler) Generate(prefix string) string {
	return prefix + ":" + muid.MockedUID
}

// IsValid mocks IsValid behavior by providing configured status.
func (muid *MockUIDHandler) IsValid(_, _ string) bool {
	return muid.Valid
}

// newTestConfig builds a config with default pricing rules and all
// simulated delays disabled so the tests run instantly.
func newTestConfig() *Config {
	return &Config{
		Store: StoreConfig{
			TaxRate:          "0.08",
			ShippingFee:      "5.99",
			FreeShippingOver: "50",
		},
	}
}
