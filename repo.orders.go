package main

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// memoryOrderStorage keeps the orders placed during the process
// lifetime. Nothing survives a restart.
type memoryOrderStorage struct {
	logger *zap.Logger
	mu     sync.RWMutex
	orders map[string]Order
}

// NewMemoryOrderStorage provides an instance of in-memory order storage.
func NewMemoryOrderStorage(logger *zap.Logger) OrderStorage {
	return &memoryOrderStorage{
		logger: logger,
		orders: make(map[string]Order),
	}
}

// Add inserts a new order record.
func (os *memoryOrderStorage) Add(_ context.Context, order Order) error {
	os.mu.Lock()
	defer os.mu.Unlock()

	os.orders[order.ID] = order
	return nil
}

// GetOne retrieves an order record based on its ID.
func (os *memoryOrderStorage) GetOne(_ context.Context, id string) (Order, error) {
	os.mu.RLock()
	defer os.mu.RUnlock()

	order, ok := os.orders[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	return order, nil
}

// SetStatus moves an existing order to the given status.
func (os *memoryOrderStorage) SetStatus(_ context.Context, id string, status string) (Order, error) {
	os.mu.Lock()
	defer os.mu.Unlock()

	order, ok := os.orders[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	order.Status = status
	os.orders[id] = order
	return order, nil
}
