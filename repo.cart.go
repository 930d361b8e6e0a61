package main

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// memoryCartStorage owns the cart lines of the single demo session.
// Lines are keyed by book id with insertion order preserved. The mutex
// only guards against concurrent http handlers, the model itself is a
// single-user session.
type memoryCartStorage struct {
	logger *zap.Logger
	mu     sync.Mutex
	order  []string
	lines  map[string]CartLine
}

// NewMemoryCartStorage provides an instance of in-memory cart storage.
func NewMemoryCartStorage(logger *zap.Logger) CartStorage {
	return &memoryCartStorage{
		logger: logger,
		lines:  make(map[string]CartLine),
	}
}

// AddLine creates a line for the book or merges the quantity into the
// existing one. A quantity below 1 counts as one copy.
func (cs *memoryCartStorage) AddLine(_ context.Context, book Book, quantity int) (CartLine, error) {
	if quantity < 1 {
		quantity = 1
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	line, ok := cs.lines[book.ID]
	if !ok {
		line = CartLine{Book: book, Quantity: quantity}
		cs.order = append(cs.order, book.ID)
	} else {
		line.Quantity += quantity
	}
	cs.lines[book.ID] = line
	return line, nil
}

// SetQuantity replaces the quantity of an existing line. The state is
// left untouched on a quantity below 1 or an unknown line, and the
// caller gets the matching typed error to surface.
func (cs *memoryCartStorage) SetQuantity(_ context.Context, bookID string, quantity int) (CartLine, error) {
	if quantity < 1 {
		return CartLine{}, ErrInvalidQuantity
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	line, ok := cs.lines[bookID]
	if !ok {
		return CartLine{}, ErrLineNotFound
	}
	line.Quantity = quantity
	cs.lines[bookID] = line
	return line, nil
}

// RemoveLine deletes the line for the given book id. Removing an
// absent line is not an error.
func (cs *memoryCartStorage) RemoveLine(_ context.Context, bookID string) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if _, ok := cs.lines[bookID]; !ok {
		return nil
	}
	delete(cs.lines, bookID)
	for i, id := range cs.order {
		if id == bookID {
			cs.order = append(cs.order[:i], cs.order[i+1:]...)
			break
		}
	}
	return nil
}

// Lines returns the current cart lines in insertion order.
func (cs *memoryCartStorage) Lines(_ context.Context) ([]CartLine, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	lines := make([]CartLine, 0, len(cs.order))
	for _, id := range cs.order {
		lines = append(lines, cs.lines[id])
	}
	return lines, nil
}

// Clear drops all cart lines.
func (cs *memoryCartStorage) Clear(_ context.Context) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.order = nil
	cs.lines = make(map[string]CartLine)
	return nil
}

// memoryWishlistStorage owns the wishlist of the single demo session
// as an insertion-ordered set of book ids.
type memoryWishlistStorage struct {
	logger *zap.Logger
	mu     sync.Mutex
	order  []string
	ids    map[string]struct{}
}

// NewMemoryWishlistStorage provides an instance of in-memory wishlist storage.
func NewMemoryWishlistStorage(logger *zap.Logger) WishlistStorage {
	return &memoryWishlistStorage{
		logger: logger,
		ids:    make(map[string]struct{}),
	}
}

// Toggle adds the book id if absent and removes it if present. It
// returns the new membership state.
func (ws *memoryWishlistStorage) Toggle(_ context.Context, bookID string) (bool, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if _, ok := ws.ids[bookID]; ok {
		delete(ws.ids, bookID)
		for i, id := range ws.order {
			if id == bookID {
				ws.order = append(ws.order[:i], ws.order[i+1:]...)
				break
			}
		}
		return false, nil
	}
	ws.ids[bookID] = struct{}{}
	ws.order = append(ws.order, bookID)
	return true, nil
}

// Contains reports whether the book id is in the wishlist.
func (ws *memoryWishlistStorage) Contains(_ context.Context, bookID string) (bool, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	_, ok := ws.ids[bookID]
	return ok, nil
}

// IDs returns the wishlisted book ids in insertion order.
func (ws *memoryWishlistStorage) IDs(_ context.Context) ([]string, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	ids := make([]string, len(ws.order))
	copy(ids, ws.order)
	return ids, nil
}
