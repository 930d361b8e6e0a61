package main

import (
	"context"
	"time"
)

// Order statuses. An order starts pending when the checkout snapshot is
// taken and becomes completed once the payment simulation has run.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// CartLine is one (book, quantity) pairing in the cart.
// The quantity is always a positive integer.
type CartLine struct {
	Book     Book `json:"book"`
	Quantity int  `json:"quantity"`
}

// Order is an immutable snapshot of the cart taken at checkout time,
// plus the totals derived from it and a processing status.
type Order struct {
	ID        string     `json:"id"`
	Lines     []CartLine `json:"lines"`
	Totals    Totals     `json:"totals"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

// CartStorage owns the cart lines of the current session. There is at
// most one line per book id; repeated adds merge into the existing line.
type CartStorage interface {
	AddLine(ctx context.Context, book Book, quantity int) (CartLine, error)
	SetQuantity(ctx context.Context, bookID string, quantity int) (CartLine, error)
	RemoveLine(ctx context.Context, bookID string) error
	Lines(ctx context.Context) ([]CartLine, error)
	Clear(ctx context.Context) error
}

// WishlistStorage owns the wishlist of the current session as a set of
// book ids. Toggle reports the new membership state so callers can word
// their feedback accordingly.
type WishlistStorage interface {
	Toggle(ctx context.Context, bookID string) (bool, error)
	Contains(ctx context.Context, bookID string) (bool, error)
	IDs(ctx context.Context) ([]string, error)
}

// OrderStorage keeps the orders placed during the process lifetime.
type OrderStorage interface {
	Add(ctx context.Context, order Order) error
	GetOne(ctx context.Context, id string) (Order, error)
	SetStatus(ctx context.Context, id string, status string) (Order, error)
}
