package main

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testBook(id, price string) Book {
	return Book{ID: id, Title: "book " + id, Price: decimal.RequireFromString(price)}
}

// TestCartStorage_AddLine ensures repeated adds merge into a single
// line and a missing quantity counts as one copy.
func TestCartStorage_AddLine(t *testing.T) {
	cart := NewMemoryCartStorage(zap.NewNop())

	line, err := cart.AddLine(context.Background(), testBook("1", "18.99"), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)

	line, err = cart.AddLine(context.Background(), testBook("1", "18.99"), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)

	line, err = cart.AddLine(context.Background(), testBook("2", "24.99"), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)

	lines, err := cart.Lines(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "1", lines[0].Book.ID)
	assert.Equal(t, "2", lines[1].Book.ID)
}

// TestCartStorage_SetQuantity ensures an invalid quantity or unknown
// line yields the typed error and leaves the cart untouched.
func TestCartStorage_SetQuantity(t *testing.T) {
	cart := NewMemoryCartStorage(zap.NewNop())
	_, err := cart.AddLine(context.Background(), testBook("1", "18.99"), 2)
	require.NoError(t, err)

	t.Run("should pass: valid quantity", func(t *testing.T) {
		line, err := cart.SetQuantity(context.Background(), "1", 5)
		require.NoError(t, err)
		assert.Equal(t, 5, line.Quantity)
	})

	t.Run("should fail: zero quantity", func(t *testing.T) {
		_, err := cart.SetQuantity(context.Background(), "1", 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		lines, err := cart.Lines(context.Background())
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("should fail: negative quantity", func(t *testing.T) {
		_, err := cart.SetQuantity(context.Background(), "1", -3)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("should fail: unknown line", func(t *testing.T) {
		_, err := cart.SetQuantity(context.Background(), "9", 2)
		assert.ErrorIs(t, err, ErrLineNotFound)
	})
}

// TestCartStorage_RemoveLine ensures removal is idempotent and
// preserves the order of the remaining lines.
func TestCartStorage_RemoveLine(t *testing.T) {
	cart := NewMemoryCartStorage(zap.NewNop())
	for _, id := range []string{"1", "2", "3"} {
		_, err := cart.AddLine(context.Background(), testBook(id, "10"), 1)
		require.NoError(t, err)
	}

	require.NoError(t, cart.RemoveLine(context.Background(), "2"))
	require.NoError(t, cart.RemoveLine(context.Background(), "2"))
	require.NoError(t, cart.RemoveLine(context.Background(), "9"))

	lines, err := cart.Lines(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "1", lines[0].Book.ID)
	assert.Equal(t, "3", lines[1].Book.ID)
}

// TestCartStorage_Clear ensures the cart empties in a single call.
func TestCartStorage_Clear(t *testing.T) {
	cart := NewMemoryCartStorage(zap.NewNop())
	_, err := cart.AddLine(context.Background(), testBook("1", "18.99"), 3)
	require.NoError(t, err)

	require.NoError(t, cart.Clear(context.Background()))
	lines, err := cart.Lines(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lines)
}

// TestWishlistStorage ensures toggling flips membership and the listing
// keeps insertion order.
func TestWishlistStorage(t *testing.T) {
	wishlist := NewMemoryWishlistStorage(zap.NewNop())

	wishlisted, err := wishlist.Toggle(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, wishlisted)

	wishlisted, err = wishlist.Toggle(context.Background(), "4")
	require.NoError(t, err)
	assert.True(t, wishlisted)

	ok, err := wishlist.Contains(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, ok)

	ids, err := wishlist.IDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, ids)

	wishlisted, err = wishlist.Toggle(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, wishlisted)

	ok, err = wishlist.Contains(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, ok)

	ids, err = wishlist.IDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"4"}, ids)
}

// TestOrderStorage ensures placed orders can be fetched and moved
// through their statuses.
func TestOrderStorage(t *testing.T) {
	orders := NewMemoryOrderStorage(zap.NewNop())
	order := Order{ID: "o:abc", Status: OrderStatusPending}

	require.NoError(t, orders.Add(context.Background(), order))

	got, err := orders.GetOne(context.Background(), "o:abc")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPending, got.Status)

	got, err = orders.SetStatus(context.Background(), "o:abc", OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusCompleted, got.Status)

	_, err = orders.GetOne(context.Background(), "o:missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = orders.SetStatus(context.Background(), "o:missing", OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
