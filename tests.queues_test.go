package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestMemoryQueue_PushPop ensures orders roundtrip through the queue
// and come back with the id of the queue that delivered them.
func TestMemoryQueue_PushPop(t *testing.T) {
	queue := NewMemoryQueue(4)

	require.NoError(t, queue.Push(context.Background(), CheckoutQueue, Order{ID: "o:1"}))
	require.NoError(t, queue.Push(context.Background(), CheckoutQueue, Order{ID: "o:2"}))

	qid, order, err := queue.Pop(context.Background(), CheckoutQueue)
	require.NoError(t, err)
	assert.Equal(t, CheckoutQueue, qid)
	assert.Equal(t, "o:1", order.ID)

	qid, order, err = queue.Pop(context.Background(), CheckoutQueue)
	require.NoError(t, err)
	assert.Equal(t, CheckoutQueue, qid)
	assert.Equal(t, "o:2", order.ID)
}

// TestMemoryQueue_PopContextDone ensures a blocked pop call unblocks
// when the context ends.
func TestMemoryQueue_PopContextDone(t *testing.T) {
	queue := NewMemoryQueue(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := queue.Pop(ctx, CheckoutQueue)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestCheckoutConsumer ensures a popped order ends up completed once
// the processing delay has run.
func TestCheckoutConsumer(t *testing.T) {
	queue := NewMemoryQueue(1)
	orders := NewMemoryOrderStorage(zap.NewNop())
	order := Order{ID: "o:abc", Status: OrderStatusPending}
	require.NoError(t, orders.Add(context.Background(), order))

	consumer := NewCheckoutConsumer(zap.NewNop(), queue, orders, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- consumer.Consume(ctx, CheckoutQueue)
	}()

	require.NoError(t, queue.Push(context.Background(), CheckoutQueue, order))

	require.Eventually(t, func() bool {
		got, err := orders.GetOne(context.Background(), "o:abc")
		return err == nil && got.Status == OrderStatusCompleted
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("consumer did not exit after context cancellation")
	}
}
