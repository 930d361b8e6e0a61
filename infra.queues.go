package main

import (
	"context"
	"reflect"
	"sync"
)

// Predefinied Queue IDs.
const (
	CheckoutQueue = "checkout"
)

// Ensure *memoryQueue implements Queuer.
var _ Queuer = (*memoryQueue)(nil)

// Queuer describes a queue carrying orders between the api
// and the background consumers.
type Queuer interface {
	Push(ctx context.Context, qid string, order Order) error
	Pop(ctx context.Context, qids ...string) (string, Order, error)
}

// memoryQueue is a process-local queue backed by one buffered channel
// per queue id. Like everything else in this service it does not
// survive a restart.
type memoryQueue struct {
	mu       sync.Mutex
	capacity int
	channels map[string]chan Order
}

func NewMemoryQueue(capacity int) Queuer {
	if capacity < 1 {
		capacity = 64
	}
	return &memoryQueue{
		capacity: capacity,
		channels: make(map[string]chan Order),
	}
}

func (q *memoryQueue) channel(qid string) chan Order {
	q.mu.Lock()
	defer q.mu.Unlock()
	ch, ok := q.channels[qid]
	if !ok {
		ch = make(chan Order, q.capacity)
		q.channels[qid] = ch
	}
	return ch
}

// Push enqueues an order onto the queue identified by qid.
func (q *memoryQueue) Push(ctx context.Context, qid string, order Order) error {
	select {
	case q.channel(qid) <- order:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pop blocks until an order arrives on any of the given queue ids or
// the context ends. It returns the id of the queue that delivered.
func (q *memoryQueue) Pop(ctx context.Context, qids ...string) (string, Order, error) {
	cases := make([]reflect.SelectCase, 0, len(qids)+1)
	for _, qid := range qids {
		cases = append(cases, reflect.SelectCase{
			Dir:  reflect.SelectRecv,
			Chan: reflect.ValueOf(q.channel(qid)),
		})
	}
	cases = append(cases, reflect.SelectCase{
		Dir:  reflect.SelectRecv,
		Chan: reflect.ValueOf(ctx.Done()),
	})

	chosen, value, _ := reflect.Select(cases)
	if chosen == len(qids) {
		return "", Order{}, ctx.Err()
	}
	return qids[chosen], value.Interface().(Order), nil
}
