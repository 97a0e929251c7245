// Package memory implements an in-memory order recorder.
package memory

import (
	"context"
	"sync"

	"orderdesk/pkg/order"
)

// Recorder keeps processed orders in memory, in the order they were recorded.
type Recorder struct {
	mu     sync.RWMutex
	orders []order.Order
}

// New creates a new in-memory recorder.
func New() *Recorder {
	return &Recorder{}
}

// Record stores the order.
func (r *Recorder) Record(ctx context.Context, o order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o.Clone())
	return nil
}

// List returns all recorded orders.
func (r *Recorder) List(ctx context.Context) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]order.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}
