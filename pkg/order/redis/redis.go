// Package redis archives processed orders on a Redis list.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"orderdesk/pkg/order"
)

// DefaultList is the list key used when none is configured.
const DefaultList = "orderdesk:processed"

// Recorder pushes each processed order, JSON encoded, onto a Redis list.
type Recorder struct {
	client *goredis.Client
	list   string
}

// New creates a recorder for the server at addr.
func New(addr, list string) *Recorder {
	return NewWithClient(goredis.NewClient(&goredis.Options{Addr: addr}), list)
}

// NewWithClient wraps an existing client.
func NewWithClient(client *goredis.Client, list string) *Recorder {
	if list == "" {
		list = DefaultList
	}
	return &Recorder{client: client, list: list}
}

// Record implements order.Recorder.
func (r *Recorder) Record(ctx context.Context, o order.Order) error {
	body, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal order %d: %w", o.ID, err)
	}
	if err := r.client.RPush(ctx, r.list, body).Err(); err != nil {
		return fmt.Errorf("%w: rpush %s: %v", order.ErrLogUnavailable, r.list, err)
	}
	return nil
}

// Close closes the underlying client.
func (r *Recorder) Close() error {
	return r.client.Close()
}
