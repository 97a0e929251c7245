package order

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Item is a snapshot of a menu item taken when the order was placed.
type Item struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LineTotal returns UnitPrice × Quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order represents a customer order waiting for or after fulfillment.
type Order struct {
	ID           int             `json:"id"`
	CustomerName string          `json:"customer_name"`
	Address      string          `json:"address"`
	RestaurantID string          `json:"restaurant_id"`
	Items        []Item          `json:"items"`
	Total        decimal.Decimal `json:"total"`
	PlacedAt     time.Time       `json:"placed_at"`
}

// AddItem appends a line and adds its line total to Total.
func (o *Order) AddItem(name string, qty int, unitPrice decimal.Decimal) Item {
	it := Item{Name: name, Quantity: qty, UnitPrice: unitPrice}
	o.Items = append(o.Items, it)
	o.Total = o.Total.Add(it.LineTotal())
	return it
}

// Clone returns a copy of o that shares no items with it.
func (o *Order) Clone() Order {
	c := *o
	c.Items = slices.Clone(o.Items)
	return c
}

// Recorder defines behavior for persisting processed orders.
type Recorder interface {
	Record(ctx context.Context, o Order) error
}

var (
	// ErrEmptyQueue indicates there are no pending orders.
	ErrEmptyQueue = errors.New("no pending orders")
	// ErrInvalidSelection indicates a menu position that does not exist.
	ErrInvalidSelection = errors.New("invalid item number")
	// ErrLogUnavailable indicates the order log could not be written.
	ErrLogUnavailable = errors.New("order log unavailable")
)

// MultiRecorder records to every recorder and joins their errors.
type MultiRecorder []Recorder

// Record implements Recorder.
func (m MultiRecorder) Record(ctx context.Context, o Order) error {
	var errs []error
	for _, r := range m {
		if err := r.Record(ctx, o); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
