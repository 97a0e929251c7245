// Package desk is the order desk: it owns the restaurant directory, the queue
// of pending orders and the order id counter, and drives order placement and
// processing. A Desk is not safe for concurrent use.
package desk

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"orderdesk/pkg/catalog"
	"orderdesk/pkg/logger"
	"orderdesk/pkg/menu"
	"orderdesk/pkg/order"
	"orderdesk/pkg/otel"
)

// Desk serves catalog lookups and places and processes orders.
type Desk struct {
	dir      *catalog.Directory
	queue    *order.Queue
	recorder order.Recorder
	log      *logger.Logger
	now      func() time.Time
	nextID   int
}

// Option configures a Desk.
type Option func(*Desk)

// WithClock overrides the clock used to stamp orders.
func WithClock(now func() time.Time) Option {
	return func(d *Desk) { d.now = now }
}

// New creates a desk over dir. Processed orders go to rec.
func New(dir *catalog.Directory, rec order.Recorder, log *logger.Logger, opts ...Option) *Desk {
	if log == nil {
		log = logger.Nop()
	}
	d := &Desk{
		dir:      dir,
		queue:    order.NewQueue(),
		recorder: rec,
		log:      log,
		now:      time.Now,
		nextID:   1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Directory exposes the restaurant directory, e.g. for loading and saving.
func (d *Desk) Directory() *catalog.Directory {
	return d.dir
}

// AddRestaurant adds a restaurant with an empty menu. A re-used id shadows the older entry.
func (d *Desk) AddRestaurant(ctx context.Context, id, name string) *catalog.Restaurant {
	ctx, span := otel.AddSpan(ctx, "desk.add_restaurant", attribute.String("restaurant_id", id))
	defer span.End()

	r := d.dir.Add(id, name)
	d.log.Info(ctx, "restaurant added", "restaurant_id", id, "name", name)
	return r
}

// Restaurant looks up a restaurant by id.
func (d *Desk) Restaurant(ctx context.Context, id string) (*catalog.Restaurant, error) {
	_, span := otel.AddSpan(ctx, "desk.restaurant", attribute.String("restaurant_id", id))
	defer span.End()

	return d.dir.Find(id)
}

// Restaurants lists every restaurant in directory order.
func (d *Desk) Restaurants(ctx context.Context) []*catalog.Restaurant {
	_, span := otel.AddSpan(ctx, "desk.restaurants")
	defer span.End()

	out := make([]*catalog.Restaurant, 0, d.dir.Len())
	for r := range d.dir.All() {
		out = append(out, r)
	}
	return out
}

// AddMenuItem appends an item to a restaurant's menu.
func (d *Desk) AddMenuItem(ctx context.Context, id, name string, price decimal.Decimal) (menu.Item, error) {
	ctx, span := otel.AddSpan(ctx, "desk.add_menu_item", attribute.String("restaurant_id", id))
	defer span.End()

	it, err := d.dir.AddItem(id, name, price)
	if err != nil {
		d.log.Warn(ctx, "add menu item failed", "restaurant_id", id, "error", err)
		return menu.Item{}, err
	}
	d.log.Info(ctx, "menu item added", "restaurant_id", id, "item", name, "price", price.StringFixed(2))
	return it, nil
}

// Menu returns a restaurant's menu in insertion order.
func (d *Desk) Menu(ctx context.Context, id string) ([]menu.Item, error) {
	_, span := otel.AddSpan(ctx, "desk.menu", attribute.String("restaurant_id", id))
	defer span.End()

	return d.dir.ListItems(id)
}

// Line asks for Quantity of the menu item at 1-based Position.
type Line struct {
	Position int `json:"position"`
	Quantity int `json:"quantity"`
}

// PlaceRequest describes an order to place.
type PlaceRequest struct {
	Customer     string
	Address      string
	RestaurantID string
	Lines        []Line
}

// SkippedLine is a requested line left out of the order.
type SkippedLine struct {
	Line Line
	Err  error
}

// Placement is the result of placing an order.
type Placement struct {
	Order   order.Order
	Skipped []SkippedLine
}

// PlaceOrder builds an order from req and enqueues it. Lines naming a menu
// position that does not exist, or a quantity below one, are skipped and
// reported in Placement.Skipped. The order is enqueued even when every line
// was skipped. An unknown restaurant returns catalog.ErrNotFound and changes nothing.
func (d *Desk) PlaceOrder(ctx context.Context, req PlaceRequest) (Placement, error) {
	ctx, span := otel.AddSpan(ctx, "desk.place_order", attribute.String("restaurant_id", req.RestaurantID))
	defer span.End()

	r, err := d.dir.Find(req.RestaurantID)
	if err != nil {
		d.log.Warn(ctx, "place order failed", "restaurant_id", req.RestaurantID, "error", err)
		return Placement{}, err
	}

	o := &order.Order{
		ID:           d.nextID,
		CustomerName: req.Customer,
		Address:      req.Address,
		RestaurantID: r.ID,
		Total:        decimal.Zero,
		PlacedAt:     d.now(),
	}
	d.nextID++

	var skipped []SkippedLine
	for _, ln := range req.Lines {
		it, ok := r.Menu.At(ln.Position)
		switch {
		case !ok:
			skipped = append(skipped, SkippedLine{Line: ln,
				Err: fmt.Errorf("%w: %d (menu has %d items)", order.ErrInvalidSelection, ln.Position, r.Menu.Len())})
			continue
		case ln.Quantity < 1:
			skipped = append(skipped, SkippedLine{Line: ln,
				Err: fmt.Errorf("%w: quantity %d for item %d", order.ErrInvalidSelection, ln.Quantity, ln.Position)})
			continue
		}
		o.AddItem(it.Name, ln.Quantity, it.Price)
	}
	d.queue.Enqueue(o)

	span.SetAttributes(attribute.Int("order_id", o.ID), attribute.Int("skipped", len(skipped)))
	d.log.Info(ctx, "order queued", "order_id", o.ID, "restaurant_id", o.RestaurantID,
		"lines", len(o.Items), "skipped", len(skipped), "total", o.Total.StringFixed(2))
	for _, s := range skipped {
		d.log.Warn(ctx, "order line skipped", "order_id", o.ID, "position", s.Line.Position, "error", s.Err)
	}
	return Placement{Order: o.Clone(), Skipped: skipped}, nil
}

// ProcessNext takes the oldest pending order off the queue and records it.
// It returns order.ErrEmptyQueue when nothing is pending. When recording
// fails the processed order is returned together with an error wrapping
// order.ErrLogUnavailable; the order is not put back.
func (d *Desk) ProcessNext(ctx context.Context) (order.Order, error) {
	ctx, span := otel.AddSpan(ctx, "desk.process_next")
	defer span.End()

	o, err := d.queue.Dequeue()
	if err != nil {
		d.log.Info(ctx, "nothing to process")
		return order.Order{}, err
	}
	span.SetAttributes(attribute.Int("order_id", o.ID))
	d.log.Info(ctx, "processing order", "order_id", o.ID, "customer", o.CustomerName,
		"restaurant_id", o.RestaurantID, "total", o.Total.StringFixed(2))
	d.log.Debug(ctx, "receipt", "order_id", o.ID, "text", order.Receipt(*o))

	if d.recorder != nil {
		if err := d.recorder.Record(ctx, *o); err != nil {
			d.log.Error(ctx, "record order failed", "order_id", o.ID, "error", err)
			return *o, fmt.Errorf("%w: order %d: %w", order.ErrLogUnavailable, o.ID, err)
		}
	}
	return *o, nil
}

// Pending returns the queued orders from oldest to newest.
func (d *Desk) Pending(ctx context.Context) []order.Order {
	_, span := otel.AddSpan(ctx, "desk.pending")
	defer span.End()

	out := make([]order.Order, 0, d.queue.Len())
	for o := range d.queue.Pending() {
		out = append(out, o)
	}
	return out
}
