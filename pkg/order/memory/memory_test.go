package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"orderdesk/pkg/order"
)

func TestRecorder(t *testing.T) {
	ctx := context.Background()
	rec := New()
	o := order.Order{ID: 1, CustomerName: "Ann", RestaurantID: "R1"}
	o.AddItem("Widget", 2, decimal.NewFromInt(3))
	if err := rec.Record(ctx, o); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := rec.Record(ctx, order.Order{ID: 2}); err != nil {
		t.Fatalf("record: %v", err)
	}
	o.Items[0].Name = "Gadget"

	list, err := rec.List(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}
	if list[0].ID != 1 || list[1].ID != 2 {
		t.Fatalf("expected record order, got %d, %d", list[0].ID, list[1].ID)
	}
	if list[0].Items[0].Name != "Widget" {
		t.Fatalf("recorded order shares items with caller: %s", list[0].Items[0].Name)
	}
}
