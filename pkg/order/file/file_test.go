package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"orderdesk/pkg/order"
)

func TestRecordAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.txt")
	rec := New(path)
	ctx := context.Background()

	first := order.Order{ID: 1, CustomerName: "Ann", Address: "1 Main St", RestaurantID: "R1"}
	first.AddItem("Soup", 2, decimal.RequireFromString("3.25"))
	second := order.Order{ID: 2, CustomerName: "Bo", Address: "2 Side St", RestaurantID: "R2"}

	if err := rec.Record(ctx, first); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := rec.Record(ctx, second); err != nil {
		t.Fatalf("record: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := order.FormatLogEntry(first) + order.FormatLogEntry(second)
	if string(data) != want {
		t.Fatalf("unexpected log:\n%s", data)
	}
}

func TestRecordUnavailable(t *testing.T) {
	rec := New(filepath.Join(t.TempDir(), "missing", "orders.txt"))
	err := rec.Record(context.Background(), order.Order{ID: 1})
	if !errors.Is(err, order.ErrLogUnavailable) {
		t.Fatalf("expected ErrLogUnavailable, got %v", err)
	}
}
