package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"orderdesk/pkg/catalog"
	"orderdesk/pkg/desk"
	"orderdesk/pkg/order/memory"
)

type fakeSaver struct {
	saved int
	err   error
}

func (f *fakeSaver) Save(ctx context.Context, dir *catalog.Directory) error {
	f.saved = dir.Len()
	return f.err
}

func run(t *testing.T, input string, saver *fakeSaver) (string, *memory.Recorder, error) {
	t.Helper()
	rec := memory.New()
	d := desk.New(catalog.New(catalog.DefaultBuckets), rec, nil)
	var out bytes.Buffer
	err := New(d, saver, strings.NewReader(input), &out).Run(context.Background())
	return out.String(), rec, err
}

func TestConsoleSession(t *testing.T) {
	input := strings.Join([]string{
		"2", "R1", "Pizza Place",
		"3", "R1", "Margherita", "9.50",
		"3", "R1", "Pepperoni", "abc", "11",
		"1",
		"4", "R1",
		"5", "Ann", "1 Main St", "R1", "3", "1 2", "7 1", "2 1",
		"7",
		"6",
		"6",
		"8",
	}, "\n") + "\n"
	saver := &fakeSaver{}
	out, rec, err := run(t, input, saver)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, want := range []string{
		"Added restaurant\nID = R1 Name = Pizza Place",
		"Added menu item Margherita (9.50) to restaurant id R1",
		"Please enter a non-negative price",
		"ID: R1, Name: Pizza Place",
		" 2. Pepperoni - 11.00",
		"Skipped line 7 x1",
		"Order 1 added to queue (total 30.00)",
		" OrderID 1 for Ann",
		"Processing Order 1 for Ann (Restaurant ID R1)",
		"Total: 30.00",
		"No pending orders to process.",
		"Exiting...",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if saver.saved != 1 {
		t.Fatalf("expected catalog with 1 restaurant saved on exit, got %d", saver.saved)
	}
	recorded, _ := rec.List(context.Background())
	if len(recorded) != 1 || recorded[0].CustomerName != "Ann" {
		t.Fatalf("expected one recorded order, got %+v", recorded)
	}
}

func TestConsoleUnknownRestaurant(t *testing.T) {
	out, _, err := run(t, "3\nR9\nSoup\n2\n4\nR9\n5\nBo\nHome\nR9\n8\n", &fakeSaver{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Count(out, "Restaurant id R9 not found") != 3 {
		t.Fatalf("expected three not-found messages, got:\n%s", out)
	}
}

func TestConsoleRejectsBadIDs(t *testing.T) {
	out, _, err := run(t, "2\nR 1\nR1\nCafe\n9\n8\n", &fakeSaver{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "contains whitespace") || !strings.Contains(out, "Invalid choice.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestConsoleEOFSaves(t *testing.T) {
	saver := &fakeSaver{}
	out, _, err := run(t, "2\nR1\n", saver)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasSuffix(out, "Exiting...\n") {
		t.Fatalf("expected exit on EOF, got:\n%s", out)
	}
}

func TestConsoleSaveFailure(t *testing.T) {
	boom := errors.New("read-only")
	if _, _, err := run(t, "8\n", &fakeSaver{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected save error, got %v", err)
	}
}

func TestConsoleLooksUpLoadedLongID(t *testing.T) {
	dir := catalog.New(catalog.DefaultBuckets)
	dir.Add("RESTAURANT1", "Legacy Diner")
	dir.AddItem("RESTAURANT1", "Pie", decimal.RequireFromString("4.00"))
	rec := memory.New()
	d := desk.New(dir, rec, nil)

	var out bytes.Buffer
	input := "4\nRESTAURANT1\n5\nAnn\n1 Main St\nRESTAURANT1\n1\n1 2\n8\n"
	if err := New(d, &fakeSaver{}, strings.NewReader(input), &out).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), " 1. Pie - 4.00") {
		t.Fatalf("expected the menu to be shown, got:\n%s", out.String())
	}
	if p := d.Pending(context.Background()); len(p) != 1 || p[0].RestaurantID != "RESTAURANT1" {
		t.Fatalf("expected one order for RESTAURANT1, got %+v", p)
	}
}
