package catalog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAddThenFind(t *testing.T) {
	d := New(0)
	for i := 0; i < 50; i++ {
		d.Add(fmt.Sprintf("R%d", i), fmt.Sprintf("Place %d", i))
	}
	for i := 0; i < 50; i++ {
		id := fmt.Sprintf("R%d", i)
		r, err := d.Find(id)
		if err != nil {
			t.Fatalf("find %s: %v", id, err)
		}
		if r.ID != id || r.Name != fmt.Sprintf("Place %d", i) {
			t.Fatalf("unexpected restaurant: %+v", r)
		}
	}
	if d.Len() != 50 {
		t.Fatalf("expected 50 restaurants, got %d", d.Len())
	}
}

func TestFindMissing(t *testing.T) {
	d := New(DefaultBuckets)
	if _, err := d.Find("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReAddShadows(t *testing.T) {
	d := New(DefaultBuckets)
	d.Add("R1", "Old Name")
	d.Add("R1", "New Name")

	r, err := d.Find("R1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if r.Name != "New Name" {
		t.Fatalf("expected newest entry, got %s", r.Name)
	}

	var names []string
	for r := range d.All() {
		if r.ID == "R1" {
			names = append(names, r.Name)
		}
	}
	if len(names) != 2 || names[0] != "New Name" || names[1] != "Old Name" {
		t.Fatalf("expected both entries newest first, got %v", names)
	}
}

func TestBucketHash(t *testing.T) {
	d := New(10)
	// ('R'*31 + '1') % 10 with 'R'=82, '1'=49: (82%10*31+49)%10 = 1
	if got := d.bucket("R1"); got != 1 {
		t.Fatalf("bucket(R1) = %d, want 1", got)
	}
	if d.bucket("") != 0 {
		t.Fatalf("empty id should hash to bucket 0")
	}
}

func TestAllTraversalOrder(t *testing.T) {
	d := New(1)
	d.Add("a", "A")
	d.Add("b", "B")
	d.Add("c", "C")
	var ids []string
	for r := range d.All() {
		ids = append(ids, r.ID)
	}
	if fmt.Sprint(ids) != "[c b a]" {
		t.Fatalf("single bucket chain should be newest first, got %v", ids)
	}
}

func TestAddItemAndListItems(t *testing.T) {
	d := New(DefaultBuckets)
	d.Add("R1", "Pizza Place")
	if _, err := d.AddItem("R1", "Margherita", decimal.RequireFromString("9.50")); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if _, err := d.AddItem("R1", "Pepperoni", decimal.RequireFromString("11.00")); err != nil {
		t.Fatalf("add item: %v", err)
	}
	items, err := d.ListItems("R1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Margherita" || items[1].Name != "Pepperoni" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestAddItemUnknownRestaurant(t *testing.T) {
	d := New(DefaultBuckets)
	d.Add("R1", "Pizza Place")
	if _, err := d.AddItem("R2", "Soup", decimal.NewFromInt(3)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := d.ListItems("R2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	items, _ := d.ListItems("R1")
	if len(items) != 0 {
		t.Fatalf("failed add must not touch other menus")
	}
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"R1", false},
		{"123456789", false},
		{"", true},
		{"1234567890", true},
		{"R 1", true},
		{"R\t1", true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := ValidateID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidID) {
				t.Errorf("expected ErrInvalidID, got %v", err)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"Pizza Place", false},
		{"", true},
		{"   ", true},
		{"Pizza\n3", true},
		{"Pizza\r", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidName) {
				t.Errorf("expected ErrInvalidName, got %v", err)
			}
		})
	}
}
