// Package catalog implements the restaurant directory: a fixed number of hash
// buckets, each holding a chain of restaurants that hashed to it.
//
// Add never checks for an existing id. A re-added id is prepended to its
// chain and shadows the older entry for Find, while both stay visible to All.
package catalog

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/shopspring/decimal"

	"orderdesk/pkg/menu"
)

// DefaultBuckets is the bucket count used when none is configured.
const DefaultBuckets = 10

// MaxIDLen bounds the length of a restaurant id.
const MaxIDLen = 9

var (
	// ErrNotFound indicates the requested restaurant does not exist.
	ErrNotFound = errors.New("restaurant not found")
	// ErrInvalidID indicates an id that cannot be stored in the catalog file.
	ErrInvalidID = errors.New("invalid restaurant id")
	// ErrInvalidName indicates a name that cannot be stored in the catalog file.
	ErrInvalidName = errors.New("invalid name")
)

// Restaurant is a directory entry owning its menu.
type Restaurant struct {
	ID   string
	Name string
	Menu *menu.List

	next *Restaurant
}

// Directory maps restaurant ids to restaurants.
type Directory struct {
	buckets []*Restaurant
}

// New creates a directory with n buckets. Non-positive n selects DefaultBuckets.
func New(n int) *Directory {
	if n <= 0 {
		n = DefaultBuckets
	}
	return &Directory{buckets: make([]*Restaurant, n)}
}

func (d *Directory) bucket(id string) int {
	n := uint32(len(d.buckets))
	var h uint32
	for i := 0; i < len(id); i++ {
		h = (h*31 + uint32(id[i])) % n
	}
	return int(h)
}

// Buckets reports the number of buckets.
func (d *Directory) Buckets() int {
	return len(d.buckets)
}

// Add creates a restaurant with an empty menu at the head of its bucket chain.
func (d *Directory) Add(id, name string) *Restaurant {
	idx := d.bucket(id)
	r := &Restaurant{ID: id, Name: name, Menu: &menu.List{}, next: d.buckets[idx]}
	d.buckets[idx] = r
	return r
}

// Find returns the most recently added restaurant with the given id.
func (d *Directory) Find(id string) (*Restaurant, error) {
	for r := d.buckets[d.bucket(id)]; r != nil; r = r.next {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// AddItem appends an item to the menu of restaurant id.
func (d *Directory) AddItem(id, name string, price decimal.Decimal) (menu.Item, error) {
	r, err := d.Find(id)
	if err != nil {
		return menu.Item{}, err
	}
	return r.Menu.Append(name, price), nil
}

// ListItems returns the menu of restaurant id in insertion order.
func (d *Directory) ListItems(id string) ([]menu.Item, error) {
	r, err := d.Find(id)
	if err != nil {
		return nil, err
	}
	return r.Menu.Items(), nil
}

// All yields every restaurant, bucket by bucket, in chain order.
func (d *Directory) All() iter.Seq[*Restaurant] {
	return func(yield func(*Restaurant) bool) {
		for _, head := range d.buckets {
			for r := head; r != nil; r = r.next {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// Len counts all restaurants, shadowed entries included.
func (d *Directory) Len() int {
	n := 0
	for range d.All() {
		n++
	}
	return n
}

// ValidateID checks that id fits the catalog file format.
func ValidateID(id string) error {
	switch {
	case id == "":
		return fmt.Errorf("%w: empty", ErrInvalidID)
	case len(id) > MaxIDLen:
		return fmt.Errorf("%w: %q longer than %d bytes", ErrInvalidID, id, MaxIDLen)
	case strings.ContainsAny(id, " \t\r\n"):
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidID, id)
	}
	return nil
}

// ValidateName checks that name is not blank and fits on one line.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: blank", ErrInvalidName)
	case strings.ContainsAny(name, "\r\n"):
		return fmt.Errorf("%w: %q spans lines", ErrInvalidName, name)
	}
	return nil
}
