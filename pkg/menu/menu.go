// Package menu holds the ordered list of priced items a restaurant sells.
package menu

import "github.com/shopspring/decimal"

// Item is a single dish on a menu. Items never change once added.
type Item struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// List is an append-only sequence of items kept in insertion order.
type List struct {
	items []Item
}

// Append adds an item at the end of the list.
func (l *List) Append(name string, price decimal.Decimal) Item {
	it := Item{Name: name, Price: price}
	l.items = append(l.items, it)
	return it
}

// At returns the item at the 1-based position pos.
func (l *List) At(pos int) (Item, bool) {
	if pos < 1 || pos > len(l.items) {
		return Item{}, false
	}
	return l.items[pos-1], true
}

// Items returns a copy of the items in insertion order.
func (l *List) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Len reports the number of items.
func (l *List) Len() int {
	return len(l.items)
}
