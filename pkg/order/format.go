package order

import (
	"fmt"
	"strings"
)

// FormatLogEntry renders o as one order log block, blank line included.
func FormatLogEntry(o Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "OrderID: %d, Customer: %s, RestaurantID: %s, Total: %s, Address: %s\n",
		o.ID, o.CustomerName, o.RestaurantID, o.Total.StringFixed(2), o.Address)
	b.WriteString("Items: ")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "%s x%d (%s); ", it.Name, it.Quantity, it.LineTotal().StringFixed(2))
	}
	b.WriteString("\n\n")
	return b.String()
}

// Receipt renders o for the operator.
func Receipt(o Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Processing Order %d for %s (Restaurant ID %s)\n", o.ID, o.CustomerName, o.RestaurantID)
	b.WriteString("Items:\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, " - %s x%d = %s\n", it.Name, it.Quantity, it.LineTotal().StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: %s\n", o.Total.StringFixed(2))
	return b.String()
}
