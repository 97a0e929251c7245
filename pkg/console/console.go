// Package console runs the operator's menu-driven command loop on top of a desk.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"orderdesk/pkg/catalog"
	"orderdesk/pkg/desk"
	"orderdesk/pkg/order"
)

// Saver persists the directory when the operator exits.
type Saver interface {
	Save(ctx context.Context, dir *catalog.Directory) error
}

// Console reads commands from in and writes responses to out.
type Console struct {
	desk  *desk.Desk
	saver Saver
	in    *bufio.Scanner
	out   io.Writer
}

// New creates a console.
func New(d *desk.Desk, saver Saver, in io.Reader, out io.Writer) *Console {
	return &Console{desk: d, saver: saver, in: bufio.NewScanner(in), out: out}
}

const menuText = `
Menu:
1. Display Restaurants
2. Add Restaurant
3. Add Menu Item to Restaurant
4. Display Menu for Restaurant
5. Place Order
6. Process Next Order
7. Display Pending Orders
8. Exit
`

var errEOF = errors.New("input closed")

// Run loops until the operator exits or input ends, then saves the catalog.
func (c *Console) Run(ctx context.Context) error {
	for {
		fmt.Fprint(c.out, menuText)
		choice, err := c.askInt("Enter choice: ")
		if err != nil {
			return c.exit(ctx)
		}
		switch choice {
		case 1:
			c.listRestaurants(ctx)
		case 2:
			err = c.addRestaurant(ctx)
		case 3:
			err = c.addMenuItem(ctx)
		case 4:
			err = c.showMenu(ctx)
		case 5:
			err = c.placeOrder(ctx)
		case 6:
			c.processNext(ctx)
		case 7:
			c.listPending(ctx)
		case 8:
			return c.exit(ctx)
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
		if errors.Is(err, errEOF) {
			return c.exit(ctx)
		}
	}
}

func (c *Console) exit(ctx context.Context) error {
	if c.saver != nil {
		if err := c.saver.Save(ctx, c.desk.Directory()); err != nil {
			fmt.Fprintf(c.out, "Could not save restaurants: %v\n", err)
			return err
		}
	}
	fmt.Fprintln(c.out, "Exiting...")
	return nil
}

func (c *Console) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", errEOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) askInt(prompt string) (int, error) {
	for {
		text, err := c.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(text)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(c.out, "Please enter a whole number.")
	}
}

// askID reads an id for a new restaurant. Lookups use askText so ids loaded
// from a hand-edited file stay reachable.
func (c *Console) askID(prompt string) (string, error) {
	for {
		id, err := c.ask(prompt)
		if err != nil {
			return "", err
		}
		if err := catalog.ValidateID(id); err != nil {
			fmt.Fprintf(c.out, "%v\n", err)
			continue
		}
		return id, nil
	}
}

func (c *Console) askText(prompt string) (string, error) {
	for {
		text, err := c.ask(prompt)
		if err != nil {
			return "", err
		}
		if text != "" {
			return text, nil
		}
		fmt.Fprintln(c.out, "Value cannot be empty.")
	}
}

func (c *Console) askPrice(prompt string) (decimal.Decimal, error) {
	for {
		text, err := c.ask(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		p, err := decimal.NewFromString(text)
		if err == nil && !p.IsNegative() {
			return p, nil
		}
		fmt.Fprintln(c.out, "Please enter a non-negative price, e.g. 9.50.")
	}
}

func (c *Console) askLine(prompt string) (desk.Line, error) {
	for {
		text, err := c.ask(prompt)
		if err != nil {
			return desk.Line{}, err
		}
		fields := strings.Fields(text)
		if len(fields) == 2 {
			pos, err1 := strconv.Atoi(fields[0])
			qty, err2 := strconv.Atoi(fields[1])
			if err1 == nil && err2 == nil {
				return desk.Line{Position: pos, Quantity: qty}, nil
			}
		}
		fmt.Fprintln(c.out, "Please enter two numbers, e.g. 1 2.")
	}
}

func (c *Console) listRestaurants(ctx context.Context) {
	fmt.Fprintln(c.out, "Restaurants and IDs:")
	for _, r := range c.desk.Restaurants(ctx) {
		fmt.Fprintf(c.out, "ID: %s, Name: %s\n", r.ID, r.Name)
	}
}

func (c *Console) addRestaurant(ctx context.Context) error {
	id, err := c.askID("Enter restaurant ID: ")
	if err != nil {
		return err
	}
	name, err := c.askText("Enter restaurant name: ")
	if err != nil {
		return err
	}
	c.desk.AddRestaurant(ctx, id, name)
	fmt.Fprintf(c.out, "Added restaurant\nID = %s Name = %s\n", id, name)
	return nil
}

func (c *Console) addMenuItem(ctx context.Context) error {
	id, err := c.askText("Enter restaurant ID: ")
	if err != nil {
		return err
	}
	name, err := c.askText("Enter item name: ")
	if err != nil {
		return err
	}
	price, err := c.askPrice("Enter item price: ")
	if err != nil {
		return err
	}
	if _, err := c.desk.AddMenuItem(ctx, id, name, price); err != nil {
		fmt.Fprintf(c.out, "Restaurant id %s not found\n", id)
		return nil
	}
	fmt.Fprintf(c.out, "Added menu item %s (%s) to restaurant id %s\n", name, price.StringFixed(2), id)
	return nil
}

func (c *Console) showMenu(ctx context.Context) error {
	id, err := c.askText("Enter restaurant ID: ")
	if err != nil {
		return err
	}
	c.printMenu(ctx, id)
	return nil
}

func (c *Console) printMenu(ctx context.Context, id string) bool {
	r, err := c.desk.Restaurant(ctx, id)
	if err != nil {
		fmt.Fprintf(c.out, "Restaurant id %s not found\n", id)
		return false
	}
	fmt.Fprintf(c.out, "Menu for %s (ID %s):\n", r.Name, r.ID)
	for i, it := range r.Menu.Items() {
		fmt.Fprintf(c.out, " %d. %s - %s\n", i+1, it.Name, it.Price.StringFixed(2))
	}
	return true
}

func (c *Console) placeOrder(ctx context.Context) error {
	customer, err := c.askText("Enter customer name: ")
	if err != nil {
		return err
	}
	address, err := c.askText("Enter delivery address: ")
	if err != nil {
		return err
	}
	id, err := c.askText("Enter restaurant ID: ")
	if err != nil {
		return err
	}
	if !c.printMenu(ctx, id) {
		return nil
	}
	n, err := c.askInt("Number of items to order: ")
	if err != nil {
		return err
	}
	lines := make([]desk.Line, 0, max(n, 0))
	for range n {
		ln, err := c.askLine("Enter item number and quantity (e.g. 1 2): ")
		if err != nil {
			return err
		}
		lines = append(lines, ln)
	}

	p, err := c.desk.PlaceOrder(ctx, desk.PlaceRequest{Customer: customer, Address: address, RestaurantID: id, Lines: lines})
	if err != nil {
		fmt.Fprintln(c.out, "Restaurant not found.")
		return nil
	}
	for _, s := range p.Skipped {
		fmt.Fprintf(c.out, "Skipped line %d x%d: %v\n", s.Line.Position, s.Line.Quantity, s.Err)
	}
	fmt.Fprintf(c.out, "Order %d added to queue (total %s)\n", p.Order.ID, p.Order.Total.StringFixed(2))
	return nil
}

func (c *Console) processNext(ctx context.Context) {
	o, err := c.desk.ProcessNext(ctx)
	if errors.Is(err, order.ErrEmptyQueue) {
		fmt.Fprintln(c.out, "No pending orders to process.")
		return
	}
	fmt.Fprint(c.out, order.Receipt(o))
	if err != nil {
		fmt.Fprintf(c.out, "Warning: order was processed but not logged: %v\n", err)
	}
}

func (c *Console) listPending(ctx context.Context) {
	fmt.Fprintln(c.out, "Pending Orders:")
	for _, o := range c.desk.Pending(ctx) {
		fmt.Fprintf(c.out, " OrderID %d for %s\n", o.ID, o.CustomerName)
	}
}
