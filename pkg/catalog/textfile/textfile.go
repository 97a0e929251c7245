// Package textfile saves and loads the restaurant directory as a flat text file:
//
//	<restaurantCount>
//	<id> <name>
//	<menuItemCount>
//	<itemName> <price>
//
// Names may contain spaces. The id ends at the first space of its line and the
// price starts after the last space of an item line.
package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"orderdesk/pkg/catalog"
	"orderdesk/pkg/logger"
	"orderdesk/pkg/otel"
)

var (
	// ErrUnavailable indicates the catalog file could not be opened or written.
	ErrUnavailable = errors.New("catalog file unavailable")
	// ErrMalformed indicates a record that could not be parsed.
	ErrMalformed = errors.New("malformed catalog file")
)

// MaxLineLen bounds a single line of the catalog file. A longer line ends the
// load like any other malformed record.
const MaxLineLen = 1 << 20

// Store reads and writes a catalog file.
type Store struct {
	path string
	log  *logger.Logger
}

// New creates a store for the file at path.
func New(path string, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{path: path, log: log}
}

// Path returns the catalog file location.
func (s *Store) Path() string {
	return s.path
}

type record struct {
	id, name string
	items    []item
}

type item struct {
	name  string
	price decimal.Decimal
}

// Load adds the restaurants stored in the file to dir and reports how many.
// A missing file loads nothing. When parsing stops early the records read so
// far are still added and the error, wrapping ErrMalformed or ErrUnavailable,
// is returned.
//
// Records are replayed last to first so a save/load/save cycle rebuilds the
// same bucket chains, keeping duplicate ids shadowed the same way.
func (s *Store) Load(ctx context.Context, dir *catalog.Directory) (int, error) {
	ctx, span := otel.AddSpan(ctx, "catalog.load", attribute.String("path", s.path))
	defer span.End()

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Info(ctx, "no catalog file, starting empty", "path", s.path)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer f.Close()

	records, parseErr := parse(f)
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		r := dir.Add(rec.id, rec.name)
		for _, it := range rec.items {
			r.Menu.Append(it.name, it.price)
		}
	}
	span.SetAttributes(attribute.Int("restaurants", len(records)))
	if parseErr != nil {
		s.log.Warn(ctx, "catalog load stopped early", "path", s.path, "loaded", len(records), "error", parseErr)
		return len(records), parseErr
	}
	s.log.Info(ctx, "catalog loaded", "path", s.path, "restaurants", len(records))
	return len(records), nil
}

type lineReader struct {
	sc   *bufio.Scanner
	line int
}

// next returns the next non-blank line, trimmed.
func (lr *lineReader) next() (string, error) {
	for lr.sc.Scan() {
		lr.line++
		if text := strings.TrimSpace(lr.sc.Text()); text != "" {
			return text, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			lr.line++
			return "", lr.errorf("longer than %d bytes", MaxLineLen)
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return "", io.ErrUnexpectedEOF
}

// fail reports err from next while reading what. Errors already classified pass through.
func (lr *lineReader) fail(what string, err error) error {
	if errors.Is(err, ErrUnavailable) || errors.Is(err, ErrMalformed) {
		return err
	}
	return lr.errorf("%s: %v", what, err)
}

func (lr *lineReader) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, lr.line, fmt.Sprintf(format, args...))
}

func (lr *lineReader) count(what string) (int, error) {
	text, err := lr.next()
	if err != nil {
		return 0, lr.fail(what, err)
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0, lr.errorf("%s %q is not a count", what, text)
	}
	return n, nil
}

// parse reads records until the declared count or the first bad line. A
// restaurant cut short by a bad item line is returned with the items read so far.
func parse(r io.Reader) ([]record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineLen)
	lr := &lineReader{sc: sc}
	text, err := lr.next()
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, nil
	}
	if err != nil {
		return nil, lr.fail("restaurant count", err)
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return nil, lr.errorf("restaurant count %q is not a count", text)
	}

	records := make([]record, 0, min(n, 1024))
	for range n {
		text, err := lr.next()
		if err != nil {
			return records, lr.fail("restaurant", err)
		}
		id, name, ok := strings.Cut(text, " ")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return records, lr.errorf("restaurant line %q needs an id and a name", text)
		}
		rec := record{id: id, name: name}

		items, err := lr.count("menu item count")
		if err != nil {
			return append(records, rec), err
		}
		for range items {
			text, err := lr.next()
			if err != nil {
				return append(records, rec), lr.fail("menu item", err)
			}
			i := strings.LastIndexByte(text, ' ')
			if i <= 0 {
				return append(records, rec), lr.errorf("menu item line %q needs a name and a price", text)
			}
			price, err := decimal.NewFromString(text[i+1:])
			if err != nil || price.IsNegative() {
				return append(records, rec), lr.errorf("menu item price %q", text[i+1:])
			}
			rec.items = append(rec.items, item{name: strings.TrimSpace(text[:i]), price: price})
		}
		records = append(records, rec)
	}
	return records, nil
}

// Save overwrites the file with every restaurant in dir, in directory traversal order.
func (s *Store) Save(ctx context.Context, dir *catalog.Directory) error {
	ctx, span := otel.AddSpan(ctx, "catalog.save", attribute.String("path", s.path))
	defer span.End()

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	w := bufio.NewWriter(f)
	n := dir.Len()
	fmt.Fprintf(w, "%d\n", n)
	for r := range dir.All() {
		fmt.Fprintf(w, "%s %s\n", r.ID, r.Name)
		items := r.Menu.Items()
		fmt.Fprintf(w, "%d\n", len(items))
		for _, it := range items {
			fmt.Fprintf(w, "%s %s\n", it.Name, it.Price.StringFixed(2))
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrUnavailable, s.path, err)
	}
	span.SetAttributes(attribute.Int("restaurants", n))
	s.log.Info(ctx, "catalog saved", "path", s.path, "restaurants", n)
	return nil
}
