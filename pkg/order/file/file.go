// Package file appends processed orders to a plain text order log.
package file

import (
	"context"
	"fmt"
	"os"

	"orderdesk/pkg/order"
)

// Recorder appends one block per order to the file at Path.
type Recorder struct {
	Path string
}

// New creates a file recorder for path.
func New(path string) *Recorder {
	return &Recorder{Path: path}
}

// Record opens the log, appends the order block and closes it again.
func (r *Recorder) Record(ctx context.Context, o order.Order) error {
	f, err := os.OpenFile(r.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", order.ErrLogUnavailable, err)
	}
	if _, err := f.WriteString(order.FormatLogEntry(o)); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %v", order.ErrLogUnavailable, r.Path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", order.ErrLogUnavailable, r.Path, err)
	}
	return nil
}
