// Package listview implements the shared list screen pattern: fetch the
// collection on focus, filter it with a case-insensitive substring
// search, and window it by page on desktop-class viewports.
package listview

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/nybarber/barberia/internal/viewport"
)

// Fetcher loads the full collection from the API.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Fields extracts the display fields the search matches against.
type Fields[T any] func(item T) []string

// Controller holds one list screen's view state. All methods are safe for
// concurrent use; overlapping refreshes are collapsed so a stale response
// can never overwrite a newer one.
type Controller[T any] struct {
	fetch  Fetcher[T]
	fields Fields[T]
	class  func() viewport.Class

	group singleflight.Group

	mu       sync.Mutex
	seq      uint64 // issue counter; only the newest fetch may store
	items    []T
	filtered []T
	query    string
	page     int
}

// New creates a controller. class supplies the current viewport class on
// every read so the layout follows resizes.
func New[T any](fetch Fetcher[T], fields Fields[T], class func() viewport.Class) *Controller[T] {
	return &Controller[T]{
		fetch:  fetch,
		fields: fields,
		class:  class,
		page:   1,
	}
}

// Refresh fetches the collection and replaces the view state. Called on
// mount, on every regain of focus, and after each mutation; this full
// reload is the screen's only consistency mechanism. Concurrent calls
// share a single request.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	issued := c.seq
	c.mu.Unlock()

	v, err, _ := c.group.Do("fetch", func() (interface{}, error) {
		items, err := c.fetch(ctx)
		if err != nil {
			return nil, err
		}
		return items, nil
	})
	if err != nil {
		return err
	}
	items := v.([]T)

	c.mu.Lock()
	defer c.mu.Unlock()
	if issued < c.seq {
		// A newer refresh was issued while this one was in flight.
		return nil
	}
	c.items = items
	c.applyFilterLocked()
	return nil
}

// SetQuery updates the search text, re-filters, and resets to page 1.
func (c *Controller[T]) SetQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = q
	c.applyFilterLocked()
	c.page = 1
}

// applyFilterLocked recomputes filtered from items and query. A blank
// query restores the full set in its original order.
func (c *Controller[T]) applyFilterLocked() {
	q := strings.TrimSpace(c.query)
	if q == "" {
		c.filtered = c.items
		return
	}
	needle := strings.ToLower(q)
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		for _, f := range c.fields(item) {
			if strings.Contains(strings.ToLower(f), needle) {
				out = append(out, item)
				break
			}
		}
	}
	c.filtered = out
}

// Query returns the current search text.
func (c *Controller[T]) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Filtered returns the filtered collection in order.
func (c *Controller[T]) Filtered() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filtered
}

// Len returns the filtered item count.
func (c *Controller[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.filtered)
}

// ItemCount returns the unfiltered collection size as of the last
// refresh, regardless of any active query or filter.
func (c *Controller[T]) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Page returns the current page, 1-based.
func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// SetPage moves to page p, clamped to [1, TotalPages].
func (c *Controller[T]) SetPage(p int) {
	total := c.TotalPages()
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case p < 1:
		c.page = 1
	case p > total:
		c.page = total
	default:
		c.page = p
	}
}

// TotalPages returns the page count for the current viewport's page size,
// never less than 1.
func (c *Controller[T]) TotalPages() int {
	size := c.class().PageSize()
	c.mu.Lock()
	defer c.mu.Unlock()
	total := (len(c.filtered) + size - 1) / size
	if total < 1 {
		total = 1
	}
	return total
}

// Visible returns the items to render: the whole filtered list on
// mobile-class viewports, or the current page's window on desktop.
func (c *Controller[T]) Visible() []T {
	class := c.class()
	c.mu.Lock()
	defer c.mu.Unlock()
	if !class.Paginated() {
		return c.filtered
	}
	size := class.PageSize()
	start := (c.page - 1) * size
	if start >= len(c.filtered) {
		return nil
	}
	end := start + size
	if end > len(c.filtered) {
		end = len(c.filtered)
	}
	return c.filtered[start:end]
}
