// Package search filters the catalog by a debounced search term.
package search

import (
	"strings"
	"sync"
	"time"

	"github.com/fjod/go_cart/storefront/internal/domain"
)

// DefaultDelay is the quiet period before a typed term takes effect.
const DefaultDelay = 500 * time.Millisecond

// Debouncer publishes the latest term once no new term arrived for delay.
// At most one timer is pending; Set replaces it.
type Debouncer struct {
	mu        sync.Mutex
	delay     time.Duration
	term      string
	debounced string
	pending   *time.Timer
	gen       uint64
	onSettle  func(term string)
}

// NewDebouncer returns a Debouncer; onSettle, if non-nil, runs on the timer
// goroutine each time a term settles.
func NewDebouncer(delay time.Duration, onSettle func(term string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay, onSettle: onSettle}
}

// Set records term and restarts the delay.
func (d *Debouncer) Set(term string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.term = term
	if d.pending != nil {
		d.pending.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = time.AfterFunc(d.delay, func() { d.settle(gen, term) })
}

func (d *Debouncer) settle(gen uint64, term string) {
	d.mu.Lock()
	if d.gen != gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.debounced = term
	cb := d.onSettle
	d.mu.Unlock()

	if cb != nil {
		cb(term)
	}
}

// Term is the latest value passed to Set.
func (d *Debouncer) Term() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.term
}

// Debounced is the last settled term.
func (d *Debouncer) Debounced() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.debounced
}

// Stop cancels the pending update, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	d.gen++
}

// FilterProducts keeps products whose name or description contains term,
// ignoring case. An empty term keeps everything.
func FilterProducts(products []domain.Product, term string) []domain.Product {
	if term == "" {
		return products
	}
	needle := strings.ToLower(term)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}
