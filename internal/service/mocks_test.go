package service

import (
	"context"
	"errors"
	"sync"

	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/notify"
)

type notification struct {
	message  string
	severity notify.Severity
}

type mockNotifier struct {
	m    sync.RWMutex
	sent []notification
}

func (n *mockNotifier) Notify(message string, severity notify.Severity) {
	n.m.Lock()
	defer n.m.Unlock()
	n.sent = append(n.sent, notification{message: message, severity: severity})
}

func (n *mockNotifier) last() notification {
	n.m.RLock()
	defer n.m.RUnlock()
	if len(n.sent) == 0 {
		return notification{}
	}
	return n.sent[len(n.sent)-1]
}

func (n *mockNotifier) count() int {
	n.m.RLock()
	defer n.m.RUnlock()
	return len(n.sent)
}

type mockCatalog struct {
	products map[string]domain.Product
}

func newMockCatalog(products ...domain.Product) *mockCatalog {
	c := &mockCatalog{products: make(map[string]domain.Product)}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return c
}

func (c *mockCatalog) Product(id string) (domain.Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

type mockSelection struct {
	cleared []string
}

func (s *mockSelection) ClearCouponIfSelected(code string) bool {
	s.cleared = append(s.cleared, code)
	return true
}

var errStorageDown = errors.New("storage down")

// failingStorage rejects every write.
type failingStorage struct{}

func (failingStorage) Get(context.Context, string) ([]byte, error) { return nil, errStorageDown }
func (failingStorage) Set(context.Context, string, []byte) error   { return errStorageDown }
func (failingStorage) Remove(context.Context, string) error        { return errStorageDown }
func (failingStorage) Close() error                                { return nil }
