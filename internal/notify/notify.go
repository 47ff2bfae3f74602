// Package notify carries user-facing outcome messages from the stores.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// DefaultTTL is how long a notification stays listed.
const DefaultTTL = 3 * time.Second

// Notifier receives the outcome of store operations.
type Notifier interface {
	Notify(message string, severity Severity)
}

type Notification struct {
	ID       string
	Message  string
	Severity Severity
}

// Center keeps the visible notifications and drops each one after its TTL.
type Center struct {
	mu     sync.Mutex
	items  []Notification
	timers map[string]*time.Timer
	ttl    time.Duration
	closed bool
	log    *zap.Logger
}

func NewCenter(ttl time.Duration, log *zap.Logger) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{
		timers: make(map[string]*time.Timer),
		ttl:    ttl,
		log:    log,
	}
}

func (c *Center) Notify(message string, severity Severity) {
	n := Notification{ID: uuid.NewString(), Message: message, Severity: severity}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		c.log.Debug("notification after close dropped", zap.String("message", message))
		return
	}
	c.items = append(c.items, n)
	c.timers[n.ID] = time.AfterFunc(c.ttl, func() { c.Remove(n.ID) })

	c.log.Debug("notification",
		zap.String("id", n.ID),
		zap.String("severity", string(severity)),
		zap.String("message", message))
}

// Remove drops the notification with id; unknown ids are ignored.
func (c *Center) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// List returns the notifications currently shown, oldest first.
func (c *Center) List() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Close stops pending dismissal timers. Later notifications are dropped.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
}

// Discard drops every notification.
var Discard Notifier = discard{}

type discard struct{}

func (discard) Notify(string, Severity) {}
