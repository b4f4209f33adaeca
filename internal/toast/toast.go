// Package toast is the process-wide ephemeral notification channel. Cart and
// catalog operations push into it; the display layer lists and dismisses.
package toast

import (
	"sync"
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

const DefaultTTL = 3 * time.Second

type Notification struct {
	ID        uint64    `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type Channel struct {
	mu     sync.Mutex
	seq    uint64
	ttl    time.Duration
	items  []Notification
	timers map[uint64]*time.Timer
}

func NewChannel(ttl time.Duration) *Channel {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Channel{
		ttl:    ttl,
		timers: make(map[uint64]*time.Timer),
	}
}

// Push appends a notification and schedules its expiry. IDs increase
// monotonically so the display order is the push order.
func (c *Channel) Push(kind Kind, message string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	id := c.seq
	c.items = append(c.items, Notification{
		ID:        id,
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	})
	c.timers[id] = time.AfterFunc(c.ttl, func() {
		c.Dismiss(id)
	})
	return id
}

// Dismiss removes a notification immediately. The pending expiry timer is
// stopped so it cannot fire against a reused slice position later.
func (c *Channel) Dismiss(id uint64) {
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

func (c *Channel) List() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}
