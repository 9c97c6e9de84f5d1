package events

import (
	"log/slog"
	"sync"
	"time"

	"gym-tracker/models"
)

type subscriber struct {
	ch chan models.Event
}

// Hub fans events out to every subscriber. Publishing never blocks: a
// subscriber whose buffer is full misses the event.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[*subscriber]struct{}
	logger      *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subscribers: make(map[*subscriber]struct{}),
		logger:      logger,
	}
}

// Publish delivers e to all current subscribers
func (h *Hub) Publish(e models.Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for s := range h.subscribers {
		select {
		case s.ch <- e:
		default:
			h.logger.Warn("Dropping event for slow subscriber", "kind", e.Kind)
		}
	}
}

// Subscribe registers a listener. The returned func unsubscribes and
// closes the channel; it is safe to call more than once.
func (h *Hub) Subscribe(buffer int) (<-chan models.Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	s := &subscriber{ch: make(chan models.Event, buffer)}

	h.mu.Lock()
	h.subscribers[s] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			// Close may already have dropped it
			if _, ok := h.subscribers[s]; ok {
				delete(h.subscribers, s)
				close(s.ch)
			}
		})
	}
	return s.ch, unsubscribe
}

// Close disconnects every subscriber
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.subscribers {
		delete(h.subscribers, s)
		close(s.ch)
	}
}

// Subscribers returns the number of active listeners
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
