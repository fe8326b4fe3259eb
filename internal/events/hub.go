// Package events carries phase-transition notifications from a game
// engine to whatever hosting layer wants to broadcast them.
package events

import "sync"

// Type names a phase transition.
type Type string

const (
	SessionReady     Type = "session_ready"
	BiddingComplete  Type = "bidding_complete"
	BiddingRestarted Type = "bidding_restarted"
	HandComplete     Type = "hand_complete"
	MatchComplete    Type = "match_complete"
)

// Event is one notification with a free-form payload.
type Event struct {
	Type Type           `json:"type"`
	Data map[string]any `json:"data"`
}

// Notifier is the seam the engine publishes through.
type Notifier interface {
	Notify(Event)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Notify(Event) {}

// Hub fans events out to subscribers. Subscriber channels are
// buffered; a subscriber that stops draining loses events rather than
// blocking the engine.
type Hub struct {
	mu     sync.RWMutex
	subs   []chan Event
	closed bool
}

func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers a new listener and returns its channel.
func (h *Hub) Subscribe() <-chan Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	ch := make(chan Event, 64)
	h.subs = append(h.subs, ch)
	return ch
}

// Notify delivers the event to every subscriber.
func (h *Hub) Notify(e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	for _, ch := range h.subs {
		select {
		case ch <- e:
		default:
			// subscriber is not draining
		}
	}
}

// Close closes all subscriber channels.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for _, ch := range h.subs {
		close(ch)
	}
	h.subs = nil
}
