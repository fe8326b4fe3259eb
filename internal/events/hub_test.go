package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubFanOut(t *testing.T) {
	h := NewHub()
	a := h.Subscribe()
	b := h.Subscribe()

	h.Notify(Event{Type: HandComplete, Data: map[string]any{"session": "s1"}})

	for _, ch := range []<-chan Event{a, b} {
		select {
		case e := <-ch:
			assert.Equal(t, HandComplete, e.Type)
			assert.Equal(t, "s1", e.Data["session"])
		default:
			t.Fatalf("subscriber did not receive the event")
		}
	}
}

func TestHubDoesNotBlockOnSlowSubscriber(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()

	// overflow the buffer; Notify must keep returning
	for i := 0; i < 200; i++ {
		h.Notify(Event{Type: BiddingComplete})
	}
	assert.Len(t, ch, 64, "excess events are dropped, not queued")
}

func TestHubClose(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	h.Close()

	_, open := <-ch
	require.False(t, open, "channels close with the hub")

	// closing twice and notifying after close are both harmless
	h.Close()
	h.Notify(Event{Type: MatchComplete})
}
