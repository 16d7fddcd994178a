// Package realtime delivers stored chat messages to connected receivers.
//
// Delivery is at most once. A message published while its receiver has no
// subscription, or while the subscription's buffer is full, is dropped; the
// receiver catches up through the chat history endpoints.
package realtime

import (
	"fmt"
	"sync"
)

const (
	EventChatMessage = "chat.message"
	EventError       = "error"

	defaultBuffer = 64
)

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Topic names the per-receiver subscription topic.
func Topic(userID int64) string {
	return fmt.Sprintf("messages/%d", userID)
}

// Subscription receives the events published to one user's topic.
// C is closed by Unsubscribe.
type Subscription struct {
	UserID int64
	C      <-chan Event

	ch chan Event
}

// Hub is an in-process registry of per-user subscriptions.
type Hub struct {
	mu     sync.RWMutex
	subs   map[int64]map[*Subscription]struct{}
	buffer int
}

// NewHub creates a hub whose subscriptions buffer up to buffer events.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Hub{
		subs:   map[int64]map[*Subscription]struct{}{},
		buffer: buffer,
	}
}

func (h *Hub) Subscribe(userID int64) *Subscription {
	ch := make(chan Event, h.buffer)
	s := &Subscription{UserID: userID, C: ch, ch: ch}

	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = map[*Subscription]struct{}{}
	}
	h.subs[userID][s] = struct{}{}
	h.mu.Unlock()

	return s
}

// Unsubscribe removes s and closes its channel. Calling it twice is a no-op.
func (h *Hub) Unsubscribe(s *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subs[s.UserID]
	if !ok {
		return
	}
	if _, ok := set[s]; !ok {
		return
	}
	delete(set, s)
	if len(set) == 0 {
		delete(h.subs, s.UserID)
	}
	close(s.ch)
}

// Deliver hands ev to every subscription of userID without blocking and
// returns how many accepted it.
func (h *Hub) Deliver(userID int64, ev Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for s := range h.subs[userID] {
		select {
		case s.ch <- ev:
			delivered++
		default:
			// buffer full: drop
		}
	}
	return delivered
}

// Subscribers reports how many subscriptions userID currently has.
func (h *Hub) Subscribers(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[userID])
}
