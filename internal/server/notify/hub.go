// Package notify fans "should sync" signals out to connected sessions after
// a push. A signal carries no data; receiving one only means "pull again".
package notify

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/chatsync/internal/logging"
)

// RoomRef identifies an affected room and its current active members.
type RoomRef struct {
	ID        string   `json:"id"`
	MemberIDs []string `json:"member_ids"`
}

// Event is published once per push that changed at least one room.
type Event struct {
	Rooms            []RoomRef `json:"rooms"`
	PublisherID      string    `json:"publisher_id"`
	PublisherSession string    `json:"publisher_session,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// Subscription is one session's interest in should-sync signals. Signals
// coalesce: C holds at most one pending signal.
type Subscription struct {
	SessionID string
	UserID    string
	C         <-chan struct{}

	c     chan struct{}
	rooms map[string]struct{}
}

func (s *Subscription) signal() {
	select {
	case s.c <- struct{}{}:
	default:
	}
}

func (s *Subscription) publishedBy(ev Event) bool {
	if ev.PublisherSession != "" {
		return s.SessionID == ev.PublisherSession
	}
	return s.UserID == ev.PublisherID
}

func (s *Subscription) interested(ev Event) bool {
	for _, room := range ev.Rooms {
		if _, ok := s.rooms[room.ID]; ok {
			return true
		}
		for _, id := range room.MemberIDs {
			if id == s.UserID {
				return true
			}
		}
	}
	return false
}

// Hub is the in-process session registry.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
	log  logging.Logger
}

func NewHub(log logging.Logger) *Hub {
	return &Hub{
		subs: make(map[*Subscription]struct{}),
		log:  log.With("module", "notify"),
	}
}

func (h *Hub) Subscribe(sessionID, userID string, roomIDs []string) *Subscription {
	c := make(chan struct{}, 1)
	sub := &Subscription{
		SessionID: sessionID,
		UserID:    userID,
		C:         c,
		c:         c,
		rooms:     make(map[string]struct{}, len(roomIDs)),
	}
	for _, id := range roomIDs {
		sub.rooms[id] = struct{}{}
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
}

// Len reports the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Publish signals every interested session except the publisher's own.
func (h *Hub) Publish(ctx context.Context, ev Event) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for sub := range h.subs {
		if sub.publishedBy(ev) || !sub.interested(ev) {
			continue
		}
		sub.signal()
		n++
	}
	h.log.Debug(ctx, "should-sync published", "rooms", len(ev.Rooms), "sessions", n)
	return nil
}
