// Package events fans out session events (async message appends, typing
// changes, new notifications) to streaming subscribers.
package events

import (
	"sync"

	"github.com/dmitrijs2005/skillswap/internal/server/models"
)

type Type string

const (
	TypeMessage             Type = "message"
	TypeTyping              Type = "typing"
	TypeNotification        Type = "notification"
	TypeConversationRemoved Type = "conversation_removed"
)

type Event struct {
	Type           Type                 `json:"type"`
	ConversationID string               `json:"conversationId,omitempty"`
	Message        *models.Message      `json:"message,omitempty"`
	Typing         bool                 `json:"typing,omitempty"`
	Notification   *models.Notification `json:"notification,omitempty"`
}

// Publisher is what the reducers depend on.
type Publisher interface {
	Publish(sessionID string, ev Event)
}

const subscriberBuffer = 64

// Hub delivers events per session id. Slow subscribers lose events rather
// than block the publisher.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan Event]struct{})}
}

// Subscribe registers a listener for sessionID. The channel is closed by
// the returned cancel func.
func (h *Hub) Subscribe(sessionID string) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	if h.subs[sessionID] == nil {
		h.subs[sessionID] = make(map[chan Event]struct{})
	}
	h.subs[sessionID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[sessionID], ch)
			if len(h.subs[sessionID]) == 0 {
				delete(h.subs, sessionID)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (h *Hub) Publish(sessionID string, ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[sessionID] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribers returns the number of open subscriptions for sessionID.
func (h *Hub) Subscribers(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[sessionID])
}

// Discard is a Publisher that drops everything.
type Discard struct{}

func (Discard) Publish(string, Event) {}
