// Package session holds the per-client state threaded through every
// reducer: view, current user, swiped-set, notifications and the AI typing
// indicator.
package session

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/skillswap/internal/server/models"
	"github.com/dmitrijs2005/skillswap/internal/server/navigation"
)

type Session struct {
	ID string

	mu            sync.Mutex
	view          navigation.State
	currentUserID int64
	pendingEmail  string
	swiped        map[int64]struct{}
	notifications []models.Notification
	pendingAI     int
}

func New(id string) *Session {
	return &Session{
		ID:     id,
		view:   navigation.Initial(),
		swiped: make(map[int64]struct{}),
	}
}

func (s *Session) View() navigation.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Transition applies fn to the current view and stores the result when fn
// succeeds.
func (s *Session) Transition(fn func(navigation.State) (navigation.State, error)) (navigation.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.view)
	if err != nil {
		return s.view, err
	}
	s.view = next
	return next, nil
}

// CurrentUserID returns the logged in user, if any.
func (s *Session) CurrentUserID() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUserID, s.currentUserID != 0
}

func (s *Session) SetCurrentUser(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUserID = id
}

// PendingEmail is the address awaiting verification on the verify screen.
func (s *Session) PendingEmail() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingEmail
}

func (s *Session) SetPendingEmail(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingEmail = email
}

func (s *Session) MarkSwiped(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.swiped[userID] = struct{}{}
}

func (s *Session) Unswipe(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.swiped, userID)
}

// Swiped returns a copy of the swiped-set.
func (s *Session) Swiped() map[int64]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int64]struct{}, len(s.swiped))
	for id := range s.swiped {
		out[id] = struct{}{}
	}
	return out
}

// PushNotification puts n at the front of the list.
func (s *Session) PushNotification(n models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = slices.Insert(s.notifications, 0, n)
}

func (s *Session) DismissNotification(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.notifications, func(n models.Notification) bool { return n.ID == id })
	if i < 0 {
		return false
	}
	s.notifications = slices.Delete(s.notifications, i, i+1)
	return true
}

func (s *Session) ClearNotifications() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.notifications)
	s.notifications = nil
	return n
}

func (s *Session) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.notifications)
}

// BeginTyping raises the AI typing indicator until the returned release
// func is called. Release is idempotent.
func (s *Session) BeginTyping() (release func()) {
	s.mu.Lock()
	s.pendingAI++
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.pendingAI--
			s.mu.Unlock()
		})
	}
}

func (s *Session) AITyping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingAI > 0
}

// Logout resets the view and forgets the user and their swipes.
// Notifications and pending AI replies are left alone.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = s.view.Logout()
	s.currentUserID = 0
	s.pendingEmail = ""
	s.swiped = make(map[int64]struct{})
}
