package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/logging"
	"github.com/dmitrijs2005/skillswap/internal/server/models"
	"github.com/dmitrijs2005/skillswap/internal/server/navigation"
	"github.com/dmitrijs2005/skillswap/internal/server/session"
)

// StateSnapshot is everything a client needs to render the current screen
// chrome: view, user, badges and notifications.
type StateSnapshot struct {
	View           navigation.State
	User           *models.User
	AITyping       bool
	UnreadMessages int
	Notifications  []models.Notification
	PendingEmail   string
	PendingToken   string
}

// ViewService drives explicit navigation and the notification list.
type ViewService struct {
	identity *IdentityService
	chat     *ChatService
	logger   logging.Logger
}

func NewViewService(identity *IdentityService, chat *ChatService, logger logging.Logger) *ViewService {
	return &ViewService{identity: identity, chat: chat, logger: logger.With("module", "view")}
}

func (s *ViewService) FinishSplash(ctx context.Context, sess *session.Session) (navigation.State, error) {
	return sess.Transition(navigation.State.FinishSplash)
}

func (s *ViewService) ShowAuthScreen(ctx context.Context, sess *session.Session, screen navigation.AuthScreen) (navigation.State, error) {
	return sess.Transition(func(st navigation.State) (navigation.State, error) { return st.ShowAuthScreen(screen) })
}

// Navigate moves between main, settings and chat. Opening a conversation
// marks the messages in it sent by the other participant as read.
func (s *ViewService) Navigate(ctx context.Context, sess *session.Session, t navigation.Target) (navigation.State, error) {
	if _, ok := sess.CurrentUserID(); !ok {
		return sess.View(), common.ErrorNoCurrentUser
	}

	if t.View == navigation.ViewChat && t.ConversationID != "" {
		if _, err := s.chat.Get(ctx, sess, t.ConversationID); err != nil {
			return sess.View(), err
		}
	}

	st, err := sess.Transition(func(st navigation.State) (navigation.State, error) { return st.Navigate(t) })
	if err != nil {
		return st, err
	}

	if st.View == navigation.ViewChat && st.Pane == navigation.PaneConversation {
		n, err := s.chat.MarkRead(ctx, sess, st.ConversationID)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return st, err
		}
		if n > 0 {
			s.logger.Debug(ctx, "messages marked read", "conversation_id", st.ConversationID, "count", n)
		}
	}
	return st, nil
}

func (s *ViewService) DismissNotification(ctx context.Context, sess *session.Session, id string) bool {
	return sess.DismissNotification(id)
}

func (s *ViewService) ClearNotifications(ctx context.Context, sess *session.Session) int {
	return sess.ClearNotifications()
}

// State assembles a snapshot of the session.
func (s *ViewService) State(ctx context.Context, sess *session.Session) (*StateSnapshot, error) {
	snap := &StateSnapshot{
		View:          sess.View(),
		AITyping:      sess.AITyping(),
		Notifications: sess.Notifications(),
	}

	if _, ok := sess.CurrentUserID(); ok {
		u, err := s.identity.CurrentUser(ctx, sess)
		if err != nil {
			return nil, err
		}
		snap.User = u

		unread, err := s.chat.UnreadCount(ctx, sess)
		if err != nil {
			return nil, err
		}
		snap.UnreadMessages = unread
	}

	if snap.View.View == navigation.ViewVerifyEmail {
		snap.PendingEmail, snap.PendingToken = s.identity.PendingVerification(ctx, sess)
	}
	return snap, nil
}
