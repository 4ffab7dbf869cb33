package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/ids"
	"github.com/dmitrijs2005/skillswap/internal/logging"
	"github.com/dmitrijs2005/skillswap/internal/server/ai"
	"github.com/dmitrijs2005/skillswap/internal/server/events"
	"github.com/dmitrijs2005/skillswap/internal/server/models"
	"github.com/dmitrijs2005/skillswap/internal/server/repositories/conversations"
	"github.com/dmitrijs2005/skillswap/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/skillswap/internal/server/repositories/users"
	"github.com/dmitrijs2005/skillswap/internal/server/session"
)

// NoMessagesPreview is the list preview of an empty conversation.
const NoMessagesPreview = "No messages yet"

// SessionFinder locates the sessions a user is logged in on.
type SessionFinder interface {
	ForUser(userID int64) []*session.Session
}

// SendResult reports what Send did. Applied is false for the silent no-ops:
// no current user, empty payload, or an unknown conversation.
type SendResult struct {
	Applied       bool
	Message       *models.Message
	AwaitingReply bool
}

// ConversationSummary is one row of the conversation list.
type ConversationSummary struct {
	Conversation *models.Conversation
	Other        *models.User
	Preview      string
	Unread       int
}

// ChatService appends messages and, for persona participants, fetches the
// persona's reply in the background.
type ChatService struct {
	users         users.Repository
	conversations conversations.Repository
	collaborator  ai.Collaborator
	ids           ids.Generator
	events        events.Publisher
	sessions      SessionFinder
	logger        logging.Logger

	pending sync.WaitGroup
}

func NewChatService(m repomanager.RepositoryManager, collab ai.Collaborator, gen ids.Generator,
	pub events.Publisher, sessions SessionFinder, logger logging.Logger) *ChatService {
	return &ChatService{
		users:         m.Users(),
		conversations: m.Conversations(),
		collaborator:  collab,
		ids:           gen,
		events:        pub,
		sessions:      sessions,
		logger:        logger.With("module", "chat"),
	}
}

// Send appends the current user's message synchronously. When the other
// participant is a persona, the typing indicator is raised and one reply
// request is started; its result (or the fallback text) is appended later
// to the same conversation id, whatever the session is looking at by then.
func (s *ChatService) Send(ctx context.Context, sess *session.Session, conversationID string, p models.MessagePayload) (*SendResult, error) {
	meID, ok := sess.CurrentUserID()
	if !ok || p.Empty() {
		return &SendResult{}, nil
	}

	conv, err := s.conversations.Get(ctx, conversationID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &SendResult{}, nil
		}
		return nil, fmt.Errorf("error loading conversation: %w", err)
	}
	if !conv.Includes(meID) {
		return &SendResult{}, nil
	}

	now := clock()
	msg := models.Message{
		ID:        s.ids.Next(),
		SenderID:  meID,
		Text:      p.Text,
		ImageURL:  p.ImageURL,
		AudioURL:  p.AudioURL,
		Timestamp: displayTime(now),
		CreatedAt: now,
	}

	// the reply is resolved against the snapshot taken right after the append
	snapshot, err := s.conversations.AppendMessage(ctx, conversationID, msg)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &SendResult{}, nil
		}
		return nil, fmt.Errorf("error appending message: %w", err)
	}
	s.publishMessage(snapshot, msg)

	res := &SendResult{Applied: true, Message: &msg}

	otherID, ok := snapshot.OtherParticipant(meID)
	if !ok {
		return res, nil
	}
	other, err := s.users.FindByID(ctx, otherID)
	if err != nil || !other.IsAI {
		return res, nil
	}

	release := sess.BeginTyping()
	s.events.Publish(sess.ID, events.Event{Type: events.TypeTyping, ConversationID: conversationID, Typing: true})

	s.pending.Add(1)
	go s.reply(context.WithoutCancel(ctx), sess, snapshot, other, meID, release)

	res.AwaitingReply = true
	return res, nil
}

func (s *ChatService) reply(ctx context.Context, sess *session.Session, snapshot *models.Conversation,
	persona *models.User, humanID int64, release func()) {

	defer s.pending.Done()
	defer func() {
		release()
		s.events.Publish(sess.ID, events.Event{Type: events.TypeTyping, ConversationID: snapshot.ID, Typing: sess.AITyping()})
	}()

	history := make([]models.ChatTurn, 0, len(snapshot.Messages))
	for _, m := range snapshot.Messages {
		history = append(history, models.ChatTurn{SenderID: m.SenderID, Text: m.Text})
	}

	text, err := s.collaborator.GenerateChatResponse(ctx, history, persona.Bio, humanID)
	switch {
	case err != nil:
		s.logger.Warn(ctx, "persona reply failed, using fallback", "conversation_id", snapshot.ID, "error", err)
		text = common.AIErrorReplyText
	case strings.TrimSpace(text) == "":
		s.logger.Warn(ctx, "persona reply empty, using fallback", "conversation_id", snapshot.ID)
		text = common.AIErrorReplyText
	}

	now := clock()
	msg := models.Message{
		ID:        s.ids.Next(),
		SenderID:  persona.ID,
		Text:      text,
		Timestamp: displayTime(now),
		CreatedAt: now,
	}

	updated, err := s.conversations.AppendMessage(ctx, snapshot.ID, msg)
	if err != nil {
		s.logger.Info(ctx, "persona reply dropped", "conversation_id", snapshot.ID, "error", err)
		return
	}
	s.publishMessage(updated, msg)
	s.logger.Debug(ctx, "persona replied", "conversation_id", snapshot.ID, "persona_id", persona.ID)
}

func (s *ChatService) publishMessage(conv *models.Conversation, msg models.Message) {
	for _, id := range conv.ParticipantIDs {
		for _, sess := range s.sessions.ForUser(id) {
			s.events.Publish(sess.ID, events.Event{Type: events.TypeMessage, ConversationID: conv.ID, Message: &msg})
		}
	}
}

// Wait blocks until every pending persona reply has been appended.
func (s *ChatService) Wait() {
	s.pending.Wait()
}

// Remove deletes a conversation of the current user and releases the other
// participant back into the session's discovery pool. Unknown ids are a
// silent no-op.
func (s *ChatService) Remove(ctx context.Context, sess *session.Session, conversationID string) (bool, error) {
	meID, ok := sess.CurrentUserID()
	if !ok {
		return false, nil
	}

	conv, err := s.conversations.Get(ctx, conversationID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("error loading conversation: %w", err)
	}
	if !conv.Includes(meID) {
		return false, nil
	}

	if _, err := s.conversations.Remove(ctx, conversationID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("error removing conversation: %w", err)
	}

	if otherID, ok := conv.OtherParticipant(meID); ok {
		sess.Unswipe(otherID)
	}

	for _, id := range conv.ParticipantIDs {
		for _, other := range s.sessions.ForUser(id) {
			s.events.Publish(other.ID, events.Event{Type: events.TypeConversationRemoved, ConversationID: conversationID})
		}
	}

	s.logger.Info(ctx, "connection removed", "user_id", meID, "conversation_id", conversationID)
	return true, nil
}

// List returns the current user's conversations, newest connection first.
func (s *ChatService) List(ctx context.Context, sess *session.Session) ([]ConversationSummary, error) {
	me, err := currentUser(ctx, s.users, sess)
	if err != nil {
		return nil, err
	}

	convs, err := s.conversations.ListFor(ctx, me.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing conversations: %w", err)
	}

	out := make([]ConversationSummary, 0, len(convs))
	for _, c := range convs {
		out = append(out, s.summarize(ctx, c, me.ID))
	}
	return out, nil
}

func (s *ChatService) summarize(ctx context.Context, c *models.Conversation, meID int64) ConversationSummary {
	row := ConversationSummary{Conversation: c, Preview: NoMessagesPreview, Unread: c.UnreadFor(meID)}
	if last, ok := c.LastMessage(); ok {
		row.Preview = last.Text
	}
	if otherID, ok := c.OtherParticipant(meID); ok {
		if other, err := s.users.FindByID(ctx, otherID); err == nil {
			row.Other = other
		}
	}
	return row
}

// Get returns one of the current user's conversations.
func (s *ChatService) Get(ctx context.Context, sess *session.Session, conversationID string) (*models.Conversation, error) {
	meID, ok := sess.CurrentUserID()
	if !ok {
		return nil, common.ErrorNoCurrentUser
	}
	conv, err := s.conversations.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.Includes(meID) {
		return nil, common.ErrorNotFound
	}
	return conv, nil
}

// Detail returns one conversation together with the other participant.
func (s *ChatService) Detail(ctx context.Context, sess *session.Session, conversationID string) (*ConversationSummary, error) {
	conv, err := s.Get(ctx, sess, conversationID)
	if err != nil {
		return nil, err
	}
	meID, _ := sess.CurrentUserID()
	row := s.summarize(ctx, conv, meID)
	return &row, nil
}

// MarkRead flips the read flag on every message in the conversation not
// sent by the current user.
func (s *ChatService) MarkRead(ctx context.Context, sess *session.Session, conversationID string) (int, error) {
	meID, ok := sess.CurrentUserID()
	if !ok {
		return 0, common.ErrorNoCurrentUser
	}
	return s.conversations.MarkRead(ctx, conversationID, meID)
}

// UnreadCount sums unread messages from others across the current user's
// conversations.
func (s *ChatService) UnreadCount(ctx context.Context, sess *session.Session) (int, error) {
	meID, ok := sess.CurrentUserID()
	if !ok {
		return 0, nil
	}
	convs, err := s.conversations.ListFor(ctx, meID)
	if err != nil {
		return 0, fmt.Errorf("error listing conversations: %w", err)
	}
	n := 0
	for _, c := range convs {
		n += c.UnreadFor(meID)
	}
	return n, nil
}
