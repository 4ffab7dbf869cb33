package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/ids"
	"github.com/dmitrijs2005/skillswap/internal/logging"
	"github.com/dmitrijs2005/skillswap/internal/server/discovery"
	"github.com/dmitrijs2005/skillswap/internal/server/events"
	"github.com/dmitrijs2005/skillswap/internal/server/models"
	"github.com/dmitrijs2005/skillswap/internal/server/repositories/conversations"
	"github.com/dmitrijs2005/skillswap/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/skillswap/internal/server/repositories/users"
	"github.com/dmitrijs2005/skillswap/internal/server/session"
)

type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// SwipeResult reports the side effects of a swipe. Applied is false when a
// right swipe named a user that no longer exists.
type SwipeResult struct {
	Applied      bool
	Notification *models.Notification
	Conversation *models.Conversation
	Created      bool
}

// MatchService derives the discovery queue and applies swipes.
type MatchService struct {
	users         users.Repository
	conversations conversations.Repository
	ids           ids.Generator
	events        events.Publisher
	logger        logging.Logger
}

func NewMatchService(m repomanager.RepositoryManager, gen ids.Generator, pub events.Publisher, logger logging.Logger) *MatchService {
	return &MatchService{
		users:         m.Users(),
		conversations: m.Conversations(),
		ids:           gen,
		events:        pub,
		logger:        logger.With("module", "match"),
	}
}

// Discover recomputes the queue from the stores and the session's
// swiped-set. The last element is the interactive card.
func (s *MatchService) Discover(ctx context.Context, sess *session.Session) ([]*models.User, error) {
	me, err := currentUser(ctx, s.users, sess)
	if err != nil {
		return nil, err
	}

	all, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	convs, err := s.conversations.ListFor(ctx, me.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing conversations: %w", err)
	}

	return discovery.ComputeDiscoverable(all, me.ID, sess.Swiped(), convs), nil
}

// Swipe records the decision. A right swipe on an existing user emits a
// connection notification and makes sure a conversation with them exists.
func (s *MatchService) Swipe(ctx context.Context, sess *session.Session, userID int64, dir Direction) (*SwipeResult, error) {
	if dir != DirectionLeft && dir != DirectionRight {
		return nil, fmt.Errorf("%w: direction %q", common.ErrorInvalidArgument, dir)
	}
	me, err := currentUser(ctx, s.users, sess)
	if err != nil {
		return nil, err
	}

	sess.MarkSwiped(userID)

	if dir == DirectionLeft {
		return &SwipeResult{Applied: true}, nil
	}

	matched, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Debug(ctx, "swiped user is gone", "user_id", userID)
			return &SwipeResult{}, nil
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	n := models.Notification{
		ID:        s.ids.Next(),
		Type:      models.NotificationConnection,
		Text:      fmt.Sprintf("You connected with %s!", matched.Name),
		Timestamp: JustNow,
		UserImage: matched.ProfilePicture,
	}
	sess.PushNotification(n)
	s.events.Publish(sess.ID, events.Event{Type: events.TypeNotification, Notification: &n})

	conv, created, err := s.conversations.EnsurePair(ctx, s.ids.Next(), me.ID, matched.ID)
	if err != nil {
		return nil, fmt.Errorf("error creating conversation: %w", err)
	}

	s.logger.Info(ctx, "connected", "user_id", me.ID, "matched_id", matched.ID, "conversation_id", conv.ID, "created", created)
	return &SwipeResult{Applied: true, Notification: &n, Conversation: conv, Created: created}, nil
}
