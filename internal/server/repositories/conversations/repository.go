// Package conversations implements the Conversation Store: an ordered list of
// two-party message logs, newest connection first.
package conversations

import (
	"context"

	"github.com/dmitrijs2005/skillswap/internal/server/models"
)

// Repository is the Conversation Store contract. Every returned conversation
// is a snapshot; later appends do not show up in it.
type Repository interface {
	// EnsurePair returns the conversation between a and b, creating it at the
	// front of the list with the given id when none exists.
	EnsurePair(ctx context.Context, id string, a, b int64) (conv *models.Conversation, created bool, err error)
	Get(ctx context.Context, id string) (*models.Conversation, error)
	FindPair(ctx context.Context, a, b int64) (*models.Conversation, error)
	Remove(ctx context.Context, id string) (*models.Conversation, error)
	// AppendMessage appends msg and returns the conversation as it is right
	// after the append.
	AppendMessage(ctx context.Context, id string, msg models.Message) (*models.Conversation, error)
	ListFor(ctx context.Context, userID int64) ([]*models.Conversation, error)
	// MarkRead flips the read flag of every message in the conversation not
	// sent by readerID and returns how many changed.
	MarkRead(ctx context.Context, id string, readerID int64) (int, error)
}
