package conversations

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/server/models"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	items []*models.Conversation
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) EnsurePair(ctx context.Context, id string, a, b int64) (*models.Conversation, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c := r.findPair(a, b); c != nil {
		return c.Clone(), false, nil
	}

	c := &models.Conversation{ID: id, ParticipantIDs: []int64{a, b}, Messages: []models.Message{}}
	r.items = slices.Insert(r.items, 0, c)
	return c.Clone(), true, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.index(id); i >= 0 {
		return r.items[i].Clone(), nil
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) FindPair(ctx context.Context, a, b int64) (*models.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c := r.findPair(a, b); c != nil {
		return c.Clone(), nil
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) Remove(ctx context.Context, id string) (*models.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	c := r.items[i]
	r.items = slices.Delete(r.items, i, i+1)
	return c, nil
}

func (r *MemoryRepository) AppendMessage(ctx context.Context, id string, msg models.Message) (*models.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	c := r.items[i]
	c.Messages = append(c.Messages, msg)
	return c.Clone(), nil
}

func (r *MemoryRepository) ListFor(ctx context.Context, userID int64) ([]*models.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Conversation, 0, len(r.items))
	for _, c := range r.items {
		if c.Includes(userID) {
			out = append(out, c.Clone())
		}
	}
	return out, nil
}

func (r *MemoryRepository) MarkRead(ctx context.Context, id string, readerID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return 0, common.ErrorNotFound
	}

	n := 0
	msgs := r.items[i].Messages
	for j := range msgs {
		if !msgs[j].IsRead && msgs[j].SenderID != readerID {
			msgs[j].IsRead = true
			n++
		}
	}
	return n, nil
}

func (r *MemoryRepository) index(id string) int {
	return slices.IndexFunc(r.items, func(c *models.Conversation) bool { return c.ID == id })
}

func (r *MemoryRepository) findPair(a, b int64) *models.Conversation {
	for _, c := range r.items {
		if c.IsPair(a, b) {
			return c
		}
	}
	return nil
}
