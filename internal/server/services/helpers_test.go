package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/skillswap/internal/logging"
	"github.com/dmitrijs2005/skillswap/internal/server/events"
	"github.com/dmitrijs2005/skillswap/internal/server/models"
	"github.com/dmitrijs2005/skillswap/internal/server/navigation"
	"github.com/dmitrijs2005/skillswap/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/skillswap/internal/server/session"
	"github.com/stretchr/testify/require"
)

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%04d", g.n)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events map[string][]events.Event
}

func (p *recordingPublisher) Publish(sessionID string, ev events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.events == nil {
		p.events = map[string][]events.Event{}
	}
	p.events[sessionID] = append(p.events[sessionID], ev)
}

func (p *recordingPublisher) of(sessionID string, typ events.Type) []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.Event
	for _, ev := range p.events[sessionID] {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

type fakeCollaborator struct {
	chatFn   func(ctx context.Context, history []models.ChatTurn, bio string, me int64) (string, error)
	lessonFn func(ctx context.Context, skill string) (*models.LessonPlan, error)

	mu    sync.Mutex
	calls [][]models.ChatTurn
}

func (f *fakeCollaborator) GenerateChatResponse(ctx context.Context, history []models.ChatTurn, bio string, me int64) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, history)
	f.mu.Unlock()
	return f.chatFn(ctx, history, bio, me)
}

func (f *fakeCollaborator) GenerateLessonPlan(ctx context.Context, skill string) (*models.LessonPlan, error) {
	return f.lessonFn(ctx, skill)
}

type fixture struct {
	rm       repomanager.RepositoryManager
	sessions *session.Manager
	pub      *recordingPublisher
	collab   *fakeCollaborator
	identity *IdentityService
	match    *MatchService
	chat     *ChatService
	view     *ViewService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	orig := clock
	clock = func() time.Time { return time.Date(2025, 3, 14, 9, 5, 0, 0, time.UTC) }
	t.Cleanup(func() { clock = orig })

	rm, err := repomanager.New(context.Background(), repomanager.BackendMemory, "")
	require.NoError(t, err)

	gen := &seqIDs{}
	f := &fixture{
		rm:       rm,
		sessions: session.NewManager(gen),
		pub:      &recordingPublisher{},
		collab: &fakeCollaborator{
			chatFn: func(context.Context, []models.ChatTurn, string, int64) (string, error) { return "ok", nil },
		},
	}
	log := logging.Discard()
	f.identity = NewIdentityService(rm, log)
	f.match = NewMatchService(rm, gen, f.pub, log)
	f.chat = NewChatService(rm, f.collab, gen, f.pub, f.sessions, log)
	f.view = NewViewService(f.identity, f.chat, log)
	return f
}

// addUser inserts a user straight into the store.
func (f *fixture) addUser(t *testing.T, u *models.User) *models.User {
	t.Helper()
	out, err := f.rm.Users().Add(context.Background(), u)
	require.NoError(t, err)
	return out
}

// loggedIn returns a session in main with a verified, onboarded user.
func (f *fixture) loggedIn(t *testing.T, email string) (*session.Session, *models.User) {
	t.Helper()
	u := f.addUser(t, &models.User{Email: email, Password: "pw", Name: email, IsEmailVerified: true, HasOnboarded: true})

	s := f.sessions.Open()
	_, err := f.view.FinishSplash(context.Background(), s)
	require.NoError(t, err)
	res, err := f.identity.Login(context.Background(), s, email, "pw")
	require.NoError(t, err)
	require.Equal(t, navigation.ViewMain, res.View.View)
	return s, u
}
