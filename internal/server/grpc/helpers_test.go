package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/ids"
	"github.com/dmitrijs2005/skillswap/internal/logging"
	"github.com/dmitrijs2005/skillswap/internal/rpc"
	"github.com/dmitrijs2005/skillswap/internal/server/config"
	"github.com/dmitrijs2005/skillswap/internal/server/events"
	"github.com/dmitrijs2005/skillswap/internal/server/models"
	"github.com/dmitrijs2005/skillswap/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/skillswap/internal/server/services"
	"github.com/dmitrijs2005/skillswap/internal/server/session"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type stubCollaborator struct {
	reply     string
	lessonErr error
}

func (c *stubCollaborator) GenerateChatResponse(context.Context, []models.ChatTurn, string, int64) (string, error) {
	return c.reply, nil
}

func (c *stubCollaborator) GenerateLessonPlan(_ context.Context, skill string) (*models.LessonPlan, error) {
	if c.lessonErr != nil {
		return nil, c.lessonErr
	}
	return &models.LessonPlan{Skill: skill, Plan: []models.DayPlan{{Day: 2}, {Day: 1}}}, nil
}

type stack struct {
	srv    *GRPCServer
	chat   *services.ChatService
	collab *stubCollaborator
	client rpc.SkillSwapClient
}

const testSecret = "test-secret"

// newStack wires the real reducers over memory stores behind a bufconn
// listener. personas are seeded before the server starts.
func newStack(t *testing.T, personas ...*models.User) *stack {
	t.Helper()
	ctx := context.Background()

	rm, err := repomanager.New(ctx, repomanager.BackendMemory, "")
	require.NoError(t, err)
	_, err = repomanager.Seed(ctx, rm.Users(), personas)
	require.NoError(t, err)

	log := nopLogger{}
	gen := ids.UUIDv7{}
	sessions := session.NewManager(gen)
	hub := events.NewHub()
	collab := &stubCollaborator{reply: "hello"}

	identity := services.NewIdentityService(rm, log)
	chat := services.NewChatService(rm, collab, gen, hub, sessions, log)
	svc := Services{
		Identity: identity,
		Match:    services.NewMatchService(rm, gen, hub, log),
		Chat:     chat,
		View:     services.NewViewService(identity, chat, log),
		Coach:    services.NewCoachService(collab, log),
		Media:    services.NewMediaService(&config.Config{}),
	}

	srv, err := NewGRPCServer("bufnet", log, sessions, hub, svc, testSecret, time.Hour)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	gs := srv.newServer()
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(func() {
		close(srv.stopping)
		gs.Stop()
		chat.Wait()
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &stack{srv: srv, chat: chat, collab: collab, client: rpc.NewSkillSwapClient(conn)}
}

func withToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, common.SessionTokenHeaderName, token)
}

// onboarded opens a session and takes a new account through signup,
// verification and onboarding. It returns the authorized context.
func (s *stack) onboarded(t *testing.T, email string) (context.Context, *models.User) {
	t.Helper()

	open, err := s.client.OpenSession(context.Background(), &rpc.Empty{})
	require.NoError(t, err)
	ctx := withToken(context.Background(), open.Token)

	_, err = s.client.FinishSplash(ctx, &rpc.Empty{})
	require.NoError(t, err)
	signup, err := s.client.SignUp(ctx, &rpc.CredentialsRequest{Email: email, Password: "password1"})
	require.NoError(t, err)
	_, err = s.client.VerifyEmail(ctx, &rpc.VerifyEmailRequest{Token: signup.PendingToken})
	require.NoError(t, err)
	done, err := s.client.CompleteOnboarding(ctx, &rpc.ProfileRequest{Profile: models.Profile{Name: "Alex", Location: "Riga"}})
	require.NoError(t, err)
	return ctx, done.User
}
