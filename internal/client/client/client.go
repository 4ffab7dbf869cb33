package client

import (
	"context"

	"github.com/dmitrijs2005/skillswap/internal/rpc"
)

// Client is the API the CLI drives. Every call runs against the session
// opened by OpenSession.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	OpenSession(ctx context.Context) (rpc.State, error)

	FinishSplash(ctx context.Context) (rpc.State, error)
	ShowAuthScreen(ctx context.Context, screen rpc.AuthScreen) (rpc.State, error)
	Login(ctx context.Context, email, password string) (*rpc.LoginResponse, error)
	SignUp(ctx context.Context, email, password string) (*rpc.SignUpResponse, error)
	VerifyEmail(ctx context.Context, token string) (*rpc.UserResponse, error)
	CompleteOnboarding(ctx context.Context, p rpc.Profile) (*rpc.UserResponse, error)
	SaveSettings(ctx context.Context, p rpc.Profile) (*rpc.UserResponse, error)
	Navigate(ctx context.Context, req *rpc.NavigateRequest) (rpc.State, error)
	Logout(ctx context.Context) (rpc.State, error)
	State(ctx context.Context) (*rpc.GetStateResponse, error)

	Discover(ctx context.Context) (*rpc.DiscoverResponse, error)
	Swipe(ctx context.Context, userID int64, direction string) (*rpc.SwipeResponse, error)

	Conversations(ctx context.Context) ([]rpc.ConversationSummary, error)
	Conversation(ctx context.Context, id string) (*rpc.ConversationSummary, error)
	Send(ctx context.Context, conversationID string, p rpc.MessagePayload) (*rpc.SendMessageResponse, error)
	RemoveConnection(ctx context.Context, conversationID string) (bool, error)

	DismissNotification(ctx context.Context, id string) (bool, error)
	ClearNotifications(ctx context.Context) (int, error)
	LessonPlan(ctx context.Context, skill string) (*rpc.LessonPlan, error)

	UploadURL(ctx context.Context, kind string) (key, url string, err error)
	DownloadURL(ctx context.Context, key string) (string, error)

	Events(ctx context.Context) (<-chan *rpc.Event, error)
}
