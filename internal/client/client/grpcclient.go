package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      rpc.SkillSwapClient

	mu           sync.RWMutex
	sessionToken string
}

func withSessionToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.SessionTokenHeaderName)
	md.Set(common.SessionTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionToken
}

func (s *GRPCClient) setToken(t string) {
	s.mu.Lock()
	s.sessionToken = t
	s.mu.Unlock()
}

func (s *GRPCClient) sessionTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withSessionToken(ctx, s.token()), method, req, reply, cc, opts...)
}

func (s *GRPCClient) sessionTokenStreamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	return streamer(withSessionToken(ctx, s.token()), desc, cc, method, opts...)
}

func NewSkillSwapClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.sessionTokenInterceptor),
		grpc.WithStreamInterceptor(s.sessionTokenStreamInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = rpc.NewSkillSwapClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &rpc.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

// OpenSession starts a fresh server session and keeps its token for all
// later calls.
func (s *GRPCClient) OpenSession(ctx context.Context) (rpc.State, error) {
	resp, err := s.client.OpenSession(ctx, &rpc.Empty{})
	if err != nil {
		return rpc.State{}, s.mapError(err)
	}
	s.setToken(resp.Token)
	return resp.State, nil
}

func (s *GRPCClient) FinishSplash(ctx context.Context) (rpc.State, error) {
	resp, err := s.client.FinishSplash(ctx, &rpc.Empty{})
	if err != nil {
		return rpc.State{}, s.mapError(err)
	}
	return resp.State, nil
}

func (s *GRPCClient) ShowAuthScreen(ctx context.Context, screen rpc.AuthScreen) (rpc.State, error) {
	resp, err := s.client.ShowAuthScreen(ctx, &rpc.ShowAuthScreenRequest{Screen: screen})
	if err != nil {
		return rpc.State{}, s.mapError(err)
	}
	return resp.State, nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*rpc.LoginResponse, error) {
	resp, err := s.client.Login(ctx, &rpc.CredentialsRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) SignUp(ctx context.Context, email, password string) (*rpc.SignUpResponse, error) {
	resp, err := s.client.SignUp(ctx, &rpc.CredentialsRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) VerifyEmail(ctx context.Context, token string) (*rpc.UserResponse, error) {
	resp, err := s.client.VerifyEmail(ctx, &rpc.VerifyEmailRequest{Token: token})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) CompleteOnboarding(ctx context.Context, p rpc.Profile) (*rpc.UserResponse, error) {
	resp, err := s.client.CompleteOnboarding(ctx, &rpc.ProfileRequest{Profile: p})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) SaveSettings(ctx context.Context, p rpc.Profile) (*rpc.UserResponse, error) {
	resp, err := s.client.SaveSettings(ctx, &rpc.ProfileRequest{Profile: p})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Navigate(ctx context.Context, req *rpc.NavigateRequest) (rpc.State, error) {
	resp, err := s.client.Navigate(ctx, req)
	if err != nil {
		return rpc.State{}, s.mapError(err)
	}
	return resp.State, nil
}

func (s *GRPCClient) Logout(ctx context.Context) (rpc.State, error) {
	resp, err := s.client.Logout(ctx, &rpc.Empty{})
	if err != nil {
		return rpc.State{}, s.mapError(err)
	}
	return resp.State, nil
}

func (s *GRPCClient) State(ctx context.Context) (*rpc.GetStateResponse, error) {
	resp, err := s.client.GetState(ctx, &rpc.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

// Discover returns the freshly derived discovery queue and its top card.
func (s *GRPCClient) Discover(ctx context.Context) (*rpc.DiscoverResponse, error) {
	resp, err := s.client.Discover(ctx, &rpc.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Swipe(ctx context.Context, userID int64, direction string) (*rpc.SwipeResponse, error) {
	resp, err := s.client.Swipe(ctx, &rpc.SwipeRequest{UserID: userID, Direction: direction})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Conversations(ctx context.Context) ([]rpc.ConversationSummary, error) {
	resp, err := s.client.ListConversations(ctx, &rpc.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Conversations, nil
}

func (s *GRPCClient) Conversation(ctx context.Context, id string) (*rpc.ConversationSummary, error) {
	resp, err := s.client.GetConversation(ctx, &rpc.ConversationRequest{ConversationID: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Send(ctx context.Context, conversationID string, p rpc.MessagePayload) (*rpc.SendMessageResponse, error) {
	resp, err := s.client.SendMessage(ctx, &rpc.SendMessageRequest{ConversationID: conversationID, Payload: p})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) RemoveConnection(ctx context.Context, conversationID string) (bool, error) {
	resp, err := s.client.RemoveConnection(ctx, &rpc.ConversationRequest{ConversationID: conversationID})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Applied, nil
}

func (s *GRPCClient) DismissNotification(ctx context.Context, id string) (bool, error) {
	resp, err := s.client.DismissNotification(ctx, &rpc.DismissNotificationRequest{ID: id})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Applied, nil
}

func (s *GRPCClient) ClearNotifications(ctx context.Context) (int, error) {
	resp, err := s.client.ClearNotifications(ctx, &rpc.Empty{})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Count, nil
}

func (s *GRPCClient) LessonPlan(ctx context.Context, skill string) (*rpc.LessonPlan, error) {
	resp, err := s.client.LessonPlan(ctx, &rpc.LessonPlanRequest{Skill: skill})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Plan, nil
}

func (s *GRPCClient) UploadURL(ctx context.Context, kind string) (string, string, error) {
	resp, err := s.client.UploadURL(ctx, &rpc.UploadURLRequest{Kind: kind})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.Key, resp.URL, nil
}

func (s *GRPCClient) DownloadURL(ctx context.Context, key string) (string, error) {
	resp, err := s.client.DownloadURL(ctx, &rpc.DownloadURLRequest{Key: key})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.URL, nil
}

// Events subscribes to the session's push stream. The returned channel is
// closed when ctx is cancelled or the stream ends.
func (s *GRPCClient) Events(ctx context.Context) (<-chan *rpc.Event, error) {
	stream, err := s.client.Events(ctx, &rpc.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make(chan *rpc.Event, 16)
	go func() {
		defer close(out)
		for {
			ev, err := stream.Recv()
			if err != nil {
				return
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		return ErrUnavailable
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable:
		if st.Message() == common.LessonPlanErrorText {
			return ErrLessonPlanUnavailable
		}
		return ErrUnavailable
	case codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument, codes.AlreadyExists, codes.FailedPrecondition, codes.NotFound:
		return &RejectedError{Code: st.Code(), Message: st.Message()}
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
