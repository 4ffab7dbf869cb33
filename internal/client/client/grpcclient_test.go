package client

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/rpc"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

/*************
 * Fake rpc client
 *************/

// fakeRPC implements only what the tests call; anything else panics on the
// nil embedded interface.
type fakeRPC struct {
	rpc.SkillSwapClient

	lastLoginReq    *rpc.CredentialsRequest
	lastSwipeReq    *rpc.SwipeRequest
	lastSendReq     *rpc.SendMessageRequest
	lastNavigateReq *rpc.NavigateRequest
	lastDownloadReq *rpc.DownloadURLRequest

	pingResp *rpc.PingResponse
	pingErr  error

	openResp *rpc.OpenSessionResponse
	openErr  error

	loginResp *rpc.LoginResponse
	loginErr  error

	swipeResp *rpc.SwipeResponse

	sendResp *rpc.SendMessageResponse
	sendErr  error

	lessonResp *rpc.LessonPlanResponse
	lessonErr  error

	downloadResp *rpc.DownloadURLResponse

	events    []*rpc.Event
	eventsErr error
}

func (f *fakeRPC) Ping(ctx context.Context, in *rpc.Empty, opts ...grpc.CallOption) (*rpc.PingResponse, error) {
	return f.pingResp, f.pingErr
}
func (f *fakeRPC) OpenSession(ctx context.Context, in *rpc.Empty, opts ...grpc.CallOption) (*rpc.OpenSessionResponse, error) {
	return f.openResp, f.openErr
}
func (f *fakeRPC) Login(ctx context.Context, in *rpc.CredentialsRequest, opts ...grpc.CallOption) (*rpc.LoginResponse, error) {
	f.lastLoginReq = in
	return f.loginResp, f.loginErr
}
func (f *fakeRPC) Swipe(ctx context.Context, in *rpc.SwipeRequest, opts ...grpc.CallOption) (*rpc.SwipeResponse, error) {
	f.lastSwipeReq = in
	return f.swipeResp, nil
}
func (f *fakeRPC) SendMessage(ctx context.Context, in *rpc.SendMessageRequest, opts ...grpc.CallOption) (*rpc.SendMessageResponse, error) {
	f.lastSendReq = in
	return f.sendResp, f.sendErr
}
func (f *fakeRPC) Navigate(ctx context.Context, in *rpc.NavigateRequest, opts ...grpc.CallOption) (*rpc.StateResponse, error) {
	f.lastNavigateReq = in
	return &rpc.StateResponse{State: rpc.State{View: in.View, Tab: in.Tab}}, nil
}
func (f *fakeRPC) LessonPlan(ctx context.Context, in *rpc.LessonPlanRequest, opts ...grpc.CallOption) (*rpc.LessonPlanResponse, error) {
	return f.lessonResp, f.lessonErr
}
func (f *fakeRPC) DownloadURL(ctx context.Context, in *rpc.DownloadURLRequest, opts ...grpc.CallOption) (*rpc.DownloadURLResponse, error) {
	f.lastDownloadReq = in
	return f.downloadResp, nil
}
func (f *fakeRPC) Events(ctx context.Context, in *rpc.Empty, opts ...grpc.CallOption) (rpc.SkillSwap_EventsClient, error) {
	if f.eventsErr != nil {
		return nil, f.eventsErr
	}
	return &fakeStream{events: f.events}, nil
}

type fakeStream struct {
	grpc.ClientStream
	events []*rpc.Event
}

func (s *fakeStream) Recv() (*rpc.Event, error) {
	if len(s.events) == 0 {
		return nil, io.EOF
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

/*************
 * sessionTokenInterceptor tests
 *************/

func TestInterceptor_AttachesSessionToken(t *testing.T) {
	c := &GRPCClient{sessionToken: "S1"}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.SessionTokenHeaderName)
		require.Equal(t, []string{"S1"}, toks)
		return nil
	}

	ctx := metadata.AppendToOutgoingContext(context.Background(), common.SessionTokenHeaderName, "stale")
	require.NoError(t, c.sessionTokenInterceptor(ctx, "/svc/Method", nil, nil, nil, invoker))
}

func TestInterceptor_NoTokenBeforeSession(t *testing.T) {
	c := &GRPCClient{}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Empty(t, md.Get(common.SessionTokenHeaderName))
		return nil
	}

	require.NoError(t, c.sessionTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker))
}

func TestStreamInterceptor_AttachesSessionToken(t *testing.T) {
	c := &GRPCClient{sessionToken: "S2"}

	streamer := func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Equal(t, []string{"S2"}, md.Get(common.SessionTokenHeaderName))
		return nil, nil
	}

	_, err := c.sessionTokenStreamInterceptor(context.Background(), &grpc.StreamDesc{}, nil, "/svc/Events", streamer)
	require.NoError(t, err)
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.Equal(t, ErrUnauthorized, c.mapError(status.Error(codes.Unauthenticated, "x")))
	require.Equal(t, ErrUnauthorized, c.mapError(status.Error(codes.PermissionDenied, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.Unavailable, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.DeadlineExceeded, "x")))
	require.Equal(t, ErrLessonPlanUnavailable, c.mapError(status.Error(codes.Unavailable, common.LessonPlanErrorText)))
	require.Nil(t, c.mapError(nil))

	var rej *RejectedError
	require.ErrorAs(t, c.mapError(status.Error(codes.AlreadyExists, "An account with this email already exists.")), &rej)
	require.Equal(t, codes.AlreadyExists, rej.Code)
	require.Equal(t, "An account with this email already exists.", rej.Message)

	e := errors.New("plain")
	require.ErrorContains(t, c.mapError(e), "rpc error:")
}

/*************
 * Ping / OpenSession tests
 *************/

func TestPing_OK(t *testing.T) {
	f := &fakeRPC{pingResp: &rpc.PingResponse{Status: "OK"}}
	c := &GRPCClient{client: f}
	require.NoError(t, c.Ping(context.Background()))
}

func TestPing_NotOK_ReturnsUnavailable(t *testing.T) {
	f := &fakeRPC{pingResp: &rpc.PingResponse{Status: "NOT_OK"}}
	c := &GRPCClient{client: f}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestPing_MapsRPCError(t *testing.T) {
	f := &fakeRPC{pingErr: status.Error(codes.Unavailable, "down")}
	c := &GRPCClient{client: f}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestOpenSession_StoresToken(t *testing.T) {
	f := &fakeRPC{openResp: &rpc.OpenSessionResponse{Token: "T", State: rpc.InitialState()}}
	c := &GRPCClient{client: f}

	st, err := c.OpenSession(context.Background())
	require.NoError(t, err)
	require.Equal(t, rpc.ViewSplash, st.View)
	require.Equal(t, "T", c.token())
}

func TestOpenSession_MapsError(t *testing.T) {
	f := &fakeRPC{openErr: status.Error(codes.Unavailable, "x")}
	c := &GRPCClient{client: f}
	_, err := c.OpenSession(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	require.Empty(t, c.token())
}

/*************
 * Domain call tests
 *************/

func TestLogin_PassesCredentials(t *testing.T) {
	f := &fakeRPC{loginResp: &rpc.LoginResponse{State: rpc.State{View: rpc.ViewMain}}}
	c := &GRPCClient{client: f}

	resp, err := c.Login(context.Background(), "a@b.c", "secret123")
	require.NoError(t, err)
	require.Equal(t, rpc.ViewMain, resp.State.View)
	require.Equal(t, "a@b.c", f.lastLoginReq.Email)
	require.Equal(t, "secret123", f.lastLoginReq.Password)
}

func TestLogin_InvalidCredentialsIsRejected(t *testing.T) {
	f := &fakeRPC{loginErr: status.Error(codes.InvalidArgument, "Invalid email or password. Please try again.")}
	c := &GRPCClient{client: f}

	_, err := c.Login(context.Background(), "a@b.c", "nope")
	var rej *RejectedError
	require.ErrorAs(t, err, &rej)
	require.Equal(t, "Invalid email or password. Please try again.", rej.Message)
}

func TestSwipe_PassesDirection(t *testing.T) {
	f := &fakeRPC{swipeResp: &rpc.SwipeResponse{Applied: true, ConversationID: "c1"}}
	c := &GRPCClient{client: f}

	resp, err := c.Swipe(context.Background(), 7, "right")
	require.NoError(t, err)
	require.Equal(t, "c1", resp.ConversationID)
	require.Equal(t, int64(7), f.lastSwipeReq.UserID)
	require.Equal(t, "right", f.lastSwipeReq.Direction)
}

func TestSend_PassesPayload(t *testing.T) {
	f := &fakeRPC{sendResp: &rpc.SendMessageResponse{Applied: true, AwaitingReply: true}}
	c := &GRPCClient{client: f}

	resp, err := c.Send(context.Background(), "c1", rpc.MessagePayload{Text: "hi"})
	require.NoError(t, err)
	require.True(t, resp.AwaitingReply)
	require.Equal(t, "c1", f.lastSendReq.ConversationID)
	require.Equal(t, "hi", f.lastSendReq.Payload.Text)
}

func TestSend_MapsError(t *testing.T) {
	f := &fakeRPC{sendErr: status.Error(codes.Unauthenticated, "unknown session")}
	c := &GRPCClient{client: f}
	_, err := c.Send(context.Background(), "c1", rpc.MessagePayload{Text: "hi"})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestNavigate_ReturnsState(t *testing.T) {
	f := &fakeRPC{}
	c := &GRPCClient{client: f}

	st, err := c.Navigate(context.Background(), &rpc.NavigateRequest{View: rpc.ViewMain, Tab: rpc.TabProfile})
	require.NoError(t, err)
	require.Equal(t, rpc.TabProfile, st.Tab)
	require.Equal(t, rpc.ViewMain, f.lastNavigateReq.View)
}

func TestLessonPlan(t *testing.T) {
	plan := &rpc.LessonPlan{Skill: "Go", Plan: []rpc.DayPlan{{Day: 1, Topic: "Basics"}}}
	f := &fakeRPC{lessonResp: &rpc.LessonPlanResponse{Plan: plan}}
	c := &GRPCClient{client: f}

	got, err := c.LessonPlan(context.Background(), "Go")
	require.NoError(t, err)
	require.Equal(t, plan, got)

	f.lessonErr = status.Error(codes.Unavailable, common.LessonPlanErrorText)
	_, err = c.LessonPlan(context.Background(), "Go")
	require.ErrorIs(t, err, ErrLessonPlanUnavailable)
}

func TestDownloadURL(t *testing.T) {
	f := &fakeRPC{downloadResp: &rpc.DownloadURLResponse{URL: "https://dl"}}
	c := &GRPCClient{client: f}
	url, err := c.DownloadURL(context.Background(), "image/k")
	require.NoError(t, err)
	require.Equal(t, "https://dl", url)
	require.Equal(t, "image/k", f.lastDownloadReq.Key)
}

/*************
 * Events tests
 *************/

func TestEvents_DeliversAndCloses(t *testing.T) {
	f := &fakeRPC{events: []*rpc.Event{
		{Type: "typing", ConversationID: "c1", Typing: true},
		{Type: "typing", ConversationID: "c1"},
	}}
	c := &GRPCClient{client: f}

	ch, err := c.Events(context.Background())
	require.NoError(t, err)

	var got []*rpc.Event
	for ev := range ch {
		got = append(got, ev)
	}
	require.Len(t, got, 2)
	require.True(t, got[0].Typing)
	require.False(t, got[1].Typing)
}

func TestEvents_MapsOpenError(t *testing.T) {
	f := &fakeRPC{eventsErr: status.Error(codes.Unauthenticated, "missing token")}
	c := &GRPCClient{client: f}
	_, err := c.Events(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}
