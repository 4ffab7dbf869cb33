package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// SkillSwapClient is the client API for the SkillSwap service.
type SkillSwapClient interface {
	Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingResponse, error)
	OpenSession(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*OpenSessionResponse, error)
	FinishSplash(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StateResponse, error)
	ShowAuthScreen(ctx context.Context, in *ShowAuthScreenRequest, opts ...grpc.CallOption) (*StateResponse, error)
	Login(ctx context.Context, in *CredentialsRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	SignUp(ctx context.Context, in *CredentialsRequest, opts ...grpc.CallOption) (*SignUpResponse, error)
	VerifyEmail(ctx context.Context, in *VerifyEmailRequest, opts ...grpc.CallOption) (*UserResponse, error)
	CompleteOnboarding(ctx context.Context, in *ProfileRequest, opts ...grpc.CallOption) (*UserResponse, error)
	SaveSettings(ctx context.Context, in *ProfileRequest, opts ...grpc.CallOption) (*UserResponse, error)
	Navigate(ctx context.Context, in *NavigateRequest, opts ...grpc.CallOption) (*StateResponse, error)
	Logout(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StateResponse, error)
	GetState(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetStateResponse, error)
	Discover(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*DiscoverResponse, error)
	Swipe(ctx context.Context, in *SwipeRequest, opts ...grpc.CallOption) (*SwipeResponse, error)
	ListConversations(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListConversationsResponse, error)
	GetConversation(ctx context.Context, in *ConversationRequest, opts ...grpc.CallOption) (*ConversationSummary, error)
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error)
	RemoveConnection(ctx context.Context, in *ConversationRequest, opts ...grpc.CallOption) (*AppliedResponse, error)
	DismissNotification(ctx context.Context, in *DismissNotificationRequest, opts ...grpc.CallOption) (*AppliedResponse, error)
	ClearNotifications(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*CountResponse, error)
	LessonPlan(ctx context.Context, in *LessonPlanRequest, opts ...grpc.CallOption) (*LessonPlanResponse, error)
	UploadURL(ctx context.Context, in *UploadURLRequest, opts ...grpc.CallOption) (*UploadURLResponse, error)
	DownloadURL(ctx context.Context, in *DownloadURLRequest, opts ...grpc.CallOption) (*DownloadURLResponse, error)
	Events(ctx context.Context, in *Empty, opts ...grpc.CallOption) (SkillSwap_EventsClient, error)
}

type SkillSwap_EventsClient = grpc.ServerStreamingClient[Event]

type skillSwapClient struct {
	cc grpc.ClientConnInterface
}

// NewSkillSwapClient returns a client that always speaks the JSON codec.
func NewSkillSwapClient(cc grpc.ClientConnInterface) SkillSwapClient {
	return &skillSwapClient{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *skillSwapClient) Ping(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[Empty, PingResponse](ctx, c.cc, SkillSwap_Ping_FullMethodName, in, opts)
}

func (c *skillSwapClient) OpenSession(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*OpenSessionResponse, error) {
	return invoke[Empty, OpenSessionResponse](ctx, c.cc, SkillSwap_OpenSession_FullMethodName, in, opts)
}

func (c *skillSwapClient) FinishSplash(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StateResponse, error) {
	return invoke[Empty, StateResponse](ctx, c.cc, SkillSwap_FinishSplash_FullMethodName, in, opts)
}

func (c *skillSwapClient) ShowAuthScreen(ctx context.Context, in *ShowAuthScreenRequest, opts ...grpc.CallOption) (*StateResponse, error) {
	return invoke[ShowAuthScreenRequest, StateResponse](ctx, c.cc, SkillSwap_ShowAuthScreen_FullMethodName, in, opts)
}

func (c *skillSwapClient) Login(ctx context.Context, in *CredentialsRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[CredentialsRequest, LoginResponse](ctx, c.cc, SkillSwap_Login_FullMethodName, in, opts)
}

func (c *skillSwapClient) SignUp(ctx context.Context, in *CredentialsRequest, opts ...grpc.CallOption) (*SignUpResponse, error) {
	return invoke[CredentialsRequest, SignUpResponse](ctx, c.cc, SkillSwap_SignUp_FullMethodName, in, opts)
}

func (c *skillSwapClient) VerifyEmail(ctx context.Context, in *VerifyEmailRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[VerifyEmailRequest, UserResponse](ctx, c.cc, SkillSwap_VerifyEmail_FullMethodName, in, opts)
}

func (c *skillSwapClient) CompleteOnboarding(ctx context.Context, in *ProfileRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[ProfileRequest, UserResponse](ctx, c.cc, SkillSwap_CompleteOnboarding_FullMethodName, in, opts)
}

func (c *skillSwapClient) SaveSettings(ctx context.Context, in *ProfileRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[ProfileRequest, UserResponse](ctx, c.cc, SkillSwap_SaveSettings_FullMethodName, in, opts)
}

func (c *skillSwapClient) Navigate(ctx context.Context, in *NavigateRequest, opts ...grpc.CallOption) (*StateResponse, error) {
	return invoke[NavigateRequest, StateResponse](ctx, c.cc, SkillSwap_Navigate_FullMethodName, in, opts)
}

func (c *skillSwapClient) Logout(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StateResponse, error) {
	return invoke[Empty, StateResponse](ctx, c.cc, SkillSwap_Logout_FullMethodName, in, opts)
}

func (c *skillSwapClient) GetState(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetStateResponse, error) {
	return invoke[Empty, GetStateResponse](ctx, c.cc, SkillSwap_GetState_FullMethodName, in, opts)
}

func (c *skillSwapClient) Discover(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*DiscoverResponse, error) {
	return invoke[Empty, DiscoverResponse](ctx, c.cc, SkillSwap_Discover_FullMethodName, in, opts)
}

func (c *skillSwapClient) Swipe(ctx context.Context, in *SwipeRequest, opts ...grpc.CallOption) (*SwipeResponse, error) {
	return invoke[SwipeRequest, SwipeResponse](ctx, c.cc, SkillSwap_Swipe_FullMethodName, in, opts)
}

func (c *skillSwapClient) ListConversations(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListConversationsResponse, error) {
	return invoke[Empty, ListConversationsResponse](ctx, c.cc, SkillSwap_ListConversations_FullMethodName, in, opts)
}

func (c *skillSwapClient) GetConversation(ctx context.Context, in *ConversationRequest, opts ...grpc.CallOption) (*ConversationSummary, error) {
	return invoke[ConversationRequest, ConversationSummary](ctx, c.cc, SkillSwap_GetConversation_FullMethodName, in, opts)
}

func (c *skillSwapClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error) {
	return invoke[SendMessageRequest, SendMessageResponse](ctx, c.cc, SkillSwap_SendMessage_FullMethodName, in, opts)
}

func (c *skillSwapClient) RemoveConnection(ctx context.Context, in *ConversationRequest, opts ...grpc.CallOption) (*AppliedResponse, error) {
	return invoke[ConversationRequest, AppliedResponse](ctx, c.cc, SkillSwap_RemoveConnection_FullMethodName, in, opts)
}

func (c *skillSwapClient) DismissNotification(ctx context.Context, in *DismissNotificationRequest, opts ...grpc.CallOption) (*AppliedResponse, error) {
	return invoke[DismissNotificationRequest, AppliedResponse](ctx, c.cc, SkillSwap_DismissNotification_FullMethodName, in, opts)
}

func (c *skillSwapClient) ClearNotifications(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*CountResponse, error) {
	return invoke[Empty, CountResponse](ctx, c.cc, SkillSwap_ClearNotifications_FullMethodName, in, opts)
}

func (c *skillSwapClient) LessonPlan(ctx context.Context, in *LessonPlanRequest, opts ...grpc.CallOption) (*LessonPlanResponse, error) {
	return invoke[LessonPlanRequest, LessonPlanResponse](ctx, c.cc, SkillSwap_LessonPlan_FullMethodName, in, opts)
}

func (c *skillSwapClient) UploadURL(ctx context.Context, in *UploadURLRequest, opts ...grpc.CallOption) (*UploadURLResponse, error) {
	return invoke[UploadURLRequest, UploadURLResponse](ctx, c.cc, SkillSwap_UploadURL_FullMethodName, in, opts)
}

func (c *skillSwapClient) DownloadURL(ctx context.Context, in *DownloadURLRequest, opts ...grpc.CallOption) (*DownloadURLResponse, error) {
	return invoke[DownloadURLRequest, DownloadURLResponse](ctx, c.cc, SkillSwap_DownloadURL_FullMethodName, in, opts)
}

func (c *skillSwapClient) Events(ctx context.Context, in *Empty, opts ...grpc.CallOption) (SkillSwap_EventsClient, error) {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	stream, err := c.cc.NewStream(ctx, &SkillSwap_ServiceDesc.Streams[0], SkillSwap_Events_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[Empty, Event]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
