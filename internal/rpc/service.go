package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "skillswap.SkillSwap"

const (
	SkillSwap_Ping_FullMethodName                = "/" + ServiceName + "/Ping"
	SkillSwap_OpenSession_FullMethodName         = "/" + ServiceName + "/OpenSession"
	SkillSwap_FinishSplash_FullMethodName        = "/" + ServiceName + "/FinishSplash"
	SkillSwap_ShowAuthScreen_FullMethodName      = "/" + ServiceName + "/ShowAuthScreen"
	SkillSwap_Login_FullMethodName               = "/" + ServiceName + "/Login"
	SkillSwap_SignUp_FullMethodName              = "/" + ServiceName + "/SignUp"
	SkillSwap_VerifyEmail_FullMethodName         = "/" + ServiceName + "/VerifyEmail"
	SkillSwap_CompleteOnboarding_FullMethodName  = "/" + ServiceName + "/CompleteOnboarding"
	SkillSwap_SaveSettings_FullMethodName        = "/" + ServiceName + "/SaveSettings"
	SkillSwap_Navigate_FullMethodName            = "/" + ServiceName + "/Navigate"
	SkillSwap_Logout_FullMethodName              = "/" + ServiceName + "/Logout"
	SkillSwap_GetState_FullMethodName            = "/" + ServiceName + "/GetState"
	SkillSwap_Discover_FullMethodName            = "/" + ServiceName + "/Discover"
	SkillSwap_Swipe_FullMethodName               = "/" + ServiceName + "/Swipe"
	SkillSwap_ListConversations_FullMethodName   = "/" + ServiceName + "/ListConversations"
	SkillSwap_GetConversation_FullMethodName     = "/" + ServiceName + "/GetConversation"
	SkillSwap_SendMessage_FullMethodName         = "/" + ServiceName + "/SendMessage"
	SkillSwap_RemoveConnection_FullMethodName    = "/" + ServiceName + "/RemoveConnection"
	SkillSwap_DismissNotification_FullMethodName = "/" + ServiceName + "/DismissNotification"
	SkillSwap_ClearNotifications_FullMethodName  = "/" + ServiceName + "/ClearNotifications"
	SkillSwap_LessonPlan_FullMethodName          = "/" + ServiceName + "/LessonPlan"
	SkillSwap_UploadURL_FullMethodName           = "/" + ServiceName + "/UploadURL"
	SkillSwap_DownloadURL_FullMethodName         = "/" + ServiceName + "/DownloadURL"
	SkillSwap_Events_FullMethodName              = "/" + ServiceName + "/Events"
)

// SkillSwapServer is the server API for the SkillSwap service.
type SkillSwapServer interface {
	Ping(context.Context, *Empty) (*PingResponse, error)
	OpenSession(context.Context, *Empty) (*OpenSessionResponse, error)
	FinishSplash(context.Context, *Empty) (*StateResponse, error)
	ShowAuthScreen(context.Context, *ShowAuthScreenRequest) (*StateResponse, error)
	Login(context.Context, *CredentialsRequest) (*LoginResponse, error)
	SignUp(context.Context, *CredentialsRequest) (*SignUpResponse, error)
	VerifyEmail(context.Context, *VerifyEmailRequest) (*UserResponse, error)
	CompleteOnboarding(context.Context, *ProfileRequest) (*UserResponse, error)
	SaveSettings(context.Context, *ProfileRequest) (*UserResponse, error)
	Navigate(context.Context, *NavigateRequest) (*StateResponse, error)
	Logout(context.Context, *Empty) (*StateResponse, error)
	GetState(context.Context, *Empty) (*GetStateResponse, error)
	Discover(context.Context, *Empty) (*DiscoverResponse, error)
	Swipe(context.Context, *SwipeRequest) (*SwipeResponse, error)
	ListConversations(context.Context, *Empty) (*ListConversationsResponse, error)
	GetConversation(context.Context, *ConversationRequest) (*ConversationSummary, error)
	SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error)
	RemoveConnection(context.Context, *ConversationRequest) (*AppliedResponse, error)
	DismissNotification(context.Context, *DismissNotificationRequest) (*AppliedResponse, error)
	ClearNotifications(context.Context, *Empty) (*CountResponse, error)
	LessonPlan(context.Context, *LessonPlanRequest) (*LessonPlanResponse, error)
	UploadURL(context.Context, *UploadURLRequest) (*UploadURLResponse, error)
	DownloadURL(context.Context, *DownloadURLRequest) (*DownloadURLResponse, error)
	Events(*Empty, SkillSwap_EventsServer) error
}

type SkillSwap_EventsServer = grpc.ServerStreamingServer[Event]

// UnimplementedSkillSwapServer answers every method with codes.Unimplemented.
// Embed it to implement only part of the service.
type UnimplementedSkillSwapServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedSkillSwapServer) Ping(context.Context, *Empty) (*PingResponse, error) {
	return nil, unimplemented("Ping")
}
func (UnimplementedSkillSwapServer) OpenSession(context.Context, *Empty) (*OpenSessionResponse, error) {
	return nil, unimplemented("OpenSession")
}
func (UnimplementedSkillSwapServer) FinishSplash(context.Context, *Empty) (*StateResponse, error) {
	return nil, unimplemented("FinishSplash")
}
func (UnimplementedSkillSwapServer) ShowAuthScreen(context.Context, *ShowAuthScreenRequest) (*StateResponse, error) {
	return nil, unimplemented("ShowAuthScreen")
}
func (UnimplementedSkillSwapServer) Login(context.Context, *CredentialsRequest) (*LoginResponse, error) {
	return nil, unimplemented("Login")
}
func (UnimplementedSkillSwapServer) SignUp(context.Context, *CredentialsRequest) (*SignUpResponse, error) {
	return nil, unimplemented("SignUp")
}
func (UnimplementedSkillSwapServer) VerifyEmail(context.Context, *VerifyEmailRequest) (*UserResponse, error) {
	return nil, unimplemented("VerifyEmail")
}
func (UnimplementedSkillSwapServer) CompleteOnboarding(context.Context, *ProfileRequest) (*UserResponse, error) {
	return nil, unimplemented("CompleteOnboarding")
}
func (UnimplementedSkillSwapServer) SaveSettings(context.Context, *ProfileRequest) (*UserResponse, error) {
	return nil, unimplemented("SaveSettings")
}
func (UnimplementedSkillSwapServer) Navigate(context.Context, *NavigateRequest) (*StateResponse, error) {
	return nil, unimplemented("Navigate")
}
func (UnimplementedSkillSwapServer) Logout(context.Context, *Empty) (*StateResponse, error) {
	return nil, unimplemented("Logout")
}
func (UnimplementedSkillSwapServer) GetState(context.Context, *Empty) (*GetStateResponse, error) {
	return nil, unimplemented("GetState")
}
func (UnimplementedSkillSwapServer) Discover(context.Context, *Empty) (*DiscoverResponse, error) {
	return nil, unimplemented("Discover")
}
func (UnimplementedSkillSwapServer) Swipe(context.Context, *SwipeRequest) (*SwipeResponse, error) {
	return nil, unimplemented("Swipe")
}
func (UnimplementedSkillSwapServer) ListConversations(context.Context, *Empty) (*ListConversationsResponse, error) {
	return nil, unimplemented("ListConversations")
}
func (UnimplementedSkillSwapServer) GetConversation(context.Context, *ConversationRequest) (*ConversationSummary, error) {
	return nil, unimplemented("GetConversation")
}
func (UnimplementedSkillSwapServer) SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error) {
	return nil, unimplemented("SendMessage")
}
func (UnimplementedSkillSwapServer) RemoveConnection(context.Context, *ConversationRequest) (*AppliedResponse, error) {
	return nil, unimplemented("RemoveConnection")
}
func (UnimplementedSkillSwapServer) DismissNotification(context.Context, *DismissNotificationRequest) (*AppliedResponse, error) {
	return nil, unimplemented("DismissNotification")
}
func (UnimplementedSkillSwapServer) ClearNotifications(context.Context, *Empty) (*CountResponse, error) {
	return nil, unimplemented("ClearNotifications")
}
func (UnimplementedSkillSwapServer) LessonPlan(context.Context, *LessonPlanRequest) (*LessonPlanResponse, error) {
	return nil, unimplemented("LessonPlan")
}
func (UnimplementedSkillSwapServer) UploadURL(context.Context, *UploadURLRequest) (*UploadURLResponse, error) {
	return nil, unimplemented("UploadURL")
}
func (UnimplementedSkillSwapServer) DownloadURL(context.Context, *DownloadURLRequest) (*DownloadURLResponse, error) {
	return nil, unimplemented("DownloadURL")
}
func (UnimplementedSkillSwapServer) Events(*Empty, SkillSwap_EventsServer) error {
	return unimplemented("Events")
}

func RegisterSkillSwapServer(s grpc.ServiceRegistrar, srv SkillSwapServer) {
	s.RegisterService(&SkillSwap_ServiceDesc, srv)
}

// unary adapts a SkillSwapServer method expression to a grpc.MethodHandler.
func unary[Req, Resp any](fullMethod string, call func(SkillSwapServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SkillSwapServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SkillSwapServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func method[Req, Resp any](name string, call func(SkillSwapServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{MethodName: name, Handler: unary("/"+ServiceName+"/"+name, call)}
}

func eventsHandler(srv any, stream grpc.ServerStream) error {
	m := new(Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(SkillSwapServer).Events(m, &grpc.GenericServerStream[Empty, Event]{ServerStream: stream})
}

// SkillSwap_ServiceDesc is the grpc.ServiceDesc for the SkillSwap service.
var SkillSwap_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SkillSwapServer)(nil),
	Methods: []grpc.MethodDesc{
		method("Ping", SkillSwapServer.Ping),
		method("OpenSession", SkillSwapServer.OpenSession),
		method("FinishSplash", SkillSwapServer.FinishSplash),
		method("ShowAuthScreen", SkillSwapServer.ShowAuthScreen),
		method("Login", SkillSwapServer.Login),
		method("SignUp", SkillSwapServer.SignUp),
		method("VerifyEmail", SkillSwapServer.VerifyEmail),
		method("CompleteOnboarding", SkillSwapServer.CompleteOnboarding),
		method("SaveSettings", SkillSwapServer.SaveSettings),
		method("Navigate", SkillSwapServer.Navigate),
		method("Logout", SkillSwapServer.Logout),
		method("GetState", SkillSwapServer.GetState),
		method("Discover", SkillSwapServer.Discover),
		method("Swipe", SkillSwapServer.Swipe),
		method("ListConversations", SkillSwapServer.ListConversations),
		method("GetConversation", SkillSwapServer.GetConversation),
		method("SendMessage", SkillSwapServer.SendMessage),
		method("RemoveConnection", SkillSwapServer.RemoveConnection),
		method("DismissNotification", SkillSwapServer.DismissNotification),
		method("ClearNotifications", SkillSwapServer.ClearNotifications),
		method("LessonPlan", SkillSwapServer.LessonPlan),
		method("UploadURL", SkillSwapServer.UploadURL),
		method("DownloadURL", SkillSwapServer.DownloadURL),
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Events",
			Handler:       eventsHandler,
			ServerStreams: true,
		},
	},
	Metadata: "skillswap.json",
}
