package grpc

import (
	"context"

	"github.com/dmitrijs2005/skillswap/internal/rpc"
	"github.com/dmitrijs2005/skillswap/internal/server/auth"
	"github.com/dmitrijs2005/skillswap/internal/server/discovery"
	"github.com/dmitrijs2005/skillswap/internal/server/events"
	"github.com/dmitrijs2005/skillswap/internal/server/navigation"
	"github.com/dmitrijs2005/skillswap/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Ping(ctx context.Context, req *rpc.Empty) (*rpc.PingResponse, error) {

	return &rpc.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) OpenSession(ctx context.Context, req *rpc.Empty) (*rpc.OpenSessionResponse, error) {

	sess := s.sessions.Open()

	token, err := auth.GenerateToken(sess.ID, s.jwtSecret, s.sessionValidity)
	if err != nil {
		s.logger.Error(ctx, "error generating token", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Session opened", "session_id", sess.ID)
	return &rpc.OpenSessionResponse{Token: token, State: sess.View()}, nil

}

func (s *GRPCServer) FinishSplash(ctx context.Context, req *rpc.Empty) (*rpc.StateResponse, error) {
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	st, err := s.svc.View.FinishSplash(ctx, sess)
	if err != nil {
		return nil, s.toStatus(ctx, "FinishSplash", err)
	}
	return &rpc.StateResponse{State: st}, nil
}

func (s *GRPCServer) ShowAuthScreen(ctx context.Context, req *rpc.ShowAuthScreenRequest) (*rpc.StateResponse, error) {
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	st, err := s.svc.View.ShowAuthScreen(ctx, sess, req.Screen)
	if err != nil {
		return nil, s.toStatus(ctx, "ShowAuthScreen", err)
	}
	return &rpc.StateResponse{State: st}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *rpc.CredentialsRequest) (*rpc.LoginResponse, error) {
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.svc.Identity.Login(ctx, sess, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "Login", err)
	}
	return &rpc.LoginResponse{State: res.View, User: res.User, PendingToken: res.PendingToken}, nil
}

func (s *GRPCServer) SignUp(ctx context.Context, req *rpc.CredentialsRequest) (*rpc.SignUpResponse, error) {
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	token, err := s.svc.Identity.SignUp(ctx, sess, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "SignUp", err)
	}
	return &rpc.SignUpResponse{State: sess.View(), PendingToken: token}, nil
}

func (s *GRPCServer) VerifyEmail(ctx context.Context, req *rpc.VerifyEmailRequest) (*rpc.UserResponse, error) {
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.svc.Identity.VerifyEmail(ctx, sess, req.Token)
	if err != nil {
		return nil, s.toStatus(ctx, "VerifyEmail", err)
	}
	return &rpc.UserResponse{State: sess.View(), User: u}, nil
}

func (s *GRPCServer) CompleteOnboarding(ctx context.Context, req *rpc.ProfileRequest) (*rpc.UserResponse, error) {
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.svc.Identity.CompleteOnboarding(ctx, sess, req.Profile)
	if err != nil {
		return nil, s.toStatus(ctx, "CompleteOnboarding", err)
	}
	return &rpc.UserResponse{State: sess.View(), User: u}, nil
}

func (s *GRPCServer) SaveSettings(ctx context.Context, req *rpc.ProfileRequest) (*rpc.UserResponse, error) {
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.svc.Identity.SaveSettings(ctx, sess, req.Profile)
	if err != nil {
		return nil, s.toStatus(ctx, "SaveSettings", err)
	}
	return &rpc.UserResponse{State: sess.View(), User: u}, nil
}

func (s *GRPCServer) Navigate(ctx context.Context, req *rpc.NavigateRequest) (*rpc.StateResponse, error) {
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	st, err := s.svc.View.Navigate(ctx, sess, navigation.Target{
		View:           req.View,
		Tab:            req.Tab,
		Pane:           req.Pane,
		ConversationID: req.ConversationID,
	})
	if err != nil {
		return nil, s.toStatus(ctx, "Navigate", err)
	}
	return &rpc.StateResponse{State: st}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *rpc.Empty) (*rpc.StateResponse, error) {
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	s.svc.Identity.Logout(ctx, sess)
	return &rpc.StateResponse{State: sess.View()}, nil
}

func (s *GRPCServer) GetState(ctx context.Context, req *rpc.Empty) (*rpc.GetStateResponse, error) {
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := s.svc.View.State(ctx, sess)
	if err != nil {
		return nil, s.toStatus(ctx, "GetState", err)
	}
	return &rpc.GetStateResponse{
		State:          snap.View,
		User:           snap.User,
		AITyping:       snap.AITyping,
		UnreadMessages: snap.UnreadMessages,
		Notifications:  snap.Notifications,
		PendingEmail:   snap.PendingEmail,
		PendingToken:   snap.PendingToken,
	}, nil
}

func (s *GRPCServer) Discover(ctx context.Context, req *rpc.Empty) (*rpc.DiscoverResponse, error) {
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	queue, err := s.svc.Match.Discover(ctx, sess)
	if err != nil {
		return nil, s.toStatus(ctx, "Discover", err)
	}
	top, _ := discovery.Top(queue)
	return &rpc.DiscoverResponse{Users: queue, Top: top}, nil
}

func (s *GRPCServer) Swipe(ctx context.Context, req *rpc.SwipeRequest) (*rpc.SwipeResponse, error) {
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.svc.Match.Swipe(ctx, sess, req.UserID, services.Direction(req.Direction))
	if err != nil {
		return nil, s.toStatus(ctx, "Swipe", err)
	}

	out := &rpc.SwipeResponse{Applied: res.Applied, Notification: res.Notification}
	if res.Conversation != nil {
		out.ConversationID = res.Conversation.ID
	}
	return out, nil
}

func toSummary(row services.ConversationSummary) rpc.ConversationSummary {
	return rpc.ConversationSummary{
		Conversation: row.Conversation,
		Other:        row.Other,
		Preview:      row.Preview,
		Unread:       row.Unread,
	}
}

func (s *GRPCServer) ListConversations(ctx context.Context, req *rpc.Empty) (*rpc.ListConversationsResponse, error) {
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.svc.Chat.List(ctx, sess)
	if err != nil {
		return nil, s.toStatus(ctx, "ListConversations", err)
	}

	out := make([]rpc.ConversationSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, toSummary(r))
	}
	return &rpc.ListConversationsResponse{Conversations: out}, nil
}

func (s *GRPCServer) GetConversation(ctx context.Context, req *rpc.ConversationRequest) (*rpc.ConversationSummary, error) {
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	row, err := s.svc.Chat.Detail(ctx, sess, req.ConversationID)
	if err != nil {
		return nil, s.toStatus(ctx, "GetConversation", err)
	}
	out := toSummary(*row)
	return &out, nil
}

func (s *GRPCServer) SendMessage(ctx context.Context, req *rpc.SendMessageRequest) (*rpc.SendMessageResponse, error) {
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.svc.Chat.Send(ctx, sess, req.ConversationID, req.Payload)
	if err != nil {
		return nil, s.toStatus(ctx, "SendMessage", err)
	}
	return &rpc.SendMessageResponse{Applied: res.Applied, Message: res.Message, AwaitingReply: res.AwaitingReply}, nil
}

func (s *GRPCServer) RemoveConnection(ctx context.Context, req *rpc.ConversationRequest) (*rpc.AppliedResponse, error) {
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	ok, err := s.svc.Chat.Remove(ctx, sess, req.ConversationID)
	if err != nil {
		return nil, s.toStatus(ctx, "RemoveConnection", err)
	}
	return &rpc.AppliedResponse{Applied: ok}, nil
}

func (s *GRPCServer) DismissNotification(ctx context.Context, req *rpc.DismissNotificationRequest) (*rpc.AppliedResponse, error) {
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return &rpc.AppliedResponse{Applied: s.svc.View.DismissNotification(ctx, sess, req.ID)}, nil
}

func (s *GRPCServer) ClearNotifications(ctx context.Context, req *rpc.Empty) (*rpc.CountResponse, error) {
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return &rpc.CountResponse{Count: s.svc.View.ClearNotifications(ctx, sess)}, nil
}

func (s *GRPCServer) LessonPlan(ctx context.Context, req *rpc.LessonPlanRequest) (*rpc.LessonPlanResponse, error) {
	if _, err := sessionFromContext(ctx); err != nil {
		return nil, err
	}

	plan, err := s.svc.Coach.LessonPlan(ctx, req.Skill)
	if err != nil {
		return nil, s.toStatus(ctx, "LessonPlan", err)
	}
	return &rpc.LessonPlanResponse{Plan: plan}, nil
}

func (s *GRPCServer) UploadURL(ctx context.Context, req *rpc.UploadURLRequest) (*rpc.UploadURLResponse, error) {
	if _, err := sessionFromContext(ctx); err != nil {
		return nil, err
	}

	key, url, err := s.svc.Media.UploadURL(ctx, services.AttachmentKind(req.Kind))
	if err != nil {
		return nil, s.toStatus(ctx, "UploadURL", err)
	}
	return &rpc.UploadURLResponse{Key: key, URL: url}, nil
}

func (s *GRPCServer) DownloadURL(ctx context.Context, req *rpc.DownloadURLRequest) (*rpc.DownloadURLResponse, error) {
	if _, err := sessionFromContext(ctx); err != nil {
		return nil, err
	}

	url, err := s.svc.Media.DownloadURL(ctx, req.Key)
	if err != nil {
		return nil, s.toStatus(ctx, "DownloadURL", err)
	}
	return &rpc.DownloadURLResponse{URL: url}, nil
}

func toEvent(ev events.Event) *rpc.Event {
	return &rpc.Event{
		Type:           string(ev.Type),
		ConversationID: ev.ConversationID,
		Message:        ev.Message,
		Typing:         ev.Typing,
		Notification:   ev.Notification,
	}
}

// Events streams the session's events until the client goes away or the
// server stops.
func (s *GRPCServer) Events(req *rpc.Empty, stream rpc.SkillSwap_EventsServer) error {
	ctx := stream.Context()
	sess, err := sessionFromContext(ctx)
	if err != nil {
		return err
	}

	ch, cancel := s.hub.Subscribe(sess.ID)
	defer cancel()

	s.logger.Debug(ctx, "event stream opened", "session_id", sess.ID)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopping:
			return nil
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			if err := stream.Send(toEvent(ev)); err != nil {
				return err
			}
		}
	}
}
