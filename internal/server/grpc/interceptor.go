package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/rpc"
	"github.com/dmitrijs2005/skillswap/internal/server/auth"
	"github.com/dmitrijs2005/skillswap/internal/server/session"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const sessionKey ctxKey = "session"

// methods reachable without a session token
var publicMethods = map[string]bool{
	rpc.SkillSwap_Ping_FullMethodName:        true,
	rpc.SkillSwap_OpenSession_FullMethodName: true,
}

func (s *GRPCServer) resolveSession(ctx context.Context) (*session.Session, error) {
	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.SessionTokenHeaderName)
		if len(values) > 0 {
			token = values[0]
		}
	}
	if len(token) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	sessionID, err := auth.GetSessionIDFromToken(token, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "unknown session")
	}
	return sess, nil
}

func (s *GRPCServer) sessionInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	sess, err := s.resolveSession(ctx)
	if err != nil {
		return nil, err
	}

	return handler(context.WithValue(ctx, sessionKey, sess), req)
}

type sessionStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *sessionStream) Context() context.Context {
	return w.ctx
}

func (s *GRPCServer) sessionStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {

	sess, err := s.resolveSession(ss.Context())
	if err != nil {
		return err
	}

	return handler(srv, &sessionStream{ServerStream: ss, ctx: context.WithValue(ss.Context(), sessionKey, sess)})
}

func sessionFromContext(ctx context.Context) (*session.Session, error) {
	sess, ok := ctx.Value(sessionKey).(*session.Session)
	if !ok || sess == nil {
		return nil, status.Error(codes.Unauthenticated, "no session")
	}
	return sess, nil
}
