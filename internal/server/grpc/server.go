package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/skillswap/internal/logging"
	"github.com/dmitrijs2005/skillswap/internal/rpc"
	"github.com/dmitrijs2005/skillswap/internal/server/events"
	"github.com/dmitrijs2005/skillswap/internal/server/services"
	"github.com/dmitrijs2005/skillswap/internal/server/session"
	"google.golang.org/grpc"
)

// Services bundles the reducers the handlers call into.
type Services struct {
	Identity *services.IdentityService
	Match    *services.MatchService
	Chat     *services.ChatService
	View     *services.ViewService
	Coach    *services.CoachService
	Media    *services.MediaService
}

type GRPCServer struct {
	address         string
	logger          logging.Logger
	sessions        *session.Manager
	hub             *events.Hub
	svc             Services
	jwtSecret       []byte
	sessionValidity time.Duration

	// closed when Run's context is done so that event streams end before
	// GracefulStop waits on them
	stopping chan struct{}
}

func NewGRPCServer(a string, l logging.Logger, sessions *session.Manager, hub *events.Hub, svc Services,
	secretKey string, sessionValidity time.Duration) (*GRPCServer, error) {
	return &GRPCServer{
		address:         a,
		logger:          l.With("module", "grpc_server"),
		sessions:        sessions,
		hub:             hub,
		svc:             svc,
		jwtSecret:       []byte(secretKey),
		sessionValidity: sessionValidity,
		stopping:        make(chan struct{}),
	}, nil
}

// newServer creates the gRPC server with the session interceptors and
// registers the service on it.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.sessionInterceptor),
		grpc.ChainStreamInterceptor(s.sessionStreamInterceptor),
	)
	rpc.RegisterSkillSwapServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gPRC server...")
		close(s.stopping)
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
