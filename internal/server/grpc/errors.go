package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Messages shown to the user by the originating form.
const (
	msgInvalidCredentials = "Invalid email or password. Please try again."
	msgEmailTaken         = "An account with this email already exists."
	msgInvalidCode        = "Invalid verification code. Please check and try again."
)

// toStatus maps a service error to a gRPC status. Unknown errors are
// logged and reported as Internal without detail.
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, common.ErrorInvalidCredentials):
		return status.Error(codes.InvalidArgument, msgInvalidCredentials)
	case errors.Is(err, common.ErrorInvalidVerificationToken):
		return status.Error(codes.InvalidArgument, msgInvalidCode)
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, msgEmailTaken)
	case errors.Is(err, common.ErrorInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorInvalidTransition), errors.Is(err, common.ErrorNoCurrentUser):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorCollaborator), errors.Is(err, common.ErrorMalformedLessonPlan):
		return status.Error(codes.Unavailable, services.LessonPlanErrorText)
	}

	s.logger.Error(ctx, "request failed", "method", method, "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
