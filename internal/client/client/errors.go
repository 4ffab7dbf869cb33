package client

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
)

var (
	ErrUnavailable           = errors.New("server unavailable")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrLessonPlanUnavailable = errors.New("lesson plan unavailable")
)

// RejectedError is returned when the server refused a request for a reason
// the user can act on. Message is meant to be shown as is.
type RejectedError struct {
	Code    codes.Code
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
