// Package common defines shared constants and sentinel errors used across
// client and server layers of SkillSwap. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors surfaced to the originating form.
	ErrorInvalidCredentials       = errors.New("invalid email or password")
	ErrorInvalidVerificationToken = errors.New("invalid verification code")
	ErrorNoCurrentUser            = errors.New("no user is logged in")
	ErrorInvalidTransition        = errors.New("invalid view transition")
	ErrorInvalidArgument          = errors.New("invalid argument")

	// Collaborator errors.
	ErrorCollaborator        = errors.New("collaborator failure")
	ErrorMalformedLessonPlan = errors.New("malformed lesson plan")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
