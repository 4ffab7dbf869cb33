// Package client contains the client-side API of SkillSwap.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     session start, authentication, onboarding, discovery, swiping,
//     conversations, notifications, lesson plans and attachment URLs.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the session token through unary and stream
//     interceptors, and maps gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Transport conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrLessonPlanUnavailable.
// Requests refused for a user-facing reason come back as *RejectedError,
// whose Message is ready to display.
//
// # Push events
//
// Events opens the session's server stream and relays typing, message and
// notification events on a channel that closes with the stream.
package client
