// Package common contains shared constants and sentinel errors used across
// SkillSwap components.
package common

// SessionTokenHeaderName is the gRPC metadata key used to carry the
// session token on outbound requests.
const SessionTokenHeaderName = "session_token"

// AIErrorReplyText is appended on behalf of a persona when its reply could
// not be generated.
const AIErrorReplyText = "I'm sorry, I encountered an error. Please try again."

// VerificationTokenLength is the length of an email verification code.
const VerificationTokenLength = 6

// LessonPlanErrorText is reported instead of a lesson plan when generation
// fails.
const LessonPlanErrorText = "Could not generate a lesson plan. The AI might be busy. Please try again later."
