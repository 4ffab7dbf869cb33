// Package cli provides the interactive SkillSwap command-line client.
//
// It wires configuration, the gRPC API client and an interactive REPL.
// Typical flow: open a session, show the splash screen, then sign up or log
// in, verify the email, complete onboarding and start swiping.
//
// Key features:
//   - Welcome / Login / Sign up / Verify / Onboard / Logout
//   - Discover cards, like / pass
//   - Conversations: list, open, send text, attach image or audio, fetch
//     attachments, remove a connection
//   - AI skill coach lesson plans
//   - Notifications, profile and settings
//
// Replies, typing indicators and notifications arrive on a background event
// stream and are printed as they come.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
