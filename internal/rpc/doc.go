// Package rpc describes the SkillSwap gRPC service without generated
// protobuf code: the service descriptor and client are written by hand and
// messages are plain Go structs carried by a JSON codec.
//
// Every method except Ping and OpenSession expects the session token in the
// "session_token" metadata key.
package rpc
