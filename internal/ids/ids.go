// Package ids issues identifiers for conversations, messages and
// notifications. Ids are UUIDv7 strings: unique across the process and
// ordered lexically by creation time, including within one millisecond.
package ids

import "github.com/google/uuid"

// Generator issues ids whose string order follows creation order.
type Generator interface {
	Next() string
}

// UUIDv7 is the default Generator.
type UUIDv7 struct{}

func (UUIDv7) Next() string {
	return uuid.Must(uuid.NewV7()).String()
}
