package models

import (
	"slices"
	"time"
)

// Message is one entry of a conversation log. At least one of Text,
// ImageURL or AudioURL is set. Image and audio references are opaque
// (usually attachment storage keys).
type Message struct {
	ID        string    `json:"id"`
	SenderID  int64     `json:"senderId"`
	Text      string    `json:"text,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	AudioURL  string    `json:"audioUrl,omitempty"`
	Timestamp string    `json:"timestamp"`
	CreatedAt time.Time `json:"createdAt"`
	IsRead    bool      `json:"isRead"`
}

// MessagePayload is what a user submits when sending.
type MessagePayload struct {
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	AudioURL string `json:"audioUrl,omitempty"`
}

// Empty reports whether the payload carries no text, image or audio.
func (p MessagePayload) Empty() bool {
	return p.Text == "" && p.ImageURL == "" && p.AudioURL == ""
}

// Conversation is an append-only message log between exactly two users.
type Conversation struct {
	ID             string    `json:"id"`
	ParticipantIDs []int64   `json:"participantIds"`
	Messages       []Message `json:"messages"`
}

// Includes reports whether userID participates in the conversation.
func (c *Conversation) Includes(userID int64) bool {
	return slices.Contains(c.ParticipantIDs, userID)
}

// IsPair reports whether the conversation is between a and b, in any order.
func (c *Conversation) IsPair(a, b int64) bool {
	return c.Includes(a) && c.Includes(b)
}

// OtherParticipant returns the participant that is not userID.
func (c *Conversation) OtherParticipant(userID int64) (int64, bool) {
	for _, id := range c.ParticipantIDs {
		if id != userID {
			return id, true
		}
	}
	return 0, false
}

// LastMessage returns the newest message, if any.
func (c *Conversation) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// UnreadFor counts messages not yet read that were sent by someone other
// than userID.
func (c *Conversation) UnreadFor(userID int64) int {
	n := 0
	for _, m := range c.Messages {
		if !m.IsRead && m.SenderID != userID {
			n++
		}
	}
	return n
}

func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return nil
	}
	return &Conversation{
		ID:             c.ID,
		ParticipantIDs: slices.Clone(c.ParticipantIDs),
		Messages:       slices.Clone(c.Messages),
	}
}
