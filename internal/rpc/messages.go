package rpc

import (
	"github.com/dmitrijs2005/skillswap/internal/server/models"
	"github.com/dmitrijs2005/skillswap/internal/server/navigation"
)

type Empty struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type OpenSessionResponse struct {
	Token string           `json:"token"`
	State navigation.State `json:"state"`
}

// StateResponse carries the view after a transition.
type StateResponse struct {
	State navigation.State `json:"state"`
}

type ShowAuthScreenRequest struct {
	Screen navigation.AuthScreen `json:"screen"`
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries PendingToken only when the user still has to
// verify their email.
type LoginResponse struct {
	State        navigation.State `json:"state"`
	User         *models.User     `json:"user,omitempty"`
	PendingToken string           `json:"pendingToken,omitempty"`
}

type SignUpResponse struct {
	State        navigation.State `json:"state"`
	PendingToken string           `json:"pendingToken"`
}

type VerifyEmailRequest struct {
	Token string `json:"token"`
}

type ProfileRequest struct {
	Profile models.Profile `json:"profile"`
}

type UserResponse struct {
	State navigation.State `json:"state"`
	User  *models.User     `json:"user"`
}

type NavigateRequest struct {
	View           navigation.View     `json:"view"`
	Tab            navigation.MainTab  `json:"tab,omitempty"`
	Pane           navigation.ChatPane `json:"pane,omitempty"`
	ConversationID string              `json:"conversationId,omitempty"`
}

type GetStateResponse struct {
	State          navigation.State      `json:"state"`
	User           *models.User          `json:"user,omitempty"`
	AITyping       bool                  `json:"aiTyping"`
	UnreadMessages int                   `json:"unreadMessages"`
	Notifications  []models.Notification `json:"notifications"`
	PendingEmail   string                `json:"pendingEmail,omitempty"`
	PendingToken   string                `json:"pendingToken,omitempty"`
}

// DiscoverResponse lists discoverable users. Top is the interactive card
// (the last of Users), nil when the queue is empty.
type DiscoverResponse struct {
	Users []*models.User `json:"users"`
	Top   *models.User   `json:"top,omitempty"`
}

type SwipeRequest struct {
	UserID    int64  `json:"userId"`
	Direction string `json:"direction"`
}

type SwipeResponse struct {
	Applied        bool                 `json:"applied"`
	Notification   *models.Notification `json:"notification,omitempty"`
	ConversationID string               `json:"conversationId,omitempty"`
}

type ConversationSummary struct {
	Conversation *models.Conversation `json:"conversation"`
	Other        *models.User         `json:"other,omitempty"`
	Preview      string               `json:"preview"`
	Unread       int                  `json:"unread"`
}

type ListConversationsResponse struct {
	Conversations []ConversationSummary `json:"conversations"`
}

type ConversationRequest struct {
	ConversationID string `json:"conversationId"`
}

type SendMessageRequest struct {
	ConversationID string                `json:"conversationId"`
	Payload        models.MessagePayload `json:"payload"`
}

type SendMessageResponse struct {
	Applied       bool            `json:"applied"`
	Message       *models.Message `json:"message,omitempty"`
	AwaitingReply bool            `json:"awaitingReply"`
}

type AppliedResponse struct {
	Applied bool `json:"applied"`
}

type DismissNotificationRequest struct {
	ID string `json:"id"`
}

type CountResponse struct {
	Count int `json:"count"`
}

type LessonPlanRequest struct {
	Skill string `json:"skill"`
}

type LessonPlanResponse struct {
	Plan *models.LessonPlan `json:"plan"`
}

type UploadURLRequest struct {
	Kind string `json:"kind"`
}

type UploadURLResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type DownloadURLRequest struct {
	Key string `json:"key"`
}

type DownloadURLResponse struct {
	URL string `json:"url"`
}

// Event is one push on the Events stream.
type Event struct {
	Type           string               `json:"type"`
	ConversationID string               `json:"conversationId,omitempty"`
	Message        *models.Message      `json:"message,omitempty"`
	Typing         bool                 `json:"typing,omitempty"`
	Notification   *models.Notification `json:"notification,omitempty"`
}
