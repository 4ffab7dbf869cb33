package models

type NotificationType string

const (
	NotificationConnection NotificationType = "connection"
	NotificationReview     NotificationType = "review"
)

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Text      string           `json:"text"`
	Timestamp string           `json:"timestamp"`
	IsRead    bool             `json:"isRead"`
	UserImage string           `json:"userImage,omitempty"`
}
