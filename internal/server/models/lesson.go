package models

type DayPlan struct {
	Day       int      `json:"day"`
	Topic     string   `json:"topic"`
	Goals     []string `json:"goals"`
	Exercises []string `json:"exercises"`
}

// LessonPlan is a seven-day coaching plan for one skill.
type LessonPlan struct {
	Skill string    `json:"skill"`
	Plan  []DayPlan `json:"plan"`
}

// ChatTurn is the slice of a message the text collaborator needs.
type ChatTurn struct {
	SenderID int64  `json:"senderId"`
	Text     string `json:"text"`
}
