package ai

import (
	"fmt"

	"github.com/dmitrijs2005/skillswap/internal/server/models"
)

const chatPreamble = `You are a helpful and friendly AI assistant on SkillSwap, a skill-trading platform.
Your persona is defined by the following bio. Converse naturally, be encouraging, and stay on topic with the user's learning goals.
Avoid being overly repetitive, robotic, or breaking character.
Your persona bio: "%s"`

const firstMessageFollowUp = "\nThis is the user's first message to you. After responding to their initial message, " +
	"warmly ask them what skill they are interested in learning about today."

// SystemInstruction wraps the persona bio in the platform preamble. When the
// human has sent exactly one message so far the persona is asked to follow
// up with a question about what they want to learn.
func SystemInstruction(personaBio string, history []models.ChatTurn, currentUserID int64) string {
	s := fmt.Sprintf(chatPreamble, personaBio)

	human := 0
	for _, t := range history {
		if t.SenderID == currentUserID {
			human++
		}
	}
	if human == 1 {
		s += firstMessageFollowUp
	}
	return s
}

func lessonPrompt(skill string) string {
	return fmt.Sprintf("Create a personalized, beginner-friendly 7-day lesson plan for learning \"%s\". "+
		"The user is a complete beginner. Break it down day-by-day with a main topic, specific learning goals, "+
		"and practical exercises for each day. The plan should be encouraging and build confidence gradually.", skill)
}

// lessonSchema is the Gemini response schema for a lesson plan.
var lessonSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"skill": map[string]any{
			"type":        "STRING",
			"description": "The skill the lesson plan is for.",
		},
		"plan": map[string]any{
			"type":        "ARRAY",
			"description": "A 7-day lesson plan.",
			"items": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"day":       map[string]any{"type": "INTEGER", "description": "The day number (1-7)."},
					"topic":     map[string]any{"type": "STRING", "description": "The main topic for the day."},
					"goals":     map[string]any{"type": "ARRAY", "description": "A list of goals for the day.", "items": map[string]any{"type": "STRING"}},
					"exercises": map[string]any{"type": "ARRAY", "description": "A list of practice exercises for the day.", "items": map[string]any{"type": "STRING"}},
				},
				"required": []string{"day", "topic", "goals", "exercises"},
			},
		},
	},
	"required": []string{"skill", "plan"},
}
