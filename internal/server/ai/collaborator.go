// Package ai holds the contract of the external text-generation
// collaborator and its Gemini implementation.
package ai

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/server/models"
)

// Collaborator produces persona chat replies and lesson plans. Exactly one
// request is made per call; there are no retries.
type Collaborator interface {
	// GenerateChatResponse returns the persona's next reply. history is the
	// whole conversation in chronological order; turns sent by currentUserID
	// are the human's.
	GenerateChatResponse(ctx context.Context, history []models.ChatTurn, personaBio string, currentUserID int64) (string, error)
	// GenerateLessonPlan returns a seven-day plan. Days may come back in any
	// order. A reply without a plan array fails with ErrorMalformedLessonPlan.
	GenerateLessonPlan(ctx context.Context, skill string) (*models.LessonPlan, error)
}

// Unavailable is used when no API key is configured; every call fails.
type Unavailable struct{}

func (Unavailable) GenerateChatResponse(context.Context, []models.ChatTurn, string, int64) (string, error) {
	return "", fmt.Errorf("%w: no api key configured", common.ErrorCollaborator)
}

func (Unavailable) GenerateLessonPlan(context.Context, string) (*models.LessonPlan, error) {
	return nil, fmt.Errorf("%w: no api key configured", common.ErrorCollaborator)
}
