package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/logging"
	"github.com/dmitrijs2005/skillswap/internal/server/ai"
	"github.com/dmitrijs2005/skillswap/internal/server/models"
)

// LessonPlanErrorText is shown instead of a plan when generation fails.
const LessonPlanErrorText = common.LessonPlanErrorText

// CoachService produces seven-day lesson plans for wanted skills.
type CoachService struct {
	collaborator ai.Collaborator
	logger       logging.Logger
}

func NewCoachService(collab ai.Collaborator, logger logging.Logger) *CoachService {
	return &CoachService{collaborator: collab, logger: logger.With("module", "coach")}
}

// LessonPlan requests a plan for skill and returns it sorted by day.
// Collaborator failures are returned wrapped in ErrorCollaborator or
// ErrorMalformedLessonPlan.
func (s *CoachService) LessonPlan(ctx context.Context, skill string) (*models.LessonPlan, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, fmt.Errorf("%w: skill is required", common.ErrorInvalidArgument)
	}

	plan, err := s.collaborator.GenerateLessonPlan(ctx, skill)
	if err != nil {
		s.logger.Warn(ctx, "lesson plan unavailable", "skill", skill, "error", err)
		return nil, err
	}
	if plan == nil || plan.Plan == nil {
		return nil, common.ErrorMalformedLessonPlan
	}

	sort.SliceStable(plan.Plan, func(i, j int) bool { return plan.Plan[i].Day < plan.Plan[j].Day })
	return plan, nil
}
