package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/skillswap/internal/client/client"
	"github.com/dmitrijs2005/skillswap/internal/common"
)

// Coach asks for a seven-day lesson plan for one skill.
func (a *App) Coach(ctx context.Context, args []string) error {
	skill := strings.TrimSpace(strings.Join(args, " "))
	if skill == "" {
		a.println(renderError("Usage: coach <skill>"))
		if u := a.currentUser(); u != nil && len(u.SkillsWanted) > 0 {
			a.println(mutedStyle.Render("Skills you want: " + skillList(u.SkillsWanted, true)))
		}
		return nil
	}

	a.println(mutedStyle.Render("Generating your lesson plan..."))
	plan, err := a.api.LessonPlan(ctx, skill)
	if err != nil {
		var rej *client.RejectedError
		switch {
		case errors.Is(err, client.ErrLessonPlanUnavailable):
			a.println(renderError(common.LessonPlanErrorText))
		case errors.As(err, &rej):
			a.println(renderError(rej.Message))
		default:
			a.println(renderError("An unexpected error occurred. Please check your connection and try again."))
		}
		return err
	}

	a.println(renderPlan(plan))
	return nil
}
