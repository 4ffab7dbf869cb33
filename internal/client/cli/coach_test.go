package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/skillswap/internal/rpc"
	"github.com/dmitrijs2005/skillswap/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoach_RendersPlan(t *testing.T) {
	f := &fakeAPI{plan: &rpc.LessonPlan{Skill: "Guitar", Plan: []rpc.DayPlan{
		{Day: 1, Topic: "Holding the guitar", Goals: []string{"Posture"}, Exercises: []string{"Strum open strings"}},
		{Day: 2, Topic: "First chords"},
	}}}
	a, out := newTestApp(f)

	require.NoError(t, a.Coach(context.Background(), []string{"Guitar"}))

	assert.Contains(t, out.String(), "7-day plan: Guitar")
	assert.Contains(t, out.String(), "Day 1")
	assert.Contains(t, out.String(), "Holding the guitar")
	assert.Contains(t, out.String(), "Strum open strings")
	assert.Contains(t, out.String(), "First chords")
}

func TestCoach_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"busy", client.ErrLessonPlanUnavailable, "Could not generate a lesson plan. The AI might be busy. Please try again later."},
		{"transport", errors.New("boom"), "An unexpected error occurred. Please check your connection and try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out := newTestApp(&fakeAPI{planErr: tt.err})
			require.Error(t, a.Coach(context.Background(), []string{"Guitar"}))
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestCoach_UsageListsWantedSkills(t *testing.T) {
	a, out := newTestApp(&fakeAPI{})
	a.user = &rpc.User{ID: 1, SkillsWanted: []rpc.Skill{{Name: "Poetry", Urgency: rpc.UrgencyHigh}}}

	require.NoError(t, a.Coach(context.Background(), nil))
	assert.Contains(t, out.String(), "Usage: coach <skill>")
	assert.Contains(t, out.String(), "Poetry (High)")
}
