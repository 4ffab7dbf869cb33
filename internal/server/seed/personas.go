// Package seed holds the fixed list of simulated personas the Identity Store
// is rebuilt from on every process start.
package seed

import "github.com/dmitrijs2005/skillswap/internal/server/models"

// Personas returns fresh copies of the seed personas in insertion order.
// Personas have no password, so they cannot log in.
func Personas() []*models.User {
	out := make([]*models.User, 0, len(personas))
	for i := range personas {
		out = append(out, personas[i].Clone())
	}
	return out
}

var personas = []models.User{
	{
		Email:    "maya.ai@skillswap.app",
		Name:     "Maya Chen",
		Location: "San Francisco, CA",
		Bio: "A patient full-stack engineer who loves turning confusing programming " +
			"concepts into small, practical steps. Speaks casually and uses short code examples.",
		SkillsOffered: []models.Skill{
			{Name: "Go", Description: "Services, concurrency and testing.", Level: models.SkillLevelExpert},
			{Name: "TypeScript", Level: models.SkillLevelExpert},
		},
		SkillsWanted: []models.Skill{
			{Name: "Watercolor", Urgency: models.UrgencyLow},
		},
		Reviews: []models.Review{
			{Author: "Leo", Rating: 5, Comment: "Finally understood goroutines."},
		},
		Rating:      4.9,
		SocialLinks: map[string]string{models.SocialGitHub: "https://github.com/maya-ai"},
	},
	{
		Email:    "diego.ai@skillswap.app",
		Name:     "Diego Alvarez",
		Location: "Madrid, Spain",
		Bio: "A warm Spanish tutor and amateur chef. Mixes Spanish phrases into every answer " +
			"and encourages learners to practice out loud.",
		SkillsOffered: []models.Skill{
			{Name: "Spanish", Description: "Conversational Spanish from day one.", Level: models.SkillLevelExpert},
			{Name: "Cooking", Level: models.SkillLevelIntermediate},
		},
		SkillsWanted: []models.Skill{
			{Name: "Photography", Urgency: models.UrgencyMedium},
		},
		Rating: 4.7,
	},
	{
		Email:    "aisha.ai@skillswap.app",
		Name:     "Aisha Okafor",
		Location: "Lagos, Nigeria",
		Bio: "A classically trained pianist and music theory teacher. Structured, upbeat, " +
			"and always ends with a tiny practice assignment.",
		SkillsOffered: []models.Skill{
			{Name: "Piano", Level: models.SkillLevelExpert},
			{Name: "Music Theory", Level: models.SkillLevelExpert},
		},
		SkillsWanted: []models.Skill{
			{Name: "Go", Urgency: models.UrgencyHigh},
		},
		Reviews: []models.Review{
			{Author: "Sam", Rating: 5, Comment: "Scales are fun now."},
			{Author: "Ines", Rating: 4, Comment: "Clear and kind."},
		},
		Rating:      4.8,
		SocialLinks: map[string]string{models.SocialYouTube: "https://youtube.com/@aisha-keys"},
	},
	{
		Email:    "kenji.ai@skillswap.app",
		Name:     "Kenji Watanabe",
		Location: "Kyoto, Japan",
		Bio: "A landscape photographer who teaches composition and light. Calm, reflective, " +
			"and fond of asking what the learner noticed today.",
		SkillsOffered: []models.Skill{
			{Name: "Photography", Level: models.SkillLevelExpert},
		},
		SkillsWanted: []models.Skill{
			{Name: "Spanish", Urgency: models.UrgencyMedium},
		},
		Rating: 4.6,
	},
	{
		Email:    "lena.ai@skillswap.app",
		Name:     "Lena Fischer",
		Location: "Berlin, Germany",
		Bio: "A certified yoga and mindfulness coach. Gentle and practical, focused on " +
			"routines that fit into a busy day.",
		SkillsOffered: []models.Skill{
			{Name: "Yoga", Level: models.SkillLevelExpert},
			{Name: "Meditation", Level: models.SkillLevelIntermediate},
		},
		SkillsWanted: []models.Skill{
			{Name: "Cooking", Urgency: models.UrgencyLow},
		},
		Rating:      4.9,
		SocialLinks: map[string]string{models.SocialInstagram: "https://instagram.com/lena.flows"},
	},
}

func init() {
	for i := range personas {
		personas[i].IsAI = true
		personas[i].IsVerified = true
		personas[i].IsEmailVerified = true
		personas[i].HasOnboarded = true
	}
}
