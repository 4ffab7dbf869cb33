package rpc

import (
	"github.com/dmitrijs2005/skillswap/internal/server/models"
	"github.com/dmitrijs2005/skillswap/internal/server/navigation"
)

// Records and view states travel on the wire as-is. Clients use these
// names and never import the server packages directly.
type (
	User           = models.User
	Skill          = models.Skill
	SkillLevel     = models.SkillLevel
	Urgency        = models.Urgency
	Review         = models.Review
	Profile        = models.Profile
	Notification   = models.Notification
	Conversation   = models.Conversation
	Message        = models.Message
	MessagePayload = models.MessagePayload
	LessonPlan     = models.LessonPlan
	DayPlan        = models.DayPlan

	State      = navigation.State
	View       = navigation.View
	AuthScreen = navigation.AuthScreen
	MainTab    = navigation.MainTab
	ChatPane   = navigation.ChatPane
)

const (
	SkillLevelBeginner     = models.SkillLevelBeginner
	SkillLevelIntermediate = models.SkillLevelIntermediate
	SkillLevelExpert       = models.SkillLevelExpert

	UrgencyLow    = models.UrgencyLow
	UrgencyMedium = models.UrgencyMedium
	UrgencyHigh   = models.UrgencyHigh

	SocialX         = models.SocialX
	SocialLinkedIn  = models.SocialLinkedIn
	SocialGitHub    = models.SocialGitHub
	SocialTikTok    = models.SocialTikTok
	SocialInstagram = models.SocialInstagram
	SocialYouTube   = models.SocialYouTube
	SocialGmail     = models.SocialGmail
)

const (
	ViewSplash      = navigation.ViewSplash
	ViewAuth        = navigation.ViewAuth
	ViewVerifyEmail = navigation.ViewVerifyEmail
	ViewOnboarding  = navigation.ViewOnboarding
	ViewMain        = navigation.ViewMain
	ViewSettings    = navigation.ViewSettings
	ViewChat        = navigation.ViewChat

	AuthWelcome = navigation.AuthWelcome
	AuthLogin   = navigation.AuthLogin
	AuthSignUp  = navigation.AuthSignUp

	TabDiscover = navigation.TabDiscover
	TabProfile  = navigation.TabProfile

	PaneList         = navigation.PaneList
	PaneConversation = navigation.PaneConversation
)

// InitialState is the view of a freshly opened session.
func InitialState() State {
	return navigation.Initial()
}
