// Package navigation is the view-state machine of a session. States are
// values; each transition returns the next state or ErrorInvalidTransition.
package navigation

import (
	"fmt"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/server/models"
)

type View string

const (
	ViewSplash      View = "splash"
	ViewAuth        View = "auth"
	ViewVerifyEmail View = "verify-email"
	ViewOnboarding  View = "onboarding"
	ViewMain        View = "main"
	ViewSettings    View = "settings"
	ViewChat        View = "chat"
)

type AuthScreen string

const (
	AuthWelcome AuthScreen = "welcome"
	AuthLogin   AuthScreen = "login"
	AuthSignUp  AuthScreen = "signup"
)

type MainTab string

const (
	TabDiscover MainTab = "discover"
	TabProfile  MainTab = "profile"
)

type ChatPane string

const (
	PaneList         ChatPane = "list"
	PaneConversation ChatPane = "conversation"
)

// State is the currently mounted view. Sub-fields are kept when their view
// is not active so that returning to it restores the last tab or pane.
type State struct {
	View           View       `json:"view"`
	Auth           AuthScreen `json:"auth"`
	Tab            MainTab    `json:"tab"`
	Pane           ChatPane   `json:"pane"`
	ConversationID string     `json:"conversationId,omitempty"`
}

// Initial is the state before the splash screen has elapsed.
func Initial() State {
	return State{View: ViewSplash, Auth: AuthWelcome, Tab: TabDiscover, Pane: PaneList}
}

func (s State) String() string {
	switch s.View {
	case ViewAuth:
		return fmt.Sprintf("%s:%s", s.View, s.Auth)
	case ViewMain:
		return fmt.Sprintf("%s:%s", s.View, s.Tab)
	case ViewChat:
		if s.Pane == PaneConversation {
			return fmt.Sprintf("%s:%s:%s", s.View, s.Pane, s.ConversationID)
		}
		return fmt.Sprintf("%s:%s", s.View, s.Pane)
	}
	return string(s.View)
}

// Authenticated reports whether the view requires a current user.
func (s State) Authenticated() bool {
	switch s.View {
	case ViewOnboarding, ViewMain, ViewSettings, ViewChat:
		return true
	}
	return false
}

func invalid(from State, event string) error {
	return fmt.Errorf("%w: %s from %s", common.ErrorInvalidTransition, event, from)
}

func (s State) FinishSplash() (State, error) {
	if s.View != ViewSplash {
		return s, invalid(s, "finish splash")
	}
	s.View = ViewAuth
	s.Auth = AuthWelcome
	return s, nil
}

func (s State) ShowAuthScreen(screen AuthScreen) (State, error) {
	switch screen {
	case AuthWelcome, AuthLogin, AuthSignUp:
	default:
		return s, fmt.Errorf("%w: unknown auth screen %q", common.ErrorInvalidTransition, screen)
	}
	if s.View != ViewAuth {
		return s, invalid(s, "show auth screen")
	}
	s.Auth = screen
	return s, nil
}

// LoggedIn routes a user who passed the credential check.
func (s State) LoggedIn(u *models.User) (State, error) {
	if s.View != ViewAuth {
		return s, invalid(s, "login")
	}
	switch {
	case !u.IsEmailVerified:
		s.View = ViewVerifyEmail
	case u.HasOnboarded:
		s.View = ViewMain
	default:
		s.View = ViewOnboarding
	}
	return s, nil
}

func (s State) SignedUp() (State, error) {
	if s.View != ViewAuth {
		return s, invalid(s, "signup")
	}
	s.View = ViewVerifyEmail
	return s, nil
}

func (s State) EmailVerified() (State, error) {
	if s.View != ViewVerifyEmail {
		return s, invalid(s, "verify email")
	}
	s.View = ViewOnboarding
	return s, nil
}

func (s State) Onboarded() (State, error) {
	if s.View != ViewOnboarding {
		return s, invalid(s, "complete onboarding")
	}
	s.View = ViewMain
	return s, nil
}

func (s State) SettingsSaved() (State, error) {
	if s.View != ViewSettings {
		return s, invalid(s, "save settings")
	}
	s.View = ViewMain
	return s, nil
}

// Target is an explicit navigation request between the authenticated views.
// Tab applies to main, Pane and ConversationID to chat; empty values keep
// the current sub-state.
type Target struct {
	View           View
	Tab            MainTab
	Pane           ChatPane
	ConversationID string
}

// Navigate moves freely between main, settings and chat.
func (s State) Navigate(t Target) (State, error) {
	switch s.View {
	case ViewMain, ViewSettings, ViewChat:
	default:
		return s, invalid(s, "navigate")
	}

	switch t.View {
	case ViewMain:
		switch t.Tab {
		case "":
		case TabDiscover, TabProfile:
			s.Tab = t.Tab
		default:
			return s, fmt.Errorf("%w: unknown tab %q", common.ErrorInvalidTransition, t.Tab)
		}
	case ViewSettings:
	case ViewChat:
		pane := t.Pane
		if pane == "" {
			pane = PaneList
			if t.ConversationID != "" {
				pane = PaneConversation
			}
		}
		switch pane {
		case PaneList:
			s.ConversationID = ""
		case PaneConversation:
			if t.ConversationID == "" {
				return s, fmt.Errorf("%w: conversation id required", common.ErrorInvalidTransition)
			}
			s.ConversationID = t.ConversationID
		default:
			return s, fmt.Errorf("%w: unknown pane %q", common.ErrorInvalidTransition, t.Pane)
		}
		s.Pane = pane
	default:
		return s, invalid(s, "navigate to "+string(t.View))
	}

	s.View = t.View
	return s, nil
}

// Logout is allowed from any state.
func (s State) Logout() State {
	return State{View: ViewAuth, Auth: AuthWelcome, Tab: TabDiscover, Pane: PaneList}
}
