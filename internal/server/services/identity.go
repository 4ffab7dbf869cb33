package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/logging"
	"github.com/dmitrijs2005/skillswap/internal/server/models"
	"github.com/dmitrijs2005/skillswap/internal/server/navigation"
	"github.com/dmitrijs2005/skillswap/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/skillswap/internal/server/repositories/users"
	"github.com/dmitrijs2005/skillswap/internal/server/session"
)

// makeVerificationToken is a seam for tests.
var makeVerificationToken = common.MakeVerificationToken

// LoginResult tells the client where login landed. PendingToken is only set
// when the email still needs verification; it is shown on the verify screen
// in place of a real email delivery.
type LoginResult struct {
	View         navigation.State
	User         *models.User
	PendingToken string
}

// IdentityService handles signup, login, verification and profile updates.
type IdentityService struct {
	users  users.Repository
	logger logging.Logger
}

func NewIdentityService(m repomanager.RepositoryManager, logger logging.Logger) *IdentityService {
	return &IdentityService{users: m.Users(), logger: logger.With("module", "identity")}
}

// SignUp creates an unverified user and moves the session to verify-email.
// It returns the generated verification token.
func (s *IdentityService) SignUp(ctx context.Context, sess *session.Session, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", common.ErrorInvalidArgument)
	}
	if err := requireView(sess, navigation.ViewAuth); err != nil {
		return "", err
	}

	token := makeVerificationToken(common.VerificationTokenLength)

	u := &models.User{
		Email:                  email,
		Password:               password,
		SkillsOffered:          []models.Skill{},
		SkillsWanted:           []models.Skill{},
		Reviews:                []models.Review{},
		EmailVerificationToken: token,
	}
	created, err := s.users.Add(ctx, u)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			s.logger.Info(ctx, "signup with taken email", "email", email)
			return "", err
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	if _, err := sess.Transition(navigation.State.SignedUp); err != nil {
		return "", err
	}
	sess.SetPendingEmail(created.Email)

	s.logger.Info(ctx, "user signed up", "user_id", created.ID)
	return token, nil
}

// Login checks credentials in plaintext and routes the session according to
// the user's verification and onboarding flags. An unverified user is not
// logged in; the session waits on the verify screen instead.
func (s *IdentityService) Login(ctx context.Context, sess *session.Session, email, password string) (*LoginResult, error) {
	if err := requireView(sess, navigation.ViewAuth); err != nil {
		return nil, err
	}

	u, err := s.users.FindByCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Info(ctx, "invalid credentials", "email", email)
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	st, err := sess.Transition(func(st navigation.State) (navigation.State, error) { return st.LoggedIn(u) })
	if err != nil {
		return nil, err
	}

	res := &LoginResult{View: st}
	if !u.IsEmailVerified {
		sess.SetPendingEmail(u.Email)
		res.PendingToken = u.EmailVerificationToken
		return res, nil
	}

	sess.SetCurrentUser(u.ID)
	res.User = u
	s.logger.Info(ctx, "user logged in", "user_id", u.ID, "view", st.String())
	return res, nil
}

// VerifyEmail checks token against the pending email's token. On success the
// user becomes verified and current, and the session moves to onboarding.
func (s *IdentityService) VerifyEmail(ctx context.Context, sess *session.Session, token string) (*models.User, error) {
	if err := requireView(sess, navigation.ViewVerifyEmail); err != nil {
		return nil, err
	}

	email := sess.PendingEmail()
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidVerificationToken
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	if u.EmailVerificationToken == "" || u.EmailVerificationToken != token {
		s.logger.Info(ctx, "wrong verification token", "user_id", u.ID)
		return nil, common.ErrorInvalidVerificationToken
	}

	u.IsEmailVerified = true
	u.EmailVerificationToken = ""
	if err := s.users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	if _, err := sess.Transition(navigation.State.EmailVerified); err != nil {
		return nil, err
	}
	sess.SetCurrentUser(u.ID)
	sess.SetPendingEmail("")

	s.logger.Info(ctx, "email verified", "user_id", u.ID)
	return u, nil
}

// PendingVerification returns the email waiting on the verify screen and
// its token.
func (s *IdentityService) PendingVerification(ctx context.Context, sess *session.Session) (email, token string) {
	email = sess.PendingEmail()
	if email == "" {
		return "", ""
	}
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return email, ""
	}
	return email, u.EmailVerificationToken
}

// CompleteOnboarding stores the profile, forces the onboarded flag and moves
// the session to main.
func (s *IdentityService) CompleteOnboarding(ctx context.Context, sess *session.Session, p models.Profile) (*models.User, error) {
	return s.saveProfile(ctx, sess, p, navigation.ViewOnboarding, true, navigation.State.Onboarded)
}

// SaveSettings stores the profile without touching the onboarded flag and
// returns to main.
func (s *IdentityService) SaveSettings(ctx context.Context, sess *session.Session, p models.Profile) (*models.User, error) {
	return s.saveProfile(ctx, sess, p, navigation.ViewSettings, false, navigation.State.SettingsSaved)
}

func (s *IdentityService) saveProfile(ctx context.Context, sess *session.Session, p models.Profile,
	from navigation.View, onboard bool, next func(navigation.State) (navigation.State, error)) (*models.User, error) {

	u, err := currentUser(ctx, s.users, sess)
	if err != nil {
		return nil, err
	}
	if err := requireView(sess, from); err != nil {
		return nil, err
	}

	u.ApplyProfile(p)
	if onboard {
		u.HasOnboarded = true
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	if _, err := sess.Transition(next); err != nil {
		return nil, err
	}
	return u, nil
}

// CurrentUser returns the logged in user.
func (s *IdentityService) CurrentUser(ctx context.Context, sess *session.Session) (*models.User, error) {
	return currentUser(ctx, s.users, sess)
}

// Logout resets the session to auth:welcome.
func (s *IdentityService) Logout(ctx context.Context, sess *session.Session) {
	id, _ := sess.CurrentUserID()
	sess.Logout()
	s.logger.Info(ctx, "user logged out", "user_id", id, "session_id", sess.ID)
}
