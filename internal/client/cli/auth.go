package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/skillswap/internal/rpc"
	"github.com/dmitrijs2005/skillswap/internal/common"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText  = GetSimpleText
	getWithDefault = GetWithDefault
	getMultiline   = GetMultiline
	getPassword    = GetPassword
)

const minPasswordLength = 8

// showAuthScreen switches the auth sub-screen unless it is already shown.
func (a *App) showAuthScreen(ctx context.Context, screen rpc.AuthScreen) error {
	a.mu.Lock()
	same := a.state.View == rpc.ViewAuth && a.state.Auth == screen
	a.mu.Unlock()
	if same {
		return nil
	}

	st, err := a.api.ShowAuthScreen(ctx, screen)
	if err != nil {
		a.showError(err)
		return err
	}
	a.setState(st)
	return nil
}

// Welcome returns to the welcome screen.
func (a *App) Welcome(ctx context.Context) error {
	if err := a.showAuthScreen(ctx, rpc.AuthWelcome); err != nil {
		return err
	}
	a.println(renderBanner())
	return nil
}

func (a *App) credentials() (string, string, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", "", err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return "", "", err
	}
	defer common.WipeByteArray(password)

	return strings.TrimSpace(email), string(password), nil
}

// Login prompts for credentials and routes the user by account state:
// unverified accounts go to email verification, accounts without a profile
// to onboarding, everyone else to the main view.
func (a *App) Login(ctx context.Context) error {
	if err := a.showAuthScreen(ctx, rpc.AuthLogin); err != nil {
		return err
	}

	email, password, err := a.credentials()
	if err != nil {
		return err
	}

	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.showError(err)
		return err
	}

	a.setState(resp.State)
	a.setUser(resp.User)

	switch resp.State.View {
	case rpc.ViewVerifyEmail:
		a.showVerification(resp.PendingToken)
	case rpc.ViewOnboarding:
		a.println("Let's set up your profile. Type 'onboard' to start.")
	default:
		name := ""
		if resp.User != nil {
			name = resp.User.Name
		}
		a.println(renderSuccess("Welcome back, " + name + "!"))
		return a.Discover(ctx)
	}
	return nil
}

// SignUp prompts for an email and a password of at least 8 characters and
// creates an unverified account.
func (a *App) SignUp(ctx context.Context) error {
	if err := a.showAuthScreen(ctx, rpc.AuthSignUp); err != nil {
		return err
	}

	email, password, err := a.credentials()
	if err != nil {
		return err
	}

	if len(password) < minPasswordLength {
		a.println(renderError("Password must be at least 8 characters long."))
		return nil
	}

	resp, err := a.api.SignUp(ctx, email, password)
	if err != nil {
		a.showError(err)
		return err
	}

	a.setState(resp.State)
	a.showVerification(resp.PendingToken)
	return nil
}

func (a *App) showVerification(token string) {
	a.println(titleStyle.Render("Verify Your Email"))
	a.println("We sent a 6-character code to your inbox. Enter it with 'verify <code>'.")
	if token != "" {
		a.println(mutedStyle.Render("(For this demo, your code is: " + token + ")"))
	}
}

// Verify checks the email verification code, taken from args or prompted.
func (a *App) Verify(ctx context.Context, args []string) error {
	var token string
	if len(args) > 0 {
		token = args[0]
	} else {
		t, err := getSimpleText(a.reader, "Enter verification code", a.out)
		if err != nil {
			return err
		}
		token = t
	}

	resp, err := a.api.VerifyEmail(ctx, strings.ToUpper(strings.TrimSpace(token)))
	if err != nil {
		a.showError(err)
		return err
	}

	a.setState(resp.State)
	a.setUser(resp.User)
	a.println(renderSuccess("Email verified!") + " Type 'onboard' to set up your profile.")
	return nil
}

// Logout returns to the welcome screen and drops everything cached for the
// previous user.
func (a *App) Logout(ctx context.Context) error {
	st, err := a.api.Logout(ctx)
	if err != nil {
		a.showError(err)
		return err
	}

	a.mu.Lock()
	a.state = st
	a.user = nil
	a.top = nil
	a.chats = nil
	a.active = ""
	a.mu.Unlock()

	a.println("You have been logged out.")
	return nil
}

// profileForm collects profile fields, offering base values as defaults.
// Name and location are required.
func (a *App) profileForm(ctx context.Context, base *rpc.User) (rpc.Profile, bool, error) {
	var p rpc.Profile
	if base != nil {
		p = rpc.Profile{
			Name:           base.Name,
			ProfilePicture: base.ProfilePicture,
			Location:       base.Location,
			Bio:            base.Bio,
			SkillsOffered:  base.SkillsOffered,
			SkillsWanted:   base.SkillsWanted,
			SocialLinks:    base.SocialLinks,
		}
	}

	var err error
	if p.Name, err = getWithDefault(a.reader, "Display name", p.Name, a.out); err != nil {
		return p, false, err
	}
	if p.Location, err = getWithDefault(a.reader, "Location (country)", p.Location, a.out); err != nil {
		return p, false, err
	}

	var problems []string
	if strings.TrimSpace(p.Name) == "" {
		problems = append(problems, "Name is required.")
	}
	if strings.TrimSpace(p.Location) == "" {
		problems = append(problems, "Location is required.")
	}
	if len(problems) > 0 {
		for _, m := range problems {
			a.println(renderError(m))
		}
		return p, false, nil
	}

	bio, err := getMultiline(a.reader, "Short bio (leave empty to keep)", a.out)
	if err != nil {
		return p, false, err
	}
	if bio != "" {
		p.Bio = bio
	}

	offered, err := getWithDefault(a.reader, "Skills you offer, e.g. 'Go:Expert, Cooking:Beginner'", formatSkills(p.SkillsOffered, false), a.out)
	if err != nil {
		return p, false, err
	}
	if p.SkillsOffered, err = parseSkills(offered, false); err != nil {
		a.println(renderError(err.Error()))
		return p, false, nil
	}

	wanted, err := getWithDefault(a.reader, "Skills you want, e.g. 'Guitar:High, Spanish:Low'", formatSkills(p.SkillsWanted, true), a.out)
	if err != nil {
		return p, false, err
	}
	if p.SkillsWanted, err = parseSkills(wanted, true); err != nil {
		a.println(renderError(err.Error()))
		return p, false, nil
	}

	links, err := getWithDefault(a.reader, "Social links, e.g. 'github=octo, x=@me'", formatLinks(p.SocialLinks), a.out)
	if err != nil {
		return p, false, err
	}
	p.SocialLinks = parseLinks(links)

	picture, err := getSimpleText(a.reader, "Profile picture file (optional)", a.out)
	if err != nil {
		return p, false, err
	}
	if picture != "" {
		key, err := a.uploadFile(ctx, "avatar", picture)
		if err != nil {
			a.println(renderError("Could not upload the picture: " + err.Error()))
			return p, false, nil
		}
		p.ProfilePicture = key
	}

	return p, true, nil
}

// Onboard runs the profile wizard for a freshly verified account.
func (a *App) Onboard(ctx context.Context) error {
	p, ok, err := a.profileForm(ctx, a.currentUser())
	if err != nil || !ok {
		return err
	}

	resp, err := a.api.CompleteOnboarding(ctx, p)
	if err != nil {
		a.showError(err)
		return err
	}

	a.setState(resp.State)
	a.setUser(resp.User)
	a.println(renderSuccess("You're all set, " + resp.User.Name + "!"))
	return a.Discover(ctx)
}
