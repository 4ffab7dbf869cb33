package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/skillswap/internal/client/client"
	"github.com/dmitrijs2005/skillswap/internal/client/config"
	"github.com/dmitrijs2005/skillswap/internal/rpc"
)

// fakeAPI records calls and returns preset results. Methods not overridden
// panic on the nil embedded interface.
type fakeAPI struct {
	client.Client

	calls []string

	openState   rpc.State
	finishState rpc.State
	events      chan *rpc.Event
	pingErr     error
	authScreens []rpc.AuthScreen

	loginEmail, loginPassword string
	loginResp                 *rpc.LoginResponse
	loginErr                  error

	signUpEmail, signUpPassword string
	signUpResp                  *rpc.SignUpResponse
	signUpErr                   error

	verifyToken string
	verifyResp  *rpc.UserResponse
	verifyErr   error

	onboardProfile  *rpc.Profile
	settingsProfile *rpc.Profile
	userResp        *rpc.UserResponse

	navReqs []*rpc.NavigateRequest
	navErr  error

	stateResp *rpc.GetStateResponse

	discoverUsers []*rpc.User
	swipes        []rpc.SwipeRequest
	swipeResp     *rpc.SwipeResponse

	convs    []rpc.ConversationSummary
	conv     *rpc.ConversationSummary
	sent     []rpc.MessagePayload
	sendResp *rpc.SendMessageResponse
	removed  []string

	dismissed []string
	cleared   int

	plan    *rpc.LessonPlan
	planErr error

	uploadKinds []string
	uploadKey   string
	downloadKey string
}

func (f *fakeAPI) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeAPI) Close() error { f.record("close"); return nil }

func (f *fakeAPI) Ping(context.Context) error { return f.pingErr }

func (f *fakeAPI) OpenSession(context.Context) (rpc.State, error) {
	f.record("open")
	return f.openState, nil
}

func (f *fakeAPI) FinishSplash(context.Context) (rpc.State, error) {
	f.record("finish")
	return f.finishState, nil
}

func (f *fakeAPI) Events(context.Context) (<-chan *rpc.Event, error) {
	f.record("events")
	if f.events == nil {
		f.events = make(chan *rpc.Event)
		close(f.events)
	}
	return f.events, nil
}

func (f *fakeAPI) ShowAuthScreen(_ context.Context, screen rpc.AuthScreen) (rpc.State, error) {
	f.authScreens = append(f.authScreens, screen)
	return rpc.State{View: rpc.ViewAuth, Auth: screen}, nil
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*rpc.LoginResponse, error) {
	f.record("login")
	f.loginEmail, f.loginPassword = email, password
	return f.loginResp, f.loginErr
}

func (f *fakeAPI) SignUp(_ context.Context, email, password string) (*rpc.SignUpResponse, error) {
	f.record("signup")
	f.signUpEmail, f.signUpPassword = email, password
	return f.signUpResp, f.signUpErr
}

func (f *fakeAPI) VerifyEmail(_ context.Context, token string) (*rpc.UserResponse, error) {
	f.record("verify")
	f.verifyToken = token
	return f.verifyResp, f.verifyErr
}

func (f *fakeAPI) CompleteOnboarding(_ context.Context, p rpc.Profile) (*rpc.UserResponse, error) {
	f.record("onboard")
	f.onboardProfile = &p
	return f.userResp, nil
}

func (f *fakeAPI) SaveSettings(_ context.Context, p rpc.Profile) (*rpc.UserResponse, error) {
	f.record("settings")
	f.settingsProfile = &p
	return f.userResp, nil
}

// Navigate echoes the request back as the new state.
func (f *fakeAPI) Navigate(_ context.Context, req *rpc.NavigateRequest) (rpc.State, error) {
	f.navReqs = append(f.navReqs, req)
	if f.navErr != nil {
		return rpc.State{}, f.navErr
	}
	st := rpc.State{View: req.View, Tab: req.Tab, Pane: req.Pane, ConversationID: req.ConversationID}
	if req.View == rpc.ViewChat && st.Pane == "" {
		st.Pane = rpc.PaneList
		if req.ConversationID != "" {
			st.Pane = rpc.PaneConversation
		}
	}
	return st, nil
}

func (f *fakeAPI) Logout(context.Context) (rpc.State, error) {
	f.record("logout")
	return rpc.State{View: rpc.ViewAuth, Auth: rpc.AuthWelcome}, nil
}

func (f *fakeAPI) State(context.Context) (*rpc.GetStateResponse, error) {
	f.record("state")
	return f.stateResp, nil
}

// Discover mirrors the server: the top card is the last discoverable user.
func (f *fakeAPI) Discover(context.Context) (*rpc.DiscoverResponse, error) {
	f.record("discover")
	resp := &rpc.DiscoverResponse{Users: f.discoverUsers}
	if n := len(f.discoverUsers); n > 0 {
		resp.Top = f.discoverUsers[n-1]
	}
	return resp, nil
}

func (f *fakeAPI) Swipe(_ context.Context, userID int64, direction string) (*rpc.SwipeResponse, error) {
	f.record("swipe")
	f.swipes = append(f.swipes, rpc.SwipeRequest{UserID: userID, Direction: direction})
	f.discoverUsers = slices.DeleteFunc(f.discoverUsers, func(u *rpc.User) bool { return u.ID == userID })
	if f.swipeResp != nil {
		return f.swipeResp, nil
	}
	return &rpc.SwipeResponse{Applied: true}, nil
}

func (f *fakeAPI) Conversations(context.Context) ([]rpc.ConversationSummary, error) {
	f.record("conversations")
	return f.convs, nil
}

func (f *fakeAPI) Conversation(_ context.Context, id string) (*rpc.ConversationSummary, error) {
	f.record("conversation:" + id)
	return f.conv, nil
}

func (f *fakeAPI) Send(_ context.Context, _ string, p rpc.MessagePayload) (*rpc.SendMessageResponse, error) {
	f.sent = append(f.sent, p)
	if f.sendResp != nil {
		return f.sendResp, nil
	}
	msg := rpc.Message{ID: "m", SenderID: 1, Text: p.Text, ImageURL: p.ImageURL, AudioURL: p.AudioURL, Timestamp: "10:00 AM"}
	return &rpc.SendMessageResponse{Applied: true, Message: &msg}, nil
}

func (f *fakeAPI) RemoveConnection(_ context.Context, id string) (bool, error) {
	f.removed = append(f.removed, id)
	return true, nil
}

func (f *fakeAPI) DismissNotification(_ context.Context, id string) (bool, error) {
	f.dismissed = append(f.dismissed, id)
	return true, nil
}

func (f *fakeAPI) ClearNotifications(context.Context) (int, error) {
	return f.cleared, nil
}

func (f *fakeAPI) LessonPlan(context.Context, string) (*rpc.LessonPlan, error) {
	return f.plan, f.planErr
}

func (f *fakeAPI) UploadURL(_ context.Context, kind string) (string, string, error) {
	f.uploadKinds = append(f.uploadKinds, kind)
	return f.uploadKey, "https://storage.test/put/" + f.uploadKey, nil
}

func (f *fakeAPI) DownloadURL(_ context.Context, key string) (string, error) {
	f.downloadKey = key
	return "https://storage.test/get/" + key, nil
}

type fakeTransfer struct {
	uploadedURL  string
	uploaded     []byte
	downloadURL  string
	downloadData []byte
}

func (t *fakeTransfer) Upload(_ context.Context, url string, data []byte) error {
	t.uploadedURL, t.uploaded = url, data
	return nil
}

func (t *fakeTransfer) Download(_ context.Context, url string) ([]byte, error) {
	t.downloadURL = url
	return t.downloadData, nil
}

func newTestApp(f *fakeAPI) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		config: &config.Config{SplashDuration: time.Millisecond, OnlineCheckInterval: time.Hour, DownloadDir: "downloads"},
		api:    f,
		files:  &fakeTransfer{},
		reader: bufio.NewReader(strings.NewReader("")),
		out:    &out,
	}, &out
}

// stubAnswers feeds prompts from answers in order; an exhausted list
// answers with empty lines.
func stubAnswers(t *testing.T, password string, answers ...string) {
	t.Helper()
	origST, origWD, origML, origGP := getSimpleText, getWithDefault, getMultiline, getPassword

	next := func() string {
		if len(answers) == 0 {
			return ""
		}
		v := answers[0]
		answers = answers[1:]
		return v
	}

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(), nil }
	getWithDefault = func(_ *bufio.Reader, _ string, current string, _ io.Writer) (string, error) {
		if v := next(); v != "" {
			return v, nil
		}
		return current, nil
	}
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next(), nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(password), nil }

	t.Cleanup(func() {
		getSimpleText, getWithDefault, getMultiline, getPassword = origST, origWD, origML, origGP
	})
}
