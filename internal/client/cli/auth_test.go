package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/skillswap/internal/client/client"
	"github.com/dmitrijs2005/skillswap/internal/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func authState() rpc.State {
	return rpc.State{View: rpc.ViewAuth, Auth: rpc.AuthWelcome}
}

func TestSignUp_ShortPasswordStaysOnForm(t *testing.T) {
	f := &fakeAPI{}
	a, out := newTestApp(f)
	a.setState(authState())
	stubAnswers(t, "short", "new@example.com")

	require.NoError(t, a.SignUp(context.Background()))

	assert.NotContains(t, f.calls, "signup")
	assert.Equal(t, []rpc.AuthScreen{rpc.AuthSignUp}, f.authScreens)
	assert.Contains(t, out.String(), "Password must be at least 8 characters long.")
}

func TestSignUp_ShowsVerificationCode(t *testing.T) {
	f := &fakeAPI{signUpResp: &rpc.SignUpResponse{
		State:        rpc.State{View: rpc.ViewVerifyEmail},
		PendingToken: "AB12CD",
	}}
	a, out := newTestApp(f)
	a.setState(authState())
	stubAnswers(t, "longenough", " new@example.com ")

	require.NoError(t, a.SignUp(context.Background()))

	assert.Equal(t, "new@example.com", f.signUpEmail)
	assert.Equal(t, "longenough", f.signUpPassword)
	assert.Equal(t, rpc.ViewVerifyEmail, a.view())
	assert.Contains(t, out.String(), "AB12CD")
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	f := &fakeAPI{signUpErr: &client.RejectedError{Code: codes.AlreadyExists, Message: "An account with this email already exists."}}
	a, out := newTestApp(f)
	a.setState(authState())
	stubAnswers(t, "longenough", "taken@example.com")

	require.Error(t, a.SignUp(context.Background()))
	assert.Equal(t, rpc.ViewAuth, a.view())
	assert.Contains(t, out.String(), "An account with this email already exists.")
}

func TestLogin_Routes(t *testing.T) {
	sam := &rpc.User{ID: 1, Name: "Sam", HasOnboarded: true, IsEmailVerified: true}

	tests := []struct {
		name      string
		resp      *rpc.LoginResponse
		wantView  rpc.View
		wantText  string
		wantCalls []string
	}{
		{
			name:      "onboarded user lands on discover",
			resp:      &rpc.LoginResponse{State: rpc.State{View: rpc.ViewMain}, User: sam},
			wantView:  rpc.ViewMain,
			wantText:  "Welcome back, Sam!",
			wantCalls: []string{"login", "discover"},
		},
		{
			name:      "unverified user sees the code",
			resp:      &rpc.LoginResponse{State: rpc.State{View: rpc.ViewVerifyEmail}, PendingToken: "ZZ99YY"},
			wantView:  rpc.ViewVerifyEmail,
			wantText:  "ZZ99YY",
			wantCalls: []string{"login"},
		},
		{
			name:      "new user goes to onboarding",
			resp:      &rpc.LoginResponse{State: rpc.State{View: rpc.ViewOnboarding}, User: &rpc.User{ID: 2}},
			wantView:  rpc.ViewOnboarding,
			wantText:  "onboard",
			wantCalls: []string{"login"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeAPI{loginResp: tt.resp}
			a, out := newTestApp(f)
			a.setState(authState())
			stubAnswers(t, "password1", "me@example.com")

			require.NoError(t, a.Login(context.Background()))

			assert.Equal(t, tt.wantView, a.view())
			assert.Contains(t, out.String(), tt.wantText)
			assert.Equal(t, tt.wantCalls, f.calls)
			assert.Equal(t, "me@example.com", f.loginEmail)
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := &fakeAPI{loginErr: &client.RejectedError{Code: codes.InvalidArgument, Message: "Invalid email or password. Please try again."}}
	a, out := newTestApp(f)
	a.setState(rpc.State{View: rpc.ViewAuth, Auth: rpc.AuthLogin})
	stubAnswers(t, "wrong", "me@example.com")

	require.Error(t, a.Login(context.Background()))

	assert.Empty(t, f.authScreens, "already on the login screen")
	assert.Nil(t, a.currentUser())
	assert.Contains(t, out.String(), "Invalid email or password. Please try again.")
}

func TestVerify_UsesArgument(t *testing.T) {
	u := &rpc.User{ID: 3, IsEmailVerified: true}
	f := &fakeAPI{verifyResp: &rpc.UserResponse{State: rpc.State{View: rpc.ViewOnboarding}, User: u}}
	a, out := newTestApp(f)
	a.setState(rpc.State{View: rpc.ViewVerifyEmail})

	require.NoError(t, a.Verify(context.Background(), []string{"ab12cd"}))

	assert.Equal(t, "AB12CD", f.verifyToken)
	assert.Equal(t, rpc.ViewOnboarding, a.view())
	assert.Equal(t, u, a.currentUser())
	assert.Contains(t, out.String(), "Email verified!")
}

func TestVerify_PromptsAndReportsWrongCode(t *testing.T) {
	f := &fakeAPI{verifyErr: &client.RejectedError{Code: codes.InvalidArgument, Message: "Invalid verification code. Please check and try again."}}
	a, out := newTestApp(f)
	a.setState(rpc.State{View: rpc.ViewVerifyEmail})
	stubAnswers(t, "", "XXXXXX")

	require.Error(t, a.Verify(context.Background(), nil))

	assert.Equal(t, "XXXXXX", f.verifyToken)
	assert.Equal(t, rpc.ViewVerifyEmail, a.view())
	assert.Contains(t, out.String(), "Invalid verification code. Please check and try again.")
}

func TestLogout_ClearsLocalState(t *testing.T) {
	f := &fakeAPI{}
	a, _ := newTestApp(f)
	a.setState(rpc.State{View: rpc.ViewChat, Pane: rpc.PaneConversation, ConversationID: "c1"})
	a.user = &rpc.User{ID: 1}
	a.top = &rpc.User{ID: 2}
	a.chats = []rpc.ConversationSummary{{Conversation: &rpc.Conversation{ID: "c1"}}}
	a.active = "c1"

	require.NoError(t, a.Logout(context.Background()))

	assert.Equal(t, rpc.ViewAuth, a.view())
	assert.Nil(t, a.currentUser())
	assert.Nil(t, a.top)
	assert.Empty(t, a.chats)
	assert.Empty(t, a.activeConversation())
}

func TestWelcome_SkipsTransitionWhenShown(t *testing.T) {
	f := &fakeAPI{}
	a, out := newTestApp(f)
	a.setState(authState())

	require.NoError(t, a.Welcome(context.Background()))
	assert.Empty(t, f.authScreens)
	assert.Contains(t, out.String(), "SkillSwap")

	a.setState(rpc.State{View: rpc.ViewAuth, Auth: rpc.AuthLogin})
	require.NoError(t, a.Welcome(context.Background()))
	assert.Equal(t, []rpc.AuthScreen{rpc.AuthWelcome}, f.authScreens)
}
