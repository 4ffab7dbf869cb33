package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/skillswap/internal/rpc"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	v     rpc.View
	calls []string
}

func (f *fakeExec) rec(name string, args ...string) error {
	if len(args) > 0 {
		name += " " + strings.Join(args, " ")
	}
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) view() rpc.View { return f.v }

func (f *fakeExec) Welcome(context.Context) error { return f.rec("welcome") }
func (f *fakeExec) Login(context.Context) error {
	f.v = rpc.ViewMain
	return f.rec("login")
}
func (f *fakeExec) SignUp(context.Context) error                  { return f.rec("signup") }
func (f *fakeExec) Verify(_ context.Context, args []string) error { return f.rec("verify", args...) }
func (f *fakeExec) Onboard(context.Context) error                 { return f.rec("onboard") }
func (f *fakeExec) Logout(context.Context) error {
	f.v = rpc.ViewAuth
	return f.rec("logout")
}
func (f *fakeExec) Discover(context.Context) error                { return f.rec("discover") }
func (f *fakeExec) Like(context.Context) error                    { return f.rec("like") }
func (f *fakeExec) Pass(context.Context) error                    { return f.rec("pass") }
func (f *fakeExec) Profile(context.Context) error                 { return f.rec("profile") }
func (f *fakeExec) Settings(context.Context) error                { return f.rec("settings") }
func (f *fakeExec) Coach(_ context.Context, args []string) error  { return f.rec("coach", args...) }
func (f *fakeExec) Chats(context.Context) error                   { return f.rec("chats") }
func (f *fakeExec) Open(_ context.Context, args []string) error   { return f.rec("open", args...) }
func (f *fakeExec) Say(_ context.Context, args []string) error    { return f.rec("say", args...) }
func (f *fakeExec) Attach(_ context.Context, args []string) error { return f.rec("attach", args...) }
func (f *fakeExec) Fetch(_ context.Context, args []string) error  { return f.rec("fetch", args...) }
func (f *fakeExec) Remove(context.Context) error                  { return f.rec("remove") }
func (f *fakeExec) Back(context.Context) error                    { return f.rec("back") }
func (f *fakeExec) Notifications(context.Context) error           { return f.rec("notifications") }
func (f *fakeExec) Dismiss(_ context.Context, args []string) error {
	return f.rec("dismiss", args...)
}
func (f *fakeExec) Clear(context.Context) error  { return f.rec("clear") }
func (f *fakeExec) Status(context.Context) error { return f.rec("status") }

func captureREPL(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		printed = append(printed, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &printed
}

func TestRunREPL_DispatchesWithArgs(t *testing.T) {
	captureREPL(t)

	input := strings.Join([]string{
		"login",
		"discover",
		"like",
		"pass",
		"coach Rust programming",
		"chats",
		"open 2",
		"say hello there",
		"attach image ./cat.png",
		"fetch image/2025/1/1/k",
		"back",
		"",
		"dismiss 1",
		"logout",
		"exit",
		"discover",
	}, "\n")

	exec := &fakeExec{v: rpc.ViewAuth}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	require.Equal(t, []string{
		"login",
		"discover",
		"like",
		"pass",
		"coach Rust programming",
		"chats",
		"open 2",
		"say hello there",
		"attach image ./cat.png",
		"fetch image/2025/1/1/k",
		"back",
		"dismiss 1",
		"logout",
	}, exec.calls)
}

func TestRunREPL_HelpDependsOnView(t *testing.T) {
	printed := captureREPL(t)

	exec := &fakeExec{v: rpc.ViewAuth}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("help\nlogin\nhelp\n")))

	var helps []string
	for _, p := range *printed {
		if strings.HasPrefix(p, "Available commands") {
			helps = append(helps, p)
		}
	}
	require.Len(t, helps, 2)
	require.Contains(t, helps[0], "signup")
	require.Contains(t, helps[1], "discover")
}

func TestRunREPL_UnknownCommandAndPrompt(t *testing.T) {
	printed := captureREPL(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(auth:welcome)" }, bufio.NewReader(strings.NewReader("foobar\nquit\n")))

	require.Contains(t, *printed, "ss (auth:welcome)> ")
	require.Contains(t, *printed, "Unknown command:foobar")
	require.Contains(t, *printed, "Bye!")
	require.Empty(t, exec.calls)
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	captureREPL(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("verify abc123")))

	require.Equal(t, []string{"verify abc123"}, exec.calls)
}

func TestHelpFor(t *testing.T) {
	require.Contains(t, helpFor(rpc.ViewVerifyEmail), "verify")
	require.Contains(t, helpFor(rpc.ViewOnboarding), "onboard")
	require.Contains(t, helpFor(rpc.ViewChat), "say <text>")
	require.Contains(t, helpFor(rpc.ViewSettings), "settings")
}
