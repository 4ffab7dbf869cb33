package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/skillswap/internal/rpc"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	view() rpc.View

	Welcome(ctx context.Context) error
	Login(ctx context.Context) error
	SignUp(ctx context.Context) error
	Verify(ctx context.Context, args []string) error
	Onboard(ctx context.Context) error
	Logout(ctx context.Context) error

	Discover(ctx context.Context) error
	Like(ctx context.Context) error
	Pass(ctx context.Context) error
	Profile(ctx context.Context) error
	Settings(ctx context.Context) error
	Coach(ctx context.Context, args []string) error

	Chats(ctx context.Context) error
	Open(ctx context.Context, args []string) error
	Say(ctx context.Context, args []string) error
	Attach(ctx context.Context, args []string) error
	Fetch(ctx context.Context, args []string) error
	Remove(ctx context.Context) error
	Back(ctx context.Context) error

	Notifications(ctx context.Context) error
	Dismiss(ctx context.Context, args []string) error
	Clear(ctx context.Context) error
	Status(ctx context.Context) error
}

func helpFor(v rpc.View) string {
	switch v {
	case rpc.ViewSplash, rpc.ViewAuth:
		return "Available commands: welcome, login, signup, exit"
	case rpc.ViewVerifyEmail:
		return "Available commands: verify [code], exit"
	case rpc.ViewOnboarding:
		return "Available commands: onboard, logout, exit"
	case rpc.ViewChat:
		return "Available commands: chats, open <n>, say <text>, attach image|audio <path>, fetch <n>, remove, back, notifications, status, logout, exit"
	default:
		return "Available commands: discover, like, pass, profile, settings, coach <skill>, chats, open <n>, notifications, dismiss <n>, clear, status, logout, exit"
	}
}

// runREPL starts a simple read–eval–print loop for the SkillSwap CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens as arguments.
// Unknown commands are reported back to the user. The loop exits on EOF or
// when the user types "exit" or "quit".
//
// The help text depends on the current view:
//
//	auth:          welcome, login, signup
//	verify-email:  verify [code]
//	onboarding:    onboard, logout
//	main/settings: discover, like, pass, profile, settings, coach <skill>,
//	               chats, open <n>, notifications, dismiss <n>, clear, status, logout
//	chat:          chats, open <n>, say <text>, attach image|audio <path>,
//	               fetch <n>, remove, back
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ss %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpFor(a.view()))

		case "welcome":
			_ = a.Welcome(ctx)
		case "login":
			_ = a.Login(ctx)
		case "signup":
			_ = a.SignUp(ctx)
		case "verify":
			_ = a.Verify(ctx, args)
		case "onboard":
			_ = a.Onboard(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "d", "discover":
			_ = a.Discover(ctx)
		case "like", "right":
			_ = a.Like(ctx)
		case "pass", "left":
			_ = a.Pass(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "settings":
			_ = a.Settings(ctx)
		case "coach":
			_ = a.Coach(ctx, args)

		case "chats":
			_ = a.Chats(ctx)
		case "open":
			_ = a.Open(ctx, args)
		case "say":
			_ = a.Say(ctx, args)
		case "attach":
			_ = a.Attach(ctx, args)
		case "fetch":
			_ = a.Fetch(ctx, args)
		case "remove":
			_ = a.Remove(ctx)
		case "back":
			_ = a.Back(ctx)

		case "notifications", "n":
			_ = a.Notifications(ctx)
		case "dismiss":
			_ = a.Dismiss(ctx, args)
		case "clear":
			_ = a.Clear(ctx)
		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
