package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/skillswap/internal/client/client"
	"github.com/dmitrijs2005/skillswap/internal/client/config"
	"github.com/dmitrijs2005/skillswap/internal/netx"
	"github.com/dmitrijs2005/skillswap/internal/rpc"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// transfer moves attachment bytes to and from presigned URLs.
type transfer interface {
	Upload(ctx context.Context, url string, data []byte) error
	Download(ctx context.Context, url string) ([]byte, error)
}

type App struct {
	config *config.Config
	api    client.Client
	files  transfer
	reader *bufio.Reader

	outMu sync.Mutex
	out   io.Writer

	// mu guards everything below; the online watcher and the event
	// listener run beside the REPL.
	mu     sync.Mutex
	mode   Mode
	state  rpc.State
	user   *rpc.User
	top    *rpc.User
	chats  []rpc.ConversationSummary
	active string
	notifs []rpc.Notification
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewSkillSwapClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{
		config: c,
		api:    apiClient,
		files:  netx.NewTransfer(30 * time.Second),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	a.Root(ctx)
}

// println writes one line; event output and command output share it.
func (a *App) println(args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintln(a.out, args...)
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.api.Ping(ctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) setState(st rpc.State) {
	a.mu.Lock()
	a.state = st
	a.mu.Unlock()
}

func (a *App) view() rpc.View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.View
}

func (a *App) currentUser() *rpc.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}

func (a *App) setUser(u *rpc.User) {
	a.mu.Lock()
	a.user = u
	a.mu.Unlock()
}

func (a *App) activeConversation() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// listenEvents prints pushed events until the channel closes.
func (a *App) listenEvents(events <-chan *rpc.Event) {
	for ev := range events {
		a.handleEvent(ev)
	}
}

func (a *App) handleEvent(ev *rpc.Event) {
	active := a.activeConversation()

	switch ev.Type {
	case "typing":
		if ev.ConversationID != active {
			return
		}
		if ev.Typing {
			a.println(mutedStyle.Render("typing..."))
		}

	case "message":
		if ev.Message == nil {
			return
		}
		var me int64
		if u := a.currentUser(); u != nil {
			me = u.ID
		}
		// own messages were already printed from the send response
		if me != 0 && ev.Message.SenderID == me {
			return
		}
		if ev.ConversationID == active {
			a.println(renderMessage(*ev.Message, me, a.peerName(ev.ConversationID)))
			return
		}
		a.println(mutedStyle.Render(fmt.Sprintf("New message from %s", a.peerName(ev.ConversationID))))

	case "notification":
		if ev.Notification == nil {
			return
		}
		a.mu.Lock()
		a.notifs = append([]rpc.Notification{*ev.Notification}, a.notifs...)
		a.mu.Unlock()
		a.println(labelStyle.Render("🔔 " + ev.Notification.Text))

	case "conversation_removed":
		a.mu.Lock()
		if a.active == ev.ConversationID {
			a.active = ""
		}
		a.mu.Unlock()
	}
}

func (a *App) peerName(conversationID string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, c := range a.chats {
		if c.Conversation != nil && c.Conversation.ID == conversationID && c.Other != nil {
			return c.Other.Name
		}
	}
	return "your match"
}
