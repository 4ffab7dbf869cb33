package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/skillswap/internal/filex"
	"github.com/dmitrijs2005/skillswap/internal/rpc"
)

var errNoConversation = errors.New("no conversation is open")

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

// Chats opens the conversation list and remembers its order for 'open <n>'.
func (a *App) Chats(ctx context.Context) error {
	if err := a.navigate(ctx, &rpc.NavigateRequest{View: rpc.ViewChat, Pane: rpc.PaneList}); err != nil {
		return err
	}

	list, err := a.api.Conversations(ctx)
	if err != nil {
		a.showError(err)
		return err
	}

	a.mu.Lock()
	a.chats = list
	a.active = ""
	a.mu.Unlock()

	a.println(renderConversationList(list))
	return nil
}

func parseIndex(args []string, n int) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("a number is required")
	}
	i, err := strconv.Atoi(args[0])
	if err != nil || i < 1 || i > n {
		return 0, fmt.Errorf("pick a number between 1 and %d", n)
	}
	return i - 1, nil
}

// Open shows conversation n of the last listing; opening marks it read.
func (a *App) Open(ctx context.Context, args []string) error {
	a.mu.Lock()
	chats := a.chats
	a.mu.Unlock()

	if len(chats) == 0 {
		a.println(mutedStyle.Render("List your conversations with 'chats' first."))
		return nil
	}

	i, err := parseIndex(args, len(chats))
	if err != nil {
		a.println(renderError("Usage: open <n>: " + err.Error()))
		return err
	}
	id := chats[i].Conversation.ID

	if err := a.navigate(ctx, &rpc.NavigateRequest{View: rpc.ViewChat, ConversationID: id}); err != nil {
		return err
	}

	conv, err := a.api.Conversation(ctx, id)
	if err != nil {
		a.showError(err)
		return err
	}

	a.mu.Lock()
	a.active = id
	if i < len(a.chats) && a.chats[i].Conversation.ID == id {
		a.chats[i] = *conv
	}
	a.mu.Unlock()

	var me int64
	if u := a.currentUser(); u != nil {
		me = u.ID
	}
	a.println(renderConversation(conv, me))
	return nil
}

func (a *App) send(ctx context.Context, p rpc.MessagePayload) error {
	id := a.activeConversation()
	if id == "" {
		a.println(renderError("Open a conversation first."))
		return errNoConversation
	}

	resp, err := a.api.Send(ctx, id, p)
	if err != nil {
		a.showError(err)
		return err
	}
	if !resp.Applied {
		a.println(mutedStyle.Render("This conversation is no longer available."))
		return nil
	}

	var me int64
	if u := a.currentUser(); u != nil {
		me = u.ID
	}
	a.println(renderMessage(*resp.Message, me, ""))
	return nil
}

// Say sends the rest of the line as a text message.
func (a *App) Say(ctx context.Context, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		a.println(renderError("Usage: say <text>"))
		return nil
	}
	return a.send(ctx, rpc.MessagePayload{Text: text})
}

// uploadFile sends a local file to attachment storage and returns its key.
func (a *App) uploadFile(ctx context.Context, kind, path string) (string, error) {
	data, err := readFile(path)
	if err != nil {
		return "", err
	}

	key, url, err := a.api.UploadURL(ctx, kind)
	if err != nil {
		return "", err
	}

	if err := a.files.Upload(ctx, url, data); err != nil {
		return "", err
	}
	return key, nil
}

// Attach uploads an image or audio file and sends it as a message.
func (a *App) Attach(ctx context.Context, args []string) error {
	if len(args) < 2 || (args[0] != "image" && args[0] != "audio") {
		a.println(renderError("Usage: attach image|audio <path>"))
		return nil
	}
	if a.activeConversation() == "" {
		a.println(renderError("Open a conversation first."))
		return errNoConversation
	}

	kind, path := args[0], strings.Join(args[1:], " ")
	key, err := a.uploadFile(ctx, kind, path)
	if err != nil {
		a.println(renderError("Could not upload the file: " + err.Error()))
		return err
	}

	p := rpc.MessagePayload{ImageURL: key}
	if kind == "audio" {
		p = rpc.MessagePayload{AudioURL: key}
	}
	return a.send(ctx, p)
}

// Fetch downloads an attachment by its storage key into the download dir.
func (a *App) Fetch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println(renderError("Usage: fetch <key>"))
		return nil
	}
	key := args[0]

	url, err := a.api.DownloadURL(ctx, key)
	if err != nil {
		a.showError(err)
		return err
	}

	data, err := a.files.Download(ctx, url)
	if err != nil {
		a.println(renderError("Could not download the file: " + err.Error()))
		return err
	}

	path, err := filex.SaveInto(a.config.DownloadDir, key, data)
	if err != nil {
		a.println(renderError(err.Error()))
		return err
	}

	a.println(renderSuccess("Saved to " + path))
	return nil
}

// Remove deletes the open connection; the other user becomes discoverable
// again.
func (a *App) Remove(ctx context.Context) error {
	id := a.activeConversation()
	if id == "" {
		a.println(renderError("Open a conversation first."))
		return errNoConversation
	}

	ok, err := a.api.RemoveConnection(ctx, id)
	if err != nil {
		a.showError(err)
		return err
	}
	if ok {
		a.println("Connection removed.")
	}
	return a.Chats(ctx)
}

// Back leaves a conversation for the list, and anything else for the main
// view.
func (a *App) Back(ctx context.Context) error {
	a.mu.Lock()
	st := a.state
	a.mu.Unlock()

	if st.View == rpc.ViewChat && st.Pane == rpc.PaneConversation {
		return a.Chats(ctx)
	}
	if err := a.navigate(ctx, &rpc.NavigateRequest{View: rpc.ViewMain}); err != nil {
		return err
	}
	a.mu.Lock()
	a.active = ""
	a.mu.Unlock()
	return nil
}
