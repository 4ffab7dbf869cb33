package cli

import (
	"context"

	"github.com/dmitrijs2005/skillswap/internal/rpc"
)

const (
	swipeRight = "right"
	swipeLeft  = "left"
)

func (a *App) showTopCard() {
	a.mu.Lock()
	top := a.top
	a.mu.Unlock()

	if top == nil {
		a.println(titleStyle.Render("That's everyone!"))
		a.println(mutedStyle.Render("Check back later for new people to swap skills with."))
		return
	}
	a.println(renderCard(top))
	a.println(mutedStyle.Render("like / pass"))
}

// refreshTop re-derives the queue on the server and keeps its top card.
func (a *App) refreshTop(ctx context.Context) error {
	resp, err := a.api.Discover(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.top = resp.Top
	a.mu.Unlock()
	return nil
}

// Discover opens the discover tab and shows the top card.
func (a *App) Discover(ctx context.Context) error {
	if err := a.navigate(ctx, &rpc.NavigateRequest{View: rpc.ViewMain, Tab: rpc.TabDiscover}); err != nil {
		return err
	}

	if err := a.refreshTop(ctx); err != nil {
		a.showError(err)
		return err
	}

	a.showTopCard()
	return nil
}

func (a *App) Like(ctx context.Context) error {
	return a.swipe(ctx, swipeRight)
}

func (a *App) Pass(ctx context.Context) error {
	return a.swipe(ctx, swipeLeft)
}

// swipe acts on the shown card, then asks the server for the next one.
func (a *App) swipe(ctx context.Context, direction string) error {
	a.mu.Lock()
	top := a.top
	a.mu.Unlock()

	if top == nil {
		a.showTopCard()
		return nil
	}

	resp, err := a.api.Swipe(ctx, top.ID, direction)
	if err != nil {
		a.showError(err)
		return err
	}

	if resp.ConversationID != "" {
		a.println(mutedStyle.Render("Open 'chats' to say hi to " + top.Name + "."))
	}

	if err := a.refreshTop(ctx); err != nil {
		a.showError(err)
		return err
	}

	a.showTopCard()
	return nil
}
