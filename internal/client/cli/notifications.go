package cli

import (
	"context"
	"fmt"
)

// Notifications refreshes and prints the notification list, newest first.
func (a *App) Notifications(ctx context.Context) error {
	resp, err := a.api.State(ctx)
	if err != nil {
		a.showError(err)
		return err
	}

	a.mu.Lock()
	a.notifs = resp.Notifications
	a.mu.Unlock()

	a.println(renderNotifications(resp.Notifications))
	return nil
}

// Dismiss removes notification n of the last listing.
func (a *App) Dismiss(ctx context.Context, args []string) error {
	a.mu.Lock()
	notifs := a.notifs
	a.mu.Unlock()

	if len(notifs) == 0 {
		a.println(mutedStyle.Render("No new notifications"))
		return nil
	}

	i, err := parseIndex(args, len(notifs))
	if err != nil {
		a.println(renderError("Usage: dismiss <n>: " + err.Error()))
		return err
	}

	if _, err := a.api.DismissNotification(ctx, notifs[i].ID); err != nil {
		a.showError(err)
		return err
	}

	a.mu.Lock()
	if i < len(a.notifs) && a.notifs[i].ID == notifs[i].ID {
		a.notifs = append(a.notifs[:i:i], a.notifs[i+1:]...)
	}
	a.mu.Unlock()
	return nil
}

func (a *App) Clear(ctx context.Context) error {
	n, err := a.api.ClearNotifications(ctx)
	if err != nil {
		a.showError(err)
		return err
	}

	a.mu.Lock()
	a.notifs = nil
	a.mu.Unlock()

	a.println(fmt.Sprintf("Cleared %d notifications.", n))
	return nil
}
