package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/skillswap/internal/client/client"
)

// sleepFn is a test seam for the splash delay.
var sleepFn = time.Sleep

func (a *App) getStatus() string {
	a.mu.Lock()
	s := a.state.String()
	if a.user != nil && a.user.Name != "" {
		s = a.user.Name + " " + s
	}
	if a.mode != "" {
		s = s + " " + string(a.mode)
	}
	a.mu.Unlock()

	return fmt.Sprintf("(%s)", s)
}

// showError prints err the way the matching form would show it.
func (a *App) showError(err error) {
	var rej *client.RejectedError
	switch {
	case errors.As(err, &rej):
		a.println(renderError(rej.Message))
	case errors.Is(err, client.ErrUnavailable):
		a.println(renderError("Server unavailable. Please check your connection and try again."))
	case errors.Is(err, client.ErrUnauthorized):
		a.println(renderError("Your session is no longer valid. Please restart SkillSwap."))
	default:
		a.println(renderError("An unexpected error occurred. Please check your connection and try again."))
	}
}

// start opens a session, shows the splash screen for the configured
// duration and lands on the welcome screen.
func (a *App) start(ctx context.Context) error {
	st, err := a.api.OpenSession(ctx)
	if err != nil {
		return err
	}
	a.setState(st)
	a.setMode(ModeOnline)

	a.println(renderBanner())
	sleepFn(a.config.SplashDuration)

	st, err = a.api.FinishSplash(ctx)
	if err != nil {
		return err
	}
	a.setState(st)

	events, err := a.api.Events(ctx)
	if err != nil {
		return err
	}
	go a.listenEvents(events)

	return nil
}

func (a *App) Root(ctx context.Context) {

	if err := a.start(ctx); err != nil {
		a.showError(err)
		return
	}

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	a.println("Welcome to SkillSwap (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}
