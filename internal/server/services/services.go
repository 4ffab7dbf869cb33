// Package services contains the server-side reducers. Every operation takes
// the caller's session explicitly and works against the shared stores built
// by repomanager.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/server/models"
	"github.com/dmitrijs2005/skillswap/internal/server/navigation"
	"github.com/dmitrijs2005/skillswap/internal/server/repositories/users"
	"github.com/dmitrijs2005/skillswap/internal/server/session"
)

// JustNow is the timestamp label of a freshly created notification.
const JustNow = "Just now"

// clock is replaced in tests.
var clock = time.Now

// displayTime renders the hour:minute label shown next to a message.
func displayTime(t time.Time) string {
	return t.Format("15:04")
}

// currentUser loads the session's user or fails with ErrorNoCurrentUser.
func currentUser(ctx context.Context, repo users.Repository, s *session.Session) (*models.User, error) {
	id, ok := s.CurrentUserID()
	if !ok {
		return nil, common.ErrorNoCurrentUser
	}
	u, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNoCurrentUser
		}
		return nil, fmt.Errorf("error loading current user: %w", err)
	}
	return u, nil
}

// requireView fails with ErrorInvalidTransition unless the session is in
// one of views.
func requireView(s *session.Session, views ...navigation.View) error {
	st := s.View()
	for _, v := range views {
		if st.View == v {
			return nil
		}
	}
	return fmt.Errorf("%w: not allowed from %s", common.ErrorInvalidTransition, st)
}
