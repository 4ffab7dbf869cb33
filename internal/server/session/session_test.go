package session

import (
	"sync"
	"testing"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/ids"
	"github.com/dmitrijs2005/skillswap/internal/server/models"
	"github.com/dmitrijs2005/skillswap/internal/server/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_KeepsStateOnError(t *testing.T) {
	s := New("s1")

	_, err := s.Transition(func(st navigation.State) (navigation.State, error) { return st.SignedUp() })
	require.ErrorIs(t, err, common.ErrorInvalidTransition)
	assert.Equal(t, navigation.ViewSplash, s.View().View)

	st, err := s.Transition(navigation.State.FinishSplash)
	require.NoError(t, err)
	assert.Equal(t, navigation.ViewAuth, st.View)
	assert.Equal(t, st, s.View())
}

func TestSwipedSet(t *testing.T) {
	s := New("s1")
	s.MarkSwiped(7)
	s.MarkSwiped(7)
	s.MarkSwiped(8)
	assert.Len(t, s.Swiped(), 2)

	s.Unswipe(7)
	_, ok := s.Swiped()[7]
	assert.False(t, ok)

	cp := s.Swiped()
	cp[99] = struct{}{}
	assert.Len(t, s.Swiped(), 1)
}

func TestNotifications(t *testing.T) {
	s := New("s1")
	s.PushNotification(models.Notification{ID: "a"})
	s.PushNotification(models.Notification{ID: "b"})

	list := s.Notifications()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)

	assert.True(t, s.DismissNotification("a"))
	assert.False(t, s.DismissNotification("a"))
	assert.Equal(t, 1, s.ClearNotifications())
	assert.Empty(t, s.Notifications())
}

func TestBeginTyping_CountsPendingReplies(t *testing.T) {
	s := New("s1")
	assert.False(t, s.AITyping())

	r1 := s.BeginTyping()
	r2 := s.BeginTyping()
	assert.True(t, s.AITyping())

	r1()
	r1()
	assert.True(t, s.AITyping())

	r2()
	assert.False(t, s.AITyping())
}

func TestBeginTyping_Concurrent(t *testing.T) {
	s := New("s1")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := s.BeginTyping()
			defer release()
		}()
	}
	wg.Wait()
	assert.False(t, s.AITyping())
}

func TestLogout(t *testing.T) {
	s := New("s1")
	s.SetCurrentUser(3)
	s.SetPendingEmail("a@x.io")
	s.MarkSwiped(4)
	s.PushNotification(models.Notification{ID: "n"})

	s.Logout()

	_, ok := s.CurrentUserID()
	assert.False(t, ok)
	assert.Empty(t, s.PendingEmail())
	assert.Empty(t, s.Swiped())
	assert.Len(t, s.Notifications(), 1)
	assert.Equal(t, "auth:welcome", s.View().String())
}

func TestManager(t *testing.T) {
	m := NewManager(ids.UUIDv7{})

	a := m.Open()
	b := m.Open()
	assert.NotEqual(t, a.ID, b.ID)

	got, err := m.Get(a.ID)
	require.NoError(t, err)
	assert.Same(t, a, got)

	_, err = m.Get("nope")
	require.ErrorIs(t, err, common.ErrorNotFound)

	a.SetCurrentUser(5)
	b.SetCurrentUser(6)
	list := m.ForUser(5)
	require.Len(t, list, 1)
	assert.Same(t, a, list[0])
}
