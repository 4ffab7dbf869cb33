package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/skillswap/internal/common"
	"github.com/dmitrijs2005/skillswap/internal/server/events"
	"github.com/dmitrijs2005/skillswap/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userIDs(list []*models.User) []int64 {
	out := make([]int64, 0, len(list))
	for _, u := range list {
		out = append(out, u.ID)
	}
	return out
}

func TestSwipeRight_CreatesNotificationAndConversation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s, me := f.loggedIn(t, "me@x.io")
	sam := f.addUser(t, &models.User{Email: "sam@x.io", Name: "Sam", ProfilePicture: "sam.png"})
	other := f.addUser(t, &models.User{Email: "o@x.io", Name: "O"})

	_, err := f.match.Swipe(ctx, s, other.ID, DirectionRight)
	require.NoError(t, err)

	res, err := f.match.Swipe(ctx, s, sam.ID, DirectionRight)
	require.NoError(t, err)
	require.True(t, res.Applied)
	assert.True(t, res.Created)

	notes := s.Notifications()
	require.Len(t, notes, 2)
	assert.Equal(t, "You connected with Sam!", notes[0].Text)
	assert.Equal(t, "Just now", notes[0].Timestamp)
	assert.Equal(t, models.NotificationConnection, notes[0].Type)
	assert.False(t, notes[0].IsRead)
	assert.Equal(t, "sam.png", notes[0].UserImage)

	convs, err := f.rm.Conversations().ListFor(ctx, me.ID)
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, []int64{me.ID, sam.ID}, convs[0].ParticipantIDs)
	assert.Empty(t, convs[0].Messages)

	assert.Len(t, f.pub.of(s.ID, events.TypeNotification), 2)
}

func TestSwipeRight_ReusesExistingConversation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s, me := f.loggedIn(t, "me@x.io")
	sam := f.addUser(t, &models.User{Email: "sam@x.io", Name: "Sam"})

	first, err := f.match.Swipe(ctx, s, sam.ID, DirectionRight)
	require.NoError(t, err)
	second, err := f.match.Swipe(ctx, s, sam.ID, DirectionRight)
	require.NoError(t, err)

	assert.False(t, second.Created)
	assert.Equal(t, first.Conversation.ID, second.Conversation.ID)
	assert.Len(t, s.Swiped(), 1)

	convs, _ := f.rm.Conversations().ListFor(ctx, me.ID)
	assert.Len(t, convs, 1)
}

func TestSwipeLeft_OnlyMarksSwiped(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s, me := f.loggedIn(t, "me@x.io")
	sam := f.addUser(t, &models.User{Email: "sam@x.io", Name: "Sam"})

	res, err := f.match.Swipe(ctx, s, sam.ID, DirectionLeft)
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Nil(t, res.Conversation)

	assert.Empty(t, s.Notifications())
	convs, _ := f.rm.Conversations().ListFor(ctx, me.ID)
	assert.Empty(t, convs)

	queue, err := f.match.Discover(ctx, s)
	require.NoError(t, err)
	assert.NotContains(t, userIDs(queue), sam.ID)
}

func TestSwipe_MissingUserIsNoop(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s, me := f.loggedIn(t, "me@x.io")

	res, err := f.match.Swipe(ctx, s, 999, DirectionRight)
	require.NoError(t, err)
	assert.False(t, res.Applied)

	_, swiped := s.Swiped()[999]
	assert.True(t, swiped)
	assert.Empty(t, s.Notifications())
	convs, _ := f.rm.Conversations().ListFor(ctx, me.ID)
	assert.Empty(t, convs)
}

func TestSwipe_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s, _ := f.loggedIn(t, "me@x.io")

	_, err := f.match.Swipe(ctx, s, 2, "up")
	require.ErrorIs(t, err, common.ErrorInvalidArgument)

	anon := f.sessions.Open()
	_, err = f.match.Swipe(ctx, anon, 2, DirectionLeft)
	require.ErrorIs(t, err, common.ErrorNoCurrentUser)
}

func TestDiscover_Exclusions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s, me := f.loggedIn(t, "me@x.io")
	a := f.addUser(t, &models.User{Email: "a@x.io"})
	b := f.addUser(t, &models.User{Email: "b@x.io"})
	c := f.addUser(t, &models.User{Email: "c@x.io"})

	queue, err := f.match.Discover(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID, b.ID, c.ID}, userIDs(queue))

	_, err = f.match.Swipe(ctx, s, a.ID, DirectionLeft)
	require.NoError(t, err)
	_, err = f.match.Swipe(ctx, s, b.ID, DirectionRight)
	require.NoError(t, err)

	// someone else's conversation with c must not hide c
	_, _, err = f.rm.Conversations().EnsurePair(ctx, "foreign", a.ID, c.ID)
	require.NoError(t, err)

	queue, err = f.match.Discover(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, []int64{c.ID}, userIDs(queue))
	assert.NotContains(t, userIDs(queue), me.ID)
}
