// Package discovery derives the swipe queue from the sources of truth.
package discovery

import "github.com/dmitrijs2005/skillswap/internal/server/models"

// ComputeDiscoverable filters all (in store order) down to the users the
// current user may still swipe on: not themselves, not in swiped and not
// sharing any conversation with them. Conversations that do not include
// currentID are ignored.
func ComputeDiscoverable(all []*models.User, currentID int64, swiped map[int64]struct{}, convs []*models.Conversation) []*models.User {
	connected := make(map[int64]struct{})
	for _, c := range convs {
		if !c.Includes(currentID) {
			continue
		}
		for _, id := range c.ParticipantIDs {
			connected[id] = struct{}{}
		}
	}

	out := make([]*models.User, 0, len(all))
	for _, u := range all {
		if u.ID == currentID {
			continue
		}
		if _, ok := swiped[u.ID]; ok {
			continue
		}
		if _, ok := connected[u.ID]; ok {
			continue
		}
		out = append(out, u)
	}
	return out
}

// Top returns the interactive card of a queue: the last element.
func Top(queue []*models.User) (*models.User, bool) {
	if len(queue) == 0 {
		return nil, false
	}
	return queue[len(queue)-1], true
}
