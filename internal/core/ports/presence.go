package ports

import "context"

// PresenceTracker records which accounts are currently online. Markers expire
// on their own, so an account that stops making requests drops offline without
// any explicit logout.
type PresenceTracker interface {
	MarkOnline(ctx context.Context, username string) error
	IsOnline(ctx context.Context, username string) (bool, error)
}
