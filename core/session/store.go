package session

import "context"

// Store persists one Session per browser session id.
// Save writes all four fields at once and Clear removes them at once: no partial Session is ever observable.
type Store interface {
	// Save stores `s` under `id`, replacing any previous Session. Partial sessions are rejected with ErrPartialSession.
	Save(ctx context.Context, id string, s Session) error
	// Load returns the Session stored under `id`, or the empty Session.
	Load(ctx context.Context, id string) (Session, error)
	// Clear removes the Session stored under `id`. Clearing an unknown id is not an error.
	Clear(ctx context.Context, id string) error
	// Purge removes every stored Session and returns how many were removed.
	Purge(ctx context.Context) (int64, error)
}
