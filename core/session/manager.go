package session

import (
	"context"

	"github.com/pkg/errors"
)

// Manager is the single writer of stored sessions: only Login saves and only Logout clears.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Current returns the Session bound to `id`. A present token and role are trusted as is; expiry is left to the remote API.
func (m *Manager) Current(ctx context.Context, id string) (Session, error) {
	if id == "" {
		return Session{}, nil
	}
	s, err := m.store.Load(ctx, id)
	if err != nil {
		return Session{}, errors.Wrap(err, "loading session")
	}
	if !s.Authenticated() {
		return Session{}, nil
	}
	return s, nil
}

// Login derives the Role from the identity token and stores the whole Session under `id`.
func (m *Manager) Login(ctx context.Context, id string, tokens Tokens) (Session, error) {
	if tokens.AccessToken == "" {
		return Session{}, ErrNoAccessToken
	}
	s := New(tokens, DecodeRole(tokens.IDToken))
	if err := m.store.Save(ctx, id, s); err != nil {
		return Session{}, errors.Wrap(err, "saving session")
	}
	return s, nil
}

// Logout clears the Session bound to `id`, whatever it holds.
func (m *Manager) Logout(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return errors.Wrap(m.store.Clear(ctx, id), "clearing session")
}

// Purge clears every stored Session.
func (m *Manager) Purge(ctx context.Context) (int64, error) {
	n, err := m.store.Purge(ctx)
	return n, errors.Wrap(err, "purging sessions")
}
