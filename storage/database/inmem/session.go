package inmemdb

import (
	"context"

	"github.com/AlainDede/Delphinium-gestion-site/core/session"
)

type sessionStore struct {
	db *sessionTable
}

var _ session.Store = (*sessionStore)(nil)

// NewSessionStore returns a session.Store that lives as long as the process.
func NewSessionStore(db *DB) session.Store {
	return &sessionStore{db: db.session}
}

func (s *sessionStore) Save(_ context.Context, id string, sess session.Session) error {
	if err := sess.Check(); err != nil {
		return err
	}
	s.db.mutex.Lock()
	defer s.db.mutex.Unlock()
	s.db.table[id] = sess
	return nil
}

func (s *sessionStore) Load(_ context.Context, id string) (session.Session, error) {
	s.db.mutex.RLock()
	defer s.db.mutex.RUnlock()
	return s.db.table[id], nil
}

func (s *sessionStore) Clear(_ context.Context, id string) error {
	s.db.mutex.Lock()
	defer s.db.mutex.Unlock()
	delete(s.db.table, id)
	return nil
}

func (s *sessionStore) Purge(_ context.Context) (int64, error) {
	s.db.mutex.Lock()
	defer s.db.mutex.Unlock()
	n := int64(len(s.db.table))
	s.db.table = make(map[string]session.Session)
	return n, nil
}
