package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/AlainDede/Delphinium-gestion-site/core/session"
)

// NowFunc is mockable.
var NowFunc = time.Now

type sessionRow struct {
	ID           string      `db:"id"`
	AccessToken  null.String `db:"access_token"`
	IDToken      null.String `db:"id_token"`
	RefreshToken null.String `db:"refresh_token"`
	Role         null.String `db:"role"`
}

func (row sessionRow) toSession() session.Session {
	return session.Session{
		AccessToken:   row.AccessToken.String,
		IdentityToken: row.IDToken.String,
		RefreshToken:  row.RefreshToken.String,
		Role:          session.Role(row.Role.String),
	}
}

func optional(s string) null.String {
	return null.NewString(s, s != "")
}

type sessionStore struct {
	db *sqlx.DB
}

var _ session.Store = (*sessionStore)(nil)

// NewSessionStore returns a session.Store backed by the `portal_sessions` table (postgres or sqlite).
func NewSessionStore(db *sqlx.DB) session.Store {
	return &sessionStore{db: db}
}

func (s *sessionStore) Save(ctx context.Context, id string, sess session.Session) error {
	if err := sess.Check(); err != nil {
		return err
	}
	// a single upsert: all four fields change together
	q := s.db.Rebind(`
		INSERT INTO portal_sessions (id, access_token, id_token, refresh_token, role, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			access_token = excluded.access_token,
			id_token = excluded.id_token,
			refresh_token = excluded.refresh_token,
			role = excluded.role,
			updated_at = excluded.updated_at`)
	_, err := s.db.ExecContext(ctx, q,
		id,
		optional(sess.AccessToken),
		optional(sess.IdentityToken),
		optional(sess.RefreshToken),
		optional(sess.Role.String()),
		NowFunc().UTC(),
	)
	return errors.Wrap(err, "upserting session")
}

func (s *sessionStore) Load(ctx context.Context, id string) (session.Session, error) {
	var row sessionRow
	q := s.db.Rebind(`SELECT id, access_token, id_token, refresh_token, role FROM portal_sessions WHERE id = ?`)
	if err := s.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return session.Session{}, nil
		}
		return session.Session{}, errors.Wrap(err, "selecting session")
	}
	return row.toSession(), nil
}

func (s *sessionStore) Clear(ctx context.Context, id string) error {
	q := s.db.Rebind(`DELETE FROM portal_sessions WHERE id = ?`)
	_, err := s.db.ExecContext(ctx, q, id)
	return errors.Wrap(err, "deleting session")
}

func (s *sessionStore) Purge(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM portal_sessions`)
	if err != nil {
		return 0, errors.Wrap(err, "deleting sessions")
	}
	n, err := res.RowsAffected()
	return n, errors.Wrap(err, "counting deleted sessions")
}
