package main

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlainDede/Delphinium-gestion-site/core/gateway"
	"github.com/AlainDede/Delphinium-gestion-site/core/session"
	"github.com/AlainDede/Delphinium-gestion-site/storage/database"
	sqlxrepos "github.com/AlainDede/Delphinium-gestion-site/storage/database/sqlx"
	testutil "github.com/AlainDede/Delphinium-gestion-site/tests"
)

var store session.Store

func setup(t *testing.T) (*commandLine, *testutil.FakeAPI, *bytes.Buffer) {
	// set up DB & store
	db, err := sqlx.Open(database.EngineSQLite, ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db, database.EngineSQLite))
	store = sqlxrepos.NewSessionStore(db)

	api := testutil.NewFakeAPI(t)
	out := new(bytes.Buffer)

	// start CLI
	return &commandLine{
		db:       db,
		engine:   database.EngineSQLite,
		sessions: session.NewManager(store),
		api:      api.Client(t),
		out:      out,
	}, api, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

func Test_commandLine_migrate(t *testing.T) {
	cli, _, _ := setup(t)

	gooseRunFunc = func(_ context.Context, command string, db *sql.DB, dir string, args ...string) error {
		switch command {
		case "up", "up-by-one", "down", "fix", "redo", "reset", "status", "version": // pass
		case "up-to":
			if len(args) == 0 {
				return fmt.Errorf("up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		case "create":
			if len(args) == 0 {
				return fmt.Errorf("create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]")
			}
		case "down-to":
			if len(args) == 0 {
				return fmt.Errorf("down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		if dir != database.MigrationsDir {
			return fmt.Errorf("unexpected migrations dir %q", dir)
		}
		return nil
	}

	tests := []cliTest{
		{name: "no subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up-to: no args", args: []string{"migrate", "up-to"}, wantErrStr: "up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION"},
		{name: "up-to: non-int arg", args: []string{"migrate", "up-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "create: no args", args: []string{"migrate", "create"}, wantErrStr: "create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]"},
		{name: "down-to: no args", args: []string{"migrate", "down-to"}, wantErrStr: "down-to must be of form: goose [OPTIONS] DRIVER DBSTRING down-to VERSION"},
		{name: "down-to: non-int arg", args: []string{"migrate", "down-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "up-by-one", args: []string{"migrate", "up-by-one"}},
		{name: "up-to", args: []string{"migrate", "up-to", "2"}},
		{name: "down", args: []string{"migrate", "down"}},
		{name: "down-to", args: []string{"migrate", "down-to", "1"}},
		{name: "redo", args: []string{"migrate", "redo"}},
		{name: "reset", args: []string{"migrate", "reset"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "version", args: []string{"migrate", "version"}},
		{name: "create", args: []string{"migrate", "create", "sessions_expiry", "sql"}},
		{name: "fix", args: []string{"migrate", "fix"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != nil {
				if tt.wantErr != nil {
					if err != tt.wantErr {
						t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
					}
				} else if tt.wantErrStr != "" {
					if err.Error() != tt.wantErrStr {
						t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
					}
				} else {
					t.Errorf("cli.run() unexpected error = %v", err)
				}
			}
		})
	}
}

func Test_commandLine_purgeSessions(t *testing.T) {
	cli, _, out := setup(t)
	ctx := context.Background()

	for _, id := range []string{"s1", "s2"} {
		require.NoError(t, store.Save(ctx, id, session.Session{AccessToken: "a-" + id, Role: session.RoleUser}))
	}

	require.NoError(t, cli.run([]string{"admin", "purgesessions"}))
	assert.Contains(t, out.String(), "2 session(s) cleared")

	sess, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, sess.IsEmpty())
}

func Test_commandLine_checkLogin(t *testing.T) {
	cli, api, out := setup(t)
	api.Update(func(s *testutil.APIState) {
		s.Tokens = testutil.MakeTokens(t, "admin")
		s.Password = "secret"
	})

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"checklogin"}, wantErr: errHelp},
		{name: "userid but no password", args: []string{"checklogin", "-userid", "jdupont"}, wantErr: errHelp},
		{name: "wrong password", args: []string{"checklogin", "-userid", "jdupont"}, extra: extra{pwd: "lol"}, wantErr: gateway.ErrInvalidCredentials},
		{name: "signed in", args: []string{"checklogin", "-userid", "jdupont"}, extra: extra{pwd: "secret"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			err := cli.run(args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), `signed in as "jdupont" (role admin)`)
		})
	}
}
