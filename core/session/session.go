package session

import "github.com/pkg/errors"

var (
	ErrPartialSession = errors.New("session must carry both an access token and a role")
	ErrNoAccessToken  = errors.New("login returned no access token")
)

// Tokens is what the auth gateway hands back on a successful login.
type Tokens struct {
	AccessToken  string `json:"AccessToken"`
	IDToken      string `json:"IdToken"`
	RefreshToken string `json:"RefreshToken"`
}

// Session is the authenticated-state bundle of one browser.
// It is either fully empty or carries both AccessToken and Role.
type Session struct {
	AccessToken   string
	IdentityToken string
	RefreshToken  string
	Role          Role
}

// State of the router/shell.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// New builds the Session for freshly issued tokens.
func New(tokens Tokens, role Role) Session {
	return Session{
		AccessToken:   tokens.AccessToken,
		IdentityToken: tokens.IDToken,
		RefreshToken:  tokens.RefreshToken,
		Role:          role,
	}
}

func (s Session) Authenticated() bool {
	return s.AccessToken != "" && s.Role != RoleNone
}

func (s Session) IsEmpty() bool {
	return s == Session{}
}

func (s Session) State() State {
	if s.Authenticated() {
		return Authenticated
	}
	return Unauthenticated
}

// Check returns ErrPartialSession unless the session is complete enough to be stored.
func (s Session) Check() error {
	if !s.Authenticated() {
		return ErrPartialSession
	}
	return nil
}
