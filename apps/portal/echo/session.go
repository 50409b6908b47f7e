package echoportal

import (
	"crypto/sha256"
	"io"
	"net/http"
	"sync"

	ut "github.com/go-playground/universal-translator"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"

	"github.com/AlainDede/Delphinium-gestion-site/core"
	"github.com/AlainDede/Delphinium-gestion-site/core/session"
)

const (
	sessionCookie = "delphinium_sid"
	csrfField     = "_csrf"

	ctxSessionIDKey = "sessionID"
	ctxSessionKey   = "session"
	ctxCSRFKey      = "csrf"
)

// cookieCodec signs and encrypts the session id stored in the browser.
type cookieCodec struct {
	sc     *securecookie.SecureCookie
	secure bool
}

func newCookieCodec(secret string, secure bool) (*cookieCodec, error) {
	if secret == "" {
		return nil, errors.New("secret key is required")
	}
	keys := hkdf.New(sha256.New, []byte(secret), nil, []byte("delphinium session cookie"))
	hashKey := make([]byte, 32)
	blockKey := make([]byte, 32)
	if _, err := io.ReadFull(keys, hashKey); err != nil {
		return nil, errors.Wrap(err, "deriving hash key")
	}
	if _, err := io.ReadFull(keys, blockKey); err != nil {
		return nil, errors.Wrap(err, "deriving block key")
	}

	sc := securecookie.New(hashKey, blockKey)
	sc.MaxAge(0) // lives as long as the server-side record
	return &cookieCodec{sc: sc, secure: secure}, nil
}

func (cc *cookieCodec) cookie(id string) (*http.Cookie, error) {
	value, err := cc.sc.Encode(sessionCookie, id)
	if err != nil {
		return nil, errors.Wrap(err, "encoding session cookie")
	}
	return &http.Cookie{
		Name:     sessionCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   cc.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// id returns the session id carried by the request, or "" when absent or tampered with.
func (cc *cookieCodec) id(r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	var id string
	if err = cc.sc.Decode(sessionCookie, c.Value, &id); err != nil {
		return ""
	}
	if _, err = uuid.Parse(id); err != nil {
		return ""
	}
	return id
}

// localeStore keeps the locale chosen for each session id in memory only.
type localeStore struct {
	mu sync.RWMutex
	m  map[string]core.Locale
}

func newLocaleStore() *localeStore {
	return &localeStore{m: make(map[string]core.Locale)}
}

func (ls *localeStore) get(id string, fallback core.Locale) core.Locale {
	ls.mu.RLock()
	defer ls.mu.RUnlock()
	if l, ok := ls.m[id]; ok {
		return l
	}
	return fallback
}

func (ls *localeStore) set(id string, l core.Locale) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.m[id] = l
}

func (ls *localeStore) clear(id string) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	delete(ls.m, id)
}

// move hands the locale of `from` over to `to`.
func (ls *localeStore) move(from, to string) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if l, ok := ls.m[from]; ok {
		ls.m[to] = l
		delete(ls.m, from)
	}
}

// bindSession issues a fresh session id to the browser.
func (s *server) bindSession(ctx echo.Context) (string, error) {
	id := uuid.NewString()
	cookie, err := s.cookies.cookie(id)
	if err != nil {
		return "", err
	}
	ctx.SetCookie(cookie)
	ctx.Set(ctxSessionIDKey, id)
	return id, nil
}

// sessionMiddleware recomputes the session state of every request from the store.
// A missing or tampered cookie starts a new, unauthenticated session.
func (s *server) sessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id := s.cookies.id(ctx.Request())
		if id == "" {
			var err error
			if id, err = s.bindSession(ctx); err != nil {
				return err
			}
		}
		ctx.Set(ctxSessionIDKey, id)

		sess, err := s.deps.Sessions.Current(ctx.Request().Context(), id)
		if err != nil {
			return errors.Wrap(err, "loading current session")
		}
		ctx.Set(ctxSessionKey, sess)
		return next(ctx)
	}
}

func contextSessionID(ctx echo.Context) string {
	id, _ := ctx.Get(ctxSessionIDKey).(string)
	return id
}

func contextSession(ctx echo.Context) session.Session {
	sess, _ := ctx.Get(ctxSessionKey).(session.Session)
	return sess
}

func (s *server) contextLocale(ctx echo.Context) core.Locale {
	return s.locales.get(contextSessionID(ctx), s.opts.DefaultLocale)
}

func (s *server) translator(ctx echo.Context) ut.Translator {
	trans, _ := s.deps.Uni.GetTranslator(string(s.contextLocale(ctx)))
	return trans
}
