package echoportal

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/AlainDede/Delphinium-gestion-site/core"
	"github.com/AlainDede/Delphinium-gestion-site/core/access"
	"github.com/AlainDede/Delphinium-gestion-site/core/gateway"
)

const homePath = "/newsgroup"

type loginForm struct {
	UserID   string `form:"userid" validate:"required,notblank"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

type loginData struct {
	UserID string
	Next   string
}

// guard substitutes the login screen for anonymous visitors and the access-denied placeholder
// for signed in roles the section is closed to. The same rule table filters the navigation.
func (s *server) guard(section access.Section) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess := contextSession(ctx)
			if access.CanAccess(section, sess.Role) {
				return next(ctx)
			}
			if !sess.Authenticated() {
				return s.renderLogin(ctx, http.StatusUnauthorized, loginData{Next: section.Path()}, "", nil)
			}
			return s.render(ctx, http.StatusForbidden, "denied", s.newPage(ctx, section, nil))
		}
	}
}

// permit refuses `action` to roles the policy does not grant it to.
func (s *server) permit(action access.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !access.CanPerform(action, contextSession(ctx).Role) {
				return errHttpForbidden
			}
			return next(ctx)
		}
	}
}

func (s *server) renderLogin(ctx echo.Context, code int, data loginData, msgKey string, err error) error {
	p := s.newPage(ctx, "", data).withErrors(msgKey, err)
	p.Title = "login.title"
	return s.render(ctx, code, "login", p)
}

func (s *server) home(ctx echo.Context) error {
	if contextSession(ctx).Authenticated() {
		return ctx.Redirect(http.StatusFound, homePath)
	}
	return s.renderLogin(ctx, http.StatusOK, loginData{}, "", nil)
}

func (s *server) login(ctx echo.Context) error {
	var form loginForm
	if err := ctx.Bind(&form); err != nil {
		return errors.Wrap(err, "binding login form")
	}
	form.UserID = core.CleanString(form.UserID)
	data := loginData{UserID: form.UserID, Next: safeNext(form.Next)}

	if err := s.deps.Validate.Struct(form); err != nil {
		return s.renderLogin(ctx, http.StatusBadRequest, data, "", err)
	}

	tokens, err := s.deps.API.Login(ctx.Request().Context(), form.UserID, form.Password)
	switch errors.Cause(err) {
	case nil:
	case gateway.ErrInvalidCredentials:
		return s.renderLogin(ctx, http.StatusUnauthorized, data, "login.invalid", nil)
	default:
		s.deps.Logger.Warn("login failed", err)
		return s.renderLogin(ctx, http.StatusBadGateway, data, "login.connection", nil)
	}

	// a new id on every login: the anonymous id is never promoted
	oldID := contextSessionID(ctx)
	newID, err := s.bindSession(ctx)
	if err != nil {
		return err
	}
	if _, err = s.deps.Sessions.Login(ctx.Request().Context(), newID, tokens); err != nil {
		return errors.Wrap(err, "starting session")
	}
	if err = s.deps.Sessions.Logout(ctx.Request().Context(), oldID); err != nil {
		s.deps.Logger.Warn("clearing anonymous session", err)
	}
	s.locales.move(oldID, newID)

	next := homePath
	if data.Next != "" {
		next = data.Next
	}
	return ctx.Redirect(http.StatusSeeOther, next)
}

// logout clears the session and its locale unconditionally, whatever the current screen.
func (s *server) logout(ctx echo.Context) error {
	id := contextSessionID(ctx)
	if err := s.deps.Sessions.Logout(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "ending session")
	}
	s.locales.clear(id)
	return ctx.Redirect(http.StatusSeeOther, "/")
}

func (s *server) setLocale(ctx echo.Context) error {
	locale := core.ParseLocale(ctx.FormValue("locale"), s.opts.DefaultLocale)
	s.locales.set(contextSessionID(ctx), locale)

	back := safeNext(ctx.FormValue("next"))
	if back == "" {
		back = "/"
	}
	return ctx.Redirect(http.StatusSeeOther, back)
}

// safeNext keeps only local paths, so a form cannot redirect off site.
func safeNext(next string) string {
	next = strings.TrimSpace(next)
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}
