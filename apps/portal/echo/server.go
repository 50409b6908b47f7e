// Package echoportal is the server-rendered condominium portal.
// It owns the browser session on the server side and talks to the remote API on behalf of the browser.
package echoportal

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"

	"github.com/AlainDede/Delphinium-gestion-site/core"
	"github.com/AlainDede/Delphinium-gestion-site/core/gateway"
	"github.com/AlainDede/Delphinium-gestion-site/core/session"
)

type (
	Options struct {
		Address        string
		Debug          bool
		TestMode       bool
		DisableReqLogs bool
		CookieSecure   bool
		SecretKey      string
		DefaultLocale  core.Locale
		// ShutdownSignal is called whenever a core.shutdown error is caught.
		ShutdownSignal func()
		// Now defaults to time.Now.
		Now func() time.Time
	}

	Deps struct {
		Logger    core.Logger
		Sessions  *session.Manager
		API       *gateway.Client
		Uni       *ut.UniversalTranslator
		Validate  *validator.Validate
		Templates fs.FS
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts     *Options
		deps     *Deps
		app      *echo.Echo
		cookies  *cookieCodec
		locales  *localeStore
		renderer *renderer
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options, deps *Deps) (Server, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ShutdownSignal == nil {
		opts.ShutdownSignal = func() {}
	}
	if opts.DefaultLocale == "" {
		opts.DefaultLocale = core.LocaleFR
	}

	cookies, err := newCookieCodec(opts.SecretKey, opts.CookieSecure)
	if err != nil {
		return nil, errors.Wrap(err, "creating cookie codec")
	}
	rdr, err := newRenderer(deps.Templates)
	if err != nil {
		return nil, errors.Wrap(err, "parsing templates")
	}

	s := &server{
		opts:     opts,
		deps:     deps,
		app:      echo.New(),
		cookies:  cookies,
		locales:  newLocaleStore(),
		renderer: rdr,
	}
	s.setup()
	return s, nil
}

func (s *server) setup() {
	s.app.HideBanner = true
	s.app.Debug = s.opts.Debug
	s.app.Renderer = s.renderer
	s.app.HTTPErrorHandler = s.newAppHTTPErrorHandler()

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Pre(uploadLimit())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.opts.Debug || s.opts.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "same-origin",
	}))
	s.app.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "form:" + csrfField,
		CookieName:     csrfField,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   s.opts.CookieSecure,
		CookieSameSite: http.SameSiteLaxMode,
	}))
	s.app.Use(s.sessionMiddleware)

	s.app.GET("/", s.home)
	s.app.POST("/login", s.login)
	s.app.POST("/logout", s.logout)
	s.app.POST("/locale", s.setLocale)

	s.registerNewsgroup()
	s.registerBlog()
	s.registerCalendar()
	s.registerIncidents()
	s.registerDocumentation()
	s.registerAccessRequest()
}

func (s *server) Start() {
	if err := s.app.Start(s.opts.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.app.Logger.Fatal(err)
	}
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
