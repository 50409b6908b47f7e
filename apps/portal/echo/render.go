package echoportal

import (
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/AlainDede/Delphinium-gestion-site/core"
	"github.com/AlainDede/Delphinium-gestion-site/core/access"
	"github.com/AlainDede/Delphinium-gestion-site/core/session"
)

const (
	templatesDir   = "templates"
	layoutTemplate = "layout.html"
)

var templateFuncs = template.FuncMap{
	"add":   func(a, b int) int { return a + b },
	"lower": strings.ToLower,
	"initial": func(s string) string {
		for _, r := range s {
			return strings.ToUpper(string(r))
		}
		return "?"
	},
}

// renderer executes one template set per page, each made of the shared layout plus the page itself.
type renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*renderer)(nil)

func newRenderer(fsys fs.FS) (*renderer, error) {
	layout, err := template.New(layoutTemplate).Funcs(templateFuncs).ParseFS(fsys, path.Join(templatesDir, layoutTemplate))
	if err != nil {
		return nil, errors.Wrap(err, "parsing layout")
	}
	files, err := fs.Glob(fsys, path.Join(templatesDir, "*.html"))
	if err != nil {
		return nil, errors.Wrap(err, "listing templates")
	}

	r := &renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		if name+".html" == layoutTemplate {
			continue
		}
		tmpl, err := template.Must(layout.Clone()).ParseFS(fsys, file)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", file)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return errors.Errorf("template %q not found", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

type navItem struct {
	Path   string
	Label  string
	Active bool
}

// page is the data every template receives. Screen specific data goes in Data.
type page struct {
	Title     string
	Active    access.Section
	Locale    core.Locale
	Locales   []core.Locale
	Session   session.Session
	User      string
	Nav       []navItem
	CanUpload bool
	CSRF      string
	Path      string
	Error     string
	Errors    map[string]string
	Data      interface{}

	trans ut.Translator
}

// T translates `key` in the page locale.
func (p page) T(key string, params ...string) string {
	return core.Translate(p.trans, key, params...)
}

// Err returns the validation message of `field`, if any.
func (p page) Err(field string) string {
	return p.Errors[field]
}

func (p page) Authenticated() bool {
	return p.Session.Authenticated()
}

func (s *server) newPage(ctx echo.Context, section access.Section, data interface{}) *page {
	sess := contextSession(ctx)
	trans := s.translator(ctx)
	csrf, _ := ctx.Get(ctxCSRFKey).(string)

	p := &page{
		Title:     section.LabelKey(),
		Active:    section,
		Locale:    s.contextLocale(ctx),
		Locales:   core.Locales,
		Session:   sess,
		CanUpload: access.CanPerform(access.UploadDocument, sess.Role),
		CSRF:      csrf,
		Path:      ctx.Request().URL.RequestURI(),
		Data:      data,
		trans:     trans,
	}
	if section == "" {
		p.Title = "app.title"
	}
	// the locale switch returns here; a re-rendered form post has no page to return to
	if ctx.Request().Method != http.MethodGet {
		p.Path = "/"
		if section != "" {
			p.Path = section.Path()
		}
	}
	if sess.Authenticated() {
		claims := session.DecodeClaims(sess.IdentityToken)
		p.User = core.FirstNonEmpty(claims.Username, claims.Email)
		for _, sec := range access.Visible(sess.Role) {
			p.Nav = append(p.Nav, navItem{
				Path:   sec.Path(),
				Label:  core.Translate(trans, sec.LabelKey()),
				Active: sec == section,
			})
		}
	}
	return p
}

// withErrors attaches a general error message key and the translated field errors of `err`, if any.
func (p *page) withErrors(msgKey string, err error) *page {
	if msgKey != "" {
		p.Error = p.T(msgKey)
	}
	if err == nil {
		return p
	}
	var vErr *core.ValidationError
	if errors.As(core.TranslateValidation(err, p.trans), &vErr) {
		p.Errors = vErr.Messages()
	}
	return p
}

func (s *server) render(ctx echo.Context, code int, name string, p *page) error {
	return ctx.Render(code, name, p)
}
