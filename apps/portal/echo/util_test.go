package echoportal

import (
	"bytes"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/AlainDede/Delphinium-gestion-site/core"
	"github.com/AlainDede/Delphinium-gestion-site/core/gateway"
	"github.com/AlainDede/Delphinium-gestion-site/core/session"
	appfs "github.com/AlainDede/Delphinium-gestion-site/fs"
	logsvc "github.com/AlainDede/Delphinium-gestion-site/services/logger"
	inmemdb "github.com/AlainDede/Delphinium-gestion-site/storage/database/inmem"
	testutil "github.com/AlainDede/Delphinium-gestion-site/tests"
)

var testNow = time.Date(2025, time.October, 15, 9, 30, 0, 0, time.UTC)

type httpTest struct {
	name     string
	method   string
	path     string
	groups   []string
	anon     bool
	wantCode int
	wantBody []string
	noBody   []string
}

type portal struct {
	t     *testing.T
	api   *testutil.FakeAPI
	store session.Store
	srv   Server
}

func newPortal(t *testing.T, client ...*gateway.Client) *portal {
	t.Helper()

	api := testutil.NewFakeAPI(t)
	cli := api.Client(t)
	if len(client) > 0 {
		cli = client[0]
	}

	uni, err := core.NewUniversalTranslator()
	require.NoError(t, err)
	validate := validator.New()
	require.NoError(t, core.InitValidators(validate, uni))

	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), &core.Config{Env: "TEST"})
	logger.Enable(false)

	store := inmemdb.NewSessionStore(inmemdb.Open())
	srv, err := NewServer(
		&Options{
			TestMode:       true,
			DisableReqLogs: true,
			SecretKey:      "test-secret-key",
			DefaultLocale:  core.LocaleFR,
			Now:            func() time.Time { return testNow },
		},
		&Deps{
			Logger:    logger,
			Sessions:  session.NewManager(store),
			API:       cli,
			Uni:       uni,
			Validate:  validate,
			Templates: appfs.FS,
		},
	)
	require.NoError(t, err)
	return &portal{t: t, api: api, store: store, srv: srv}
}

func (ls *localeStore) size() int {
	ls.mu.RLock()
	defer ls.mu.RUnlock()
	return len(ls.m)
}

// browser keeps cookies between requests, like a real one.
type browser struct {
	t   *testing.T
	p   *portal
	jar map[string]*http.Cookie
}

func (p *portal) browser() *browser {
	return &browser{t: p.t, p: p, jar: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.jar {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	rec := httptest.NewRecorder()
	b.p.srv.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.jar, c.Name)
			continue
		}
		b.jar[c.Name] = c
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) csrf() string {
	if _, ok := b.jar[csrfField]; !ok {
		b.get("/")
	}
	c, ok := b.jar[csrfField]
	require.True(b.t, ok, "no csrf cookie")
	return c.Value
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	form.Set(csrfField, b.csrf())
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return b.do(req)
}

func (b *browser) uploadRequest(path string, fields map[string]string, fileName, contentType string, content []byte) *http.Request {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fields[csrfField] = b.csrf()
	for k, v := range fields {
		require.NoError(b.t, w.WriteField(k, v))
	}
	if fileName != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(b.t, err)
		_, err = part.Write(content)
		require.NoError(b.t, err)
	}
	require.NoError(b.t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func (b *browser) upload(path string, fields map[string]string, fileName, contentType string, content []byte) *httptest.ResponseRecorder {
	return b.do(b.uploadRequest(path, fields, fileName, contentType, content))
}

// login signs in with an identity token naming `groups`.
func (b *browser) login(groups ...string) {
	b.t.Helper()
	tokens := testutil.MakeTokens(b.t, groups...)
	b.p.api.Update(func(s *testutil.APIState) { s.Tokens = tokens })
	rec := b.post("/login", url.Values{"userid": {"jdupont"}, "password": {"secret"}})
	require.Equal(b.t, http.StatusSeeOther, rec.Code, rec.Body.String())
}

func (b *browser) sessionID() string {
	c, ok := b.jar[sessionCookie]
	if !ok {
		return ""
	}
	return b.p.srv.(*server).cookies.id(&http.Request{Header: http.Header{"Cookie": {c.Name + "=" + c.Value}}})
}

func checkPage(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	body := rec.Body.String()
	for _, want := range tt.wantBody {
		if !strings.Contains(body, want) {
			t.Errorf("failed! body does not contain %q", want)
		}
	}
	for _, unwanted := range tt.noBody {
		if strings.Contains(body, unwanted) {
			t.Errorf("failed! body contains %q", unwanted)
		}
	}
}
