package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/AlainDede/Delphinium-gestion-site/core/gateway"
	"github.com/AlainDede/Delphinium-gestion-site/core/session"
)

// Call is one request received by the fake API.
type Call struct {
	Method      string
	Path        string
	Query       string
	Auth        string
	ContentType string
	Body        []byte
}

// Decode unmarshals the JSON body of the call into `v`.
func (c Call) Decode(t testing.TB, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(c.Body, v); err != nil {
		t.Fatalf("decoding %s %s body: %v", c.Method, c.Path, err)
	}
}

// APIState is the data served by the fake API.
type APIState struct {
	Tokens session.Tokens
	// Password is the only accepted password. Empty accepts any.
	Password string
	// WrapLogin answers the login in the proxy shape {"body": {...}}.
	WrapLogin bool

	Threads        []gateway.Thread
	Posts          []gateway.Post
	Events         []gateway.Event
	Incidents      []gateway.Incident
	Documents      []gateway.Document
	AccessRequests []gateway.AccessRequest
	Uploads        map[string][]byte
}

// FakeAPI is an in-process stand-in for the remote condominium API.
type FakeAPI struct {
	URL string

	mu       sync.Mutex
	state    APIState
	calls    []Call
	failures map[string]int
	server   *httptest.Server
}

// NewFakeAPI starts a fake API closed at the end of the test.
func NewFakeAPI(t testing.TB) *FakeAPI {
	t.Helper()
	api := &FakeAPI{
		state:    APIState{Uploads: map[string][]byte{}},
		failures: map[string]int{},
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(api.record)

	e.POST("/auth/login", api.login)
	e.POST("/access-request", api.accessRequest)
	e.PUT("/uploads/:id", api.upload)

	g := e.Group("", api.requireBearer)
	g.GET("/newsgroup/threads", api.listThreads)
	g.POST("/newsgroup/threads", api.createThread)
	g.POST("/newsgroup/threads/:id/replies", api.reply)
	g.GET("/blog/posts", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"posts": api.state.Posts})
	})
	g.GET("/calendar/events", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"events": api.state.Events})
	})
	g.GET("/incidents", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"incidents": api.state.Incidents})
	})
	g.POST("/incidents", api.createIncident)
	g.PUT("/incidents/:id", api.updateIncident)
	g.GET("/documents", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"documents": api.state.Documents})
	})
	g.POST("/documents/upload-url", api.uploadURL)
	g.POST("/documents", api.registerDocument)
	g.GET("/documents/:id/download-url", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"downloadUrl": "https://files.delphinium.test/" + c.Param("id")})
	})

	api.server = httptest.NewServer(e)
	api.URL = api.server.URL
	t.Cleanup(api.server.Close)
	return api
}

// Client returns a gateway client pointed at the fake API.
func (api *FakeAPI) Client(t testing.TB) *gateway.Client {
	t.Helper()
	cli, err := gateway.New(gateway.Options{BaseURL: api.URL})
	if err != nil {
		t.Fatalf("gateway.New() failed: %v", err)
	}
	return cli
}

// Update mutates the served state.
func (api *FakeAPI) Update(fn func(s *APIState)) {
	api.mu.Lock()
	defer api.mu.Unlock()
	fn(&api.state)
}

// State returns a copy of the served state.
func (api *FakeAPI) State() APIState {
	api.mu.Lock()
	defer api.mu.Unlock()
	return api.state
}

// Fail makes every `method` request to `path` answer `status`.
func (api *FakeAPI) Fail(method, path string, status int) {
	api.mu.Lock()
	defer api.mu.Unlock()
	api.failures[method+" "+path] = status
}

// Calls returns the requests received so far, in order.
func (api *FakeAPI) Calls() []Call {
	api.mu.Lock()
	defer api.mu.Unlock()
	return append([]Call(nil), api.calls...)
}

// CallsTo returns the requests received for `method` and `path`.
func (api *FakeAPI) CallsTo(method, path string) []Call {
	var calls []Call
	for _, c := range api.Calls() {
		if c.Method == method && c.Path == path {
			calls = append(calls, c)
		}
	}
	return calls
}

// record logs every call and holds the lock for the duration of the handler.
func (api *FakeAPI) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return err
		}
		req.Body = io.NopCloser(strings.NewReader(string(body)))

		api.mu.Lock()
		defer api.mu.Unlock()
		api.calls = append(api.calls, Call{
			Method:      req.Method,
			Path:        req.URL.Path,
			Query:       req.URL.RawQuery,
			Auth:        req.Header.Get(echo.HeaderAuthorization),
			ContentType: req.Header.Get(echo.HeaderContentType),
			Body:        body,
		})
		if status, ok := api.failures[req.Method+" "+req.URL.Path]; ok {
			return c.String(status, http.StatusText(status))
		}
		return next(c)
	}
}

func (api *FakeAPI) requireBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") == "" {
			return c.String(http.StatusUnauthorized, "missing bearer token")
		}
		return next(c)
	}
}

func (api *FakeAPI) login(c echo.Context) error {
	var creds struct {
		UserID   string `json:"userid"`
		Password string `json:"password"`
	}
	if err := c.Bind(&creds); err != nil || creds.UserID == "" {
		return c.String(http.StatusBadRequest, "bad request")
	}
	if api.state.Password != "" && creds.Password != api.state.Password {
		return c.String(http.StatusUnauthorized, "Incorrect username or password.")
	}
	if api.state.WrapLogin {
		return c.JSON(http.StatusOK, echo.Map{"statusCode": http.StatusOK, "body": api.state.Tokens})
	}
	return c.JSON(http.StatusOK, api.state.Tokens)
}

func (api *FakeAPI) accessRequest(c echo.Context) error {
	var req gateway.AccessRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "bad request")
	}
	api.state.AccessRequests = append(api.state.AccessRequests, req)
	return c.JSON(http.StatusCreated, echo.Map{"message": "ok"})
}

func (api *FakeAPI) listThreads(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"threads": api.state.Threads})
}

func (api *FakeAPI) createThread(c echo.Context) error {
	var in gateway.NewThread
	if err := c.Bind(&in); err != nil {
		return c.String(http.StatusBadRequest, "bad request")
	}
	api.state.Threads = append(api.state.Threads, gateway.Thread{
		ID:      fmt.Sprintf("t%d", len(api.state.Threads)+1),
		Title:   in.Title,
		Content: in.Content,
		Author:  "jdupont",
	})
	return c.NoContent(http.StatusCreated)
}

func (api *FakeAPI) reply(c echo.Context) error {
	var in gateway.NewReply
	if err := c.Bind(&in); err != nil {
		return c.String(http.StatusBadRequest, "bad request")
	}
	for i := range api.state.Threads {
		if api.state.Threads[i].ID == c.Param("id") {
			api.state.Threads[i].Replies = append(api.state.Threads[i].Replies, gateway.Reply{Content: in.Content, Author: "jdupont"})
			return c.NoContent(http.StatusCreated)
		}
	}
	return c.String(http.StatusNotFound, "thread not found")
}

func (api *FakeAPI) createIncident(c echo.Context) error {
	var in gateway.NewIncident
	if err := c.Bind(&in); err != nil {
		return c.String(http.StatusBadRequest, "bad request")
	}
	api.state.Incidents = append(api.state.Incidents, gateway.Incident{
		ID:          fmt.Sprintf("i%d", len(api.state.Incidents)+1),
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Status:      in.Status,
	})
	return c.NoContent(http.StatusCreated)
}

func (api *FakeAPI) updateIncident(c echo.Context) error {
	var in gateway.StatusUpdate
	if err := c.Bind(&in); err != nil {
		return c.String(http.StatusBadRequest, "bad request")
	}
	for i := range api.state.Incidents {
		if api.state.Incidents[i].ID == c.Param("id") {
			api.state.Incidents[i].Status = in.Status
			return c.NoContent(http.StatusOK)
		}
	}
	return c.String(http.StatusNotFound, "incident not found")
}

func (api *FakeAPI) uploadURL(c echo.Context) error {
	var in gateway.UploadRequest
	if err := c.Bind(&in); err != nil {
		return c.String(http.StatusBadRequest, "bad request")
	}
	id := fmt.Sprintf("d%d", len(api.state.Documents)+1)
	return c.JSON(http.StatusOK, gateway.UploadTicket{UploadURL: api.URL + "/uploads/" + id, DocumentID: id})
}

func (api *FakeAPI) upload(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	api.state.Uploads[c.Param("id")] = body
	return c.NoContent(http.StatusOK)
}

func (api *FakeAPI) registerDocument(c echo.Context) error {
	var in gateway.DocumentRegistration
	if err := c.Bind(&in); err != nil {
		return c.String(http.StatusBadRequest, "bad request")
	}
	if _, ok := api.state.Uploads[in.DocumentID]; !ok {
		return c.String(http.StatusConflict, "file not uploaded")
	}
	api.state.Documents = append(api.state.Documents, gateway.Document{
		ID:          in.DocumentID,
		Name:        in.Name,
		FileName:    in.FileName,
		Category:    in.Category,
		Description: in.Description,
	})
	return c.NoContent(http.StatusCreated)
}
