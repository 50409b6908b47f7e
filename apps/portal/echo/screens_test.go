package echoportal

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlainDede/Delphinium-gestion-site/core/gateway"
	testutil "github.com/AlainDede/Delphinium-gestion-site/tests"
)

func TestNewsgroup(t *testing.T) {
	p := newPortal(t)
	p.api.Update(func(s *testutil.APIState) {
		s.Threads = []gateway.Thread{{
			ID: "t1", Title: "Fuite au parking", Content: "Flaque niveau -1", Author: "mlambert",
			Replies: []gateway.Reply{{Content: "Vu aussi", Author: "jdupont"}},
		}}
	})
	b := p.browser()
	b.login("user")

	checkPage(t, httpTest{wantCode: http.StatusOK, wantBody: []string{"Fuite au parking", `href="/newsgroup?thread=t1"`}, noBody: []string{`id="thread"`}}, b.get("/newsgroup"))
	checkPage(t, httpTest{wantCode: http.StatusOK, wantBody: []string{`id="thread"`, "Flaque niveau -1", "Vu aussi"}}, b.get("/newsgroup?thread=t1"))

	t.Run("create", func(t *testing.T) {
		rec := b.post("/newsgroup/threads", url.Values{"title": {" Ascenseur "}, "content": {"Bloqué au 3e"}})
		require.Equal(t, http.StatusSeeOther, rec.Code)

		calls := p.api.CallsTo(http.MethodPost, "/newsgroup/threads")
		require.Len(t, calls, 1)
		assert.Contains(t, calls[0].Auth, "Bearer ")
		var got gateway.NewThread
		calls[0].Decode(t, &got)
		assert.Equal(t, gateway.NewThread{Title: "Ascenseur", Content: "Bloqué au 3e"}, got)

		checkPage(t, httpTest{wantCode: http.StatusOK, wantBody: []string{"Ascenseur", "Fuite au parking"}}, b.get(rec.Header().Get("Location")))
	})

	t.Run("blank title", func(t *testing.T) {
		before := len(p.api.CallsTo(http.MethodPost, "/newsgroup/threads"))
		rec := b.post("/newsgroup/threads", url.Values{"title": {"   "}, "content": {"Texte conservé"}})
		checkPage(t, httpTest{wantCode: http.StatusBadRequest, wantBody: []string{"ce champ", "Texte conservé"}}, rec)
		assert.Len(t, p.api.CallsTo(http.MethodPost, "/newsgroup/threads"), before)
	})

	t.Run("reply", func(t *testing.T) {
		rec := b.post("/newsgroup/threads/t1/replies", url.Values{"content": {"Réparé ce matin"}})
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/newsgroup?thread=t1", rec.Header().Get("Location"))
		checkPage(t, httpTest{wantCode: http.StatusOK, wantBody: []string{"Réparé ce matin"}}, b.get("/newsgroup?thread=t1"))
	})

	t.Run("reply refused", func(t *testing.T) {
		rec := b.post("/newsgroup/threads/t404/replies", url.Values{"content": {"Perdu"}})
		checkPage(t, httpTest{wantCode: http.StatusBadGateway, wantBody: []string{"opération a échoué"}}, rec)
	})
}

func TestBlog(t *testing.T) {
	tests := []struct {
		name     string
		posts    []gateway.Post
		fail     bool
		path     string
		wantBody []string
		noBody   []string
	}{
		{
			name:     "loaded",
			posts:    []gateway.Post{{ID: "p1", Title: "Assemblée générale", Summary: "Ordre du jour", Content: "Rendez-vous salle commune"}},
			path:     "/blog",
			wantBody: []string{"Assemblée générale", "Ordre du jour", `href="/blog?post=p1"`},
			noBody:   []string{"list-failed", "list-empty", `id="post"`},
		},
		{
			name:     "selected",
			posts:    []gateway.Post{{ID: "p1", Title: "Assemblée générale", Content: "Rendez-vous salle commune"}},
			path:     "/blog?post=p1",
			wantBody: []string{`id="post"`, "Rendez-vous salle commune"},
		},
		{name: "empty", path: "/blog", wantBody: []string{"list-empty"}, noBody: []string{"list-failed"}},
		{name: "failed", fail: true, path: "/blog", wantBody: []string{"list-failed", "Impossible de charger"}, noBody: []string{"list-empty"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPortal(t)
			p.api.Update(func(s *testutil.APIState) { s.Posts = tt.posts })
			if tt.fail {
				p.api.Fail(http.MethodGet, "/blog/posts", http.StatusInternalServerError)
			}
			b := p.browser()
			b.login("user")
			checkPage(t, httpTest{wantCode: http.StatusOK, wantBody: tt.wantBody, noBody: tt.noBody}, b.get(tt.path))
		})
	}
}

func TestCalendar(t *testing.T) {
	p := newPortal(t)
	p.api.Update(func(s *testutil.APIState) {
		s.Events = []gateway.Event{{Date: "2025-10-21", Time: "19:00", Title: "Nettoyage des caves"}}
	})
	b := p.browser()
	b.login("user")

	rec := b.get("/calendar")
	checkPage(t, httpTest{wantCode: http.StatusOK, wantBody: []string{
		"Octobre 2025",
		"Nettoyage des caves",
		`class="today"`,
		"/calendar?year=2025&month=9",
		"/calendar?year=2025&month=11",
	}}, rec)

	calls := p.api.CallsTo(http.MethodGet, "/calendar/events")
	require.Len(t, calls, 1)
	q, err := url.ParseQuery(calls[0].Query)
	require.NoError(t, err)
	assert.Equal(t, "2025", q.Get("year"))
	assert.Equal(t, "10", q.Get("month"))

	t.Run("other month", func(t *testing.T) {
		rec := b.get("/calendar?year=2026&month=1")
		checkPage(t, httpTest{wantCode: http.StatusOK, wantBody: []string{"Janvier 2026", "/calendar?year=2025&month=12"}, noBody: []string{`class="today"`}}, rec)
	})

	t.Run("out of range month", func(t *testing.T) {
		checkPage(t, httpTest{wantCode: http.StatusOK, wantBody: []string{"Octobre 2025"}}, b.get("/calendar?year=2025&month=13"))
	})

	t.Run("failed", func(t *testing.T) {
		p.api.Fail(http.MethodGet, "/calendar/events", http.StatusBadGateway)
		checkPage(t, httpTest{wantCode: http.StatusOK, wantBody: []string{"list-failed", `id="grid"`}, noBody: []string{"Nettoyage des caves"}}, b.get("/calendar"))
	})
}

func TestIncidents(t *testing.T) {
	p := newPortal(t)
	p.api.Update(func(s *testutil.APIState) {
		s.Incidents = []gateway.Incident{{ID: "i1", Title: "Ascenseur en panne", Priority: gateway.PriorityHigh, Status: gateway.StatusOpen}}
	})
	b := p.browser()
	b.login("admin")

	checkPage(t, httpTest{wantCode: http.StatusOK, wantBody: []string{`id="incident-table"`, "priority-high", `action="/incidents/i1/status"`}}, b.get("/incidents"))

	t.Run("create with defaults", func(t *testing.T) {
		rec := b.post("/incidents", url.Values{"title": {"Interphone muet"}})
		require.Equal(t, http.StatusSeeOther, rec.Code)

		calls := p.api.CallsTo(http.MethodPost, "/incidents")
		require.Len(t, calls, 1)
		var got gateway.NewIncident
		calls[0].Decode(t, &got)
		assert.Equal(t, gateway.PriorityMedium, got.Priority)
		assert.Equal(t, gateway.StatusOpen, got.Status)
		checkPage(t, httpTest{wantCode: http.StatusOK, wantBody: []string{"Interphone muet"}}, b.get("/incidents"))
	})

	t.Run("invalid priority", func(t *testing.T) {
		rec := b.post("/incidents", url.Values{"title": {"Porte"}, "priority": {"urgent"}})
		checkPage(t, httpTest{wantCode: http.StatusBadRequest, wantBody: []string{`value="Porte"`}}, rec)
		assert.Len(t, p.api.CallsTo(http.MethodPost, "/incidents"), 1)
	})

	t.Run("status", func(t *testing.T) {
		rec := b.post("/incidents/i1/status", url.Values{"status": {gateway.StatusResolved}})
		require.Equal(t, http.StatusSeeOther, rec.Code)

		calls := p.api.CallsTo(http.MethodPut, "/incidents/i1")
		require.Len(t, calls, 1)
		assert.JSONEq(t, `{"status":"resolved"}`, string(calls[0].Body))
		assert.Equal(t, gateway.StatusResolved, p.api.State().Incidents[0].Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		rec := b.post("/incidents/i1/status", url.Values{"status": {"closed"}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Len(t, p.api.CallsTo(http.MethodPut, "/incidents/i1"), 1)
	})

	t.Run("user is denied the actions", func(t *testing.T) {
		u := p.browser()
		u.login("user")
		checkPage(t, httpTest{wantCode: http.StatusForbidden, wantBody: []string{deniedMarker}}, u.post("/incidents", url.Values{"title": {"Intrus"}}))
		assert.Len(t, p.api.CallsTo(http.MethodPost, "/incidents"), 1)
	})
}

func TestDocumentation(t *testing.T) {
	p := newPortal(t)
	p.api.Update(func(s *testutil.APIState) {
		s.Documents = []gateway.Document{
			{ID: "d1", Name: "Règlement intérieur", Category: "Règlements"},
			{ID: "d2", Name: "PV AG 2024", Category: "Assemblées", Description: "Procès-verbal"},
			{ID: "d3", Name: "Plan du parking"},
		}
	})

	t.Run("user", func(t *testing.T) {
		b := p.browser()
		b.login("user")
		checkPage(t, httpTest{
			wantCode: http.StatusOK,
			wantBody: []string{"Règlements", "Assemblées", "Sans catégorie", `href="/documentation/d1/download"`},
			noBody:   []string{`id="upload"`},
		}, b.get("/documentation"))
		checkPage(t, httpTest{wantCode: http.StatusOK, wantBody: []string{"PV AG 2024"}, noBody: []string{"Règlement intérieur", "Plan du parking"}}, b.get("/documentation?q=verbal"))

		rec := b.upload("/documentation/upload", map[string]string{"name": "Intrus"}, "x.pdf", "application/pdf", []byte("%PDF"))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, p.api.CallsTo(http.MethodPost, "/documents/upload-url"))
	})

	t.Run("download", func(t *testing.T) {
		b := p.browser()
		b.login("user")
		rec := b.get("/documentation/d2/download")
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://files.delphinium.test/d2", rec.Header().Get("Location"))
	})

	t.Run("admin upload", func(t *testing.T) {
		b := p.browser()
		b.login("admin")
		checkPage(t, httpTest{wantCode: http.StatusOK, wantBody: []string{`id="upload"`}}, b.get("/documentation"))

		content := []byte("%PDF-1.4 contrat")
		rec := b.upload("/documentation/upload", map[string]string{"category": "Contrats"}, "contrat-ascenseur.pdf", "application/pdf", content)
		require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())

		state := p.api.State()
		assert.Equal(t, content, state.Uploads["d4"])
		require.Len(t, state.Documents, 4)
		doc := state.Documents[3]
		assert.Equal(t, "d4", doc.ID)
		assert.Equal(t, "contrat-ascenseur.pdf", doc.Name, "the file name stands in for a missing name")
		assert.Equal(t, "Contrats", doc.Category)

		put := p.api.CallsTo(http.MethodPut, "/uploads/d4")
		require.Len(t, put, 1)
		assert.Empty(t, put[0].Auth, "the storage URL is presigned")
		assert.Equal(t, "application/pdf", put[0].ContentType)
	})

	t.Run("oversized upload of unknown length", func(t *testing.T) {
		b := p.browser()
		b.login("admin")
		before := len(p.api.CallsTo(http.MethodPost, "/documents/upload-url"))

		req := b.uploadRequest("/documentation/upload", map[string]string{"name": "Trop gros"}, "gros.bin", "application/octet-stream", make([]byte, 26<<20))
		req.ContentLength = -1
		rec := b.do(req)

		assert.GreaterOrEqual(t, rec.Code, http.StatusBadRequest)
		assert.Len(t, p.api.CallsTo(http.MethodPost, "/documents/upload-url"), before)
	})

	t.Run("oversized upload", func(t *testing.T) {
		b := p.browser()
		b.login("admin")
		req := b.uploadRequest("/documentation/upload", map[string]string{"name": "Trop gros"}, "gros.bin", "application/octet-stream", []byte("x"))
		req.ContentLength = 26 << 20
		assert.Equal(t, http.StatusRequestEntityTooLarge, b.do(req).Code)
	})

	t.Run("admin upload without file", func(t *testing.T) {
		b := p.browser()
		b.login("superadmin")
		rec := b.upload("/documentation/upload", map[string]string{"name": "Vide"}, "", "", nil)
		checkPage(t, httpTest{wantCode: http.StatusBadRequest, wantBody: []string{`id="upload"`, "ce champ est obligatoire", `value="Vide"`}}, rec)
	})
}

func TestAccessRequest(t *testing.T) {
	personal := url.Values{
		"step":      {"0"},
		"firstName": {"Marie"},
		"lastName":  {"Lambert"},
		"email":     {"marie@example.test"},
		"userType":  {"resident"},
	}
	contact := url.Values{
		"step":            {"1"},
		"firstName":       {"Marie"},
		"lastName":        {"Lambert"},
		"email":           {"marie@example.test"},
		"userType":        {"resident"},
		"phone":           {"0470 00 00 00"},
		"address":         {"Rue des Iris 12"},
		"apartmentNumber": {"3B"},
	}
	with := func(v url.Values, kv ...string) url.Values {
		out := url.Values{}
		for k, vs := range v {
			out[k] = append([]string(nil), vs...)
		}
		for i := 0; i+1 < len(kv); i += 2 {
			out.Set(kv[i], kv[i+1])
		}
		return out
	}

	t.Run("full flow", func(t *testing.T) {
		p := newPortal(t)
		b := p.browser()

		checkPage(t, httpTest{wantCode: http.StatusOK, wantBody: []string{`name="firstName"`, `value="0"`}}, b.get("/access-request"))
		checkPage(t, httpTest{wantCode: http.StatusOK, wantBody: []string{`name="phone"`, `value="1"`}}, b.post("/access-request", with(personal, "action", actionNext)))

		rec := b.post("/access-request", with(contact, "action", actionNext))
		checkPage(t, httpTest{wantCode: http.StatusOK, wantBody: []string{`id="summary"`, "Marie Lambert", "3B"}}, rec)
		assert.Empty(t, p.api.CallsTo(http.MethodPost, "/access-request"), "nothing is sent before the last step")

		rec = b.post("/access-request", with(contact, "step", "2", "action", actionSubmit))
		checkPage(t, httpTest{wantCode: http.StatusOK, wantBody: []string{`id="access-sent"`, "Demande envoyée"}, noBody: []string{`id="access-request"`}}, rec)

		calls := p.api.CallsTo(http.MethodPost, "/access-request")
		require.Len(t, calls, 1)
		assert.Empty(t, calls[0].Auth)
		var got gateway.AccessRequest
		calls[0].Decode(t, &got)
		assert.Equal(t, "Marie", got.FirstName)
		assert.Equal(t, "3B", got.ApartmentNumber)
		assert.Empty(t, got.CompanyName)
	})

	t.Run("back keeps values", func(t *testing.T) {
		p := newPortal(t)
		rec := p.browser().post("/access-request", with(contact, "action", actionBack))
		checkPage(t, httpTest{wantCode: http.StatusOK, wantBody: []string{`name="firstName"`, `value="Marie"`, `value="0470 00 00 00"`}}, rec)
	})

	t.Run("missing field", func(t *testing.T) {
		p := newPortal(t)
		b := p.browser()
		rec := b.post("/access-request", with(personal, "email", "", "action", actionNext))
		checkPage(t, httpTest{wantCode: http.StatusBadRequest, wantBody: []string{`name="email"`, "Veuillez compléter"}}, rec)

		rec = b.post("/access-request", with(contact, "step", "2", "phone", "", "action", actionSubmit))
		checkPage(t, httpTest{wantCode: http.StatusBadRequest, wantBody: []string{`name="phone"`}}, rec)
		assert.Empty(t, p.api.CallsTo(http.MethodPost, "/access-request"))
	})

	t.Run("remote failure", func(t *testing.T) {
		p := newPortal(t)
		p.api.Fail(http.MethodPost, "/access-request", http.StatusInternalServerError)
		rec := p.browser().post("/access-request", with(contact, "step", "2", "action", actionSubmit))
		checkPage(t, httpTest{wantCode: http.StatusBadGateway, wantBody: []string{`id="summary"`}, noBody: []string{`id="access-sent"`}}, rec)
	})
}
