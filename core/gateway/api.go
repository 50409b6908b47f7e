package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) ListThreads(ctx context.Context, token string) ([]Thread, error) {
	var resp struct {
		Threads []Thread `json:"threads"`
	}
	err := c.do(ctx, call{op: "list threads", method: http.MethodGet, url: c.endpoint(nil, "newsgroup", "threads"), token: token, out: &resp})
	return resp.Threads, err
}

func (c *Client) CreateThread(ctx context.Context, token string, thread NewThread) error {
	return c.do(ctx, call{op: "create thread", method: http.MethodPost, url: c.endpoint(nil, "newsgroup", "threads"), token: token, in: thread})
}

func (c *Client) ReplyToThread(ctx context.Context, token, threadID string, reply NewReply) error {
	u := c.endpoint(nil, "newsgroup", "threads", threadID, "replies")
	return c.do(ctx, call{op: "reply to thread", method: http.MethodPost, url: u, token: token, in: reply})
}

func (c *Client) ListPosts(ctx context.Context, token string) ([]Post, error) {
	var resp struct {
		Posts []Post `json:"posts"`
	}
	err := c.do(ctx, call{op: "list posts", method: http.MethodGet, url: c.endpoint(nil, "blog", "posts"), token: token, out: &resp})
	return resp.Posts, err
}

// ListEvents returns the events of a month; `month` is 1-based.
func (c *Client) ListEvents(ctx context.Context, token string, year, month int) ([]Event, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(month))

	var resp struct {
		Events []Event `json:"events"`
	}
	err := c.do(ctx, call{op: "list events", method: http.MethodGet, url: c.endpoint(q, "calendar", "events"), token: token, out: &resp})
	return resp.Events, err
}

func (c *Client) ListIncidents(ctx context.Context, token string) ([]Incident, error) {
	var resp struct {
		Incidents []Incident `json:"incidents"`
	}
	err := c.do(ctx, call{op: "list incidents", method: http.MethodGet, url: c.endpoint(nil, "incidents"), token: token, out: &resp})
	return resp.Incidents, err
}

func (c *Client) CreateIncident(ctx context.Context, token string, incident NewIncident) error {
	incident.Defaults()
	return c.do(ctx, call{op: "create incident", method: http.MethodPost, url: c.endpoint(nil, "incidents"), token: token, in: incident})
}

func (c *Client) UpdateIncidentStatus(ctx context.Context, token, incidentID, status string) error {
	u := c.endpoint(nil, "incidents", incidentID)
	return c.do(ctx, call{op: "update incident", method: http.MethodPut, url: u, token: token, in: StatusUpdate{Status: status}})
}

// SubmitAccessRequest is anonymous: no bearer token is sent.
func (c *Client) SubmitAccessRequest(ctx context.Context, req AccessRequest) error {
	return c.do(ctx, call{op: "submit access request", method: http.MethodPost, url: c.endpoint(nil, "access-request"), anon: true, in: req})
}
