// Package gateway is the client of the remote condominium API.
// Every call takes the caller's context so an abandoned page cancels its in-flight request.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const maxErrorBody = 4 << 10

type Options struct {
	BaseURL string
	// Timeout bounds every call. Zero means no timeout.
	Timeout time.Duration
	// HTTPClient overrides the transport. Its Timeout is replaced by Timeout.
	HTTPClient *http.Client
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
}

func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("api base URL is required")
	}
	u, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parsing api base URL")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("invalid api base URL %q", opts.BaseURL)
	}

	cli := &http.Client{}
	if opts.HTTPClient != nil {
		c := *opts.HTTPClient
		cli = &c
	}
	cli.Timeout = opts.Timeout
	return &Client{baseURL: u, http: cli}, nil
}

// BaseURL returns the API endpoint all paths are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// endpoint appends the raw path `segments` to the base URL, escaping each one once.
func (c *Client) endpoint(query url.Values, segments ...string) string {
	u := *c.baseURL
	decoded, escaped := u.Path, u.EscapedPath()
	for _, seg := range segments {
		decoded += "/" + seg
		escaped += "/" + url.PathEscape(seg)
	}
	u.Path, u.RawPath = decoded, escaped
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// bearer returns a client attaching `token` to every request.
func (c *Client) bearer(token string) *http.Client {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	return &http.Client{
		Transport: &oauth2.Transport{Source: source, Base: c.http.Transport},
		Timeout:   c.http.Timeout,
	}
}

type call struct {
	op     string
	method string
	url    string
	token  string
	anon   bool
	in     interface{}
	out    interface{}
}

func (c *Client) do(ctx context.Context, cl call) error {
	if !cl.anon && cl.token == "" {
		return rejected(cl.op, http.StatusUnauthorized, errNoToken)
	}

	var body io.Reader
	if cl.in != nil {
		b, err := json.Marshal(cl.in)
		if err != nil {
			return errors.Wrapf(err, "%s: encoding request", cl.op)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, cl.url, body)
	if err != nil {
		return errors.Wrapf(err, "%s: building request", cl.op)
	}
	req.Header.Set("Accept", "application/json")
	if cl.in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	cli := c.http
	if !cl.anon {
		cli = c.bearer(cl.token)
	}
	resp, err := cli.Do(req)
	if err != nil {
		return unreachable(cl.op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var reason error
		if s := strings.TrimSpace(string(msg)); s != "" {
			reason = errors.New(s)
		}
		return rejected(cl.op, resp.StatusCode, reason)
	}

	if cl.out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(cl.out); err != nil {
		return unreachable(cl.op, errors.Wrap(err, "decoding response"))
	}
	return nil
}
