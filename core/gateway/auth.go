package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/AlainDede/Delphinium-gestion-site/core/session"
)

type credentials struct {
	UserID   string `json:"userid"`
	Password string `json:"password"`
}

// loginResponse accepts the flat token set as well as the proxy shape wrapping it in `body`,
// where `body` may itself be a JSON string.
type loginResponse struct {
	session.Tokens
	Body json.RawMessage `json:"body"`
}

func (r loginResponse) tokens() (session.Tokens, error) {
	if r.AccessToken != "" {
		return r.Tokens, nil
	}
	body := bytes.TrimSpace(r.Body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return session.Tokens{}, nil
	}
	if body[0] == '"' {
		var s string
		if err := json.Unmarshal(body, &s); err != nil {
			return session.Tokens{}, err
		}
		body = []byte(s)
	}
	var tokens session.Tokens
	err := json.Unmarshal(body, &tokens)
	return tokens, err
}

// Login exchanges credentials for tokens. Failures are classified as ErrInvalidCredentials
// or ErrConnection only.
func (c *Client) Login(ctx context.Context, userID, password string) (session.Tokens, error) {
	const op = "login"

	var resp loginResponse
	err := c.do(ctx, call{
		op:     op,
		method: http.MethodPost,
		url:    c.endpoint(nil, "auth", "login"),
		anon:   true,
		in:     credentials{UserID: userID, Password: password},
		out:    &resp,
	})
	if err != nil {
		return session.Tokens{}, classifyLogin(err)
	}

	tokens, err := resp.tokens()
	if err != nil {
		return session.Tokens{}, classifyLogin(unreachable(op, err))
	}
	if tokens.AccessToken == "" {
		return session.Tokens{}, classifyLogin(rejected(op, http.StatusOK, errNoToken))
	}
	return tokens, nil
}
