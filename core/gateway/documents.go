package gateway

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

func (c *Client) ListDocuments(ctx context.Context, token string) ([]Document, error) {
	var resp struct {
		Documents []Document `json:"documents"`
	}
	err := c.do(ctx, call{op: "list documents", method: http.MethodGet, url: c.endpoint(nil, "documents"), token: token, out: &resp})
	return resp.Documents, err
}

func (c *Client) RequestUploadURL(ctx context.Context, token string, req UploadRequest) (UploadTicket, error) {
	var ticket UploadTicket
	err := c.do(ctx, call{op: "request upload url", method: http.MethodPost, url: c.endpoint(nil, "documents", "upload-url"), token: token, in: req, out: &ticket})
	if err == nil && ticket.UploadURL == "" {
		err = unreachable("request upload url", errors.New("no upload URL in response"))
	}
	return ticket, err
}

// UploadFile PUTs the raw bytes to a pre-signed URL. No bearer token is sent: the URL carries its own authorization.
func (c *Client) UploadFile(ctx context.Context, uploadURL, contentType string, size int64, content io.Reader) error {
	const op = "upload file"

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, content)
	if err != nil {
		return errors.Wrapf(err, "%s: building request", op)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	if size >= 0 {
		req.ContentLength = size
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return unreachable(op, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return rejected(op, resp.StatusCode, nil)
	}
	return nil
}

func (c *Client) RegisterDocument(ctx context.Context, token string, reg DocumentRegistration) error {
	return c.do(ctx, call{op: "register document", method: http.MethodPost, url: c.endpoint(nil, "documents"), token: token, in: reg})
}

// Upload runs the three-step handoff: upload URL, raw PUT, then registration.
func (c *Client) Upload(ctx context.Context, token, fileName, contentType string, size int64, content io.Reader, meta DocumentMetadata) error {
	ticket, err := c.RequestUploadURL(ctx, token, UploadRequest{FileName: fileName, FileType: contentType, Metadata: meta})
	if err != nil {
		return err
	}
	if err = c.UploadFile(ctx, ticket.UploadURL, contentType, size, content); err != nil {
		return err
	}
	return c.RegisterDocument(ctx, token, DocumentRegistration{DocumentID: ticket.DocumentID, FileName: fileName, DocumentMetadata: meta})
}

func (c *Client) DownloadURL(ctx context.Context, token, documentID string) (string, error) {
	const op = "download url"

	var resp struct {
		DownloadURL string `json:"downloadUrl"`
	}
	u := c.endpoint(nil, "documents", documentID, "download-url")
	if err := c.do(ctx, call{op: op, method: http.MethodGet, url: u, token: token, out: &resp}); err != nil {
		return "", err
	}
	if resp.DownloadURL == "" {
		return "", unreachable(op, errors.New("no download URL in response"))
	}
	return resp.DownloadURL, nil
}
