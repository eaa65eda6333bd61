// ABOUTME: HTTP client for the CuraQ backend REST API
// ABOUTME: Maps each tool operation to one authenticated request, returning raw status and body

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/curaq/curaq-mcp/internal/config"
)

// MaxResponseSize caps how much of a backend response is read.
const MaxResponseSize = 10 * 1024 * 1024 // 10MB

// UserAgent identifies this client to the backend. The version segment
// is overridden at startup from the build metadata.
var UserAgent = "curaq-mcp/dev"

// Response carries the raw outcome of one backend call. Interpretation
// of the status and body is left entirely to the render package.
type Response struct {
	Status int
	Body   []byte
}

// Client issues authenticated requests against the CuraQ backend.
// It holds only immutable startup configuration, so concurrent tool
// invocations can share one instance freely.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient builds a client from the startup configuration. No timeout
// is configured locally; lifetimes belong to the transport.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:    cfg.APIURL,
		token:      cfg.Token,
		httpClient: &http.Client{},
	}
}

// ListArticles fetches the unread queue, priority-ordered.
func (c *Client) ListArticles(ctx context.Context, limit int) (*Response, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	return c.do(ctx, http.MethodGet, "/api/v1/articles", q, nil)
}

// SearchArticles runs a keyword or semantic search. Any mode other than
// "keyword" selects the semantic endpoint; unrecognized values are
// deliberately not rejected here.
func (c *Client) SearchArticles(ctx context.Context, query, mode string, limit int) (*Response, error) {
	path := "/api/v1/articles/semantic-search"
	if mode == "keyword" {
		path = "/api/v1/articles/search"
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	return c.do(ctx, http.MethodGet, path, q, nil)
}

// GetArticle fetches one article's detail and event history.
func (c *Client) GetArticle(ctx context.Context, id string) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/api/v1/articles/"+url.PathEscape(id), nil, nil)
}

// MarkArticleRead marks an article as read.
func (c *Client) MarkArticleRead(ctx context.Context, id string) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/api/v1/articles/"+url.PathEscape(id)+"/read", nil, nil)
}

// DeleteArticle removes an article from the queue.
func (c *Client) DeleteArticle(ctx context.Context, id string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, "/api/v1/articles/"+url.PathEscape(id), nil, nil)
}

// SaveArticle submits a new article for saving and AI analysis.
func (c *Client) SaveArticle(ctx context.Context, reqBody SaveArticleRequest) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/api/v1/articles", nil, &reqBody)
}

// do issues a single request. Every call carries the bearer token and a
// fresh X-Request-ID so backend logs can be correlated to one tool
// invocation. No retries: each failure surfaces exactly once.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) (*Response, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(data)) > MaxResponseSize {
		return nil, fmt.Errorf("response too large (exceeds %d bytes)", MaxResponseSize)
	}

	return &Response{Status: resp.StatusCode, Body: data}, nil
}
