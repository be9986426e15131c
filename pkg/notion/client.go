package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"
	apiVersion     = "2022-06-28"

	// maxPageSize bounds every query to the first page of results.
	// Pagination beyond that is a documented limitation.
	maxPageSize = 100
)

// Client talks to the Notion API on behalf of one integration token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option mutates the Client during construction.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (tests).
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithDebugLogging dumps requests and responses through zerolog.
func WithDebugLogging() Option {
	return func(c *Client) {
		base := c.http.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.http.Transport = &debugTransport{base: base}
	}
}

// New constructs a Client. An empty token yields a client whose calls all
// fail with ErrNotConfigured instead of reaching the network.
func New(token string, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	if os.Getenv("MOMENTCHEN_DEBUG") == "true" {
		opts = append(opts, WithDebugLogging())
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if dump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(dump)).Msg("notion request")
	}
	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("notion request failed")
		return nil, err
	}
	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Int("status_code", resp.StatusCode).Str("url", req.URL.String()).Str("response_dump", string(dump)).Msg("notion response")
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.token == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(data)
	} else {
		reader = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		apiErr.Status = resp.StatusCode
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ValidateToken checks the token against the identity endpoint. It fails
// closed: a 401 yields (false, nil); anything else wrong yields an error so
// an unreachable service is never mistaken for a bad credential.
func (c *Client) ValidateToken(ctx context.Context) (bool, error) {
	err := c.do(ctx, http.MethodGet, "/users/me", nil, nil)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrUnauthorized) {
		return false, nil
	}
	return false, err
}

type searchRequest struct {
	Filter   searchFilter `json:"filter"`
	PageSize int          `json:"page_size"`
}

type searchFilter struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

type searchResponse struct {
	Results []struct {
		ID    string     `json:"id"`
		Title []RichText `json:"title"`
	} `json:"results"`
}

// SearchDatabases lists the databases the integration can see. Used only
// during setup to help the user pick ids.
func (c *Client) SearchDatabases(ctx context.Context) ([]DatabaseRef, error) {
	req := searchRequest{
		Filter:   searchFilter{Property: "object", Value: "database"},
		PageSize: maxPageSize,
	}
	var resp searchResponse
	if err := c.do(ctx, http.MethodPost, "/search", req, &resp); err != nil {
		return nil, err
	}
	refs := make([]DatabaseRef, 0, len(resp.Results))
	for _, r := range resp.Results {
		refs = append(refs, DatabaseRef{ID: r.ID, Title: PlainText(r.Title)})
	}
	return refs, nil
}

// RetrieveDatabase fetches a database schema.
func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string) (*Database, error) {
	var db Database
	if err := c.do(ctx, http.MethodGet, "/databases/"+databaseID, nil, &db); err != nil {
		return nil, err
	}
	return &db, nil
}

type queryRequest struct {
	PageSize int     `json:"page_size"`
	Filter   *Filter `json:"filter,omitempty"`
}

type queryResponse struct {
	Results []Page `json:"results"`
}

// Query runs a filtered query against a database, returning at most the
// first page of results.
func (c *Client) Query(ctx context.Context, databaseID string, filter *Filter) ([]Page, error) {
	req := queryRequest{PageSize: maxPageSize, Filter: filter}
	var resp queryResponse
	if err := c.do(ctx, http.MethodPost, "/databases/"+databaseID+"/query", req, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

type createPageRequest struct {
	Parent     pageParent `json:"parent"`
	Properties Properties `json:"properties"`
}

type pageParent struct {
	DatabaseID string `json:"database_id"`
}

// CreatePage inserts a new row into a database.
func (c *Client) CreatePage(ctx context.Context, databaseID string, props Properties) (*Page, error) {
	req := createPageRequest{Parent: pageParent{DatabaseID: databaseID}, Properties: props}
	var page Page
	if err := c.do(ctx, http.MethodPost, "/pages", req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

type updatePageRequest struct {
	Properties Properties `json:"properties"`
}

// UpdatePage patches the properties of an existing page.
func (c *Client) UpdatePage(ctx context.Context, pageID string, props Properties) (*Page, error) {
	req := updatePageRequest{Properties: props}
	var page Page
	if err := c.do(ctx, http.MethodPatch, "/pages/"+pageID, req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
