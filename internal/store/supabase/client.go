// Package supabase talks to the managed store's REST endpoints: PostgREST for
// tables and GoTrue for authentication.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gamestore/backend/internal/store"

	"github.com/tidwall/gjson"
)

// Client is a Supabase REST API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Config holds client configuration.
type Config struct {
	URL        string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewClient creates a new Supabase client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("APIKey is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// From starts a query builder for a table.
func (c *Client) From(table string) *QueryBuilder {
	return &QueryBuilder{client: c, table: table}
}

// QueryBuilder builds PostgREST queries.
type QueryBuilder struct {
	client  *Client
	table   string
	columns string
	filters url.Values
	orders  []string
	limit   int
	single  bool
}

// Select specifies columns to select, including embedded relations.
func (q *QueryBuilder) Select(columns string) *QueryBuilder {
	q.columns = columns
	return q
}

// Eq adds an equality filter.
func (q *QueryBuilder) Eq(column string, value any) *QueryBuilder {
	if q.filters == nil {
		q.filters = url.Values{}
	}
	q.filters.Add(column, fmt.Sprintf("eq.%v", value))
	return q
}

// Order adds an ORDER BY clause.
func (q *QueryBuilder) Order(column string, ascending bool) *QueryBuilder {
	dir := "asc"
	if !ascending {
		dir = "desc"
	}
	q.orders = append(q.orders, column+"."+dir)
	return q
}

// Limit sets the LIMIT.
func (q *QueryBuilder) Limit(n int) *QueryBuilder {
	q.limit = n
	return q
}

// Single expects exactly one row; zero rows is reported as store.ErrNotFound.
func (q *QueryBuilder) Single() *QueryBuilder {
	q.single = true
	return q
}

func (q *QueryBuilder) url() string {
	params := url.Values{}
	for k, vs := range q.filters {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	if q.columns != "" {
		params.Set("select", q.columns)
	}
	if len(q.orders) > 0 {
		params.Set("order", strings.Join(q.orders, ","))
	}
	if q.limit > 0 {
		params.Set("limit", strconv.Itoa(q.limit))
	}
	reqURL := fmt.Sprintf("%s/rest/v1/%s", q.client.baseURL, q.table)
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	return reqURL
}

// Execute runs a SELECT and decodes the result into out.
func (q *QueryBuilder) Execute(ctx context.Context, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, q.url(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if q.single {
		req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	}
	return q.client.doJSON(req, out)
}

// Insert posts data and decodes the inserted rows into out.
func (q *QueryBuilder) Insert(ctx context.Context, data, out any) error {
	return q.write(ctx, http.MethodPost, data, out)
}

// Update patches the filtered rows and decodes them into out.
func (q *QueryBuilder) Update(ctx context.Context, data, out any) error {
	return q.write(ctx, http.MethodPatch, data, out)
}

// Delete removes the filtered rows and decodes them into out.
func (q *QueryBuilder) Delete(ctx context.Context, out any) error {
	return q.write(ctx, http.MethodDelete, nil, out)
}

func (q *QueryBuilder) write(ctx context.Context, method string, data, out any) error {
	var body io.Reader
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshal data: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, q.url(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Prefer", "return=representation")
	return q.client.doJSON(req, out)
}

// =============================================================================
// Auth Operations
// =============================================================================

// AuthResponse is the token payload returned by sign-in and sign-up.
type AuthResponse struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
	RefreshToken string    `json:"refresh_token"`
	User         *AuthUser `json:"user"`
}

// AuthUser is the identity returned by the auth API.
type AuthUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// SignUp registers a user. The response carries no access token while email
// confirmation is pending; in that case only User is set.
func (c *Client) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*AuthResponse, error) {
	payload := map[string]any{"email": email, "password": password}
	if len(metadata) > 0 {
		payload["data"] = metadata
	}
	raw, err := c.authCall(ctx, http.MethodPost, "/signup", "", payload)
	if err != nil {
		return nil, err
	}
	if !gjson.GetBytes(raw, "access_token").Exists() {
		var user AuthUser
		if gjson.GetBytes(raw, "user").Exists() {
			raw = []byte(gjson.GetBytes(raw, "user").Raw)
		}
		if err := json.Unmarshal(raw, &user); err != nil {
			return nil, fmt.Errorf("unmarshal response: %w", err)
		}
		return &AuthResponse{User: &user}, nil
	}
	var resp AuthResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &resp, nil
}

// SignIn exchanges email and password for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*AuthResponse, error) {
	raw, err := c.authCall(ctx, http.MethodPost, "/token?grant_type=password", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	var resp AuthResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &resp, nil
}

// SignOut revokes the session behind accessToken.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	_, err := c.authCall(ctx, http.MethodPost, "/logout", accessToken, nil)
	return err
}

// Recover sends a password recovery email that links back to redirectTo.
func (c *Client) Recover(ctx context.Context, email, redirectTo string) error {
	path := "/recover"
	if redirectTo != "" {
		path += "?redirect_to=" + url.QueryEscape(redirectTo)
	}
	_, err := c.authCall(ctx, http.MethodPost, path, "", map[string]string{"email": email})
	return err
}

// UpdateUser changes the password of the user behind accessToken.
func (c *Client) UpdateUser(ctx context.Context, accessToken, password string) error {
	_, err := c.authCall(ctx, http.MethodPut, "/user", accessToken, map[string]string{"password": password})
	return err
}

// GetUser resolves an access token to its user.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*AuthUser, error) {
	raw, err := c.authCall(ctx, http.MethodGet, "/user", accessToken, nil)
	if err != nil {
		return nil, err
	}
	var user AuthUser
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &user, nil
}

func (c *Client) authCall(ctx context.Context, method, path, accessToken string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	if accessToken != "" {
		ctx = store.WithAccessToken(ctx, accessToken)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/auth/v1"+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req)
}

// =============================================================================
// Internal Methods
// =============================================================================

// setHeaders authenticates as the caller when the request context carries an
// access token, and as the anonymous role otherwise.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	bearer := store.AccessToken(req.Context())
	if bearer == "" {
		bearer = c.apiKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	c.setHeaders(req)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, responseError(resp.StatusCode, body)
	}
	return body, nil
}

func (c *Client) doJSON(req *http.Request, out any) error {
	body, err := c.do(req)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// responseError maps an error response onto the store's sentinel errors.
func responseError(status int, body []byte) error {
	fields := gjson.GetManyBytes(body, "message", "msg", "error_description", "error", "error_code", "code")
	message := ""
	for _, f := range fields[:4] {
		if f.String() != "" {
			message = f.String()
			break
		}
	}
	if message == "" {
		message = http.StatusText(status)
	}
	code := fields[4].String()
	if code == "" {
		code = fields[5].String()
	}

	var sentinel error
	switch {
	case fields[3].String() == "invalid_grant" || code == "invalid_credentials":
		sentinel = store.ErrInvalidCredentials
	case code == "user_already_exists" || code == "email_exists" ||
		strings.Contains(strings.ToLower(message), "already registered"):
		sentinel = store.ErrEmailTaken
	case code == "23505" || status == http.StatusConflict:
		sentinel = store.ErrConflict
	case code == "PGRST116" || status == http.StatusNotFound || status == http.StatusNotAcceptable:
		sentinel = store.ErrNotFound
	case status == http.StatusUnauthorized:
		sentinel = store.ErrUnauthorized
	case status == http.StatusForbidden:
		sentinel = store.ErrForbidden
	}
	if sentinel == nil {
		return fmt.Errorf("supabase error: status %d: %s", status, message)
	}
	return fmt.Errorf("supabase error: %s: %w", message, sentinel)
}
