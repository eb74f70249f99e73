package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/frolovpd/shopwindow/internal/logging"
)

const requestIDHeader = "X-Request-Id"

// HTTPClient is the Client implementation over plain net/http.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

// NewHTTPClient constructs an HTTPClient against the given base URL,
// e.g. "https://dummyjson.com".
func NewHTTPClient(baseURL string, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		hc:      &http.Client{},
		log:     log.With("component", "api"),
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// errorBody is the shape the server uses for rejections: {"message": "..."}.
type errorBody struct {
	Message string `json:"message"`
}

// Login posts credentials to /auth/login and returns the decoded body.
// A non-2xx response becomes an *AuthError carrying the server's message.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, &AuthError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &AuthError{Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		if eb.Message == "" {
			eb.Message = "login failed"
		}
		return nil, &AuthError{Message: eb.Message}
	}

	var result LoginResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &AuthError{Message: err.Error()}
	}
	return &result, nil
}

// ListProducts fetches /products.
func (c *HTTPClient) ListProducts(ctx context.Context) (*ProductList, error) {
	var list ProductList
	if err := c.getJSON(ctx, "list products", "/products", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ListUsers fetches /users.
func (c *HTTPClient) ListUsers(ctx context.Context) (*UserList, error) {
	var list UserList
	if err := c.getJSON(ctx, "list users", "/users", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetProduct fetches one record from /products/{id}.
func (c *HTTPClient) GetProduct(ctx context.Context, id int) (*ProductDetail, error) {
	var detail ProductDetail
	path := fmt.Sprintf("/products/%d", id)
	if err := c.getJSON(ctx, "get product", path, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// getJSON issues a GET and decodes the 2xx body into out. Any other outcome
// becomes a *FetchError tagged with op.
func (c *HTTPClient) getJSON(ctx context.Context, op, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return &FetchError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Op: op, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Op: op, Err: err}
	}
	return nil
}

// do performs a single round trip. Each request carries a fresh request id
// so client-side logs can be correlated.
func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	reqID := uuid.NewString()
	req.Header.Set(requestIDHeader, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "error", err.Error())
		return nil, err
	}

	c.log.Debug(ctx, "request done", "method", method, "path", path, "request_id", reqID, "status", resp.StatusCode)
	return resp, nil
}
