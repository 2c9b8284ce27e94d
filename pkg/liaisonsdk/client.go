package liaisonsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SDKClient calls the liaison API as one user.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// authorize sets the caller identity on every /v1 request.
	authorize func(*http.Request)
}

type Option func(*SDKClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *SDKClient) { c.HTTPClient = hc }
}

// WithBearerToken authenticates with a JWT from the identity provider.
func WithBearerToken(token string) Option {
	return func(c *SDKClient) {
		c.authorize = func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
	}
}

// WithUserHeader asserts the user directly, for services deployed behind
// a gateway that does the same.
func WithUserHeader(header, userID string) Option {
	return func(c *SDKClient) {
		c.authorize = func(r *http.Request) { r.Header.Set(header, userID) }
	}
}

func NewSDKClient(baseURL string, opts ...Option) *SDKClient {
	c := &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *SDKClient) do(ctx context.Context, method, path string, in any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authorize != nil {
		c.authorize(req)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// call performs the request and decodes a successful body into out, which
// may be nil.
func (c *SDKClient) call(ctx context.Context, method, path string, in any, expectedStatus int, out any) error {
	resp, err := c.do(ctx, method, path, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.call(ctx, http.MethodGet, "/livez", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.call(ctx, http.MethodGet, "/readyz", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConnectURL is where to send the user's browser to grant access. The
// browser must carry the same identity as this client.
func (c *SDKClient) ConnectURL() string {
	return c.BaseURL + "/v1/google/connect"
}

func (c *SDKClient) ConnectionStatus(ctx context.Context) (bool, error) {
	var out ConnectionStatusResponse
	if err := c.call(ctx, http.MethodGet, "/v1/google/status", nil, http.StatusOK, &out); err != nil {
		return false, err
	}
	return out.Connected, nil
}

func (c *SDKClient) Disconnect(ctx context.Context) error {
	return c.call(ctx, http.MethodPost, "/v1/google/disconnect", nil, http.StatusOK, nil)
}

// ListEvents lists primary calendar events from timeMin (server time when
// nil) up to timeMax (open when nil).
func (c *SDKClient) ListEvents(ctx context.Context, timeMin, timeMax *time.Time) ([]Event, error) {
	q := url.Values{}
	if timeMin != nil {
		q.Set("timeMin", timeMin.Format(time.RFC3339))
	}
	if timeMax != nil {
		q.Set("timeMax", timeMax.Format(time.RFC3339))
	}
	path := "/v1/calendar/events"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []Event
	if err := c.call(ctx, http.MethodGet, path, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SDKClient) SendEmail(ctx context.Context, req SendEmailRequest) (*SendEmailResponse, error) {
	var out SendEmailResponse
	if err := c.call(ctx, http.MethodPost, "/v1/email/send", req, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) ListClients(ctx context.Context) ([]Client, error) {
	var out ListClientsResponse
	if err := c.call(ctx, http.MethodGet, "/v1/clients", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out.Clients, nil
}

func (c *SDKClient) GetClient(ctx context.Context, id string) (*Client, error) {
	var out Client
	if err := c.call(ctx, http.MethodGet, "/v1/clients/"+url.PathEscape(id), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) CreateClient(ctx context.Context, req CreateClientRequest) (*Client, error) {
	var out Client
	if err := c.call(ctx, http.MethodPost, "/v1/clients", req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) UpdateClient(ctx context.Context, id string, req UpdateClientRequest) (*Client, error) {
	var out Client
	if err := c.call(ctx, http.MethodPatch, "/v1/clients/"+url.PathEscape(id), req, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) DeleteClient(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/v1/clients/"+url.PathEscape(id), nil, http.StatusNoContent, nil)
}

func (c *SDKClient) ListTemplates(ctx context.Context) ([]Template, error) {
	var out ListTemplatesResponse
	if err := c.call(ctx, http.MethodGet, "/v1/templates", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out.Templates, nil
}

func (c *SDKClient) GetTemplate(ctx context.Context, id string) (*Template, error) {
	var out Template
	if err := c.call(ctx, http.MethodGet, "/v1/templates/"+url.PathEscape(id), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*Template, error) {
	var out Template
	if err := c.call(ctx, http.MethodPost, "/v1/templates", req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) UpdateTemplate(ctx context.Context, id string, req UpdateTemplateRequest) (*Template, error) {
	var out Template
	if err := c.call(ctx, http.MethodPatch, "/v1/templates/"+url.PathEscape(id), req, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) DeleteTemplate(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/v1/templates/"+url.PathEscape(id), nil, http.StatusNoContent, nil)
}
