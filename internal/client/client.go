// Package client is a small typed client for the portal API, used by
// portalctl and by the end-to-end tests.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mini-foerderportal/internal/core/domain"
	"mini-foerderportal/internal/core/eligibility"
	"mini-foerderportal/internal/core/services"
	"mini-foerderportal/internal/pkg/response"

	"github.com/tidwall/gjson"
)

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the portal API
type Client struct {
	baseURL  string
	http     Doer
	token    string
	simDelay string
	simError string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		c.http = d
	}
}

// WithToken sends token as bearer on every request
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithSimulatedDelay asks the server to delay every response
func WithSimulatedDelay(d time.Duration) Option {
	return func(c *Client) {
		c.simDelay = strconv.FormatInt(d.Milliseconds(), 10)
	}
}

// WithSimulatedError asks the server to fail every request with status
func WithSimulatedError(status int) Option {
	return func(c *Client) {
		c.simError = strconv.Itoa(status)
	}
}

// New creates a client for the API at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewApplication is the body of a submission
type NewApplication struct {
	ApplicantName  string  `json:"applicantName"`
	ApplicantEmail string  `json:"applicantEmail"`
	ProgramID      string  `json:"programId"`
	Amount         float64 `json:"amount"`
	Purpose        string  `json:"purpose"`
}

// ApplicationUpdate is a partial application update. Nil or empty fields
// are omitted, so an empty Comments keeps the current comments.
type ApplicationUpdate struct {
	Status   *domain.ApplicationStatus `json:"status,omitempty"`
	Amount   *float64                  `json:"amount,omitempty"`
	Purpose  *string                   `json:"purpose,omitempty"`
	Comments []domain.Comment          `json:"comments,omitempty"`
}

// Login authenticates and returns the session
func (c *Client) Login(ctx context.Context, username, password string) (*services.AuthResponse, error) {
	var out services.AuthResponse
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me resolves the client's token
func (c *Client) Me(ctx context.Context) (*services.AuthResponse, error) {
	var out services.AuthResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Programs lists all programs
func (c *Client) Programs(ctx context.Context) ([]domain.Program, error) {
	var out []domain.Program
	if err := c.do(ctx, http.MethodGet, "/programs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Applications lists all applications
func (c *Client) Applications(ctx context.Context) ([]domain.Application, error) {
	var out []domain.Application
	if err := c.do(ctx, http.MethodGet, "/applications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Application fetches one application
func (c *Client) Application(ctx context.Context, id string) (*domain.Application, error) {
	var out domain.Application
	if err := c.do(ctx, http.MethodGet, "/applications/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateApplication submits an application
func (c *Client) CreateApplication(ctx context.Context, in NewApplication) (*domain.Application, error) {
	var out domain.Application
	if err := c.do(ctx, http.MethodPost, "/applications", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateApplication patches an application
func (c *Client) UpdateApplication(ctx context.Context, id string, in ApplicationUpdate) (*domain.Application, error) {
	var out domain.Application
	if err := c.do(ctx, http.MethodPatch, "/applications/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckEligibility runs the eligibility pre-screening
func (c *Client) CheckEligibility(ctx context.Context, in eligibility.RawInput) (*eligibility.Result, error) {
	var out eligibility.Result
	if err := c.do(ctx, http.MethodPost, "/eligibility", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reset reseeds the server store. Requires an officer token.
func (c *Client) Reset(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/admin/reset", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.simDelay != "" {
		req.Header.Set("x-sim-delay", c.simDelay)
	}
	if c.simError != "" {
		req.Header.Set("x-sim-error", c.simError)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeError reads the {error:{message,fields}} envelope, falling back to
// a generic message by status class.
func decodeError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	if gjson.ValidBytes(raw) {
		apiErr.Message = gjson.GetBytes(raw, "error.message").String()
		gjson.GetBytes(raw, "error.fields").ForEach(func(key, value gjson.Result) bool {
			if apiErr.Fields == nil {
				apiErr.Fields = map[string]string{}
			}
			apiErr.Fields[key.String()] = value.String()
			return true
		})
	}

	if apiErr.Message == "" {
		apiErr.Message = response.FallbackMessage(status)
	}
	return apiErr
}
