package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL     = "http://127.0.0.1:8080"
	defaultHTTPTimeout = 10 * time.Second
	baseURLEnvKey      = "ADS_API_URL"
	httpTimeoutEnvKey  = "ADS_HTTP_TIMEOUT"
)

// Client is a simple HTTP client for the ads API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for baseURL with the given timeout. Zero values fall
// back to ADS_API_URL / ADS_HTTP_TIMEOUT and then to the defaults.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = BaseURLFromEnv()
	}
	if timeout <= 0 {
		timeout = HTTPTimeoutFromEnv()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// response is a raw API answer.
type response struct {
	Status int
	Body   json.RawMessage
}

// CreateAdRequest is the body of POST /ads.
type CreateAdRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
}

// UpdateAdRequest is the body of PATCH /ads/{id}. Nil fields are omitted.
type UpdateAdRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Owner       *string `json:"owner,omitempty"`
}

type CreateAdResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

type AdResponse struct {
	Name         string `json:"name"`
	CreationTime int64  `json:"creation_time"`
	Owner        string `json:"owner"`
}

type UpdateAdResponse struct {
	Status string `json:"status"`
	Name   string `json:"name"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

// Ping checks whether the API server and its storage are reachable.
func (c *Client) Ping(ctx context.Context) error {
	var resp StatusResponse
	return c.call(ctx, http.MethodGet, "/health", nil, &resp)
}

// CreateAd posts a new ad and returns its id.
func (c *Client) CreateAd(ctx context.Context, req CreateAdRequest) (CreateAdResponse, error) {
	var resp CreateAdResponse
	err := c.call(ctx, http.MethodPost, "/ads", req, &resp)
	return resp, err
}

// GetAd fetches one ad. A missing ad is an *APIError for which IsNotFound
// holds.
func (c *Client) GetAd(ctx context.Context, id int64) (AdResponse, error) {
	var resp AdResponse
	err := c.call(ctx, http.MethodGet, adPath(id), nil, &resp)
	return resp, err
}

func (c *Client) UpdateAd(ctx context.Context, id int64, req UpdateAdRequest) (UpdateAdResponse, error) {
	var resp UpdateAdResponse
	err := c.call(ctx, http.MethodPatch, adPath(id), req, &resp)
	return resp, err
}

func (c *Client) DeleteAd(ctx context.Context, id int64) (StatusResponse, error) {
	var resp StatusResponse
	err := c.call(ctx, http.MethodDelete, adPath(id), nil, &resp)
	return resp, err
}

// do sends body as JSON and returns the status and raw body whatever the
// status code. Only transport failures are errors.
func (c *Client) do(ctx context.Context, method, path string, body any) (response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return response{}, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return response{}, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return response{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, err
	}
	return response{Status: resp.StatusCode, Body: raw}, nil
}

func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if resp.Status >= 400 {
		return decodeError(resp)
	}
	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	return json.Unmarshal(resp.Body, out)
}

func adPath(id int64) string {
	return "/ads/" + strconv.FormatInt(id, 10)
}

// BaseURLFromEnv returns ADS_API_URL or DefaultBaseURL.
func BaseURLFromEnv() string {
	if v := strings.TrimSpace(os.Getenv(baseURLEnvKey)); v != "" {
		return v
	}
	return DefaultBaseURL
}

// HTTPTimeoutFromEnv parses ADS_HTTP_TIMEOUT as a duration or a whole
// number of seconds. Invalid values fall back to the default.
func HTTPTimeoutFromEnv() time.Duration {
	value := strings.TrimSpace(os.Getenv(httpTimeoutEnvKey))
	if value == "" {
		return defaultHTTPTimeout
	}

	if duration, err := time.ParseDuration(value); err == nil && duration > 0 {
		return duration
	}
	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	return defaultHTTPTimeout
}

