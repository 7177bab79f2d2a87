package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTimeoutFromEnv(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv(httpTimeoutEnvKey, "")
		assert.Equal(t, defaultHTTPTimeout, HTTPTimeoutFromEnv())
	})

	t.Run("duration format", func(t *testing.T) {
		t.Setenv(httpTimeoutEnvKey, "45s")
		assert.Equal(t, 45*time.Second, HTTPTimeoutFromEnv())
	})

	t.Run("integer seconds", func(t *testing.T) {
		t.Setenv(httpTimeoutEnvKey, "25")
		assert.Equal(t, 25*time.Second, HTTPTimeoutFromEnv())
	})

	t.Run("invalid falls back", func(t *testing.T) {
		t.Setenv(httpTimeoutEnvKey, "invalid")
		assert.Equal(t, defaultHTTPTimeout, HTTPTimeoutFromEnv())
	})
}

func TestBaseURLFromEnv(t *testing.T) {
	t.Setenv(baseURLEnvKey, "")
	assert.Equal(t, DefaultBaseURL, BaseURLFromEnv())

	t.Setenv(baseURLEnvKey, "http://ads.internal:9000")
	assert.Equal(t, "http://ads.internal:9000", BaseURLFromEnv())
}

type recorded struct {
	method string
	path   string
	body   map[string]any
}

func newStubServer(t *testing.T, status int, reply string, seen *recorded) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.method = r.Method
		seen.path = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &seen.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", time.Second)
}

func TestCreateAd(t *testing.T) {
	var seen recorded
	c := newStubServer(t, http.StatusCreated, `{"status":"ok","id":7}`, &seen)

	resp, err := c.CreateAd(context.Background(), CreateAdRequest{
		Name:        "Test_name",
		Description: "Test_description",
		Owner:       "Test_owner@gmail.com",
	})
	require.NoError(t, err)
	assert.Equal(t, CreateAdResponse{Status: "ok", ID: 7}, resp)
	assert.Equal(t, http.MethodPost, seen.method)
	assert.Equal(t, "/ads", seen.path)
	assert.Equal(t, "Test_owner@gmail.com", seen.body["owner"])
}

func TestUpdateAdOmitsNilFields(t *testing.T) {
	var seen recorded
	c := newStubServer(t, http.StatusOK, `{"status":"ok","name":"Test_name_upd"}`, &seen)

	name := "Test_name_upd"
	resp, err := c.UpdateAd(context.Background(), 3, UpdateAdRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Test_name_upd", resp.Name)
	assert.Equal(t, http.MethodPatch, seen.method)
	assert.Equal(t, "/ads/3", seen.path)
	assert.Equal(t, map[string]any{"name": "Test_name_upd"}, seen.body)
}

func TestGetAdNotFound(t *testing.T) {
	var seen recorded
	c := newStubServer(t, http.StatusNotFound, `{"status":"error","message":"ad does not exist"}`, &seen)

	_, err := c.GetAd(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.EqualError(t, err, "api error 404: ad does not exist")
}

func TestValidationErrorKeepsDetails(t *testing.T) {
	var seen recorded
	reply := `{"status":"error","message":[{"field":"owner","message":"field required","type":"value_error.missing"}]}`
	c := newStubServer(t, http.StatusBadRequest, reply, &seen)

	_, err := c.CreateAd(context.Background(), CreateAdRequest{Name: "n", Description: "d"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Contains(t, apiErr.Error(), `"field":"owner"`)
	assert.False(t, IsNotFound(err))
}

func TestRawRequestKeepsBodyOnError(t *testing.T) {
	var seen recorded
	c := newStubServer(t, http.StatusNotFound, `{"status":"error","message":"ad does not exist"}`, &seen)

	resp, err := c.do(context.Background(), http.MethodDelete, "/ads/9", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.JSONEq(t, `{"status":"error","message":"ad does not exist"}`, string(resp.Body))
}
