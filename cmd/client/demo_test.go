package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoRunsEveryStep(t *testing.T) {
	var (
		calls     []string
		patchBody map[string]any
		deleted   bool
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"status":"ok","id":12}`)
		case http.MethodGet:
			if deleted {
				w.WriteHeader(http.StatusNotFound)
				_, _ = io.WriteString(w, `{"status":"error","message":"ad does not exist"}`)
				return
			}
			_, _ = io.WriteString(w, `{"name":"Test_name","creation_time":1700000000,"owner":"$2a$10$x"}`)
		case http.MethodPatch:
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &patchBody)
			_, _ = io.WriteString(w, `{"status":"ok","name":"Test_name_upd"}`)
		case http.MethodDelete:
			deleted = true
			_, _ = io.WriteString(w, `{"status":"ok"}`)
		}
	}))
	defer srv.Close()

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"demo", "--url", srv.URL})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, []string{"POST /ads", "GET /ads/12", "PATCH /ads/12", "DELETE /ads/12", "GET /ads/12"}, calls)
	assert.Equal(t, map[string]any{"name": "Test_name_upd", "description": "Test_description_upd"}, patchBody)

	text := out.String()
	assert.Contains(t, text, `"id": 12`)
	assert.Contains(t, text, `"creation_time": 1700000000`)
	assert.Contains(t, text, `"name": "Test_name_upd"`)
	assert.Contains(t, text, "ad 12 is gone")
}

func TestDemoFailsWhenAdSurvivesDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodPost:
			_, _ = io.WriteString(w, `{"status":"ok","id":3}`)
		case http.MethodGet:
			_, _ = io.WriteString(w, `{"name":"Test_name","creation_time":1,"owner":"h"}`)
		default:
			_, _ = io.WriteString(w, `{"status":"ok","name":"Test_name_upd"}`)
		}
	}))
	defer srv.Close()

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"demo", "--url", srv.URL})
	assert.ErrorContains(t, cmd.Execute(), "ad 3 still readable after delete")
}

func TestDemoStopsWhenCreateFails(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"status":"error","message":"internal error"}`)
	}))
	defer srv.Close()

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"demo", "--url", srv.URL})
	assert.EqualError(t, cmd.Execute(), "create: api error 500: internal error")
	assert.Equal(t, 1, calls)
}

func TestGetRejectsBadID(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"get", "abc", "--url", "http://127.0.0.1:1"})
	assert.ErrorContains(t, cmd.Execute(), `invalid ad id "abc"`)
}

func TestGetReportsMissingAd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"status":"error","message":"ad does not exist"}`)
	}))
	defer srv.Close()

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"get", "7", "--url", srv.URL})
	assert.EqualError(t, cmd.Execute(), "api error 404: ad does not exist")
	assert.Empty(t, out.String())
}

func TestUpdateSendsOnlyChangedFlags(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"status":"ok","name":"x"}`)
	}))
	defer srv.Close()

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"update", "4", "--description", "", "--url", srv.URL})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, map[string]any{"description": ""}, body)
	assert.Contains(t, out.String(), `"name": "x"`)
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"status":"ok"}`)
	}))
	defer srv.Close()

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"ping", "--url", srv.URL})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"status": "ok"`)
}
