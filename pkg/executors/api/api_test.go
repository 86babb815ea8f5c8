package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angjelo/AIAgentStudio/pkg/executors/api"
)

func TestExecute_JSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	result, err := api.New().Execute(context.Background(),
		map[string]any{"url": srv.URL}, nil)
	require.NoError(t, err)

	record := result.(map[string]any)
	assert.Equal(t, map[string]any{"ok": true}, record["response"])
	assert.Equal(t, http.StatusOK, record["status"])

	headers := record["headers"].(map[string]string)
	assert.Equal(t, "application/json", headers["Content-Type"])
}

func TestExecute_TextResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text"))
	}))
	defer srv.Close()

	result, err := api.New().Execute(context.Background(),
		map[string]any{"url": srv.URL}, nil)
	require.NoError(t, err)

	record := result.(map[string]any)
	assert.Equal(t, "plain text", record["response"])
}

func TestExecute_RequestShaping(t *testing.T) {
	var (
		gotMethod  string
		gotQuery   string
		gotHeader  string
		gotBody    []byte
		gotContent string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.Query().Get("page")
		gotHeader = r.Header.Get("X-Token")
		gotContent = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	inputs := map[string]any{
		"params":  map[string]any{"page": 2},
		"headers": map[string]any{"X-Token": "secret"},
		"body":    map[string]any{"name": "ada"},
	}
	_, err := api.New().Execute(context.Background(),
		map[string]any{"url": srv.URL, "method": "post"}, inputs)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod, "method is upper-cased")
	assert.Equal(t, "2", gotQuery)
	assert.Equal(t, "secret", gotHeader)
	assert.Equal(t, "application/json", gotContent)

	var body map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &body))
	assert.Equal(t, "ada", body["name"])
}

func TestExecute_StringBody(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := api.New().Execute(context.Background(),
		map[string]any{"url": srv.URL, "method": "POST"},
		map[string]any{"body": "raw payload"})
	require.NoError(t, err)
	assert.Equal(t, "raw payload", string(gotBody))
}

func TestExecute_NonSuccessStatusIsData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "upstream down"}`))
	}))
	defer srv.Close()

	result, err := api.New().Execute(context.Background(),
		map[string]any{"url": srv.URL}, nil)
	require.NoError(t, err, "a 5xx is a result, not a failure")

	record := result.(map[string]any)
	assert.Equal(t, http.StatusInternalServerError, record["status"])
	assert.Equal(t, map[string]any{"error": "upstream down"}, record["response"])
}

func TestExecute_MissingURL(t *testing.T) {
	_, err := api.New().Execute(context.Background(), map[string]any{}, nil)
	assert.ErrorIs(t, err, api.ErrMissingURL)
}

func TestExecute_UnreachableHost(t *testing.T) {
	_, err := api.New().Execute(context.Background(),
		map[string]any{"url": "http://127.0.0.1:1", "timeout": 1}, nil)
	assert.Error(t, err)
}
