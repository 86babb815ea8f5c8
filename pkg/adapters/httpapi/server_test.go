package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angjelo/AIAgentStudio"
	"github.com/angjelo/AIAgentStudio/internal/logging"
	"github.com/angjelo/AIAgentStudio/pkg/adapters/httpapi"
	"github.com/angjelo/AIAgentStudio/pkg/adapters/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler := httpapi.NewHandler(agentstudio.New(), memory.NewStore(), logging.NewNop())
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

// passthroughAgent wires a single input straight to a single output.
func passthroughAgent(id string) map[string]any {
	return map[string]any{
		"id":   id,
		"name": "passthrough",
		"nodes": []any{
			map[string]any{
				"id": "in", "type": "input", "name": "in",
				"outputs": []any{map[string]any{"id": "in:output", "name": "output", "data_type": "any"}},
				"config":  map[string]any{"input_name": "x"},
			},
			map[string]any{
				"id": "out", "type": "output", "name": "out",
				"inputs": []any{map[string]any{"id": "out:input", "name": "input", "data_type": "any"}},
				"config": map[string]any{"output_name": "result"},
			},
		},
		"edges": []any{
			map[string]any{
				"id": "e1", "source_node_id": "in", "source_output_id": "in:output",
				"target_node_id": "out", "target_input_id": "out:input",
			},
		},
	}
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decodeBody(t, resp)["status"])
}

func TestAgentCRUD(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/agents/", passthroughAgent("agent-1"))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/agents/agent-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "passthrough", decodeBody(t, resp)["name"])

	resp, err = http.Get(srv.URL + "/agents/")
	require.NoError(t, err)
	body := decodeBody(t, resp)
	assert.Equal(t, []any{"agent-1"}, body["agents"])

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/agents/agent-1", nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/agents/agent-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestSaveAgent_AssignsID(t *testing.T) {
	srv := newTestServer(t)

	agent := passthroughAgent("")
	resp := postJSON(t, srv.URL+"/agents/", agent)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, decodeBody(t, resp)["id"])
}

func TestSaveAgent_RejectsBrokenGraph(t *testing.T) {
	srv := newTestServer(t)

	broken := passthroughAgent("bad")
	broken["edges"] = []any{
		map[string]any{
			"id": "e1", "source_node_id": "ghost", "source_output_id": "ghost:output",
			"target_node_id": "out", "target_input_id": "out:input",
		},
	}
	resp := postJSON(t, srv.URL+"/agents/", broken)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, decodeBody(t, resp)["error"], "node not found")
}

func TestExecuteStored(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/agents/", passthroughAgent("agent-1"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/agents/agent-1/execute",
		map[string]any{"input_data": map[string]any{"x": "ping"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	results := decodeBody(t, resp)["results"].(map[string]any)
	assert.Equal(t, "ping", results["result"])
}

func TestExecuteStored_UnknownAgent(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/agents/nope/execute", map[string]any{})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestExecuteInline(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/execute", map[string]any{
		"agent":      passthroughAgent("inline"),
		"input_data": map[string]any{"x": 7},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	results := decodeBody(t, resp)["results"].(map[string]any)
	assert.Equal(t, float64(7), results["result"])
}

func TestExecuteInline_MissingAgent(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/execute", map[string]any{"input_data": map[string]any{}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/agents/", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
