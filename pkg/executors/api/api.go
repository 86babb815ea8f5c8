// Package api implements the HTTP caller Executor. It issues one request
// per node evaluation and hands the response back as data: a non-2xx
// status is not an error, it flows downstream in the result record.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

const defaultTimeout = 30 * time.Second

// ErrMissingURL is returned when an API node has no url configured.
var ErrMissingURL = errors.New("URL is required")

// Config is the typed view of an API node's configuration record.
type Config struct {
	URL     string  `mapstructure:"url"`
	Method  string  `mapstructure:"method"`
	Timeout float64 `mapstructure:"timeout"` // seconds
}

// Executor performs HTTP requests for API nodes.
type Executor struct {
	client *http.Client
}

// New creates the HTTP caller. The per-request timeout comes from node
// config, so the shared client carries none.
func New() *Executor {
	return &Executor{client: &http.Client{}}
}

// Execute issues the configured request with inputs "params" (query
// string), "headers" and "body", and returns {response, status, headers}.
func (e *Executor) Execute(ctx context.Context, config map[string]any, inputs map[string]any) (any, error) {
	cfg := Config{Method: "GET", Timeout: 30}
	if err := decode(config, &cfg); err != nil {
		return nil, fmt.Errorf("invalid api config: %w", err)
	}
	if cfg.URL == "" {
		return nil, ErrMissingURL
	}

	method := strings.ToUpper(cfg.Method)
	timeout := defaultTimeout
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout * float64(time.Second))
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	bodyReader, contentType, err := encodeBody(inputs["body"])
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, cfg.URL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if params, ok := inputs["params"].(map[string]any); ok && len(params) > 0 {
		q := req.URL.Query()
		for k, v := range params {
			q.Set(k, cast.ToString(v))
		}
		req.URL.RawQuery = q.Encode()
	}
	if headers, ok := inputs["headers"].(map[string]any); ok {
		for k, v := range headers {
			req.Header.Set(k, cast.ToString(v))
		}
	}
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	// JSON if it parses, raw text otherwise.
	var parsed any
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		parsed = string(respBody)
	}

	respHeaders := make(map[string]string, len(resp.Header))
	for key := range resp.Header {
		respHeaders[key] = resp.Header.Get(key)
	}

	return map[string]any{
		"response": parsed,
		"status":   resp.StatusCode,
		"headers":  respHeaders,
	}, nil
}

// encodeBody serializes the body input: structured values go out as JSON,
// anything else as raw data.
func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch b := body.(type) {
	case map[string]any, []any:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, "", fmt.Errorf("marshal body: %w", err)
		}
		return bytes.NewReader(data), "application/json", nil
	case string:
		return strings.NewReader(b), "", nil
	case []byte:
		return bytes.NewReader(b), "", nil
	default:
		return strings.NewReader(cast.ToString(b)), "", nil
	}
}

func decode(in map[string]any, out *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}
