// Package anthropic implements the LLM Executor for Anthropic models via
// the Messages API. Credentials come from ANTHROPIC_API_KEY; a missing key
// makes every call return an error record downstream instead of aborting
// the run.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

const (
	defaultEndpoint = "https://api.anthropic.com/v1/messages"
	apiVersion      = "2023-06-01"
)

// ErrMissingAPIKey is returned when ANTHROPIC_API_KEY is not set.
var ErrMissingAPIKey = errors.New("Anthropic API key not configured (set ANTHROPIC_API_KEY)")

// Config is the typed view of an LLM node's configuration record.
type Config struct {
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// Executor calls the Anthropic Messages API.
type Executor struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// New creates an Executor reading its key from the environment.
func New() *Executor {
	return &Executor{
		apiKey:   os.Getenv("ANTHROPIC_API_KEY"),
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

// NewWithKey creates an Executor with an explicit key and endpoint.
func NewWithKey(apiKey, endpoint string) *Executor {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Executor{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

// Execute sends inputs["prompt"] as the user message with inputs["system"]
// as the system prompt and returns {response, usage, model}.
func (e *Executor) Execute(ctx context.Context, config map[string]any, inputs map[string]any) (any, error) {
	if e.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := Config{Model: "claude-3-opus-20240229", Temperature: 0.7, MaxTokens: 1000}
	if err := decode(config, &cfg); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	prompt := cast.ToString(inputs["prompt"])
	system := "You are a helpful AI assistant."
	if s, ok := inputs["system"]; ok {
		system = cast.ToString(s)
	}

	payload := map[string]any{
		"model":  cfg.Model,
		"system": system,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"temperature": cfg.Temperature,
		"max_tokens":  cfg.MaxTokens,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", e.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("anthropic error: status %s", resp.Status)
	}

	var parsed struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
		Usage struct {
			InputTokens  int `json:"input_tokens"`
			OutputTokens int `json:"output_tokens"`
		} `json:"usage"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("anthropic response decode failed: %w", err)
	}

	content := ""
	if len(parsed.Content) > 0 {
		content = parsed.Content[0].Text
	}

	return map[string]any{
		"response": content,
		"usage": map[string]any{
			"input_tokens":  parsed.Usage.InputTokens,
			"output_tokens": parsed.Usage.OutputTokens,
		},
		"model": cfg.Model,
	}, nil
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
