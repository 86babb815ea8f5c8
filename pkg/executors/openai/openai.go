// Package openai implements the LLM Executor for OpenAI chat models.
//
// Calls go straight to the chat completions HTTP endpoint; there is no
// vendor SDK in the dependency tree. The API key is read from the
// OPENAI_API_KEY environment variable once at construction — when it is
// absent every call returns an error (which the engine converts into a
// node-local error record) rather than failing the process.
package openai

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

const defaultEndpoint = "https://api.openai.com/v1/chat/completions"

// ErrMissingAPIKey is returned when OPENAI_API_KEY is not set.
var ErrMissingAPIKey = errors.New("OpenAI API key not configured (set OPENAI_API_KEY)")

// Config is the typed view of an LLM node's configuration record.
type Config struct {
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// Executor calls the OpenAI chat completions API.
type Executor struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// New creates an Executor reading its key from the environment.
func New() *Executor {
	return &Executor{
		apiKey:   os.Getenv("OPENAI_API_KEY"),
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

// NewWithKey creates an Executor with an explicit key and endpoint.
// Used by tests and callers that manage credentials themselves.
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

// Execute sends inputs["prompt"] with inputs["system"] as the system
// message and returns {response, usage, model}.
func (e *Executor) Execute(ctx context.Context, config map[string]any, inputs map[string]any) (any, error) {
	if e.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := Config{Model: "gpt-3.5-turbo", Temperature: 0.7, MaxTokens: 1000}
	if err := decode(config, &cfg); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	prompt := cast.ToString(inputs["prompt"])
	system := "You are a helpful assistant."
	if s, ok := inputs["system"]; ok {
		system = cast.ToString(s)
	}

	payload := map[string]any{
		"model": cfg.Model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
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
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai error: status %s", resp.Status)
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
			TotalTokens      int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("openai response decode failed: %w", err)
	}

	content := ""
	if len(parsed.Choices) > 0 {
		content = parsed.Choices[0].Message.Content
	}

	return map[string]any{
		"response": content,
		"usage": map[string]any{
			"prompt_tokens":     parsed.Usage.PromptTokens,
			"completion_tokens": parsed.Usage.CompletionTokens,
			"total_tokens":      parsed.Usage.TotalTokens,
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
