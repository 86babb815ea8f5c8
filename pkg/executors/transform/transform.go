// Package transform implements the data-transform Executor.
//
// Three transform types are supported, selected by the node's
// transform_type config key:
//
//   - "jq": a deliberately tiny subset of jq — identity ("."), single
//     top-level field access (".field") and single array index (".[N]").
//     Anything else passes the input through unchanged with a warning.
//   - "regex": returns all non-overlapping matches of the expression;
//     non-string input is serialized to JSON text first.
//   - "template": replaces every {{key}} placeholder with the value of
//     that key from a structured input; non-string values are JSON
//     stringified. Non-structured input returns the template unchanged
//     with a warning.
//
// Every result is an {output: ...} record, optionally carrying a warning.
package transform

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var (
	propertyExpr = regexp.MustCompile(`^\.(\w+)$`)
	indexExpr    = regexp.MustCompile(`^\.\[(\d+)\]$`)
)

// Config is the typed view of a Transform node's configuration record.
type Config struct {
	TransformType string `mapstructure:"transform_type"`
	Expression    string `mapstructure:"expression"`
}

// Executor applies the configured transform to the "input" value.
type Executor struct{}

// New creates the transform engine.
func New() *Executor {
	return &Executor{}
}

// Execute dispatches on transform_type and returns an {output: ...}
// record.
func (e *Executor) Execute(_ context.Context, config map[string]any, inputs map[string]any) (any, error) {
	cfg := Config{TransformType: "jq", Expression: "."}
	if err := decode(config, &cfg); err != nil {
		return nil, fmt.Errorf("invalid transform config: %w", err)
	}

	input := inputs["input"]

	switch cfg.TransformType {
	case "jq":
		return transformJQ(cfg.Expression, input), nil
	case "regex":
		return transformRegex(cfg.Expression, input)
	case "template":
		return transformTemplate(cfg.Expression, input), nil
	default:
		return nil, fmt.Errorf("unsupported transform type: %s", cfg.TransformType)
	}
}

// transformJQ resolves the jq-lite path grammar. Unsupported expressions
// fall through to the input unchanged, flagged with a warning, so a
// mistyped path degrades instead of dropping data.
func transformJQ(expression string, data any) map[string]any {
	if expression == "." {
		return map[string]any{"output": data}
	}

	if m := propertyExpr.FindStringSubmatch(expression); m != nil {
		if obj, ok := data.(map[string]any); ok {
			val, exists := obj[m[1]]
			if !exists {
				return map[string]any{"output": nil}
			}
			return map[string]any{"output": val}
		}
	}

	if m := indexExpr.FindStringSubmatch(expression); m != nil {
		if arr, ok := data.([]any); ok {
			idx, _ := strconv.Atoi(m[1])
			if idx >= 0 && idx < len(arr) {
				return map[string]any{"output": arr[idx]}
			}
			return map[string]any{"output": nil}
		}
	}

	return map[string]any{"output": data, "warning": "Unsupported jq expression"}
}

// transformRegex returns all matches of the expression against the input,
// serializing non-string input to JSON text first.
func transformRegex(expression string, data any) (any, error) {
	re, err := regexp.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid regex: %w", err)
	}

	text, ok := data.(string)
	if !ok {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("serialize input: %w", err)
		}
		text = string(raw)
	}

	matches := re.FindAllString(text, -1)
	out := make([]any, len(matches))
	for i, m := range matches {
		out[i] = m
	}
	return map[string]any{"output": out}, nil
}

// transformTemplate substitutes {{key}} placeholders from a structured
// input.
func transformTemplate(template string, data any) map[string]any {
	obj, ok := data.(map[string]any)
	if !ok {
		return map[string]any{"output": template, "warning": "Template requires object input"}
	}

	result := template
	for key, value := range obj {
		str, ok := value.(string)
		if !ok {
			raw, err := json.Marshal(value)
			if err != nil {
				continue
			}
			str = string(raw)
		}
		result = strings.ReplaceAll(result, "{{"+key+"}}", str)
	}
	return map[string]any{"output": result}
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
