package runtime

import "github.com/mitchellh/mapstructure"

// Typed views of the per-type configuration records. The open map stays
// on the node for the editing surface; the engine decodes it once per
// evaluation so dispatch never does stringly-keyed lookups.

// InputConfig configures an Input node.
type InputConfig struct {
	InputName    string `mapstructure:"input_name"`
	DefaultValue any    `mapstructure:"default_value"`
}

// OutputConfig configures an Output node.
type OutputConfig struct {
	OutputName string `mapstructure:"output_name"`
}

// LLMConfig carries the provider selection; model parameters are decoded
// by the vendor executor itself.
type LLMConfig struct {
	Provider string `mapstructure:"provider"`
}

// ConditionConfig configures a Condition node.
type ConditionConfig struct {
	ConditionType string `mapstructure:"condition_type"`
	Expression    string `mapstructure:"expression"`
}

// LoopConfig configures a Loop node.
type LoopConfig struct {
	LoopType       string `mapstructure:"loop_type"`
	CollectResults bool   `mapstructure:"collect_results"`
}

func decodeInputConfig(raw map[string]any) InputConfig {
	cfg := InputConfig{InputName: "input", DefaultValue: ""}
	decodeConfig(raw, &cfg)
	return cfg
}

func decodeOutputConfig(raw map[string]any) OutputConfig {
	cfg := OutputConfig{OutputName: "output"}
	decodeConfig(raw, &cfg)
	return cfg
}

func decodeLLMConfig(raw map[string]any) LLMConfig {
	cfg := LLMConfig{Provider: "openai"}
	decodeConfig(raw, &cfg)
	return cfg
}

func decodeConditionConfig(raw map[string]any) ConditionConfig {
	cfg := ConditionConfig{ConditionType: "expression"}
	decodeConfig(raw, &cfg)
	return cfg
}

func decodeLoopConfig(raw map[string]any) LoopConfig {
	cfg := LoopConfig{LoopType: "for_each", CollectResults: true}
	decodeConfig(raw, &cfg)
	return cfg
}

// decodeConfig fills out from raw, tolerating loose scalar types.
// Unknown keys are ignored; a malformed record keeps the defaults rather
// than failing the node, matching how the studio treats configs as
// advisory until execution touches a specific key.
func decodeConfig(raw map[string]any, out any) {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return
	}
	_ = dec.Decode(raw)
}
