package domain

import "github.com/google/uuid"

// PortSpec describes a port on a node type template.
type PortSpec struct {
	Name        string
	DataType    DataType
	Description string
}

// NodeTypeDefinition is the template a node of a given type is created
// from: its default ports and default configuration.
type NodeTypeDefinition struct {
	Type          NodeType
	Name          string
	Description   string
	Category      string
	DefaultInputs []PortSpec
	DefaultOutput []PortSpec
	DefaultConfig map[string]any
}

// Definitions lists the node types available to the editing surface,
// mirroring the palette of the studio UI.
var Definitions = map[NodeType]NodeTypeDefinition{
	NodeTypeInput: {
		Type:        NodeTypeInput,
		Name:        "Input",
		Description: "Provides input data to the agent",
		Category:    "Basic",
		DefaultOutput: []PortSpec{
			{Name: "output", DataType: DataTypeAny, Description: "Output data"},
		},
		DefaultConfig: map[string]any{
			"input_name":    "input",
			"default_value": "",
		},
	},
	NodeTypeOutput: {
		Type:        NodeTypeOutput,
		Name:        "Output",
		Description: "Exposes output data from the agent",
		Category:    "Basic",
		DefaultInputs: []PortSpec{
			{Name: "input", DataType: DataTypeAny, Description: "Input data"},
		},
		DefaultConfig: map[string]any{
			"output_name": "output",
		},
	},
	NodeTypeLLM: {
		Type:        NodeTypeLLM,
		Name:        "LLM",
		Description: "Calls a language model",
		Category:    "AI",
		DefaultInputs: []PortSpec{
			{Name: "prompt", DataType: DataTypeString, Description: "Prompt text"},
			{Name: "system", DataType: DataTypeString, Description: "System message"},
		},
		DefaultOutput: []PortSpec{
			{Name: "response", DataType: DataTypeString, Description: "Model response"},
		},
		DefaultConfig: map[string]any{
			"provider":    "openai",
			"model":       "gpt-3.5-turbo",
			"temperature": 0.7,
			"max_tokens":  1000,
		},
	},
	NodeTypeAPI: {
		Type:        NodeTypeAPI,
		Name:        "API",
		Description: "Makes HTTP requests to external APIs",
		Category:    "Integration",
		DefaultInputs: []PortSpec{
			{Name: "params", DataType: DataTypeObject, Description: "Query parameters"},
			{Name: "headers", DataType: DataTypeObject, Description: "HTTP headers"},
			{Name: "body", DataType: DataTypeAny, Description: "Request body"},
		},
		DefaultOutput: []PortSpec{
			{Name: "response", DataType: DataTypeAny, Description: "Response body"},
			{Name: "status", DataType: DataTypeNumber, Description: "HTTP status code"},
		},
		DefaultConfig: map[string]any{
			"url":     "",
			"method":  "GET",
			"timeout": 30,
		},
	},
	NodeTypeTransform: {
		Type:        NodeTypeTransform,
		Name:        "Transform",
		Description: "Transforms data from one shape to another",
		Category:    "Data",
		DefaultInputs: []PortSpec{
			{Name: "input", DataType: DataTypeAny, Description: "Input data"},
		},
		DefaultOutput: []PortSpec{
			{Name: "output", DataType: DataTypeAny, Description: "Transformed data"},
		},
		DefaultConfig: map[string]any{
			"transform_type": "jq",
			"expression":     ".",
		},
	},
	NodeTypeCondition: {
		Type:        NodeTypeCondition,
		Name:        "Condition",
		Description: "Evaluates a condition and gates data",
		Category:    "Flow Control",
		DefaultInputs: []PortSpec{
			{Name: "condition", DataType: DataTypeBoolean, Description: "Condition to evaluate"},
			{Name: "data", DataType: DataTypeAny, Description: "Data to route"},
		},
		DefaultOutput: []PortSpec{
			{Name: "true", DataType: DataTypeAny, Description: "Output when true"},
			{Name: "false", DataType: DataTypeAny, Description: "Output when false"},
		},
		DefaultConfig: map[string]any{
			"condition_type": "expression",
			"expression":     "data != null",
		},
	},
	NodeTypeLoop: {
		Type:        NodeTypeLoop,
		Name:        "Loop",
		Description: "Enumerates a sequence of items",
		Category:    "Flow Control",
		DefaultInputs: []PortSpec{
			{Name: "items", DataType: DataTypeArray, Description: "Items to iterate over"},
		},
		DefaultOutput: []PortSpec{
			{Name: "item", DataType: DataTypeAny, Description: "Current item"},
			{Name: "index", DataType: DataTypeNumber, Description: "Current index"},
			{Name: "results", DataType: DataTypeArray, Description: "Collected results"},
		},
		DefaultConfig: map[string]any{
			"loop_type":       "for_each",
			"collect_results": true,
		},
	},
}

// NewNode instantiates a node of the given type from its template.
// Ports get fresh ids; the template's default config is copied so callers
// can mutate it freely. Returns nil for an unknown type.
func NewNode(t NodeType, name string, pos Position) *Node {
	def, ok := Definitions[t]
	if !ok {
		return nil
	}
	if name == "" {
		name = def.Name
	}

	node := &Node{
		ID:       uuid.NewString(),
		Type:     t,
		Name:     name,
		Position: pos,
		Config:   make(map[string]any, len(def.DefaultConfig)),
	}
	for k, v := range def.DefaultConfig {
		node.Config[k] = v
	}
	for _, p := range def.DefaultInputs {
		node.Inputs = append(node.Inputs, newPort(p))
	}
	for _, p := range def.DefaultOutput {
		node.Outputs = append(node.Outputs, newPort(p))
	}
	return node
}

func newPort(spec PortSpec) NodeIO {
	return NodeIO{
		ID:          uuid.NewString(),
		Name:        spec.Name,
		DataType:    spec.DataType,
		Description: spec.Description,
	}
}

// NewEdge connects a source output port to a target input port.
func NewEdge(sourceNode, sourceOutput, targetNode, targetInput string) Edge {
	return Edge{
		ID:             uuid.NewString(),
		SourceNodeID:   sourceNode,
		SourceOutputID: sourceOutput,
		TargetNodeID:   targetNode,
		TargetInputID:  targetInput,
	}
}
