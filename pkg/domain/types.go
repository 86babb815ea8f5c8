package domain

// NodeType tags a node with its execution behavior.
type NodeType string

const (
	// NodeTypeInput feeds a caller-supplied value into the graph.
	NodeTypeInput NodeType = "input"
	// NodeTypeOutput names a value the caller gets back.
	NodeTypeOutput NodeType = "output"
	// NodeTypeLLM calls a language model through a vendor provider.
	NodeTypeLLM NodeType = "llm"
	// NodeTypeAPI performs an HTTP request.
	NodeTypeAPI NodeType = "api"
	// NodeTypeTransform reshapes data (jq-lite, regex, template).
	NodeTypeTransform NodeType = "transform"
	// NodeTypeCondition gates data on a small fixed expression grammar.
	NodeTypeCondition NodeType = "condition"
	// NodeTypeLoop enumerates a sequence into {item, index} records.
	NodeTypeLoop NodeType = "loop"
)

// DataType declares the kind of value a port carries.
// It is advisory: the engine does not enforce it at run time.
type DataType string

const (
	DataTypeString  DataType = "string"
	DataTypeNumber  DataType = "number"
	DataTypeBoolean DataType = "boolean"
	DataTypeObject  DataType = "object"
	DataTypeArray   DataType = "array"
	DataTypeAny     DataType = "any"
)
