/*
Package dsl provides a fluent builder for constructing agent graphs in Go.

It covers the same shapes the studio's visual editor produces, but with
deterministic node and port ids so graphs can be defined in code, unit
tested and diffed. Port ids follow the "<node id>:<port name>" convention.

Example usage:

	agent, err := dsl.New("summarizer").
		Input("in", "text").
		LLM("llm", "openai").
		Output("out", "summary").
		Connect("in", "output", "llm", "prompt").
		Connect("llm", "response", "out", "input").
		Build()

	// ... pass agent to agentstudio.Engine.Execute
*/
package dsl
