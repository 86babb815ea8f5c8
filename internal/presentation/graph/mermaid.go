// Package graph renders agent graphs as Mermaid flowcharts for docs and
// the CLI. Purely presentational; the runtime never depends on it.
package graph

import (
	"fmt"
	"strings"

	"github.com/angjelo/AIAgentStudio/pkg/domain"
)

// GenerateMermaid produces Mermaid flowchart syntax for an agent.
// Node shapes follow type semantics:
//   - Input: [/Parallelogram/]
//   - Output: [\Parallelogram\]
//   - Condition: {Diamond}
//   - LLM and API: [[Subroutine]]
//   - Default: [Rectangle]
//
// Edges are labeled with the source and target port names when they carry
// more information than the default "output -> input" wiring.
func GenerateMermaid(agent *domain.Agent) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range agent.Nodes {
		opener, closer := "[", "]"
		switch node.Type {
		case domain.NodeTypeInput:
			opener, closer = "[/", "/]"
		case domain.NodeTypeOutput:
			opener, closer = "[\\", "\\]"
		case domain.NodeTypeCondition:
			opener, closer = "{", "}"
		case domain.NodeTypeLLM, domain.NodeTypeAPI:
			opener, closer = "[[", "]]"
		}

		label := node.Name
		if label == "" {
			label = node.ID
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeID(node.ID), opener, label, closer))
	}

	for _, edge := range agent.Edges {
		arrow := "-->"
		if label := edgeLabel(agent, edge); label != "" {
			arrow = fmt.Sprintf("-- \"%s\" -->", label)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n",
			sanitizeID(edge.SourceNodeID), arrow, sanitizeID(edge.TargetNodeID)))
	}

	return sb.String()
}

// edgeLabel names the ports an edge connects, or "" for the plain
// output->input case that needs no annotation.
func edgeLabel(agent *domain.Agent, edge domain.Edge) string {
	srcPort := portName(agent.FindNode(edge.SourceNodeID), edge.SourceOutputID, false)
	dstPort := portName(agent.FindNode(edge.TargetNodeID), edge.TargetInputID, true)
	if srcPort == "output" && dstPort == "input" {
		return ""
	}
	return srcPort + " → " + dstPort
}

func portName(node *domain.Node, portID string, input bool) string {
	if node == nil {
		return ""
	}
	ports := node.Outputs
	if input {
		ports = node.Inputs
	}
	for _, p := range ports {
		if p.ID == portID {
			return p.Name
		}
	}
	return ""
}

func sanitizeID(id string) string {
	replacer := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", ":", "_")
	return replacer.Replace(id)
}
