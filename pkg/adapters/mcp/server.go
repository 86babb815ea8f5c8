// Package mcp exposes the execution core as an MCP server, so LLM hosts
// can run stored agents as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/angjelo/AIAgentStudio"
	"github.com/angjelo/AIAgentStudio/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ExecuteResponse is the structured result of the run_agent tool.
type ExecuteResponse struct {
	AgentID string         `json:"agent_id" jsonschema_description:"The id of the executed agent"`
	Results map[string]any `json:"results" jsonschema_description:"Output name to computed value"`
}

// Server wraps the engine and an agent store as an MCP Server.
type Server struct {
	engine    *agentstudio.Engine
	store     ports.AgentStore
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine *agentstudio.Engine, store ports.AgentStore) *Server {
	s := &Server{
		engine:    engine,
		store:     store,
		mcpServer: server.NewMCPServer("agentstudio-mcp", strings.TrimSpace(agentstudio.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: run_agent
	runTool := mcp.NewTool("run_agent",
		mcp.WithDescription("Execute a stored agent with the given input bindings."),
		mcp.WithString("agent_id", mcp.Required(), mcp.Description("The id of the stored agent to run")),
		mcp.WithString("input_data", mcp.Description("JSON object mapping input names to values (optional)")),
		mcp.WithOutputSchema[ExecuteResponse](),
	)
	s.mcpServer.AddTool(runTool, mcp.NewStructuredToolHandler(s.handleRunAgent))

	// TOOL: list_agents
	s.mcpServer.AddTool(mcp.NewTool("list_agents",
		mcp.WithDescription("List the ids of all stored agents."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ids, err := s.store.List(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(ids)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: get_agent
	s.mcpServer.AddTool(mcp.NewTool("get_agent",
		mcp.WithDescription("Get the full definition of a stored agent."),
		mcp.WithString("agent_id", mcp.Required(), mcp.Description("The id of the agent")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("agent_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		agent, err := s.store.Load(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(agent)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleRunAgent(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ExecuteResponse, error) {
	agentID, _ := args["agent_id"].(string)
	if agentID == "" {
		return ExecuteResponse{}, fmt.Errorf("agent_id is required")
	}

	inputData := make(map[string]any)
	if raw, ok := args["input_data"].(string); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &inputData); err != nil {
			return ExecuteResponse{}, fmt.Errorf("input_data is not a JSON object: %w", err)
		}
	}

	agent, err := s.store.Load(ctx, agentID)
	if err != nil {
		return ExecuteResponse{}, fmt.Errorf("load agent: %w", err)
	}

	results, err := s.engine.Execute(ctx, agent, inputData)
	if err != nil {
		return ExecuteResponse{}, fmt.Errorf("execute failed: %w", err)
	}

	return ExecuteResponse{AgentID: agentID, Results: results}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: agentstudio://agents
	s.mcpServer.AddResource(mcp.NewResource("agentstudio://agents", "Stored Agents",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ids, err := s.store.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list agents: %w", err)
		}
		jsonBytes, _ := json.Marshal(ids)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "agentstudio://agents",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
