package ports

import (
	"context"

	"github.com/angjelo/AIAgentStudio/pkg/domain"
)

// AgentStore persists agent snapshots outside the engine.
// The engine itself never touches storage; stores exist for the serving
// and editing surfaces that hand agents to the engine.
type AgentStore interface {
	// Save persists the agent under agent.ID, overwriting any previous
	// version.
	Save(ctx context.Context, agent *domain.Agent) error

	// Load retrieves an agent by id.
	// Returns domain.ErrAgentNotFound if the id is unknown.
	Load(ctx context.Context, id string) (*domain.Agent, error)

	// Delete removes an agent. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the ids of all stored agents.
	List(ctx context.Context) ([]string, error)
}
