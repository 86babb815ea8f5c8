// Package memory provides an in-memory AgentStore, mainly for tests and
// single-process serving.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/angjelo/AIAgentStudio/pkg/domain"
)

// Store implements ports.AgentStore in memory.
// Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string][]byte),
	}
}

// Save persists the agent in memory. Agents are stored serialized so a
// caller can never mutate stored state through a retained pointer.
func (s *Store) Save(ctx context.Context, agent *domain.Agent) error {
	raw, err := json.Marshal(agent)
	if err != nil {
		return fmt.Errorf("marshal agent %s: %w", agent.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[agent.ID] = raw
	return nil
}

// Load retrieves an agent by id.
func (s *Store) Load(ctx context.Context, id string) (*domain.Agent, error) {
	s.mu.RLock()
	raw, ok := s.data[id]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrAgentNotFound
	}

	var agent domain.Agent
	if err := json.Unmarshal(raw, &agent); err != nil {
		return nil, fmt.Errorf("unmarshal agent %s: %w", id, err)
	}
	return &agent, nil
}

// Delete removes an agent.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns stored agent ids.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
