// Package registry manages the Executor implementations available to the
// engine, keyed by node type with a nested lookup for LLM providers.
// The engine stays closed while new node kinds and model vendors register
// from the outside.
package registry

import (
	"fmt"
	"sync"

	"github.com/angjelo/AIAgentStudio/pkg/domain"
	"github.com/angjelo/AIAgentStudio/pkg/ports"
)

// Registry maps node types to their Executor, and LLM provider names to
// vendor-specific Executors. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	executors map[domain.NodeType]ports.Executor
	providers map[string]ports.Executor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		executors: make(map[domain.NodeType]ports.Executor),
		providers: make(map[string]ports.Executor),
	}
}

// Register adds an Executor for a node type.
// If one exists for the same type, it is overwritten.
func (r *Registry) Register(t domain.NodeType, ex ports.Executor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.executors[t] = ex
}

// RegisterProvider adds a vendor-specific LLM Executor under a provider
// name (e.g. "openai", "anthropic").
func (r *Registry) RegisterProvider(name string, ex ports.Executor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = ex
}

// Get returns the Executor for a node type.
func (r *Registry) Get(t domain.NodeType) (ports.Executor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ex, ok := r.executors[t]
	if !ok {
		return nil, fmt.Errorf("no executor registered for node type: %s", t)
	}
	return ex, nil
}

// Provider returns the LLM Executor for a provider name.
// Returns domain.ErrUnknownProvider for unregistered names.
func (r *Registry) Provider(name string) (ports.Executor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ex, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, name)
	}
	return ex, nil
}

// Providers returns the registered provider names.
func (r *Registry) Providers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}
