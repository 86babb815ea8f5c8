// Package redis provides a Redis-backed AgentStore. Agents are stored as
// JSON blobs under a key prefix with a set-based index, so List never
// needs a SCAN.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/angjelo/AIAgentStudio/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

const defaultPrefix = "agentstudio:agents:"

// Store implements ports.AgentStore on Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// StoreOption configures the store.
type StoreOption func(*Store)

// WithPrefix overrides the key prefix.
func WithPrefix(prefix string) StoreOption {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithTTL sets an expiration on stored agents. Zero (the default) means
// agents persist until deleted.
func WithTTL(ttl time.Duration) StoreOption {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// NewFromClient creates a store on an existing Redis client.
func NewFromClient(client *backend.Client, opts ...StoreOption) *Store {
	s := &Store{
		client: client,
		prefix: defaultPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// New connects to the given address and creates a store.
func New(addr string, opts ...StoreOption) *Store {
	client := backend.NewClient(&backend.Options{Addr: addr})
	return NewFromClient(client, opts...)
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the agent as a JSON blob and records it in the index.
func (s *Store) Save(ctx context.Context, agent *domain.Agent) error {
	raw, err := json.Marshal(agent)
	if err != nil {
		return fmt.Errorf("marshal agent %s: %w", agent.ID, err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(agent.ID), raw, s.ttl)
	pipe.SAdd(ctx, s.indexKey(), agent.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis save: %w", err)
	}
	return nil
}

// Load retrieves an agent by id.
func (s *Store) Load(ctx context.Context, id string) (*domain.Agent, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, domain.ErrAgentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis load: %w", err)
	}

	var agent domain.Agent
	if err := json.Unmarshal(raw, &agent); err != nil {
		return nil, fmt.Errorf("unmarshal agent %s: %w", id, err)
	}
	return &agent, nil
}

// Delete removes an agent and its index entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key(id))
	pipe.SRem(ctx, s.indexKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}

// List returns indexed agent ids, dropping entries whose blob has
// expired (TTL mode leaves the index behind; it is cleaned lazily here).
func (s *Store) List(ctx context.Context) ([]string, error) {
	ids, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list: %w", err)
	}
	if s.ttl == 0 {
		return ids, nil
	}

	live := make([]string, 0, len(ids))
	for _, id := range ids {
		n, err := s.client.Exists(ctx, s.key(id)).Result()
		if err != nil {
			return nil, fmt.Errorf("redis list: %w", err)
		}
		if n > 0 {
			live = append(live, id)
		} else {
			_ = s.client.SRem(ctx, s.indexKey(), id).Err()
		}
	}
	return live, nil
}
