// Package session holds the per-sender pending workflow between webhook
// requests. Each inbound message is stateless on the wire; this store is
// what reconstructs which step of which flow a sender is on.
package session

import (
	"sync"

	"shopbot/internal/domain"
)

// Store maps a sender identity to at most one pending workflow.
// Implementations must treat a missing record as "no workflow", never as
// an error.
type Store interface {
	Get(sender string) (*domain.Workflow, error)
	Set(sender string, wf *domain.Workflow) error
	Clear(sender string) error
}

// MemoryStore is the default in-process store. The mutex guards the map
// itself; requests for the same sender are assumed serialized by the
// messaging channel, so lost updates under concurrent same-sender requests
// are an accepted limitation.
type MemoryStore struct {
	mu        sync.RWMutex
	workflows map[string]*domain.Workflow
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{workflows: make(map[string]*domain.Workflow)}
}

// Get returns the sender's pending workflow, or nil
func (s *MemoryStore) Get(sender string) (*domain.Workflow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workflows[sender], nil
}

// Set replaces the sender's pending workflow
func (s *MemoryStore) Set(sender string, wf *domain.Workflow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workflows[sender] = wf
	return nil
}

// Clear removes the sender's pending workflow
func (s *MemoryStore) Clear(sender string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.workflows, sender)
	return nil
}
