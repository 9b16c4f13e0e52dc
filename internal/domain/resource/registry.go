package resource

import (
	"errors"
	"sync"

	"chershare/internal/domain/account"
)

var (
	ErrAlreadyInitialized = errors.New("resource already initialized")
	ErrResourceNotFound   = errors.New("resource not found")
)

// Registry holds the live resource aggregates by sub-account id. A
// resource initializes exactly once; a second Register under the same
// id fails.
type Registry struct {
	mu        sync.RWMutex
	resources map[account.ID]*Resource
}

func NewRegistry() *Registry {
	return &Registry{resources: make(map[account.ID]*Resource)}
}

func (g *Registry) Register(r *Resource) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.resources[r.ID()]; exists {
		return ErrAlreadyInitialized
	}
	g.resources[r.ID()] = r
	return nil
}

func (g *Registry) Get(id account.ID) (*Resource, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	r, ok := g.resources[id]
	if !ok {
		return nil, ErrResourceNotFound
	}
	return r, nil
}

func (g *Registry) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.resources)
}
