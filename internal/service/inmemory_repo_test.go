package service

import (
	"context"
	"sync"

	"provider-connection-checker/internal/core/domain"
	"provider-connection-checker/pkg/apperror"

	"github.com/google/uuid"
)

// inMemoryProviderRepo stores copies so tests can tell the stored record
// apart from whatever the checker holds in memory.
type inMemoryProviderRepo struct {
	mu        sync.RWMutex
	providers map[uuid.UUID]domain.Provider
	saves     int
}

func newInMemoryProviderRepo(providers ...domain.Provider) *inMemoryProviderRepo {
	r := &inMemoryProviderRepo{providers: make(map[uuid.UUID]domain.Provider)}
	for _, p := range providers {
		r.providers[p.ID] = p
	}
	return r
}

func (r *inMemoryProviderRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[id]
	if !ok {
		return nil, apperror.ErrProviderNotFound()
	}
	return &p, nil
}

func (r *inMemoryProviderRepo) Save(_ context.Context, p *domain.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.providers[p.ID]; !ok {
		return apperror.ErrProviderNotFound()
	}
	r.providers[p.ID] = *p
	r.saves++
	return nil
}

func (r *inMemoryProviderRepo) stored(id uuid.UUID) domain.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.providers[id]
}

func (r *inMemoryProviderRepo) saveCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}

// stubTester returns a fixed outcome and counts calls.
type stubTester struct {
	mu     sync.Mutex
	result domain.ConnectivityResult
	err    error
	calls  int
}

func (t *stubTester) Name() string { return "stub" }

func (t *stubTester) TestConnection(_ context.Context, _ *domain.Provider) (domain.ConnectivityResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls++
	return t.result, t.err
}
