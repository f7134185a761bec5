package ports

import (
	"context"
	"time"

	"provider-connection-checker/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks provider-connection-checker/internal/core/ports ProviderRepository,ProviderLock

// ProviderRepository is the Provider registry.
// GetByID returns an apperror with code PRV_001 when no record exists.
// Save persists every mutable field of the record in a single write.
type ProviderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error)
	Save(ctx context.Context, provider *domain.Provider) error
}

// ProviderLock serialises connection checks for the same provider across workers.
type ProviderLock interface {
	// Acquire returns true if the lock for providerID was taken, false if another
	// holder already has it.
	Acquire(ctx context.Context, providerID string, ttl time.Duration) (bool, error)
	// Release drops the lock if this holder still owns it.
	Release(ctx context.Context, providerID string) error
}
