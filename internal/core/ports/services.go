package ports

import (
	"context"

	"provider-connection-checker/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks provider-connection-checker/internal/core/ports ConnectionTester,ConnectionChecker,ProviderStatusService

// ConnectionTester probes one vendor's identity endpoint with a provider's credentials.
// Expected authentication failures are reported in the result; a returned error
// means the probe itself could not run.
type ConnectionTester interface {
	Name() string
	TestConnection(ctx context.Context, provider *domain.Provider) (domain.ConnectivityResult, error)
}

// ConnectionChecker runs a connectivity check and persists its outcome.
type ConnectionChecker interface {
	CheckProviderConnection(ctx context.Context, providerID uuid.UUID) (*domain.CheckResult, error)
}

// ProviderStatusService serves the last known connection state of a provider.
type ProviderStatusService interface {
	GetConnectionStatus(ctx context.Context, providerID uuid.UUID) (*domain.Provider, error)
}
