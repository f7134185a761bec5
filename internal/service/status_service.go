package service

import (
	"context"

	"provider-connection-checker/internal/core/domain"
	"provider-connection-checker/internal/core/ports"

	"github.com/google/uuid"
)

type statusService struct {
	providerRepo ports.ProviderRepository
}

// NewStatusService creates a read-only service over stored connection state.
func NewStatusService(providerRepo ports.ProviderRepository) ports.ProviderStatusService {
	return &statusService{providerRepo: providerRepo}
}

func (s *statusService) GetConnectionStatus(ctx context.Context, providerID uuid.UUID) (*domain.Provider, error) {
	return s.providerRepo.GetByID(ctx, providerID)
}
