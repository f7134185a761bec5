package service

import (
	"context"
	"fmt"
	"time"

	"provider-connection-checker/internal/core/domain"
	"provider-connection-checker/internal/core/ports"
	"provider-connection-checker/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ConnectionServiceImpl implements ports.ConnectionChecker.
type ConnectionServiceImpl struct {
	providerRepo ports.ProviderRepository
	testers      *TesterTable
	now          func() time.Time
	log          zerolog.Logger
}

// NewConnectionService creates a new ConnectionServiceImpl.
func NewConnectionService(
	providerRepo ports.ProviderRepository,
	testers *TesterTable,
	log zerolog.Logger,
) *ConnectionServiceImpl {
	return &ConnectionServiceImpl{
		providerRepo: providerRepo,
		testers:      testers,
		now:          time.Now,
		log:          log,
	}
}

// CheckProviderConnection probes the provider's credentials and records the
// outcome on the provider record.
//
// A failed probe is not an error: it is persisted and returned in the result.
// Errors are returned only when the check could not run, and in that case the
// provider record is left as it was.
func (s *ConnectionServiceImpl) CheckProviderConnection(ctx context.Context, providerID uuid.UUID) (*domain.CheckResult, error) {
	provider, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	tester, ok := s.testers.Lookup(provider.Provider)
	if !ok {
		return nil, apperror.ErrProviderNotSupported(string(provider.Provider))
	}

	log := s.log.With().
		Str("provider_id", provider.ID.String()).
		Str("provider", string(provider.Provider)).
		Str("tester", tester.Name()).
		Bool("first_check", provider.NeverChecked()).
		Logger()
	log.Debug().Msg("checking provider connection")

	result, err := tester.TestConnection(ctx, provider)
	if err != nil {
		log.Error().Err(err).Msg("connection tester failed unexpectedly")
		return nil, fmt.Errorf("test %s connection for provider %s: %w", provider.Provider, provider.ID, err)
	}

	status := domain.NewConnectionStatus(result, s.now())
	if err := s.providerRepo.Save(ctx, provider.WithConnectionStatus(status)); err != nil {
		return nil, fmt.Errorf("save connection status for provider %s: %w", provider.ID, err)
	}

	event := log.Info()
	if !result.IsConnected {
		event = log.Warn().AnErr("connection_error", result.Error)
	}
	event.Bool("connected", result.IsConnected).Msg("provider connection checked")

	return &domain.CheckResult{
		Connected: result.IsConnected,
		Error:     result.Error,
	}, nil
}
