package service

import (
	"context"
	"strings"
	"time"

	"provider-connection-checker/internal/core/domain"
	"provider-connection-checker/internal/core/ports"
	"provider-connection-checker/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultLockTTL = 2 * time.Minute

// ConnectionJob is the entry point a scheduler invokes with a raw provider id.
// It parses the id, optionally serialises checks per provider, and delegates
// to the checker.
type ConnectionJob struct {
	checker ports.ConnectionChecker
	lock    ports.ProviderLock // nil = no per-provider serialisation
	lockTTL time.Duration
	log     zerolog.Logger
}

// NewConnectionJob creates a new ConnectionJob. lock may be nil.
func NewConnectionJob(
	checker ports.ConnectionChecker,
	lock ports.ProviderLock,
	lockTTL time.Duration,
	log zerolog.Logger,
) *ConnectionJob {
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}
	return &ConnectionJob{
		checker: checker,
		lock:    lock,
		lockTTL: lockTTL,
		log:     log,
	}
}

// RunConnectionCheck runs one connection check for the provider identified by rawID.
func (j *ConnectionJob) RunConnectionCheck(ctx context.Context, rawID string) (*domain.CheckResult, error) {
	providerID, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return nil, apperror.ErrInvalidProviderID()
	}

	log := j.log.With().Str("provider_id", providerID.String()).Logger()

	if j.lock != nil {
		acquired, err := j.lock.Acquire(ctx, providerID.String(), j.lockTTL)
		if err != nil {
			return nil, apperror.ErrLockFailure(err)
		}
		if !acquired {
			log.Info().Msg("connection check already running, skipping")
			return nil, apperror.ErrCheckInProgress()
		}
		defer func() {
			// The job context may already be cancelled; release on a fresh one.
			releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := j.lock.Release(releaseCtx, providerID.String()); err != nil {
				log.Warn().Err(err).Msg("failed to release provider lock")
			}
		}()
	}

	started := time.Now()
	result, err := j.checker.CheckProviderConnection(ctx, providerID)
	if err != nil {
		log.Error().Err(err).Str("error_code", apperror.CodeOf(err)).Msg("connection check did not run")
		return nil, err
	}

	log.Info().
		Bool("connected", result.Connected).
		Dur("duration", time.Since(started)).
		Msg("connection check finished")
	return result, nil
}
