package postgres

import (
	"context"
	"errors"
	"fmt"

	"provider-connection-checker/internal/core/domain"
	"provider-connection-checker/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const providerColumns = `id, tenant_id, provider, uid, alias, connected,
	connection_last_checked_at, connection_error, created_at, updated_at`

// ProviderRepo implements ports.ProviderRepository.
type ProviderRepo struct {
	pool Pool
}

// NewProviderRepo creates a new ProviderRepo.
func NewProviderRepo(pool Pool) *ProviderRepo {
	return &ProviderRepo{pool: pool}
}

// GetByID fetches a provider by its UUID. A missing row is reported as
// PRV_001 wrapping pgx.ErrNoRows, any other failure as SYS_001.
func (r *ProviderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE id = $1`

	p := &domain.Provider{}
	var providerType string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.TenantID, &providerType, &p.UID, &p.Alias, &p.Connected,
		&p.ConnectionLastCheckedAt, &p.ConnectionError, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.ProviderNotFound(err)
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get provider by id: %w", err))
	}
	// Unknown types are kept as stored so the checker can report them.
	p.Provider, _ = domain.ParseProviderType(providerType)
	return p, nil
}

// Save writes every mutable provider field in one statement.
func (r *ProviderRepo) Save(ctx context.Context, p *domain.Provider) error {
	query := `UPDATE providers
		SET uid=$1, alias=$2, connected=$3, connection_last_checked_at=$4, connection_error=$5, updated_at=NOW()
		WHERE id=$6`

	tag, err := r.pool.Exec(ctx, query,
		p.UID, p.Alias, p.Connected, p.ConnectionLastCheckedAt, p.ConnectionError, p.ID,
	)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("update provider: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return apperror.ProviderNotFound(pgx.ErrNoRows)
	}
	return nil
}
