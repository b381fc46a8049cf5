package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wiradata/treasury_app/internal/apperrors"
	"github.com/wiradata/treasury_app/internal/core/domain"
	portsrepo "github.com/wiradata/treasury_app/internal/core/ports/repositories"
	"github.com/wiradata/treasury_app/internal/models"
	"github.com/wiradata/treasury_app/internal/utils/mapping"
)

type PgxPeriodRepository struct {
	BaseRepository
}

// newPgxPeriodRepository creates a new repository for accounting periods.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepository {
	return &PgxPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PeriodRepository = (*PgxPeriodRepository)(nil)

// FindPeriodForDate retrieves the accounting period covering the given date.
// apperrors.ErrNotFound when the month has no period row.
func (r *PgxPeriodRepository) FindPeriodForDate(ctx context.Context, date time.Time) (*domain.Period, error) {
	query := `
		SELECT period_id, year, month, name, state, closed_at,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM accounting_periods
		WHERE year = $1 AND month = $2;
	`
	var m models.Period
	err := r.Pool.QueryRow(ctx, query, date.Year(), int(date.Month())).Scan(
		&m.PeriodID,
		&m.Year,
		&m.Month,
		&m.Name,
		&m.State,
		&m.ClosedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find accounting period for "+date.Format("2006-01"), err)
	}

	period := mapping.ToDomainPeriod(m)
	return &period, nil
}
