package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wiradata/treasury_app/internal/apperrors"
	portsrepo "github.com/wiradata/treasury_app/internal/core/ports/repositories"
	"github.com/wiradata/treasury_app/internal/utils/accounting"
)

type PgxSequenceRepository struct {
	BaseRepository
}

// newPgxSequenceRepository creates the document-number allocator.
func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// NextNumberInTx bumps the (prefix, year, month) counter inside the caller's
// transaction and returns the formatted document number. The upsert takes a
// row lock, so concurrent allocations for the same scope serialize here and
// never observe the same value.
func (r *PgxSequenceRepository) NextNumberInTx(ctx context.Context, tx pgx.Tx, prefix string, year int, month time.Month) (string, error) {
	query := `
		INSERT INTO number_sequences (prefix, year, month, last_seq)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (prefix, year, month)
		DO UPDATE SET last_seq = number_sequences.last_seq + 1
		RETURNING last_seq;
	`
	var seq int64
	if err := tx.QueryRow(ctx, query, prefix, year, int(month)).Scan(&seq); err != nil {
		return "", apperrors.NewAppError(500, "failed to allocate number for scope "+prefix, err)
	}
	return accounting.FormatDocumentNumber(prefix, year, int(month), seq), nil
}
