package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// SequenceRepository allocates human-readable document numbers. The
// increment-and-reserve step must run inside the caller's database
// transaction so two concurrent allocations for the same (prefix, year,
// month) scope serialize on the counter row.
type SequenceRepository interface {
	// NextNumberInTx reserves the next number for the scope within tx and
	// returns it formatted, e.g. BNK/2024/03/0001.
	NextNumberInTx(ctx context.Context, tx pgx.Tx, prefix string, year int, month time.Month) (string, error)
}
