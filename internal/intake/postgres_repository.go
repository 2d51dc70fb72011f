package intake

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresRepository stores submissions in the relational database.
type PostgresRepository struct {
	pool execer
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("intake: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

func newPostgresRepositoryWithExec(exec execer) *PostgresRepository {
	if exec == nil {
		panic("intake: exec required")
	}
	return &PostgresRepository{pool: exec}
}

// Insert writes one row into the form's collection. The row carries the
// server-stamped source and created_at; there is no conflict target because
// duplicate submissions are stored as independent rows.
func (r *PostgresRepository) Insert(ctx context.Context, collection string, sub *Submission) error {
	switch collection {
	case CollectionLeads:
		query := `
			INSERT INTO leads (id, name, phone, address, email, message, source, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		if _, err := r.pool.Exec(ctx, query,
			sub.ID,
			sub.Name,
			sub.Phone,
			sub.Address,
			sub.Email,
			sub.Message,
			sub.Source,
			sub.SubmittedAt,
		); err != nil {
			return fmt.Errorf("intake: insert lead: %w", err)
		}
		return nil
	case CollectionDealRequests:
		query := `
			INSERT INTO deal_requests (id, name, email, phone, areas, investor_type, deal_id, source, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`
		if _, err := r.pool.Exec(ctx, query,
			sub.ID,
			sub.Name,
			sub.Email,
			sub.Phone,
			sub.Areas,
			sub.InvestorType,
			sub.DealID,
			sub.Source,
			sub.SubmittedAt,
		); err != nil {
			return fmt.Errorf("intake: insert deal request: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("intake: unknown collection %q", collection)
	}
}
