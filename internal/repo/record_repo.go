package repo

import (
	"context"

	dom "Calendar/internal/domain"

	"github.com/jackc/pgx/v5"
)

// RecordSource loads the full record collection.
type RecordSource interface {
	List(ctx context.Context) ([]dom.Record, error)
}

// RecordWriter adds records to a source that accepts writes.
type RecordWriter interface {
	Create(ctx context.Context, r dom.Record) (dom.Record, error)
}

// DB is the subset of *pgxpool.Pool the repo needs.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PGRecordRepo implements RecordSource and RecordWriter with Postgres.
type PGRecordRepo struct {
	db DB
}

func NewPGRecordRepo(db DB) *PGRecordRepo {
	return &PGRecordRepo{db: db}
}

func (r *PGRecordRepo) List(ctx context.Context) ([]dom.Record, error) {
	query := `
		SELECT id, name, created_at
		FROM records ORDER BY created_at DESC, id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Record
	for rows.Next() {
		var rec dom.Record
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

// Create inserts a record. An empty ID is assigned from the records sequence.
func (r *PGRecordRepo) Create(ctx context.Context, rec dom.Record) (dom.Record, error) {
	query := `
		INSERT INTO records (id, name, created_at)
		VALUES (COALESCE(NULLIF($1, ''), nextval('records_id_seq')::text), $2, $3)
		RETURNING id, name, created_at`
	var out dom.Record
	err := r.db.QueryRow(ctx, query, rec.ID, rec.Name, rec.CreatedAt.UTC()).Scan(
		&out.ID, &out.Name, &out.CreatedAt,
	)
	return out, err
}
