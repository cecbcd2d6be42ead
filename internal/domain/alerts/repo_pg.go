package alerts

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const alertCols = `id, dedup_key, condition, severity, sample_id, message,
	hemoglobin, platelets, leukocytes, exam_date, created_at`

func scanAlert(row pgx.Row) (*Alert, error) {
	var a Alert
	err := row.Scan(&a.ID, &a.DedupKey, &a.Condition, &a.Severity, &a.SampleID, &a.Message,
		&a.Hemoglobin, &a.Platelets, &a.Leukocytes, &a.ExamDate, &a.CreatedAt)
	return &a, err
}

// InsertIfAbsent relies on the unique constraint on dedup_key; the conflict
// path is the normal "already recorded" outcome, not an error.
func (r *repoPG) InsertIfAbsent(ctx context.Context, a *Alert) (bool, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO alert (id, dedup_key, condition, severity, sample_id, message,
			hemoglobin, platelets, leukocytes, exam_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (dedup_key) DO NOTHING`,
		a.ID, a.DedupKey, a.Condition, a.Severity, a.SampleID, a.Message,
		a.Hemoglobin, a.Platelets, a.Leukocytes, a.ExamDate)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Alert, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM alert`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+alertCols+` FROM alert ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectAlerts(rows, total)
}

func (r *repoPG) ListBySeverity(ctx context.Context, severity, limit, offset int) ([]*Alert, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM alert WHERE severity = $1`, severity).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+alertCols+` FROM alert WHERE severity = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		severity, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectAlerts(rows, total)
}

func collectAlerts(rows pgx.Rows, total int) ([]*Alert, int, error) {
	var items []*Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}
