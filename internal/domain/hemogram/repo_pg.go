package hemogram

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const hemogramCols = `id, sample_id, municipality_code, hemoglobin, platelets, leukocytes,
	lymphocytes, neutrophils, exam_date, birth_date, patient_age, sex, lab_id,
	patient_hash, is_valid, created_at`

const hemogramInsert = `
	INSERT INTO hemogram (id, sample_id, municipality_code, hemoglobin, platelets, leukocytes,
		lymphocytes, neutrophils, exam_date, birth_date, patient_age, sex, lab_id,
		patient_hash, is_valid)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`

func insertArgs(rec *Record) []interface{} {
	return []interface{}{
		rec.ID, rec.SampleID, rec.MunicipalityCode, rec.Hemoglobin, rec.Platelets, rec.Leukocytes,
		rec.Lymphocytes, rec.Neutrophils, rec.ExamDate, rec.BirthDate, rec.PatientAge, rec.Sex, rec.LabID,
		rec.PatientHash, rec.IsValid,
	}
}

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.SampleID, &rec.MunicipalityCode, &rec.Hemoglobin, &rec.Platelets, &rec.Leukocytes,
		&rec.Lymphocytes, &rec.Neutrophils, &rec.ExamDate, &rec.BirthDate, &rec.PatientAge, &rec.Sex, &rec.LabID,
		&rec.PatientHash, &rec.IsValid, &rec.CreatedAt)
	return &rec, err
}

func (r *repoPG) Create(ctx context.Context, rec *Record) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, hemogramInsert, insertArgs(rec)...)
	return err
}

func (r *repoPG) CreateBatch(ctx context.Context, recs []*Record) error {
	batch := &pgx.Batch{}
	for _, rec := range recs {
		if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		}
		batch.Queue(hemogramInsert, insertArgs(rec)...)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	return scanRecord(r.pool.QueryRow(ctx, `SELECT `+hemogramCols+` FROM hemogram WHERE id = $1`, id))
}

func (r *repoPG) GetBySampleID(ctx context.Context, sampleID string) (*Record, error) {
	return scanRecord(r.pool.QueryRow(ctx,
		`SELECT `+hemogramCols+` FROM hemogram WHERE sample_id = $1 ORDER BY created_at DESC LIMIT 1`, sampleID))
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Record, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM hemogram`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+hemogramCols+` FROM hemogram ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rec)
	}
	return items, total, rows.Err()
}

func (r *repoPG) ListValidSince(ctx context.Context, since time.Time) ([]*Record, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+hemogramCols+` FROM hemogram WHERE is_valid = true AND created_at >= $1 ORDER BY created_at`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}
