package metrics

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Summary(ctx context.Context, f Filter) (*Summary, error) {
	if f.DaysBack <= 0 {
		f.DaysBack = 30
	}

	query := `
		SELECT COUNT(*),
			AVG(hemoglobin),
			AVG(platelets),
			AVG(leukocytes),
			COUNT(*) FILTER (WHERE hemoglobin < 8),
			COUNT(*) FILTER (WHERE hemoglobin >= 8 AND hemoglobin < 10),
			COUNT(*) FILTER (WHERE platelets < 50000),
			COUNT(*) FILTER (WHERE platelets >= 50000 AND platelets < 100000),
			COUNT(*) FILTER (WHERE leukocytes < 2.0)
		FROM hemogram
		WHERE is_valid = true AND created_at >= now() - ($1 * interval '1 day')`
	args := []interface{}{f.DaysBack}
	idx := 2

	if f.MunicipalityCode != "" {
		query += fmt.Sprintf(` AND municipality_code = $%d`, idx)
		args = append(args, f.MunicipalityCode)
		idx++
	}
	if f.AgeMin != nil {
		query += fmt.Sprintf(` AND patient_age >= $%d`, idx)
		args = append(args, *f.AgeMin)
		idx++
	}
	if f.AgeMax != nil {
		query += fmt.Sprintf(` AND patient_age <= $%d`, idx)
		args = append(args, *f.AgeMax)
		idx++
	}

	var (
		s                            Summary
		anemiaSevere, anemiaModerate int
		plateletsSevere, plateletsModerate int
		leukopenia                   int
	)
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&s.TotalExams, &s.AvgHemoglobin, &s.AvgPlatelets, &s.AvgLeukocytes,
		&anemiaSevere, &anemiaModerate, &plateletsSevere, &plateletsModerate, &leukopenia)
	if err != nil {
		return nil, err
	}

	s.DaysBack = f.DaysBack
	if s.TotalExams > 0 {
		total := float64(s.TotalExams)
		s.AnemiaSeverePercent = 100 * float64(anemiaSevere) / total
		s.AnemiaModeratePercent = 100 * float64(anemiaModerate) / total
		s.ThrombocytopeniaSeverePercent = 100 * float64(plateletsSevere) / total
		s.ThrombocytopeniaModeratePercent = 100 * float64(plateletsModerate) / total
		s.LeukopeniaPercent = 100 * float64(leukopenia) / total
	}
	return &s, nil
}

func (r *repoPG) MunicipalityHeatmap(ctx context.Context, daysBack int) ([]*MunicipalityBucket, error) {
	if daysBack <= 0 {
		daysBack = 30
	}
	rows, err := r.pool.Query(ctx, `
		SELECT municipality_code,
			COUNT(*),
			100.0 * COUNT(*) FILTER (WHERE hemoglobin < 10) / COUNT(*),
			100.0 * COUNT(*) FILTER (WHERE platelets < 100000) / COUNT(*)
		FROM hemogram
		WHERE is_valid = true AND created_at >= now() - ($1 * interval '1 day')
		GROUP BY municipality_code
		ORDER BY municipality_code`, daysBack)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []*MunicipalityBucket
	for rows.Next() {
		var b MunicipalityBucket
		if err := rows.Scan(&b.MunicipalityCode, &b.ExamCount, &b.AnemiaRate, &b.ThrombocytopeniaRate); err != nil {
			return nil, err
		}
		buckets = append(buckets, &b)
	}
	return buckets, rows.Err()
}
