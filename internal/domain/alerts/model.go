package alerts

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// Alert maps to the alert table. Alerts are immutable once created; at most
// one alert ever exists per (condition, sample_id) pair, enforced by the
// unique dedup_key.
type Alert struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	DedupKey   string     `db:"dedup_key" json:"dedup_key"`
	Condition  string     `db:"condition" json:"condition"`
	Severity   int        `db:"severity" json:"severity"`
	SampleID   string     `db:"sample_id" json:"sample_id"`
	Message    string     `db:"message" json:"message"`
	Hemoglobin *float64   `db:"hemoglobin" json:"hemoglobin,omitempty"`
	Platelets  *int64     `db:"platelets" json:"platelets,omitempty"`
	Leukocytes *float64   `db:"leukocytes" json:"leukocytes,omitempty"`
	ExamDate   *time.Time `db:"exam_date" json:"exam_date,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// DedupKey derives the stable deduplication key for a (condition, sample)
// pair. The scheme is independent of patient-hash derivation and must stay
// stable: previously recorded keys are what suppresses re-emission across
// runs and process restarts.
func DedupKey(condition, sampleID string) string {
	sum := sha256.Sum256([]byte(condition + "|" + sampleID))
	return hex.EncodeToString(sum[:])
}
