package hemogram

import (
	"time"

	"github.com/google/uuid"
)

// RawRow is one unvalidated input row, keyed by column name. Values are the
// raw strings from the feed; absence sentinels ("", NA, NaN, null) are
// interpreted by the processor, not stored.
type RawRow map[string]string

// Record maps to the hemogram table. It is only constructed after every
// required-field validation has passed; optional numeric fields are either
// nil or inside their declared range.
type Record struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	SampleID         string     `db:"sample_id" json:"sample_id"`
	MunicipalityCode string     `db:"municipality_code" json:"municipality_code"`
	Hemoglobin       *float64   `db:"hemoglobin" json:"hemoglobin,omitempty"`
	Platelets        *int64     `db:"platelets" json:"platelets,omitempty"`
	Leukocytes       *float64   `db:"leukocytes" json:"leukocytes,omitempty"`
	Lymphocytes      *float64   `db:"lymphocytes" json:"lymphocytes,omitempty"`
	Neutrophils      *float64   `db:"neutrophils" json:"neutrophils,omitempty"`
	ExamDate         *time.Time `db:"exam_date" json:"exam_date,omitempty"`
	BirthDate        *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	PatientAge       *int       `db:"patient_age" json:"patient_age,omitempty"`
	Sex              *string    `db:"sex" json:"sex,omitempty"`
	LabID            *string    `db:"lab_id" json:"lab_id,omitempty"`
	PatientHash      *string    `db:"patient_hash" json:"patient_hash,omitempty"`
	IsValid          bool       `db:"is_valid" json:"is_valid"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
}

// Rejection describes a row that failed validation. Rejections are expected
// per-row outcomes, not errors; they carry the failed-field reasons for the
// processing report.
type Rejection struct {
	Index   int      `json:"index"`
	Reasons []string `json:"reasons"`
}

// Report accumulates batch counters. Processed == Valid + Invalid + Errors
// holds for every completed batch.
type Report struct {
	Processed int `json:"processed"`
	Valid     int `json:"valid"`
	Invalid   int `json:"invalid"`
	Errors    int `json:"errors"`
}
