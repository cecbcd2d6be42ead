package hemogram

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DateLayout is the canonical date format for exam_date and birth_date
// columns, and for the birth-date component of the patient hash.
const DateLayout = "2006-01-02"

// Processor turns raw rows into validated records. It is stateless per call;
// one Processor may be shared across goroutines.
type Processor struct {
	logger zerolog.Logger
	now    func() time.Time
}

func NewProcessor(logger zerolog.Logger) *Processor {
	return &Processor{logger: logger, now: time.Now}
}

// ProcessRow validates and normalizes a single row. Exactly one of the three
// results is meaningful: an accepted record, a rejection carrying the failed
// field reasons, or an error for unexpected coercion failures (for example a
// malformed date in a row that passed validation).
func (p *Processor) ProcessRow(row RawRow, index int) (*Record, *Rejection, error) {
	var reasons []string

	sampleID, _ := field(row, "sample_id")
	if !ValidSampleID(sampleID) {
		reasons = append(reasons, "sample_id invalid")
	}

	code, _ := field(row, "municipality_code")
	if !ValidMunicipalityCode(code) {
		reasons = append(reasons, "municipality_code invalid")
	}

	hb, err := optionalFloat(row, "hemoglobin")
	if err != nil || !ValidHemoglobin(hb) {
		reasons = append(reasons, "hemoglobin outside accepted range")
	}

	plt, err := optionalInt(row, "platelets")
	if err != nil || !ValidPlatelets(plt) {
		reasons = append(reasons, "platelets outside accepted range")
	}

	wbc, err := optionalFloat(row, "leukocytes")
	if err != nil || !ValidLeukocytes(wbc) {
		reasons = append(reasons, "leukocytes outside accepted range")
	}

	if len(reasons) > 0 {
		return nil, &Rejection{Index: index, Reasons: reasons}, nil
	}

	rec := &Record{
		ID:               uuid.New(),
		SampleID:         sampleID,
		MunicipalityCode: code,
		Hemoglobin:       hb,
		Platelets:        plt,
		Leukocytes:       wbc,
		IsValid:          true,
	}

	lym, err := optionalFloat(row, "lymphocytes")
	if err != nil {
		return nil, nil, fmt.Errorf("lymphocytes: %w", err)
	}
	rec.Lymphocytes = lym

	neu, err := optionalFloat(row, "neutrophils")
	if err != nil {
		return nil, nil, fmt.Errorf("neutrophils: %w", err)
	}
	rec.Neutrophils = neu

	examDate, err := optionalDate(row, "exam_date")
	if err != nil {
		return nil, nil, fmt.Errorf("exam_date: %w", err)
	}
	rec.ExamDate = examDate

	birthDate, err := optionalDate(row, "birth_date")
	if err != nil {
		return nil, nil, fmt.Errorf("birth_date: %w", err)
	}
	rec.BirthDate = birthDate

	if birthDate != nil {
		age := ageAt(*birthDate, p.now())
		if ValidAge(age) {
			rec.PatientAge = &age
		}
	} else if raw, ok := field(row, "patient_age"); ok {
		age, err := strconv.Atoi(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("patient_age: %w", err)
		}
		if ValidAge(age) {
			rec.PatientAge = &age
		}
	}

	if sex, ok := field(row, "sex"); ok {
		rec.Sex = &sex
	}
	if labID, ok := field(row, "lab_id"); ok {
		rec.LabID = &labID
	}

	if birthDate != nil && rec.Sex != nil {
		h := DerivePatientHash(birthDate.Format(DateLayout), code, *rec.Sex)
		if h != "" {
			rec.PatientHash = &h
		}
	}

	return rec, nil, nil
}

// ProcessBatch runs ProcessRow over every row in input order. A bad row never
// prevents processing of subsequent rows; rejections and errors are counted
// and logged with their row index.
func (p *Processor) ProcessBatch(rows []RawRow) ([]*Record, *Report) {
	report := &Report{}
	var accepted []*Record

	for i, row := range rows {
		report.Processed++

		rec, rej, err := p.ProcessRow(row, i)
		switch {
		case err != nil:
			report.Errors++
			p.logger.Error().Err(err).Int("row", i).Msg("row processing failed")
		case rej != nil:
			report.Invalid++
			p.logger.Warn().Int("row", i).Strs("reasons", rej.Reasons).Msg("row rejected")
		default:
			report.Valid++
			accepted = append(accepted, rec)
		}
	}

	return accepted, report
}

// ageAt computes calendar years elapsed between birth and today, decremented
// by one when today's month/day precedes the birthday.
func ageAt(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

// field returns the trimmed value for key, reporting presence. The absence
// sentinels of tabular sources ("", NA, NaN, null, nil) all map to absent so
// the rest of the pipeline never sees them.
func field(row RawRow, key string) (string, bool) {
	v := strings.TrimSpace(row[key])
	switch strings.ToLower(v) {
	case "", "na", "n/a", "nan", "null", "nil":
		return "", false
	}
	return v, true
}

func optionalFloat(row RawRow, key string) (*float64, error) {
	raw, ok := field(row, key)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", raw, err)
	}
	return &v, nil
}

func optionalInt(row RawRow, key string) (*int64, error) {
	raw, ok := field(row, key)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Tolerate values exported as floats (e.g. "180000.0").
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return nil, fmt.Errorf("parse %q: %w", raw, err)
		}
		v = int64(f)
	}
	return &v, nil
}

func optionalDate(row RawRow, key string) (*time.Time, error) {
	raw, ok := field(row, key)
	if !ok {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", raw, err)
	}
	return &t, nil
}
