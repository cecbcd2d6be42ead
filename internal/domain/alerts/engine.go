package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hemovigil/hemovigil/internal/domain/hemogram"
)

// RecordSource supplies the validated records inside the lookback window.
// The engine never queries storage directly.
type RecordSource interface {
	ListValidSince(ctx context.Context, since time.Time) ([]*hemogram.Record, error)
}

// AlertStore persists alerts with atomic insert-if-absent semantics keyed on
// the dedup key. A conflicting insert must report inserted=false, not an
// error, so concurrent runs cannot double-emit.
type AlertStore interface {
	InsertIfAbsent(ctx context.Context, a *Alert) (bool, error)
}

// RunResult reports one engine pass. A nil error with zero emitted alerts
// means the window genuinely matched nothing; failures are returned as
// errors, never collapsed into an empty result.
type RunResult struct {
	RecordsScanned int      `json:"records_scanned"`
	AlertsEmitted  int      `json:"alerts_emitted"`
	Alerts         []*Alert `json:"alerts,omitempty"`
}

type Engine struct {
	rules   []Rule
	records RecordSource
	store   AlertStore
	logger  zerolog.Logger
	now     func() time.Time
}

func NewEngine(records RecordSource, store AlertStore, logger zerolog.Logger) *Engine {
	return &Engine{
		rules:   DefaultRules(),
		records: records,
		store:   store,
		logger:  logger,
		now:     time.Now,
	}
}

// Run evaluates every rule, in declaration order, against every valid record
// created within the lookback period. Already-recorded (condition, sample)
// pairs are skipped via the dedup store.
func (e *Engine) Run(ctx context.Context, lookback time.Duration) (*RunResult, error) {
	since := e.now().Add(-lookback)

	recs, err := e.records.ListValidSince(ctx, since)
	if err != nil {
		e.logger.Error().Err(err).Time("since", since).Msg("failed to read record window")
		return nil, fmt.Errorf("read record window: %w", err)
	}

	res := &RunResult{RecordsScanned: len(recs)}
	for _, rec := range recs {
		for _, rule := range e.rules {
			if !rule.Matches(rec) {
				continue
			}

			a := &Alert{
				ID:         uuid.New(),
				DedupKey:   DedupKey(rule.Condition, rec.SampleID),
				Condition:  rule.Condition,
				Severity:   rule.Severity,
				SampleID:   rec.SampleID,
				Message:    rule.Message,
				Hemoglobin: rec.Hemoglobin,
				Platelets:  rec.Platelets,
				Leukocytes: rec.Leukocytes,
				ExamDate:   rec.ExamDate,
			}

			inserted, err := e.store.InsertIfAbsent(ctx, a)
			if err != nil {
				e.logger.Error().Err(err).Str("condition", rule.Condition).Str("sample_id", rec.SampleID).
					Msg("failed to store alert")
				return nil, fmt.Errorf("store alert: %w", err)
			}
			if !inserted {
				continue
			}

			res.AlertsEmitted++
			res.Alerts = append(res.Alerts, a)
			e.logger.Info().
				Str("condition", rule.Condition).
				Int("severity", rule.Severity).
				Str("sample_id", rec.SampleID).
				Msg("alert emitted")
		}
	}

	e.logger.Info().Int("records_scanned", res.RecordsScanned).Int("alerts_emitted", res.AlertsEmitted).
		Msg("alert run complete")
	return res, nil
}
