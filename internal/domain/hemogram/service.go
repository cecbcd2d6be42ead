package hemogram

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Service struct {
	repo      Repository
	processor *Processor
	logger    zerolog.Logger
}

func NewService(repo Repository, processor *Processor, logger zerolog.Logger) *Service {
	return &Service{repo: repo, processor: processor, logger: logger}
}

// IngestCSV parses a CSV feed, processes every row and persists the accepted
// records. Row-level rejections and errors never fail the call; they are
// reflected in the returned report. A parse or persistence failure does.
func (s *Service) IngestCSV(ctx context.Context, r io.Reader) (*Report, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	records, report := s.processor.ProcessBatch(rows)
	if len(records) > 0 {
		if err := s.repo.CreateBatch(ctx, records); err != nil {
			return nil, fmt.Errorf("persist records: %w", err)
		}
	}

	s.logger.Info().
		Int("processed", report.Processed).
		Int("valid", report.Valid).
		Int("invalid", report.Invalid).
		Int("errors", report.Errors).
		Msg("batch ingested")

	return report, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySampleID(ctx context.Context, sampleID string) (*Record, error) {
	return s.repo.GetBySampleID(ctx, sampleID)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Record, int, error) {
	return s.repo.List(ctx, limit, offset)
}
