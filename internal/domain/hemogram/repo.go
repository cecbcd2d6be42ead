package hemogram

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, rec *Record) error
	CreateBatch(ctx context.Context, recs []*Record) error
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	GetBySampleID(ctx context.Context, sampleID string) (*Record, error)
	List(ctx context.Context, limit, offset int) ([]*Record, int, error)
	// ListValidSince returns records flagged valid and created at or after
	// the given instant. This is the record source for alert evaluation.
	ListValidSince(ctx context.Context, since time.Time) ([]*Record, error)
}
