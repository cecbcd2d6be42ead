package metrics

import "context"

type Repository interface {
	Summary(ctx context.Context, f Filter) (*Summary, error)
	MunicipalityHeatmap(ctx context.Context, daysBack int) ([]*MunicipalityBucket, error)
}
