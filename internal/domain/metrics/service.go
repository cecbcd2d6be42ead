package metrics

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Summary(ctx context.Context, f Filter) (*Summary, error) {
	if f.AgeMin != nil && *f.AgeMin < 0 {
		return nil, fmt.Errorf("age_min must be non-negative")
	}
	if f.AgeMin != nil && f.AgeMax != nil && *f.AgeMin > *f.AgeMax {
		return nil, fmt.Errorf("age_min must not exceed age_max")
	}
	if f.DaysBack < 0 {
		return nil, fmt.Errorf("days_back must be non-negative")
	}
	return s.repo.Summary(ctx, f)
}

func (s *Service) MunicipalityHeatmap(ctx context.Context, daysBack int) ([]*MunicipalityBucket, error) {
	if daysBack < 0 {
		return nil, fmt.Errorf("days_back must be non-negative")
	}
	return s.repo.MunicipalityHeatmap(ctx, daysBack)
}
