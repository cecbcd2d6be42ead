package metrics

import (
	"context"
	"testing"
)

type mockMetricsRepo struct {
	summary     *Summary
	lastFilter  Filter
	lastDays    int
	heatmap     []*MunicipalityBucket
}

func (m *mockMetricsRepo) Summary(ctx context.Context, f Filter) (*Summary, error) {
	m.lastFilter = f
	return m.summary, nil
}

func (m *mockMetricsRepo) MunicipalityHeatmap(ctx context.Context, daysBack int) ([]*MunicipalityBucket, error) {
	m.lastDays = daysBack
	return m.heatmap, nil
}

func intp(v int) *int { return &v }

func TestSummary_ValidFilter(t *testing.T) {
	repo := &mockMetricsRepo{summary: &Summary{TotalExams: 10}}
	svc := NewService(repo)

	f := Filter{MunicipalityCode: "5200050", AgeMin: intp(18), AgeMax: intp(65), DaysBack: 30}
	res, err := svc.Summary(context.Background(), f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalExams != 10 {
		t.Errorf("expected 10 exams, got %d", res.TotalExams)
	}
	if repo.lastFilter.MunicipalityCode != "5200050" {
		t.Errorf("filter not forwarded: %+v", repo.lastFilter)
	}
}

func TestSummary_InvalidFilters(t *testing.T) {
	svc := NewService(&mockMetricsRepo{})

	cases := []Filter{
		{AgeMin: intp(-1)},
		{AgeMin: intp(60), AgeMax: intp(18)},
		{DaysBack: -1},
	}
	for i, f := range cases {
		if _, err := svc.Summary(context.Background(), f); err == nil {
			t.Errorf("case %d: expected validation error for %+v", i, f)
		}
	}
}

func TestMunicipalityHeatmap(t *testing.T) {
	repo := &mockMetricsRepo{heatmap: []*MunicipalityBucket{
		{MunicipalityCode: "5200050", ExamCount: 5},
	}}
	svc := NewService(repo)

	buckets, err := svc.MunicipalityHeatmap(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 1 || buckets[0].MunicipalityCode != "5200050" {
		t.Errorf("unexpected heatmap: %+v", buckets)
	}
	if repo.lastDays != 7 {
		t.Errorf("days_back not forwarded, got %d", repo.lastDays)
	}

	if _, err := svc.MunicipalityHeatmap(context.Background(), -1); err == nil {
		t.Error("expected validation error for negative days_back")
	}
}
