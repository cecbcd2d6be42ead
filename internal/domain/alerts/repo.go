package alerts

import "context"

type Repository interface {
	AlertStore
	List(ctx context.Context, limit, offset int) ([]*Alert, int, error)
	ListBySeverity(ctx context.Context, severity, limit, offset int) ([]*Alert, int, error)
}
