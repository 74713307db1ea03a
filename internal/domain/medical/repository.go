package medical

import "context"

type Repository interface {
	Create(ctx context.Context, rec Record) error
	Update(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	// ListByPet ordena por visit_date DESC. limit <= 0 = sin límite.
	ListByPet(ctx context.Context, petID string, limit, offset int) ([]Record, error)
	CountByPet(ctx context.Context, petID string) (int, error)
	MetricsByPet(ctx context.Context, petID string) ([]Metric, error)
}
