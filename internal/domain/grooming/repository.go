package grooming

import "context"

type Repository interface {
	Create(ctx context.Context, s Session) error
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Session, error)
	// ListByPet ordena por session_date DESC. limit <= 0 = sin límite.
	ListByPet(ctx context.Context, petID string, limit, offset int) ([]Session, error)
	CountByPet(ctx context.Context, petID string) (int, error)
	// CostsByPet devuelve el costo de cada sesión (para el gasto total).
	CostsByPet(ctx context.Context, petID string) ([]float64, error)
}
