package vaccinations

import "context"

type Repository interface {
	Create(ctx context.Context, v Vaccination) error
	Update(ctx context.Context, v Vaccination) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Vaccination, error)
	// ListByPet ordena por administered_date DESC. limit <= 0 = sin límite.
	ListByPet(ctx context.Context, petID string, limit, offset int) ([]Vaccination, error)
	CountByPet(ctx context.Context, petID string) (int, error)
}
