package appointments

import (
	"context"
	"time"

	"pet-shop-api/internal/platform/pagination"
)

type ListFilter struct {
	CustomerID string // "" = todos (staff)
	PetID      string
	Status     Status
	From       *time.Time
	To         *time.Time
	Page       pagination.Params
}

// PetRange acota la consulta por mascota que usa el perfil.
// From es inclusivo, Before exclusivo; Limit <= 0 = sin límite.
type PetRange struct {
	From       *time.Time
	Before     *time.Time
	Descending bool
	Limit      int
}

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	Update(ctx context.Context, a Appointment) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	// List ordena por date ASC.
	List(ctx context.Context, f ListFilter) ([]Appointment, int, error)
	ListByPet(ctx context.Context, petID string, rng PetRange) ([]Appointment, error)
	CountByPet(ctx context.Context, petID string) (int, error)
}
