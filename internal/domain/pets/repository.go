package pets

import (
	"context"
	"time"

	"pet-shop-api/internal/platform/pagination"
)

// LoadOptions hace explícito el costo de cada lectura: qué relaciones se
// cargan y si se saltea el filtro de activos.
type LoadOptions struct {
	Owner           bool // JOIN con users para Pet.Owner
	IncludeInactive bool // lecturas históricas (registros de mascotas dadas de baja)
}

type ListFilter struct {
	OwnerUserID string // "" = todos (solo roles elevados)
	Species     Species
	Query       string // búsqueda por nombre
	Page        pagination.Params
}

type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string, opts LoadOptions) (Pet, error)
	// List devuelve solo mascotas activas más el total sin paginar.
	List(ctx context.Context, f ListFilter) ([]Pet, int, error)
	Deactivate(ctx context.Context, id string, at time.Time) error
}
