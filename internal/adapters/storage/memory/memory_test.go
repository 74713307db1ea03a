package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-shop-api/internal/domain/appointments"
	"pet-shop-api/internal/domain/catalog"
	"pet-shop-api/internal/domain/pets"
	"pet-shop-api/internal/domain/products"
	"pet-shop-api/internal/domain/users"
	"pet-shop-api/internal/platform/apperr"
	"pet-shop-api/internal/platform/pagination"
	"pet-shop-api/internal/ports/auth"
)

var t0 = time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)

func TestPetsRepo_ActiveOnlyAndOwnerJoin(t *testing.T) {
	ctx := context.Background()
	ur := NewUsersRepo()
	require.NoError(t, ur.Create(ctx, users.User{ID: "u1", Email: "ana@example.com", Name: "Ana", Role: auth.RoleUser}))

	r := NewPetsRepo(ur)
	require.NoError(t, r.Create(ctx, pets.Pet{ID: "p1", OwnerUserID: "u1", Name: "Luna", IsActive: true, CreatedAt: t0}))
	require.NoError(t, r.Create(ctx, pets.Pet{ID: "p2", OwnerUserID: "u1", Name: "Sol", IsActive: true, CreatedAt: t0.Add(time.Second)}))

	p, err := r.GetByID(ctx, "p1", pets.LoadOptions{})
	require.NoError(t, err)
	assert.Nil(t, p.Owner)

	p, err = r.GetByID(ctx, "p1", pets.LoadOptions{Owner: true})
	require.NoError(t, err)
	require.NotNil(t, p.Owner)
	assert.Equal(t, "Ana", p.Owner.Name)

	require.NoError(t, r.Deactivate(ctx, "p1", t0.Add(time.Hour)))
	assert.ErrorIs(t, r.Deactivate(ctx, "p1", t0), apperr.ErrNotFound)

	_, err = r.GetByID(ctx, "p1", pets.LoadOptions{})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	p, err = r.GetByID(ctx, "p1", pets.LoadOptions{IncludeInactive: true})
	require.NoError(t, err)
	assert.False(t, p.IsActive)

	list, total, err := r.List(ctx, pets.ListFilter{OwnerUserID: "u1", Page: pagination.Params{Page: 1, Limit: 10}})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Sol", list[0].Name)

	// Update sobre una mascota dada de baja no la reactiva.
	assert.ErrorIs(t, r.Update(ctx, pets.Pet{ID: "p1", IsActive: true}), apperr.ErrNotFound)
}

func TestUsersRepo_DuplicateEmailIsConflict(t *testing.T) {
	ctx := context.Background()
	r := NewUsersRepo()
	require.NoError(t, r.Create(ctx, users.User{ID: "u1", Email: "ana@example.com"}))

	err := r.Create(ctx, users.User{ID: "u2", Email: "ANA@example.com"})
	require.ErrorIs(t, err, apperr.ErrConflict)
	assert.Equal(t, "duplicate value", apperr.PublicMessage(err))

	_, err = r.GetByEmail(ctx, "nadie@example.com")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAppointmentsRepo_ListByPetRanges(t *testing.T) {
	ctx := context.Background()
	r := NewAppointmentsRepo()
	for i, d := range []time.Duration{-2 * time.Hour, -time.Hour, 0, time.Hour} {
		require.NoError(t, r.Create(ctx, appointments.Appointment{
			ID:    string(rune('a' + i)),
			PetID: "p1",
			Date:  t0.Add(d),
		}))
	}
	require.NoError(t, r.Create(ctx, appointments.Appointment{ID: "z", PetID: "p2", Date: t0}))

	up, err := r.ListByPet(ctx, "p1", appointments.PetRange{From: &t0})
	require.NoError(t, err)
	require.Len(t, up, 2)
	assert.Equal(t, "c", up[0].ID)
	assert.Equal(t, "d", up[1].ID)

	past, err := r.ListByPet(ctx, "p1", appointments.PetRange{Before: &t0, Descending: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, past, 1)
	assert.Equal(t, "b", past[0].ID)

	n, err := r.CountByPet(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestCatalogRepo_DeleteReferencedService(t *testing.T) {
	ctx := context.Background()
	ar := NewAppointmentsRepo()
	cr := NewCatalogRepo(ar)

	require.NoError(t, cr.Create(ctx, catalog.Item{ID: "s1", Name: "Baño", IsActive: true}))
	assert.ErrorIs(t, cr.Create(ctx, catalog.Item{ID: "s2", Name: "baño"}), apperr.ErrConflict)

	require.NoError(t, ar.Create(ctx, appointments.Appointment{ID: "a1", ServiceID: "s1", Date: t0}))
	assert.ErrorIs(t, cr.Delete(ctx, "s1"), apperr.ErrConflict)

	require.NoError(t, ar.Delete(ctx, "a1"))
	assert.NoError(t, cr.Delete(ctx, "s1"))
}

func TestProductsRepo_FiltersAndSKU(t *testing.T) {
	ctx := context.Background()
	r := NewProductsRepo()
	require.NoError(t, r.Create(ctx, products.Product{ID: "1", Name: "Collar rojo", SKU: "COL-R", Category: "accesorios", Stock: 3}))
	require.NoError(t, r.Create(ctx, products.Product{ID: "2", Name: "Alimento", SKU: "FOOD-1", Category: "alimentos"}))

	assert.ErrorIs(t, r.Create(ctx, products.Product{ID: "3", SKU: "COL-R"}), apperr.ErrConflict)

	list, total, err := r.List(ctx, products.ListFilter{Query: "food", Page: pagination.Params{}})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "2", list[0].ID)

	_, total, err = r.List(ctx, products.ListFilter{InStock: true})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}
