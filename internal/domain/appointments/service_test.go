package appointments

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-shop-api/internal/domain/access"
	"pet-shop-api/internal/domain/catalog"
	"pet-shop-api/internal/platform/apperr"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/platform/pagination"
	"pet-shop-api/internal/ports/auth"
)

type testRepo struct {
	byID map[string]Appointment
}

func (r *testRepo) Create(_ context.Context, a Appointment) error {
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Update(_ context.Context, a Appointment) error {
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, apperr.ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(_ context.Context, f ListFilter) ([]Appointment, int, error) {
	out := make([]Appointment, 0)
	for _, a := range r.byID {
		if f.CustomerID != "" && a.CustomerID != f.CustomerID {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return pagination.Window(out, f.Page), len(out), nil
}

func (r *testRepo) ListByPet(context.Context, string, PetRange) ([]Appointment, error) {
	return nil, nil
}

func (r *testRepo) CountByPet(context.Context, string) (int, error) { return 0, nil }

type ownerLookup map[string]string

func (o ownerLookup) OwnerOf(_ context.Context, petID string) (string, error) {
	if owner, ok := o[petID]; ok {
		return owner, nil
	}
	return "", apperr.NotFound("pet")
}

type catalogLookup map[string]bool

func (c catalogLookup) ActiveItem(_ context.Context, id string) (catalog.Item, error) {
	if active, ok := c[id]; ok && active {
		return catalog.Item{ID: id, IsActive: true}, nil
	}
	return catalog.Item{}, apperr.NotFound("service")
}

const (
	petA      = "aaaaaaaa-0000-0000-0000-000000000001"
	petB      = "aaaaaaaa-0000-0000-0000-000000000002"
	bath      = "cccccccc-0000-0000-0000-000000000001"
	retiredSv = "cccccccc-0000-0000-0000-000000000002"
)

var (
	ownerA = access.Principal{ID: "11111111-1111-1111-1111-111111111111", Role: auth.RoleUser}
	ownerB = access.Principal{ID: "22222222-2222-2222-2222-222222222222", Role: auth.RoleUser}
	admin  = access.Principal{ID: "33333333-3333-3333-3333-333333333333", Role: auth.RoleAdmin}
	now    = time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
)

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{byID: map[string]Appointment{}}
	svc := NewService(repo,
		ownerLookup{petA: ownerA.ID, petB: ownerB.ID},
		catalogLookup{bath: true, retiredSv: false},
		logger.Nop(),
	)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestCreate(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	tomorrow := now.Add(24 * time.Hour)

	_, err := svc.Create(ctx, ownerB, CreateInput{PetID: petA, ServiceID: bath, Date: tomorrow})
	require.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.Create(ctx, ownerA, CreateInput{PetID: petA, ServiceID: retiredSv, Date: tomorrow})
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Create(ctx, ownerA, CreateInput{PetID: petA, ServiceID: bath, Date: now.Add(-time.Hour)})
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Create(ctx, ownerA, CreateInput{PetID: "x", ServiceID: bath, Date: tomorrow})
	require.ErrorIs(t, err, apperr.ErrValidation)
	assert.Empty(t, repo.byID)

	a, err := svc.Create(ctx, ownerA, CreateInput{PetID: petA, ServiceID: bath, Date: tomorrow})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, a.Status)
	assert.Equal(t, ownerA.ID, a.CustomerID)

	// Staff agenda para la mascota de otro: el cliente sigue siendo el dueño.
	b, err := svc.Create(ctx, admin, CreateInput{PetID: petB, ServiceID: bath, Date: tomorrow})
	require.NoError(t, err)
	assert.Equal(t, ownerB.ID, b.CustomerID)
}

func TestList_ScopedForCustomers(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i, pet := range []string{petA, petA, petB} {
		p := ownerA
		if pet == petB {
			p = ownerB
		}
		_, err := svc.Create(ctx, p, CreateInput{PetID: pet, ServiceID: bath, Date: now.Add(time.Duration(i+1) * time.Hour)})
		require.NoError(t, err)
	}

	res, err := svc.List(ctx, ownerA, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	for _, a := range res.Items {
		assert.Equal(t, ownerA.ID, a.CustomerID)
	}

	res, err = svc.List(ctx, admin, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)

	_, err = svc.List(ctx, admin, ListFilter{Status: "lost"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.List(ctx, access.Principal{}, ListFilter{})
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestUpdate_StatusRules(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, ownerA, CreateInput{PetID: petA, ServiceID: bath, Date: now.Add(48 * time.Hour)})
	require.NoError(t, err)

	confirmed := StatusConfirmed
	_, err = svc.Update(ctx, ownerA, a.ID, UpdateInput{Status: &confirmed})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.Update(ctx, ownerB, a.ID, UpdateInput{Notes: ptr("hola")})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	bogus := Status("done")
	_, err = svc.Update(ctx, admin, a.ID, UpdateInput{Status: &bogus})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	a, err = svc.Update(ctx, admin, a.ID, UpdateInput{Status: &confirmed})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, a.Status)

	cancelled := StatusCancelled
	a, err = svc.Update(ctx, ownerA, a.ID, UpdateInput{Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, a.Status)
}

func TestUpdate_RescheduleMustBeInFuture(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, ownerA, CreateInput{PetID: petA, ServiceID: bath, Date: now.Add(48 * time.Hour)})
	require.NoError(t, err)

	past := now.Add(-30 * 24 * time.Hour)
	_, err = svc.Update(ctx, ownerA, a.ID, UpdateInput{Date: &past})
	require.ErrorIs(t, err, apperr.ErrValidation)
	assert.Equal(t, now.Add(48*time.Hour), repo.byID[a.ID].Date)

	later := now.Add(72 * time.Hour)
	a, err = svc.Update(ctx, ownerA, a.ID, UpdateInput{Date: &later})
	require.NoError(t, err)
	assert.Equal(t, later, a.Date)
	assert.Equal(t, StatusPending, a.Status)
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, ownerA, CreateInput{PetID: petA, ServiceID: bath, Date: now.Add(time.Hour)})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, ownerB, a.ID), apperr.ErrForbidden)
	require.NoError(t, svc.Delete(ctx, ownerA, a.ID))
	assert.Empty(t, repo.byID)
	assert.ErrorIs(t, svc.Delete(ctx, ownerA, a.ID), apperr.ErrNotFound)
}

func ptr[T any](v T) *T { return &v }
