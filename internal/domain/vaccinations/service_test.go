package vaccinations

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-shop-api/internal/domain/access"
	"pet-shop-api/internal/platform/apperr"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/platform/nullable"
	"pet-shop-api/internal/platform/pagination"
	"pet-shop-api/internal/ports/auth"
)

type testRepo struct {
	byID map[string]Vaccination
}

func (r *testRepo) Create(_ context.Context, v Vaccination) error {
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) Update(_ context.Context, v Vaccination) error {
	if _, ok := r.byID[v.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Vaccination, error) {
	v, ok := r.byID[id]
	if !ok {
		return Vaccination{}, apperr.ErrNotFound
	}
	return v, nil
}

func (r *testRepo) ListByPet(_ context.Context, petID string, limit, offset int) ([]Vaccination, error) {
	out := make([]Vaccination, 0)
	for _, v := range r.byID {
		if v.PetID == petID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AdministeredDate.After(out[j].AdministeredDate) })
	if offset >= len(out) {
		return []Vaccination{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *testRepo) CountByPet(_ context.Context, petID string) (int, error) {
	n := 0
	for _, v := range r.byID {
		if v.PetID == petID {
			n++
		}
	}
	return n, nil
}

type ownerLookup map[string]string

func (o ownerLookup) OwnerOf(_ context.Context, petID string) (string, error) {
	if owner, ok := o[petID]; ok {
		return owner, nil
	}
	return "", apperr.NotFound("pet")
}

func (o ownerLookup) HistoricalOwnerOf(ctx context.Context, petID string) (string, error) {
	return o.OwnerOf(ctx, petID)
}

const petID = "aaaaaaaa-0000-0000-0000-000000000001"

var (
	owner = access.Principal{ID: "11111111-1111-1111-1111-111111111111", Role: auth.RoleUser}
	other = access.Principal{ID: "22222222-2222-2222-2222-222222222222", Role: auth.RoleUser}
	vet   = access.Principal{ID: "33333333-3333-3333-3333-333333333333", Role: auth.RoleSuperUser}
	now   = time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
)

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{byID: map[string]Vaccination{}}
	svc := NewService(repo, ownerLookup{petID: owner.ID}, logger.Nop())
	svc.now = func() time.Time { return now }
	return svc, repo
}

func TestCreate_StaffOnlyAndValidation(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	next := now.AddDate(1, 0, 0)

	_, err := svc.Create(ctx, owner, petID, CreateInput{VaccineName: "Rabia", AdministeredDate: now})
	require.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.Create(ctx, vet, petID, CreateInput{AdministeredDate: now})
	require.ErrorIs(t, err, apperr.ErrValidation)

	before := now.AddDate(0, -1, 0)
	_, err = svc.Create(ctx, vet, petID, CreateInput{VaccineName: "Rabia", AdministeredDate: now, NextDueDate: &before})
	require.ErrorIs(t, err, apperr.ErrValidation)
	assert.Empty(t, repo.byID)

	v, err := svc.Create(ctx, vet, petID, CreateInput{VaccineName: " Rabia ", AdministeredDate: now, NextDueDate: &next})
	require.NoError(t, err)
	assert.Equal(t, "Rabia", v.VaccineName)
	assert.Equal(t, vet.ID, v.VeterinarianID)
	assert.Equal(t, StatusUpToDate, v.StatusAt(now))
}

func TestListByPet_Ownership(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, m := range []int{-6, -1, -3} {
		_, err := svc.Create(ctx, vet, petID, CreateInput{VaccineName: "Moquillo", AdministeredDate: now.AddDate(0, m, 0)})
		require.NoError(t, err)
	}

	_, err := svc.ListByPet(ctx, other, petID, pagination.Params{})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	res, err := svc.ListByPet(ctx, owner, petID, pagination.Params{})
	require.NoError(t, err)
	require.Len(t, res.Items, 3)
	assert.Equal(t, now.AddDate(0, -1, 0), res.Items[0].AdministeredDate)
	assert.Equal(t, 3, res.Total)
}

func TestUpdate_ClearNextDue(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	next := now.Add(10 * 24 * time.Hour)

	v, err := svc.Create(ctx, vet, petID, CreateInput{VaccineName: "Rabia", AdministeredDate: now.AddDate(-1, 0, 0), NextDueDate: &next})
	require.NoError(t, err)
	assert.Equal(t, StatusDueSoon, v.StatusAt(now))

	v, err = svc.Update(ctx, vet, petID, v.ID, UpdateInput{NextDueDate: nullable.Null[time.Time]()})
	require.NoError(t, err)
	assert.Nil(t, v.NextDueDate)
	assert.Equal(t, StatusUpToDate, v.StatusAt(now))
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	v, err := svc.Create(ctx, vet, petID, CreateInput{VaccineName: "Rabia", AdministeredDate: now})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, owner, petID, v.ID), apperr.ErrForbidden)
	require.NoError(t, svc.Delete(ctx, vet, petID, v.ID))
	assert.Empty(t, repo.byID)

	assert.ErrorIs(t, svc.Delete(ctx, vet, petID, v.ID), apperr.ErrNotFound)
}
