package grooming

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-shop-api/internal/domain/access"
	"pet-shop-api/internal/platform/apperr"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/ports/auth"
)

type testRepo struct {
	byID map[string]Session
}

func (r *testRepo) Create(_ context.Context, s Session) error {
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) Update(_ context.Context, s Session) error {
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Session, error) {
	s, ok := r.byID[id]
	if !ok {
		return Session{}, apperr.ErrNotFound
	}
	return s, nil
}

func (r *testRepo) ListByPet(context.Context, string, int, int) ([]Session, error) {
	return nil, nil
}

func (r *testRepo) CountByPet(context.Context, string) (int, error) { return len(r.byID), nil }

func (r *testRepo) CostsByPet(context.Context, string) ([]float64, error) { return nil, nil }

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
	owner   = access.Principal{ID: "11111111-1111-1111-1111-111111111111", Role: auth.RoleUser}
	other   = access.Principal{ID: "22222222-2222-2222-2222-222222222222", Role: auth.RoleUser}
	groomer = access.Principal{ID: "33333333-3333-3333-3333-333333333333", Role: auth.RoleAdmin}
)

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{byID: map[string]Session{}}
	svc := NewService(repo, ownerLookup{petID: owner.ID}, logger.Nop())
	svc.now = func() time.Time { return time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestCreate(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	date := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(ctx, owner, petID, CreateInput{SessionDate: date, ServicesPerformed: []string{"baño"}})
	require.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.Create(ctx, groomer, petID, CreateInput{SessionDate: date, ServicesPerformed: []string{" ", ""}})
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Create(ctx, groomer, "bbbbbbbb-0000-0000-0000-000000000009", CreateInput{SessionDate: date, ServicesPerformed: []string{"baño"}})
	require.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Empty(t, repo.byID)

	sess, err := svc.Create(ctx, groomer, petID, CreateInput{
		SessionDate:       date,
		ServicesPerformed: []string{" baño ", "corte de uñas"},
		ServiceCost:       35.5,
		DurationMinutes:   90,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"baño", "corte de uñas"}, sess.ServicesPerformed)
	assert.Equal(t, groomer.ID, sess.GroomerID)
}

func TestGetAndUpdate_Access(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	sess, err := svc.Create(ctx, groomer, petID, CreateInput{
		SessionDate:       time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		ServicesPerformed: []string{"baño"},
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, other, petID, sess.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	got, err := svc.Get(ctx, owner, petID, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)

	cost := 50.0
	_, err = svc.Update(ctx, owner, petID, sess.ID, UpdateInput{ServiceCost: &cost})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	updated, err := svc.Update(ctx, groomer, petID, sess.ID, UpdateInput{ServiceCost: &cost})
	require.NoError(t, err)
	assert.Equal(t, 50.0, updated.ServiceCost)

	neg := -1
	_, err = svc.Update(ctx, groomer, petID, sess.ID, UpdateInput{DurationMinutes: &neg})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
