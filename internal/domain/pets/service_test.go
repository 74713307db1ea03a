package pets

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-shop-api/internal/domain/access"
	"pet-shop-api/internal/domain/users"
	"pet-shop-api/internal/platform/apperr"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/platform/nullable"
	"pet-shop-api/internal/platform/pagination"
	"pet-shop-api/internal/ports/auth"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID  map[string]Pet
	calls int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(_ context.Context, p Pet) error {
	r.calls++
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(_ context.Context, p Pet) error {
	r.calls++
	if _, ok := r.byID[p.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string, opts LoadOptions) (Pet, error) {
	r.calls++
	p, ok := r.byID[id]
	if !ok || (!p.IsActive && !opts.IncludeInactive) {
		return Pet{}, apperr.ErrNotFound
	}
	if opts.Owner {
		p.Owner = &users.Summary{ID: p.OwnerUserID, Name: "Owner"}
	}
	return p, nil
}

func (r *testRepo) List(_ context.Context, f ListFilter) ([]Pet, int, error) {
	r.calls++
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if !p.IsActive {
			continue
		}
		if f.OwnerUserID != "" && p.OwnerUserID != f.OwnerUserID {
			continue
		}
		if f.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Query)) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return pagination.Window(out, f.Page), len(out), nil
}

func (r *testRepo) Deactivate(_ context.Context, id string, at time.Time) error {
	r.calls++
	p, ok := r.byID[id]
	if !ok || !p.IsActive {
		return apperr.ErrNotFound
	}
	p.IsActive = false
	p.UpdatedAt = at
	r.byID[id] = p
	return nil
}

var (
	ownerA = access.Principal{ID: "11111111-1111-1111-1111-111111111111", Role: auth.RoleUser}
	userB  = access.Principal{ID: "22222222-2222-2222-2222-222222222222", Role: auth.RoleUser}
	admin  = access.Principal{ID: "33333333-3333-3333-3333-333333333333", Role: auth.RoleAdmin}
)

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, logger.Nop())
	svc.now = func() time.Time { return time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC) }
	return svc, repo
}

func createPet(t *testing.T, svc *Service, p access.Principal, name string) Pet {
	t.Helper()
	pet, err := svc.Create(context.Background(), p, CreateInput{Name: name, Species: SpeciesDog})
	require.NoError(t, err)
	return pet
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_Defaults(t *testing.T) {
	svc, _ := newTestService()

	pet, err := svc.Create(context.Background(), ownerA, CreateInput{
		Name:          "  Milo ",
		Species:       "DOG",
		BehaviorNotes: []string{" friendly ", "", "pulls leash"},
	})
	require.NoError(t, err)

	assert.Equal(t, ownerA.ID, pet.OwnerUserID)
	assert.Equal(t, "Milo", pet.Name)
	assert.Equal(t, SpeciesDog, pet.Species)
	assert.Equal(t, GenderUnknown, pet.Gender)
	assert.True(t, pet.IsActive)
	assert.Equal(t, []string{"friendly", "pulls leash"}, pet.BehaviorNotes)
}

func TestService_Create_Validation(t *testing.T) {
	svc, repo := newTestService()
	future := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	negative := -3.0

	cases := []CreateInput{
		{Name: "", Species: SpeciesDog},
		{Name: "Milo", Species: "dragon"},
		{Name: "Milo", Species: SpeciesDog, Gender: "x"},
		{Name: "Milo", Species: SpeciesDog, BirthDate: &future},
		{Name: "Milo", Species: SpeciesDog, Weight: &negative},
	}
	for _, in := range cases {
		_, err := svc.Create(context.Background(), ownerA, in)
		assert.ErrorIs(t, err, apperr.ErrValidation, "input %+v", in)
	}
	assert.Zero(t, repo.calls)
}

func TestService_Create_ForAnotherOwnerRequiresAdmin(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), userB, CreateInput{OwnerUserID: ownerA.ID, Name: "Milo", Species: SpeciesCat})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	pet, err := svc.Create(context.Background(), admin, CreateInput{OwnerUserID: ownerA.ID, Name: "Milo", Species: SpeciesCat})
	require.NoError(t, err)
	assert.Equal(t, ownerA.ID, pet.OwnerUserID)
}

func TestService_Get_Ownership(t *testing.T) {
	svc, _ := newTestService()
	pet := createPet(t, svc, ownerA, "Milo")

	got, err := svc.Get(context.Background(), ownerA, pet.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Owner)

	_, err = svc.Get(context.Background(), admin, pet.ID)
	assert.NoError(t, err)

	_, err = svc.Get(context.Background(), userB, pet.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestService_Get_InvalidIDNeverHitsStorage(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Get(context.Background(), ownerA, "not-a-uuid")
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Zero(t, repo.calls)
}

func TestService_Delete_IsSoft(t *testing.T) {
	svc, repo := newTestService()
	pet := createPet(t, svc, ownerA, "Milo")

	require.ErrorIs(t, svc.Delete(context.Background(), userB, pet.ID), apperr.ErrForbidden)
	require.NoError(t, svc.Delete(context.Background(), ownerA, pet.ID))

	stored, ok := repo.byID[pet.ID]
	require.True(t, ok, "row must still exist")
	assert.False(t, stored.IsActive)

	_, err := svc.Get(context.Background(), ownerA, pet.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	owner, err := svc.HistoricalOwnerOf(context.Background(), pet.ID)
	require.NoError(t, err)
	assert.Equal(t, ownerA.ID, owner)

	_, err = svc.OwnerOf(context.Background(), pet.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_Update_PatchSemantics(t *testing.T) {
	svc, _ := newTestService()
	w := 10.0
	bd := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	pet, err := svc.Create(context.Background(), ownerA, CreateInput{Name: "Milo", Species: SpeciesDog, Weight: &w, BirthDate: &bd})
	require.NoError(t, err)

	name := "Milo II"
	updated, err := svc.Update(context.Background(), ownerA, pet.ID, UpdateInput{
		Name:   &name,
		Weight: nullable.Null[float64](),
	})
	require.NoError(t, err)

	assert.Equal(t, "Milo II", updated.Name)
	assert.Nil(t, updated.Weight)
	require.NotNil(t, updated.BirthDate, "birth_date was not sent, must be kept")
	assert.Equal(t, bd, *updated.BirthDate)

	updated, err = svc.Update(context.Background(), ownerA, pet.ID, UpdateInput{Weight: nullable.Of(12.5)})
	require.NoError(t, err)
	require.NotNil(t, updated.Weight)
	assert.Equal(t, 12.5, *updated.Weight)

	_, err = svc.Update(context.Background(), userB, pet.ID, UpdateInput{Name: &name})
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestService_List_ScopedToOwner(t *testing.T) {
	svc, _ := newTestService()
	createPet(t, svc, ownerA, "Alpha")
	createPet(t, svc, ownerA, "Beta")
	createPet(t, svc, userB, "Gamma")

	// Un usuario común no puede ampliar su scope con owner_id.
	res, err := svc.List(context.Background(), ownerA, ListFilter{OwnerUserID: userB.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)

	res, err = svc.List(context.Background(), admin, ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)

	res, err = svc.List(context.Background(), admin, ListFilter{Page: pagination.Params{Page: 2, Limit: 2}})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Gamma", res.Items[0].Name)
}
