package products

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-shop-api/internal/domain/access"
	"pet-shop-api/internal/platform/apperr"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/ports/auth"
)

// testRepo simula el índice único de postgres sobre sku.
type testRepo struct {
	byID map[string]Product
}

func (r *testRepo) checkSKU(p Product) error {
	for _, existing := range r.byID {
		if existing.ID != p.ID && existing.SKU == p.SKU {
			return fmt.Errorf("insert product: %w", &pgconn.PgError{Code: "23505", ConstraintName: "products_sku_key"})
		}
	}
	return nil
}

func (r *testRepo) Create(_ context.Context, p Product) error {
	if err := r.checkSKU(p); err != nil {
		return err
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(_ context.Context, p Product) error {
	if err := r.checkSKU(p); err != nil {
		return err
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return Product{}, apperr.ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(_ context.Context, f ListFilter) ([]Product, int, error) {
	out := make([]Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, len(out), nil
}

var (
	customer = access.Principal{ID: "11111111-1111-1111-1111-111111111111", Role: auth.RoleUser}
	admin    = access.Principal{ID: "33333333-3333-3333-3333-333333333333", Role: auth.RoleAdmin}
)

func newTestService() *Service {
	svc := NewService(&testRepo{byID: map[string]Product{}}, logger.Nop())
	svc.now = func() time.Time { return time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreate_DuplicateSKUIsConflict(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, admin, CreateInput{Name: "Alimento 3kg", SKU: " food-3kg ", Price: 25, Stock: 10})
	require.NoError(t, err)
	assert.Equal(t, "FOOD-3KG", p.SKU)

	_, err = svc.Create(ctx, admin, CreateInput{Name: "Otro", SKU: "FOOD-3KG", Price: 10})
	require.ErrorIs(t, err, apperr.ErrConflict)
	assert.Equal(t, "sku already exists", apperr.PublicMessage(err))
}

func TestCreate_AccessAndValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, customer, CreateInput{Name: "Collar", SKU: "COL-1", Price: 5})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.Create(ctx, admin, CreateInput{Name: "Collar", SKU: "c", Price: 5})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Create(ctx, admin, CreateInput{Name: "Collar", SKU: "COL-1", Stock: -2})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdate_ToExistingSKU(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, admin, CreateInput{Name: "A", SKU: "AAA", Price: 1})
	require.NoError(t, err)
	b, err := svc.Create(ctx, admin, CreateInput{Name: "B", SKU: "BBB", Price: 1})
	require.NoError(t, err)

	sku := "aaa"
	_, err = svc.Update(ctx, admin, b.ID, UpdateInput{SKU: &sku})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	stock := 3
	updated, err := svc.Update(ctx, admin, b.ID, UpdateInput{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Stock)
}

func TestGet_NotFoundAndInvalid(t *testing.T) {
	svc := newTestService()

	_, err := svc.Get(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Get(context.Background(), "44444444-4444-4444-4444-444444444444")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
