package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-shop-api/internal/domain/catalog"
)

type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

const catalogColumns = `
	id, name, description, category,
	price, duration_minutes, is_active,
	created_at, updated_at`

func (r *CatalogRepo) Create(ctx context.Context, it catalog.Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO services (`+catalogColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		it.ID,
		it.Name,
		it.Description,
		it.Category,
		it.Price,
		it.DurationMinutes,
		it.IsActive,
		it.CreatedAt,
		it.UpdatedAt,
	)
	return err
}

func (r *CatalogRepo) Update(ctx context.Context, it catalog.Item) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE services
		SET
			name = $2,
			description = $3,
			category = $4,
			price = $5,
			duration_minutes = $6,
			is_active = $7,
			updated_at = $8
		WHERE id = $1
	`,
		it.ID,
		it.Name,
		it.Description,
		it.Category,
		it.Price,
		it.DurationMinutes,
		it.IsActive,
		it.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete falla con 23503 si hay citas que referencian el servicio.
func (r *CatalogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CatalogRepo) GetByID(ctx context.Context, id string) (catalog.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return catalog.Item{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+catalogColumns+` FROM services WHERE id = $1`, id)
	it, err := scanCatalog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Item{}, ErrNotFound
		}
		return catalog.Item{}, err
	}
	return it, nil
}

func (r *CatalogRepo) List(ctx context.Context, f catalog.ListFilter) ([]catalog.Item, int, error) {
	where := strings.Builder{}
	where.WriteString(" WHERE TRUE")

	args := []any{}
	argN := 1

	if !f.IncludeInactive {
		where.WriteString(" AND is_active")
	}
	if c := strings.TrimSpace(f.Category); c != "" {
		where.WriteString(fmt.Sprintf(" AND category = $%d", argN))
		args = append(args, c)
		argN++
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		where.WriteString(fmt.Sprintf(" AND name ILIKE $%d", argN))
		args = append(args, "%"+q+"%")
		argN++
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`+where.String(), args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := f.Page.Normalize()
	tail, extra := limitClause(page.Limit, page.Offset(), argN)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+catalogColumns+` FROM services`+where.String()+` ORDER BY lower(name) ASC`+tail,
		append(args, extra...)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]catalog.Item, 0)
	for rows.Next() {
		it, err := scanCatalog(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, it)
	}
	return out, total, rows.Err()
}

func scanCatalog(s rowScanner) (catalog.Item, error) {
	var it catalog.Item
	err := s.Scan(
		&it.ID,
		&it.Name,
		&it.Description,
		&it.Category,
		&it.Price,
		&it.DurationMinutes,
		&it.IsActive,
		&it.CreatedAt,
		&it.UpdatedAt,
	)
	return it, err
}
