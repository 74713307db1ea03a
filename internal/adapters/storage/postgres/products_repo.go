package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-shop-api/internal/domain/products"
)

type ProductsRepo struct {
	db *sql.DB
}

func NewProductsRepo(db *sql.DB) *ProductsRepo {
	return &ProductsRepo{db: db}
}

const productColumns = `
	id, name, description, sku, category,
	price, stock,
	created_at, updated_at`

func (r *ProductsRepo) Create(ctx context.Context, p products.Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.Name,
		p.Description,
		p.SKU,
		p.Category,
		p.Price,
		p.Stock,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *ProductsRepo) Update(ctx context.Context, p products.Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET
			name = $2,
			description = $3,
			sku = $4,
			category = $5,
			price = $6,
			stock = $7,
			updated_at = $8
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Description,
		p.SKU,
		p.Category,
		p.Price,
		p.Stock,
		p.UpdatedAt,
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

func (r *ProductsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductsRepo) GetByID(ctx context.Context, id string) (products.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return products.Product{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return products.Product{}, ErrNotFound
		}
		return products.Product{}, err
	}
	return p, nil
}

func (r *ProductsRepo) List(ctx context.Context, f products.ListFilter) ([]products.Product, int, error) {
	where := strings.Builder{}
	where.WriteString(" WHERE TRUE")

	args := []any{}
	argN := 1

	if c := strings.TrimSpace(f.Category); c != "" {
		where.WriteString(fmt.Sprintf(" AND category = $%d", argN))
		args = append(args, c)
		argN++
	}
	if f.InStock {
		where.WriteString(" AND stock > 0")
	}
	// q: nombre o sku
	if q := strings.TrimSpace(f.Query); q != "" {
		where.WriteString(fmt.Sprintf(" AND (name ILIKE $%d OR sku ILIKE $%d)", argN, argN))
		args = append(args, "%"+q+"%")
		argN++
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`+where.String(), args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := f.Page.Normalize()
	tail, extra := limitClause(page.Limit, page.Offset(), argN)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products`+where.String()+` ORDER BY lower(name) ASC`+tail,
		append(args, extra...)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]products.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func scanProduct(s rowScanner) (products.Product, error) {
	var p products.Product
	err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.SKU,
		&p.Category,
		&p.Price,
		&p.Stock,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
