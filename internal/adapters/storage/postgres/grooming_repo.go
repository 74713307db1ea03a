package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-shop-api/internal/domain/grooming"
)

type GroomingRepo struct {
	db *sql.DB
}

func NewGroomingRepo(db *sql.DB) *GroomingRepo {
	return &GroomingRepo{db: db}
}

const groomingColumns = `
	id, pet_id, groomer_id,
	session_date, services_performed,
	service_cost, duration_minutes, notes,
	created_at, updated_at`

func (r *GroomingRepo) Create(ctx context.Context, s grooming.Session) error {
	services, err := encodeStrings(s.ServicesPerformed)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO grooming_sessions (`+groomingColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		s.ID,
		s.PetID,
		s.GroomerID,
		s.SessionDate,
		services,
		s.ServiceCost,
		s.DurationMinutes,
		s.Notes,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

func (r *GroomingRepo) Update(ctx context.Context, s grooming.Session) error {
	services, err := encodeStrings(s.ServicesPerformed)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE grooming_sessions
		SET
			session_date = $2,
			services_performed = $3,
			service_cost = $4,
			duration_minutes = $5,
			notes = $6,
			updated_at = $7
		WHERE id = $1
	`,
		s.ID,
		s.SessionDate,
		services,
		s.ServiceCost,
		s.DurationMinutes,
		s.Notes,
		s.UpdatedAt,
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

func (r *GroomingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM grooming_sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GroomingRepo) GetByID(ctx context.Context, id string) (grooming.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return grooming.Session{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+groomingColumns+` FROM grooming_sessions WHERE id = $1`, id)
	s, err := scanGrooming(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return grooming.Session{}, ErrNotFound
		}
		return grooming.Session{}, err
	}
	return s, nil
}

func (r *GroomingRepo) ListByPet(ctx context.Context, petID string, limit, offset int) ([]grooming.Session, error) {
	tail, extra := limitClause(limit, offset, 2)
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+groomingColumns+`
		FROM grooming_sessions
		WHERE pet_id = $1
		ORDER BY session_date DESC, created_at DESC`+tail,
		append([]any{petID}, extra...)...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]grooming.Session, 0)
	for rows.Next() {
		s, err := scanGrooming(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *GroomingRepo) CountByPet(ctx context.Context, petID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM grooming_sessions WHERE pet_id = $1`, petID).Scan(&n)
	return n, err
}

func (r *GroomingRepo) CostsByPet(ctx context.Context, petID string) ([]float64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT service_cost FROM grooming_sessions WHERE pet_id = $1`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]float64, 0)
	for rows.Next() {
		var c float64
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanGrooming(sc rowScanner) (grooming.Session, error) {
	var s grooming.Session
	var services []byte
	if err := sc.Scan(
		&s.ID,
		&s.PetID,
		&s.GroomerID,
		&s.SessionDate,
		&services,
		&s.ServiceCost,
		&s.DurationMinutes,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return grooming.Session{}, err
	}
	list, err := decodeStrings(services)
	if err != nil {
		return grooming.Session{}, err
	}
	s.ServicesPerformed = list
	return s, nil
}
