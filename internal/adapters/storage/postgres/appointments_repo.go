package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-shop-api/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

const appointmentColumns = `
	id, pet_id, service_id, customer_id,
	date, status, notes,
	created_at, updated_at`

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (`+appointmentColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		a.ID,
		a.PetID,
		a.ServiceID,
		a.CustomerID,
		a.Date,
		string(a.Status),
		a.Notes,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET
			service_id = $2,
			date = $3,
			status = $4,
			notes = $5,
			updated_at = $6
		WHERE id = $1
	`,
		a.ID,
		a.ServiceID,
		a.Date,
		string(a.Status),
		a.Notes,
		a.UpdatedAt,
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

func (r *AppointmentsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return appointments.Appointment{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id)
	a, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appointments.Appointment{}, ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentsRepo) List(ctx context.Context, f appointments.ListFilter) ([]appointments.Appointment, int, error) {
	where := strings.Builder{}
	where.WriteString(" WHERE TRUE")

	args := []any{}
	argN := 1

	add := func(cond string, v any) {
		where.WriteString(fmt.Sprintf(cond, argN))
		args = append(args, v)
		argN++
	}
	if f.CustomerID != "" {
		add(" AND customer_id = $%d", f.CustomerID)
	}
	if f.PetID != "" {
		add(" AND pet_id = $%d", f.PetID)
	}
	if f.Status != "" {
		add(" AND status = $%d", string(f.Status))
	}
	if f.From != nil {
		add(" AND date >= $%d", *f.From)
	}
	if f.To != nil {
		add(" AND date <= $%d", *f.To)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM appointments`+where.String(), args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := f.Page.Normalize()
	tail, extra := limitClause(page.Limit, page.Offset(), argN)
	out, err := r.query(ctx, where.String()+` ORDER BY date ASC, created_at ASC`+tail, append(args, extra...))
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListByPet es la consulta del perfil: [From, Before) sobre date.
func (r *AppointmentsRepo) ListByPet(ctx context.Context, petID string, rng appointments.PetRange) ([]appointments.Appointment, error) {
	sb := strings.Builder{}
	sb.WriteString(" WHERE pet_id = $1")

	args := []any{petID}
	argN := 2

	if rng.From != nil {
		sb.WriteString(fmt.Sprintf(" AND date >= $%d", argN))
		args = append(args, *rng.From)
		argN++
	}
	if rng.Before != nil {
		sb.WriteString(fmt.Sprintf(" AND date < $%d", argN))
		args = append(args, *rng.Before)
		argN++
	}
	if rng.Descending {
		sb.WriteString(" ORDER BY date DESC, created_at DESC")
	} else {
		sb.WriteString(" ORDER BY date ASC, created_at ASC")
	}
	tail, extra := limitClause(rng.Limit, 0, argN)
	sb.WriteString(tail)

	return r.query(ctx, sb.String(), append(args, extra...))
}

func (r *AppointmentsRepo) CountByPet(ctx context.Context, petID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM appointments WHERE pet_id = $1`, petID).Scan(&n)
	return n, err
}

func (r *AppointmentsRepo) query(ctx context.Context, tail string, args []any) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+appointmentColumns+` FROM appointments`+tail, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAppointment(s rowScanner) (appointments.Appointment, error) {
	var a appointments.Appointment
	var status string
	if err := s.Scan(
		&a.ID,
		&a.PetID,
		&a.ServiceID,
		&a.CustomerID,
		&a.Date,
		&status,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return appointments.Appointment{}, err
	}
	a.Status = appointments.Status(status)
	return a, nil
}
