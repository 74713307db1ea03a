package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-shop-api/internal/domain/vaccinations"
)

type VaccinationsRepo struct {
	db *sql.DB
}

func NewVaccinationsRepo(db *sql.DB) *VaccinationsRepo {
	return &VaccinationsRepo{db: db}
}

const vaccinationColumns = `
	id, pet_id, veterinarian_id,
	vaccine_name, batch_number,
	administered_date, next_due_date, notes,
	created_at, updated_at`

func (r *VaccinationsRepo) Create(ctx context.Context, v vaccinations.Vaccination) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vaccinations (`+vaccinationColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		v.ID,
		v.PetID,
		v.VeterinarianID,
		v.VaccineName,
		v.BatchNumber,
		v.AdministeredDate,
		toNullTime(v.NextDueDate),
		v.Notes,
		v.CreatedAt,
		v.UpdatedAt,
	)
	return err
}

func (r *VaccinationsRepo) Update(ctx context.Context, v vaccinations.Vaccination) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vaccinations
		SET
			vaccine_name = $2,
			batch_number = $3,
			administered_date = $4,
			next_due_date = $5,
			notes = $6,
			updated_at = $7
		WHERE id = $1
	`,
		v.ID,
		v.VaccineName,
		v.BatchNumber,
		v.AdministeredDate,
		toNullTime(v.NextDueDate),
		v.Notes,
		v.UpdatedAt,
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

func (r *VaccinationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vaccinations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *VaccinationsRepo) GetByID(ctx context.Context, id string) (vaccinations.Vaccination, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return vaccinations.Vaccination{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+vaccinationColumns+` FROM vaccinations WHERE id = $1`, id)
	v, err := scanVaccination(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vaccinations.Vaccination{}, ErrNotFound
		}
		return vaccinations.Vaccination{}, err
	}
	return v, nil
}

func (r *VaccinationsRepo) ListByPet(ctx context.Context, petID string, limit, offset int) ([]vaccinations.Vaccination, error) {
	tail, extra := limitClause(limit, offset, 2)
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+vaccinationColumns+`
		FROM vaccinations
		WHERE pet_id = $1
		ORDER BY administered_date DESC, created_at DESC`+tail,
		append([]any{petID}, extra...)...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vaccinations.Vaccination, 0)
	for rows.Next() {
		v, err := scanVaccination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VaccinationsRepo) CountByPet(ctx context.Context, petID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vaccinations WHERE pet_id = $1`, petID).Scan(&n)
	return n, err
}

func scanVaccination(s rowScanner) (vaccinations.Vaccination, error) {
	var v vaccinations.Vaccination
	var next sql.NullTime
	if err := s.Scan(
		&v.ID,
		&v.PetID,
		&v.VeterinarianID,
		&v.VaccineName,
		&v.BatchNumber,
		&v.AdministeredDate,
		&next,
		&v.Notes,
		&v.CreatedAt,
		&v.UpdatedAt,
	); err != nil {
		return vaccinations.Vaccination{}, err
	}
	v.NextDueDate = fromNullTime(next)
	return v, nil
}
