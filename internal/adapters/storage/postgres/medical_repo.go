package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-shop-api/internal/domain/medical"
)

type MedicalRepo struct {
	db *sql.DB
}

func NewMedicalRepo(db *sql.DB) *MedicalRepo {
	return &MedicalRepo{db: db}
}

const medicalColumns = `
	id, pet_id, veterinarian_id,
	visit_date, visit_type,
	reason, diagnosis, treatment, notes,
	weight_at_visit, service_cost,
	created_at, updated_at`

func (r *MedicalRepo) Create(ctx context.Context, rec medical.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medical_records (`+medicalColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		rec.ID,
		rec.PetID,
		rec.VeterinarianID,
		rec.VisitDate,
		string(rec.VisitType),
		rec.Reason,
		rec.Diagnosis,
		rec.Treatment,
		rec.Notes,
		toNullFloat(rec.WeightAtVisit),
		rec.ServiceCost,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

func (r *MedicalRepo) Update(ctx context.Context, rec medical.Record) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE medical_records
		SET
			visit_date = $2,
			visit_type = $3,
			reason = $4,
			diagnosis = $5,
			treatment = $6,
			notes = $7,
			weight_at_visit = $8,
			service_cost = $9,
			updated_at = $10
		WHERE id = $1
	`,
		rec.ID,
		rec.VisitDate,
		string(rec.VisitType),
		rec.Reason,
		rec.Diagnosis,
		rec.Treatment,
		rec.Notes,
		toNullFloat(rec.WeightAtVisit),
		rec.ServiceCost,
		rec.UpdatedAt,
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

func (r *MedicalRepo) GetByID(ctx context.Context, id string) (medical.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return medical.Record{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+medicalColumns+` FROM medical_records WHERE id = $1`, id)
	rec, err := scanMedical(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return medical.Record{}, ErrNotFound
		}
		return medical.Record{}, err
	}
	return rec, nil
}

func (r *MedicalRepo) ListByPet(ctx context.Context, petID string, limit, offset int) ([]medical.Record, error) {
	tail, extra := limitClause(limit, offset, 2)
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+medicalColumns+`
		FROM medical_records
		WHERE pet_id = $1
		ORDER BY visit_date DESC, created_at DESC`+tail,
		append([]any{petID}, extra...)...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medical.Record, 0)
	for rows.Next() {
		rec, err := scanMedical(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *MedicalRepo) CountByPet(ctx context.Context, petID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM medical_records WHERE pet_id = $1`, petID).Scan(&n)
	return n, err
}

// MetricsByPet trae solo lo necesario para gasto y peso, sin tope.
func (r *MedicalRepo) MetricsByPet(ctx context.Context, petID string) ([]medical.Metric, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT visit_date, weight_at_visit, service_cost
		FROM medical_records
		WHERE pet_id = $1
		ORDER BY visit_date DESC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medical.Metric, 0)
	for rows.Next() {
		var m medical.Metric
		var w sql.NullFloat64
		if err := rows.Scan(&m.VisitDate, &w, &m.ServiceCost); err != nil {
			return nil, err
		}
		m.WeightAtVisit = fromNullFloat(w)
		out = append(out, m)
	}
	return out, rows.Err()
}

// rowScanner lo cumplen *sql.Row y *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedical(s rowScanner) (medical.Record, error) {
	var rec medical.Record
	var typ string
	var w sql.NullFloat64
	if err := s.Scan(
		&rec.ID,
		&rec.PetID,
		&rec.VeterinarianID,
		&rec.VisitDate,
		&typ,
		&rec.Reason,
		&rec.Diagnosis,
		&rec.Treatment,
		&rec.Notes,
		&w,
		&rec.ServiceCost,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return medical.Record{}, err
	}
	rec.VisitType = medical.VisitType(typ)
	rec.WeightAtVisit = fromNullFloat(w)
	return rec, nil
}
