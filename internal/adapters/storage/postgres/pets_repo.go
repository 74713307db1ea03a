package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-shop-api/internal/domain/pets"
	"pet-shop-api/internal/domain/users"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	p.id, p.owner_user_id,
	p.name, p.species, p.breed, p.gender,
	p.birth_date, p.weight, p.microchip_number,
	p.temperament, p.behavior_notes, p.is_active,
	p.created_at, p.updated_at`

// activeOnly es el único lugar donde se arma el filtro de activos.
func activeOnly(opts pets.LoadOptions) string {
	if opts.IncludeInactive {
		return ""
	}
	return " AND p.is_active"
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	notes, err := encodeStrings(p.BehaviorNotes)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, owner_user_id,
			name, species, breed, gender,
			birth_date, weight, microchip_number,
			temperament, behavior_notes, is_active,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		string(p.Species),
		p.Breed,
		string(p.Gender),
		toNullTime(p.BirthDate),
		toNullFloat(p.Weight),
		p.MicrochipNumber,
		p.Temperament,
		notes,
		p.IsActive,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

// Update no toca mascotas dadas de baja.
func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	notes, err := encodeStrings(p.BehaviorNotes)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			species = $3,
			breed = $4,
			gender = $5,
			birth_date = $6,
			weight = $7,
			microchip_number = $8,
			temperament = $9,
			behavior_notes = $10,
			updated_at = $11
		WHERE id = $1 AND is_active
	`,
		p.ID,
		p.Name,
		string(p.Species),
		p.Breed,
		string(p.Gender),
		toNullTime(p.BirthDate),
		toNullFloat(p.Weight),
		p.MicrochipNumber,
		p.Temperament,
		notes,
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

func (r *PetsRepo) GetByID(ctx context.Context, id string, opts pets.LoadOptions) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	query := `SELECT ` + petColumns
	if opts.Owner {
		query += `, u.id, u.name, u.email FROM pets p LEFT JOIN users u ON u.id = p.owner_user_id`
	} else {
		query += ` FROM pets p`
	}
	query += ` WHERE p.id = $1` + activeOnly(opts)

	row := r.db.QueryRowContext(ctx, query, id)

	var (
		pr    petRow
		owner struct{ id, name, email sql.NullString }
	)
	dest := pr.dest()
	if opts.Owner {
		dest = append(dest, &owner.id, &owner.name, &owner.email)
	}
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, ErrNotFound
		}
		return pets.Pet{}, err
	}
	p, err := pr.pet()
	if err != nil {
		return pets.Pet{}, err
	}
	if opts.Owner && owner.id.Valid {
		p.Owner = &users.Summary{ID: owner.id.String, Name: owner.name.String, Email: owner.email.String}
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context, f pets.ListFilter) ([]pets.Pet, int, error) {
	where := strings.Builder{}
	where.WriteString(` WHERE TRUE` + activeOnly(pets.LoadOptions{}))

	args := []any{}
	argN := 1

	if strings.TrimSpace(f.OwnerUserID) != "" {
		where.WriteString(fmt.Sprintf(" AND p.owner_user_id = $%d", argN))
		args = append(args, f.OwnerUserID)
		argN++
	}
	if f.Species != "" {
		where.WriteString(fmt.Sprintf(" AND p.species = $%d", argN))
		args = append(args, string(f.Species))
		argN++
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		where.WriteString(fmt.Sprintf(" AND p.name ILIKE $%d", argN))
		args = append(args, "%"+q+"%")
		argN++
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pets p`+where.String(), args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := f.Page.Normalize()
	tail, extra := limitClause(page.Limit, page.Offset(), argN)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+petColumns+` FROM pets p`+where.String()+` ORDER BY p.created_at ASC`+tail,
		append(args, extra...)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var pr petRow
		if err := rows.Scan(pr.dest()...); err != nil {
			return nil, 0, err
		}
		p, err := pr.pet()
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *PetsRepo) Deactivate(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets SET is_active = FALSE, updated_at = $2
		WHERE id = $1 AND is_active
	`, id, at)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// petRow junta el Pet con las columnas que necesitan conversión al escanear.
type petRow struct {
	p      pets.Pet
	sp, g  string
	birth  sql.NullTime
	weight sql.NullFloat64
	notes  []byte
}

func (r *petRow) dest() []any {
	return []any{
		&r.p.ID, &r.p.OwnerUserID,
		&r.p.Name, &r.sp, &r.p.Breed, &r.g,
		&r.birth, &r.weight, &r.p.MicrochipNumber,
		&r.p.Temperament, &r.notes, &r.p.IsActive,
		&r.p.CreatedAt, &r.p.UpdatedAt,
	}
}

func (r *petRow) pet() (pets.Pet, error) {
	p := r.p
	p.Species = pets.Species(r.sp)
	p.Gender = pets.Gender(r.g)
	p.BirthDate = fromNullTime(r.birth)
	p.Weight = fromNullFloat(r.weight)
	notes, err := decodeStrings(r.notes)
	if err != nil {
		return pets.Pet{}, err
	}
	p.BehaviorNotes = notes
	return p, nil
}

// JSONB <-> []string
func encodeStrings(in []string) ([]byte, error) {
	if in == nil {
		in = []string{}
	}
	return json.Marshal(in)
}

func decodeStrings(raw []byte) ([]string, error) {
	out := []string{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode jsonb: %w", err)
	}
	return out, nil
}
