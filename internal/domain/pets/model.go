package pets

import (
	"time"

	"pet-shop-api/internal/domain/users"
)

// Species define las especies soportadas.
// @Enum dog, cat, bird, rabbit, rodent, reptile, other
type Species string

const (
	SpeciesDog     Species = "dog"
	SpeciesCat     Species = "cat"
	SpeciesBird    Species = "bird"
	SpeciesRabbit  Species = "rabbit"
	SpeciesRodent  Species = "rodent"
	SpeciesReptile Species = "reptile"
	SpeciesOther   Species = "other"
)

func (s Species) Valid() bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesBird, SpeciesRabbit, SpeciesRodent, SpeciesReptile, SpeciesOther:
		return true
	}
	return false
}

// Gender define el sexo de la mascota.
// @Enum male, female, unknown
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderUnknown
}

// Pet representa el perfil de una mascota. Nunca se borra físicamente:
// IsActive=false la oculta de las consultas normales.
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string
	Species Species
	Breed   string
	Gender  Gender

	BirthDate       *time.Time
	Weight          *float64 // kg
	MicrochipNumber string

	Temperament   string
	BehaviorNotes []string

	IsActive bool

	// Owner solo viene cargado si se pidió LoadOptions.Owner.
	Owner *users.Summary

	CreatedAt time.Time
	UpdatedAt time.Time
}
