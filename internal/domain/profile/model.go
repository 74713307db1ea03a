package profile

import (
	"time"

	"pet-shop-api/internal/domain/appointments"
	"pet-shop-api/internal/domain/grooming"
	"pet-shop-api/internal/domain/medical"
	"pet-shop-api/internal/domain/pets"
	"pet-shop-api/internal/domain/users"
	"pet-shop-api/internal/domain/vaccinations"
)

// WeightSource indica de dónde sale un punto de la serie de peso.
type WeightSource string

const (
	WeightManual  WeightSource = "manual"  // peso actual cargado en la mascota
	WeightMedical WeightSource = "medical" // weight_at_visit de una visita
)

// Profile es el read-model consolidado de GET /pets/{petID}/complete-profile.
type Profile struct {
	Pet             PetSummary         `json:"pet"`
	MedicalHistory  MedicalHistory     `json:"medical_history"`
	WeightHistory   []WeightEntry      `json:"weight_history"`
	Vaccinations    VaccinationSummary `json:"vaccinations"`
	GroomingHistory GroomingHistory    `json:"grooming_history"`
	Appointments    AppointmentSummary `json:"appointments"`
	Summary         Summary            `json:"summary"`
}

type PetSummary struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Species         pets.Species   `json:"species"`
	Breed           string         `json:"breed"`
	Gender          pets.Gender    `json:"gender"`
	BirthDate       *time.Time     `json:"birth_date,omitempty"`
	Weight          *float64       `json:"weight,omitempty"`
	MicrochipNumber string         `json:"microchip_number,omitempty"`
	Temperament     string         `json:"temperament,omitempty"`
	BehaviorNotes   []string       `json:"behavior_notes"`
	Owner           *users.Summary `json:"owner,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type MedicalHistory struct {
	RecentVisits []medical.RecordResponse `json:"recent_visits"`
	TotalVisits  int                      `json:"total_visits"`
}

type WeightEntry struct {
	Date   time.Time    `json:"date"`
	Weight float64      `json:"weight"`
	Source WeightSource `json:"source" enums:"manual,medical"`
}

type VaccinationSummary struct {
	All              []vaccinations.VaccinationResponse `json:"all"`
	UpcomingVaccines []vaccinations.VaccinationResponse `json:"upcoming_vaccines"`
	TotalVaccines    int                                `json:"total_vaccines"`
}

type GroomingHistory struct {
	RecentSessions []grooming.SessionResponse `json:"recent_sessions"`
	TotalSessions  int                        `json:"total_sessions"`
	LastGrooming   *time.Time                 `json:"last_grooming,omitempty"`
}

type AppointmentSummary struct {
	Upcoming          []appointments.AppointmentResponse `json:"upcoming"`
	Past              []appointments.AppointmentResponse `json:"past"`
	TotalAppointments int                                `json:"total_appointments"`
}

type Summary struct {
	Age                *float64   `json:"age,omitempty"` // años, 1 decimal
	LastVisit          *time.Time `json:"last_visit,omitempty"`
	NextVaccinationDue *time.Time `json:"next_vaccination_due,omitempty"`
	TotalSpentMedical  float64    `json:"total_spent_medical"`
	TotalSpentGrooming float64    `json:"total_spent_grooming"`
}
