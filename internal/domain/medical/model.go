package medical

import "time"

// VisitType clasifica la visita.
// @Enum consultation, vaccination, surgery, emergency, checkup
type VisitType string

const (
	VisitConsultation VisitType = "consultation"
	VisitVaccination  VisitType = "vaccination"
	VisitSurgery      VisitType = "surgery"
	VisitEmergency    VisitType = "emergency"
	VisitCheckup      VisitType = "checkup"
)

func (v VisitType) Valid() bool {
	switch v {
	case VisitConsultation, VisitVaccination, VisitSurgery, VisitEmergency, VisitCheckup:
		return true
	}
	return false
}

// Record es una entrada de historia clínica. No se borra; solo se enmienda.
type Record struct {
	ID             string
	PetID          string
	VeterinarianID string

	VisitDate time.Time
	VisitType VisitType

	Reason    string
	Diagnosis string
	Treatment string
	Notes     string

	WeightAtVisit *float64 // kg
	ServiceCost   float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Metric es la proyección liviana que usa el perfil consolidado
// (serie de peso y gasto total sobre toda la historia).
type Metric struct {
	VisitDate     time.Time
	WeightAtVisit *float64
	ServiceCost   float64
}
