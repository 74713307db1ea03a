package vaccinations

import "time"

// DueSoonWindow: una vacuna cuyo refuerzo cae dentro de esta ventana está "due_soon".
const DueSoonWindow = 30 * 24 * time.Hour

// Status es derivado; nunca se persiste.
type Status string

const (
	StatusUpToDate Status = "up_to_date"
	StatusDueSoon  Status = "due_soon"
	StatusOverdue  Status = "overdue"
)

type Vaccination struct {
	ID             string
	PetID          string
	VeterinarianID string

	VaccineName      string
	BatchNumber      string
	AdministeredDate time.Time
	NextDueDate      *time.Time
	Notes            string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatusAt calcula el estado respecto de now:
// overdue si next < now, due_soon si now <= next <= now+30d, up_to_date en otro caso (incluido sin fecha).
func StatusAt(next *time.Time, now time.Time) Status {
	if next == nil {
		return StatusUpToDate
	}
	if next.Before(now) {
		return StatusOverdue
	}
	if !next.After(now.Add(DueSoonWindow)) {
		return StatusDueSoon
	}
	return StatusUpToDate
}

func (v Vaccination) StatusAt(now time.Time) Status {
	return StatusAt(v.NextDueDate, now)
}
