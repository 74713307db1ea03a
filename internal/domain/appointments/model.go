package appointments

import "time"

// Status del turno. "upcoming"/"past" en el perfil no dependen de esto, solo de la fecha.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Appointment struct {
	ID         string
	PetID      string
	ServiceID  string
	CustomerID string

	Date   time.Time
	Status Status
	Notes  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
