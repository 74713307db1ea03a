package grooming

import "time"

type Session struct {
	ID        string
	PetID     string
	GroomerID string

	SessionDate       time.Time
	ServicesPerformed []string
	ServiceCost       float64
	DurationMinutes   int
	Notes             string

	CreatedAt time.Time
	UpdatedAt time.Time
}
