package catalog

import "time"

// Item es un servicio ofrecido por la tienda (consulta, baño, guardería...).
// En la API se expone bajo /services.
type Item struct {
	ID              string
	Name            string
	Description     string
	Category        string
	Price           float64
	DurationMinutes int
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
