package users

import (
	"time"

	"pet-shop-api/internal/ports/auth"
)

// User es una cuenta de la plataforma (cliente o staff).
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         auth.Role

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary es la vista reducida que se embebe en otros recursos (p.ej. owner de una mascota).
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Summary() Summary {
	return Summary{ID: u.ID, Name: u.Name, Email: u.Email}
}
