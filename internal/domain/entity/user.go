package entity

import "time"

// Roles de usuario dentro de una farmacia.
const (
	RoleAdmin        = "admin"
	RoleFarmaceutico = "farmaceutico"
	RoleCajero       = "cajero"
)

// User usuario de la aplicación, pertenece a una farmacia.
type User struct {
	ID           string
	PharmacyID   string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
