package dto

import "time"

// RegisterRequest registro de usuario en una farmacia existente.
type RegisterRequest struct {
	PharmacyID string `json:"pharmacy_id" validate:"required,uuid4"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Name       string `json:"name" validate:"max=200"`
	Role       string `json:"role" validate:"omitempty,oneof=admin farmaceutico cajero"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse representación pública de un usuario.
type UserResponse struct {
	ID         string    `json:"id"`
	PharmacyID string    `json:"pharmacy_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
