package dto

import "time"

// CreatePharmacyRequest alta de farmacia (tenant).
type CreatePharmacyRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	NIT     string `json:"nit" validate:"required,max=20"`
	Address string `json:"address" validate:"max=300"`
	Phone   string `json:"phone" validate:"max=30"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// PharmacyResponse representación pública de una farmacia.
type PharmacyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NIT       string    `json:"nit"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PharmacyListResponse listado paginado.
type PharmacyListResponse struct {
	Items []PharmacyResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// EnableModuleRequest activación de un módulo SaaS.
type EnableModuleRequest struct {
	Module    string     `json:"module" validate:"required,oneof=pos inventario nomina chat reportes"`
	ExpiresAt *time.Time `json:"expires_at"`
}
