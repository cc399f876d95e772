package entity

import "time"

// Módulos SaaS contratables por farmacia.
const (
	ModulePOS       = "pos"
	ModuleInventory = "inventario"
	ModulePayroll   = "nomina"
	ModuleChat      = "chat"
	ModuleReports   = "reportes"
)

// Pharmacy representa una farmacia (tenant). Todos los datos de la aplicación
// están aislados por pharmacy_id.
type Pharmacy struct {
	ID        string
	Name      string
	NIT       string // identificación tributaria
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PharmacyModule activación de un módulo SaaS con fecha de vencimiento opcional.
type PharmacyModule struct {
	PharmacyID string
	Module     string
	Active     bool
	ExpiresAt  *time.Time // nil = sin vencimiento
}
