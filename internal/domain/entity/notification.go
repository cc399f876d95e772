package entity

import "time"

// Prioridades de notificación, mapeadas directamente desde el estado de stock.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// Notification alerta persistida para el panel de notificaciones.
// La entrega por correo es responsabilidad del colaborador SMTP; aquí no hay
// reintentos ni confirmación de entrega.
type Notification struct {
	ID         string
	PharmacyID string
	ProductID  string
	Priority   string
	Message    string
	CreatedAt  time.Time
	ReadAt     *time.Time
}
