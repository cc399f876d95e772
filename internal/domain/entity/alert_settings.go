package entity

import "time"

// AlertSettings configuración de alertas de stock a nivel de farmacia.
// Cada umbral es opcional e independiente: nil significa usar el default del sistema.
type AlertSettings struct {
	PharmacyID        string
	CriticalThreshold *int
	LowThreshold      *int
	MaxThreshold      *int
	EmailEnabled      bool
	AlertEmail        string // destino de las alertas; vacío = email de la farmacia
	UpdatedAt         time.Time
}
