package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la farmacia.
// El stock no vive aquí: se deriva sumando los remanentes de lotes vigentes (Lot).
// Los umbrales son overrides opcionales por producto; si son nil se cae en la
// configuración de alertas de la farmacia y luego en los defaults del sistema.
type Product struct {
	ID          string
	PharmacyID  string
	Code        string // código de búsqueda (CUM / código de barras), único por farmacia
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal // precio de compra unitario
	TaxRate     decimal.Decimal // IVA: 0, 5 o 19
	// Overrides de umbral por producto (nil = heredar de la farmacia)
	CriticalThreshold *int
	LowThreshold      *int
	MaxThreshold      *int
	Active            bool // desactivación lógica; nunca se borra físicamente
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
