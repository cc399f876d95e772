package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StockRow fila cruda producto+stock para el clasificador de estados.
// Quantity es nil cuando el producto no tiene lotes vigentes registrados y el
// agregado SQL no pudo derivar cantidad (el agregador la omite del conteo).
// Los umbrales son los overrides del producto, cada uno opcional.
type StockRow struct {
	ProductID         string
	Code              string
	Name              string
	Quantity          *int // suma de remanentes de lotes no vencidos
	CriticalThreshold *int
	LowThreshold      *int
	MaxThreshold      *int
	Price             decimal.Decimal
	Cost              decimal.Decimal
}

// StockRepository puerto de lectura para las filas de stock clasificables.
// Solo lecturas; el almacén externo impone el límite de filas por página.
type StockRepository interface {
	// ListStockPage devuelve una página de productos activos con su cantidad
	// derivada de lotes, ordenada por nombre para un orden estable.
	ListStockPage(ctx context.Context, pharmacyID string, limit, offset int) ([]StockRow, error)
}
