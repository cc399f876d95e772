package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
)

// LotRepository define el puerto de persistencia para lotes (DIP).
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	ListByProduct(productID string) ([]*entity.Lot, error)

	// ActiveLotsForUpdate devuelve los lotes vigentes (no vencidos, remanente > 0)
	// del producto, bloqueados con SELECT FOR UPDATE y ordenados por vencimiento
	// más próximo primero (FEFO). Debe invocarse dentro de una transacción.
	ActiveLotsForUpdate(productID string, now time.Time) ([]*entity.Lot, error)

	// UpdateQuantity fija el remanente de un lote (descuento de venta o ajuste).
	UpdateQuantity(lotID string, quantity int) error

	// ExpiringSoon lista lotes con remanente que vencen dentro de `days` días.
	ExpiringSoon(ctx context.Context, pharmacyID string, days, limit int) ([]*entity.Lot, error)
}
