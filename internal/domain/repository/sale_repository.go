package repository

import "github.com/tu-usuario/farmacia-suite/internal/domain/entity"

// SaleRepository define el puerto de persistencia para ventas (DIP).
// Create persiste venta, líneas y pagos; debe invocarse dentro de la
// transacción que también descuenta lotes.
type SaleRepository interface {
	Create(sale *entity.Sale, items []entity.SaleItem, payments []entity.SalePayment) error
	GetByID(id string) (*entity.Sale, []entity.SaleItem, []entity.SalePayment, error)
	ListBySession(sessionID string, limit, offset int) ([]*entity.Sale, error)
	NextNumber(pharmacyID string) (int64, error)
	Void(id, reason string) error
}
