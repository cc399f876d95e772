package repository

import "github.com/tu-usuario/farmacia-suite/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// No hay Delete físico: los productos se desactivan con Deactivate.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByPharmacyAndCode(pharmacyID, code string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByPharmacy(pharmacyID string, onlyActive bool, limit, offset int) ([]*entity.Product, error)
	Deactivate(id string) error
}
