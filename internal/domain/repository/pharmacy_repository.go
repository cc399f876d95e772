package repository

import (
	"context"

	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
)

// PharmacyRepository define el puerto de persistencia para Pharmacy (DIP).
type PharmacyRepository interface {
	Create(pharmacy *entity.Pharmacy) error
	GetByID(id string) (*entity.Pharmacy, error)
	GetByNIT(nit string) (*entity.Pharmacy, error)
	List(limit, offset int) ([]*entity.Pharmacy, error)

	// HasActiveModule informa si la farmacia tiene el módulo activo y sin vencer.
	HasActiveModule(ctx context.Context, pharmacyID, module string) (bool, error)
	// EnableModule activa (o renueva) un módulo para la farmacia.
	EnableModule(ctx context.Context, mod *entity.PharmacyModule) error
}
