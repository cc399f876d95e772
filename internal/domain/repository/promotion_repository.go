package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
)

// PromotionRepository define el puerto de persistencia para promociones (DIP).
type PromotionRepository interface {
	Create(promotion *entity.Promotion) error
	GetByID(id string) (*entity.Promotion, error)
	Update(promotion *entity.Promotion) error
	ListByPharmacy(pharmacyID string, limit, offset int) ([]*entity.Promotion, error)
	// ListActiveAt devuelve las promociones activas cuya ventana cubre `at`.
	ListActiveAt(ctx context.Context, pharmacyID string, at time.Time) ([]*entity.Promotion, error)
}
