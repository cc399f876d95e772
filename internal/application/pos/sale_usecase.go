package pos

import (
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/domain"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

// SaleUseCase consultas y anulación de ventas ya registradas.
type SaleUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{saleRepo: saleRepo}
}

// GetByID devuelve la venta completa (líneas y pagos) de la farmacia.
func (uc *SaleUseCase) GetByID(pharmacyID, id string) (*dto.SaleResponse, error) {
	sale, items, payments, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil || sale.PharmacyID != pharmacyID {
		return nil, nil
	}
	return toSaleResponse(sale, items, payments), nil
}

// ListBySession lista las ventas de una sesión de caja.
func (uc *SaleUseCase) ListBySession(pharmacyID, sessionID string, limit, offset int) ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.ListBySession(sessionID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		if s.PharmacyID != pharmacyID {
			continue
		}
		items = append(items, *toSaleResponse(s, nil, nil))
	}
	return items, nil
}

// Void anula una venta. El inventario no se repone automáticamente: la
// devolución física se registra como ajuste de lote.
func (uc *SaleUseCase) Void(pharmacyID, id, reason string) error {
	sale, _, _, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil || sale.PharmacyID != pharmacyID {
		return domain.ErrNotFound
	}
	if sale.Status != entity.SaleStatusCompleted {
		return domain.ErrConflict
	}
	if err := uc.saleRepo.Void(id, reason); err != nil {
		return err
	}
	log.Info().
		Str("pharmacy_id", pharmacyID).
		Str("sale_id", id).
		Str("reason", reason).
		Msg("Venta anulada")
	return nil
}
