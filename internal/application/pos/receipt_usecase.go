package pos

import (
	"github.com/tu-usuario/farmacia-suite/internal/domain"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

// ReceiptUseCase genera el recibo PDF de una venta.
type ReceiptUseCase struct {
	saleRepo     repository.SaleRepository
	pharmacyRepo repository.PharmacyRepository
	renderer     ReceiptRenderer
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	pharmacyRepo repository.PharmacyRepository,
	renderer ReceiptRenderer,
) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, pharmacyRepo: pharmacyRepo, renderer: renderer}
}

// Render carga la venta y la farmacia y genera los bytes del PDF.
func (uc *ReceiptUseCase) Render(pharmacyID, saleID string) ([]byte, error) {
	sale, items, payments, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil || sale.PharmacyID != pharmacyID {
		return nil, domain.ErrNotFound
	}
	pharmacy, err := uc.pharmacyRepo.GetByID(pharmacyID)
	if err != nil {
		return nil, err
	}
	if pharmacy == nil {
		return nil, domain.ErrNotFound
	}
	return uc.renderer.Render(pharmacy, sale, items, payments)
}
