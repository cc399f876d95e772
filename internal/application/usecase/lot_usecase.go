package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/domain"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

// LotUseCase entradas y ajustes de mercancía. El stock de un producto es la
// suma de los remanentes de sus lotes vigentes, así que aquí es donde el
// inventario realmente cambia (las ventas lo descuentan vía POS).
type LotUseCase struct {
	lotRepo     repository.LotRepository
	productRepo repository.ProductRepository
}

// NewLotUseCase construye el caso de uso.
func NewLotUseCase(lotRepo repository.LotRepository, productRepo repository.ProductRepository) *LotUseCase {
	return &LotUseCase{lotRepo: lotRepo, productRepo: productRepo}
}

// Receive registra la entrada de un lote nuevo. Rechaza lotes ya vencidos:
// mercancía vencida no entra al inventario.
func (uc *LotUseCase) Receive(pharmacyID string, in dto.ReceiveLotRequest) (*dto.LotResponse, error) {
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.PharmacyID != pharmacyID {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if in.ExpiryDate.Before(now) {
		return nil, domain.ErrLotExpired
	}
	lot := &entity.Lot{
		ID:         uuid.New().String(),
		PharmacyID: pharmacyID,
		ProductID:  in.ProductID,
		LotNumber:  in.LotNumber,
		Quantity:   in.Quantity,
		UnitCost:   in.UnitCost,
		ExpiryDate: in.ExpiryDate,
		ReceivedAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.lotRepo.Create(lot); err != nil {
		return nil, err
	}
	log.Info().
		Str("pharmacy_id", pharmacyID).
		Str("product_id", in.ProductID).
		Str("lot_number", in.LotNumber).
		Int("quantity", in.Quantity).
		Msg("Lote recibido")
	return toLotResponse(lot), nil
}

// Adjust fija el remanente de un lote (conteo físico, merma, rotura).
// El motivo queda en el log de auditoría.
func (uc *LotUseCase) Adjust(pharmacyID, lotID string, in dto.AdjustLotRequest) (*dto.LotResponse, error) {
	lot, err := uc.lotRepo.GetByID(lotID)
	if err != nil {
		return nil, err
	}
	if lot == nil || lot.PharmacyID != pharmacyID {
		return nil, domain.ErrNotFound
	}
	if err := uc.lotRepo.UpdateQuantity(lotID, in.Quantity); err != nil {
		return nil, err
	}
	log.Info().
		Str("pharmacy_id", pharmacyID).
		Str("lot_id", lotID).
		Int("from", lot.Quantity).
		Int("to", in.Quantity).
		Str("reason", in.Reason).
		Msg("Ajuste de lote")
	lot.Quantity = in.Quantity
	return toLotResponse(lot), nil
}

// ListByProduct lista los lotes de un producto de la farmacia.
func (uc *LotUseCase) ListByProduct(pharmacyID, productID string) ([]dto.LotResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.PharmacyID != pharmacyID {
		return nil, domain.ErrNotFound
	}
	lots, err := uc.lotRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LotResponse, 0, len(lots))
	for _, l := range lots {
		items = append(items, *toLotResponse(l))
	}
	return items, nil
}

// ExpiringSoon lista lotes con remanente que vencen dentro de `days` días.
func (uc *LotUseCase) ExpiringSoon(ctx context.Context, pharmacyID string, days, limit int) ([]dto.LotResponse, error) {
	if days <= 0 {
		days = 30
	}
	if limit <= 0 {
		limit = 100
	}
	lots, err := uc.lotRepo.ExpiringSoon(ctx, pharmacyID, days, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LotResponse, 0, len(lots))
	for _, l := range lots {
		items = append(items, *toLotResponse(l))
	}
	return items, nil
}

func toLotResponse(l *entity.Lot) *dto.LotResponse {
	if l == nil {
		return nil
	}
	return &dto.LotResponse{
		ID:         l.ID,
		ProductID:  l.ProductID,
		LotNumber:  l.LotNumber,
		Quantity:   l.Quantity,
		UnitCost:   l.UnitCost,
		ExpiryDate: l.ExpiryDate,
		ReceivedAt: l.ReceivedAt,
	}
}
