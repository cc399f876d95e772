// Package promo administra promociones: descuentos porcentuales con ventana
// de vigencia que el POS aplica automáticamente al vender.
package promo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/domain"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

// UseCase casos de uso de promociones.
type UseCase struct {
	repo        repository.PromotionRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.PromotionRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{repo: repo, productRepo: productRepo}
}

// Create alta de promoción. Valida porcentaje (0, 100], ventana coherente y
// que el producto, si se indica, pertenezca a la farmacia.
func (uc *UseCase) Create(pharmacyID string, in dto.CreatePromotionRequest) (*dto.PromotionResponse, error) {
	if in.DiscountPct.LessThanOrEqual(decimal.Zero) || in.DiscountPct.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}
	if !in.EndsAt.After(in.StartsAt) {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID != "" {
		product, err := uc.productRepo.GetByID(in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.PharmacyID != pharmacyID {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	promotion := &entity.Promotion{
		ID:          uuid.New().String(),
		PharmacyID:  pharmacyID,
		ProductID:   in.ProductID,
		Name:        in.Name,
		DiscountPct: in.DiscountPct,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(promotion); err != nil {
		return nil, err
	}
	return toPromotionResponse(promotion, now), nil
}

// Deactivate apaga una promoción antes de su vencimiento.
func (uc *UseCase) Deactivate(pharmacyID, id string) error {
	promotion, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if promotion == nil || promotion.PharmacyID != pharmacyID {
		return domain.ErrNotFound
	}
	promotion.Active = false
	promotion.UpdatedAt = time.Now()
	return uc.repo.Update(promotion)
}

// List lista promociones de la farmacia con paginación.
func (uc *UseCase) List(pharmacyID string, limit, offset int) ([]dto.PromotionResponse, error) {
	list, err := uc.repo.ListByPharmacy(pharmacyID, limit, offset)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	items := make([]dto.PromotionResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPromotionResponse(p, now))
	}
	return items, nil
}

func toPromotionResponse(p *entity.Promotion, now time.Time) *dto.PromotionResponse {
	return &dto.PromotionResponse{
		ID:          p.ID,
		ProductID:   p.ProductID,
		Name:        p.Name,
		DiscountPct: p.DiscountPct,
		StartsAt:    p.StartsAt,
		EndsAt:      p.EndsAt,
		Active:      p.Active,
		ValidNow:    p.ValidAt(now),
	}
}
