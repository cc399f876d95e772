package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/domain"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo. El stock no se toca aquí:
// se deriva de los lotes (ver LotUseCase).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// validTaxRate IVA colombiano: 0, 5 o 19.
func validTaxRate(rate decimal.Decimal) bool {
	return rate.Equal(decimal.Zero) ||
		rate.Equal(decimal.NewFromInt(5)) ||
		rate.Equal(decimal.NewFromInt(19))
}

// Create crea un nuevo producto. Devuelve domain.ErrDuplicate si el código ya existe en la farmacia.
func (uc *ProductUseCase) Create(pharmacyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.repo.GetByPharmacyAndCode(pharmacyID, in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if !validTaxRate(in.TaxRate) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		PharmacyID:        pharmacyID,
		Code:              in.Code,
		Name:              in.Name,
		Description:       in.Description,
		Price:             in.Price,
		Cost:              in.Cost,
		TaxRate:           in.TaxRate,
		CriticalThreshold: in.CriticalThreshold,
		LowThreshold:      in.LowThreshold,
		MaxThreshold:      in.MaxThreshold,
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID, verificando que pertenezca a la farmacia.
func (uc *ProductUseCase) GetByID(pharmacyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.PharmacyID != pharmacyID {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualización parcial. Los umbrales se pueden fijar pero no volver a nil
// por esta vía (el front manda el valor vigente).
func (uc *ProductUseCase) Update(pharmacyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.PharmacyID != pharmacyID {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Cost != nil {
		product.Cost = *in.Cost
	}
	if in.TaxRate != nil {
		if !validTaxRate(*in.TaxRate) {
			return nil, domain.ErrInvalidInput
		}
		product.TaxRate = *in.TaxRate
	}
	if in.CriticalThreshold != nil {
		product.CriticalThreshold = in.CriticalThreshold
	}
	if in.LowThreshold != nil {
		product.LowThreshold = in.LowThreshold
	}
	if in.MaxThreshold != nil {
		product.MaxThreshold = in.MaxThreshold
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos de la farmacia con paginación.
func (uc *ProductUseCase) List(pharmacyID string, onlyActive bool, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByPharmacy(pharmacyID, onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Deactivate desactivación lógica; el histórico de ventas lo sigue referenciando.
func (uc *ProductUseCase) Deactivate(pharmacyID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil || product.PharmacyID != pharmacyID {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		PharmacyID:        p.PharmacyID,
		Code:              p.Code,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		Cost:              p.Cost,
		TaxRate:           p.TaxRate,
		CriticalThreshold: p.CriticalThreshold,
		LowThreshold:      p.LowThreshold,
		MaxThreshold:      p.MaxThreshold,
		Active:            p.Active,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
