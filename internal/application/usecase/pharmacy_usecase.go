package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/domain"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

// PharmacyUseCase aplica reglas de negocio para farmacias (tenants).
type PharmacyUseCase struct {
	repo repository.PharmacyRepository
}

// NewPharmacyUseCase construye el caso de uso con el puerto de persistencia.
func NewPharmacyUseCase(repo repository.PharmacyRepository) *PharmacyUseCase {
	return &PharmacyUseCase{repo: repo}
}

// Create crea una nueva farmacia. Genera ID. Devuelve domain.ErrDuplicate si el NIT ya existe.
// El módulo de inventario queda activo de entrada; el resto se contrata aparte.
func (uc *PharmacyUseCase) Create(ctx context.Context, in dto.CreatePharmacyRequest) (*dto.PharmacyResponse, error) {
	existing, _ := uc.repo.GetByNIT(in.NIT)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	pharmacy := &entity.Pharmacy{
		ID:        uuid.New().String(),
		Name:      in.Name,
		NIT:       in.NIT,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(pharmacy); err != nil {
		return nil, err
	}
	if err := uc.repo.EnableModule(ctx, &entity.PharmacyModule{
		PharmacyID: pharmacy.ID,
		Module:     entity.ModuleInventory,
		Active:     true,
	}); err != nil {
		return nil, err
	}
	return toPharmacyResponse(pharmacy), nil
}

// GetByID obtiene una farmacia por ID.
func (uc *PharmacyUseCase) GetByID(id string) (*dto.PharmacyResponse, error) {
	pharmacy, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pharmacy == nil {
		return nil, nil
	}
	return toPharmacyResponse(pharmacy), nil
}

// List lista farmacias con paginación.
func (uc *PharmacyUseCase) List(limit, offset int) (*dto.PharmacyListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PharmacyResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPharmacyResponse(p))
	}
	return &dto.PharmacyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// EnableModule activa (o renueva) un módulo SaaS para la farmacia.
func (uc *PharmacyUseCase) EnableModule(ctx context.Context, pharmacyID string, in dto.EnableModuleRequest) error {
	pharmacy, err := uc.repo.GetByID(pharmacyID)
	if err != nil {
		return err
	}
	if pharmacy == nil {
		return domain.ErrNotFound
	}
	return uc.repo.EnableModule(ctx, &entity.PharmacyModule{
		PharmacyID: pharmacyID,
		Module:     in.Module,
		Active:     true,
		ExpiresAt:  in.ExpiresAt,
	})
}

func toPharmacyResponse(p *entity.Pharmacy) *dto.PharmacyResponse {
	if p == nil {
		return nil
	}
	return &dto.PharmacyResponse{
		ID:        p.ID,
		Name:      p.Name,
		NIT:       p.NIT,
		Address:   p.Address,
		Phone:     p.Phone,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
	}
}
