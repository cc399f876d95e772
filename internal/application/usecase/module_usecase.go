package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

// ModuleService verifica qué módulos SaaS tiene activos una farmacia.
// Es el único punto de la aplicación que conoce la lógica de activación de módulos.
type ModuleService struct {
	pharmacyRepo repository.PharmacyRepository
}

// NewModuleService construye el servicio de módulos.
func NewModuleService(pharmacyRepo repository.PharmacyRepository) *ModuleService {
	return &ModuleService{pharmacyRepo: pharmacyRepo}
}

// HasActiveModule informa si la farmacia tiene el módulo activo y sin vencer.
// Devuelve false (sin error) si la farmacia no tiene el módulo contratado.
// Devuelve error solo ante fallos de infraestructura (DB caída, timeout, etc.).
func (s *ModuleService) HasActiveModule(ctx context.Context, pharmacyID, moduleName string) (bool, error) {
	if pharmacyID == "" || moduleName == "" {
		return false, fmt.Errorf("module: pharmacyID y moduleName son obligatorios")
	}
	return s.pharmacyRepo.HasActiveModule(ctx, pharmacyID, moduleName)
}
