package usecase

import (
	"time"

	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
	"github.com/tu-usuario/farmacia-suite/internal/domain/stock"
)

// AlertSettingsUseCase lectura y actualización de la configuración de alertas
// de una farmacia. No valida coherencia entre umbrales: cada campo es
// independiente y el clasificador resuelve en orden ascendente.
type AlertSettingsUseCase struct {
	repo repository.AlertSettingsRepository
}

// NewAlertSettingsUseCase construye el caso de uso.
func NewAlertSettingsUseCase(repo repository.AlertSettingsRepository) *AlertSettingsUseCase {
	return &AlertSettingsUseCase{repo: repo}
}

// Get devuelve la configuración vigente. Si la farmacia nunca configuró nada
// se devuelven los defaults del sistema como valores efectivos.
func (uc *AlertSettingsUseCase) Get(pharmacyID string) (*dto.AlertSettingsResponse, error) {
	settings, err := uc.repo.Get(pharmacyID)
	if err != nil {
		return nil, err
	}
	resolved := stock.Resolve(stock.Overrides{}, settings)
	out := &dto.AlertSettingsResponse{
		EffectiveCritical: resolved.Critical,
		EffectiveLow:      resolved.Low,
		EffectiveMax:      resolved.Maximum,
	}
	if settings != nil {
		out.CriticalThreshold = settings.CriticalThreshold
		out.LowThreshold = settings.LowThreshold
		out.MaxThreshold = settings.MaxThreshold
		out.EmailEnabled = settings.EmailEnabled
		out.AlertEmail = settings.AlertEmail
	}
	return out, nil
}

// Upsert reemplaza la configuración de la farmacia con lo recibido.
func (uc *AlertSettingsUseCase) Upsert(pharmacyID string, in dto.AlertSettingsRequest) (*dto.AlertSettingsResponse, error) {
	settings := &entity.AlertSettings{
		PharmacyID:        pharmacyID,
		CriticalThreshold: in.CriticalThreshold,
		LowThreshold:      in.LowThreshold,
		MaxThreshold:      in.MaxThreshold,
		EmailEnabled:      in.EmailEnabled,
		AlertEmail:        in.AlertEmail,
		UpdatedAt:         time.Now(),
	}
	if err := uc.repo.Upsert(settings); err != nil {
		return nil, err
	}
	return uc.Get(pharmacyID)
}
