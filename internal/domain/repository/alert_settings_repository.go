package repository

import "github.com/tu-usuario/farmacia-suite/internal/domain/entity"

// AlertSettingsRepository puerto para la configuración de alertas por farmacia.
// Get devuelve (nil, nil) si la farmacia nunca configuró alertas: el resolvedor
// de umbrales cae entonces en los defaults del sistema.
type AlertSettingsRepository interface {
	Get(pharmacyID string) (*entity.AlertSettings, error)
	Upsert(settings *entity.AlertSettings) error
}
