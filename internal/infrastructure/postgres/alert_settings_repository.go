package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

var _ repository.AlertSettingsRepository = (*AlertSettingsRepo)(nil)

// AlertSettingsRepo implementación del puerto AlertSettingsRepository sobre PostgreSQL.
type AlertSettingsRepo struct {
	q Querier
}

// NewAlertSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertSettingsRepository(q Querier) *AlertSettingsRepo {
	return &AlertSettingsRepo{q: q}
}

// Get devuelve la configuración de la farmacia o (nil, nil) si nunca configuró.
func (r *AlertSettingsRepo) Get(pharmacyID string) (*entity.AlertSettings, error) {
	const query = `
		SELECT pharmacy_id, critical_threshold, low_threshold, max_threshold,
		       email_enabled, alert_email, updated_at
		FROM alert_settings WHERE pharmacy_id = $1`
	var s entity.AlertSettings
	err := r.q.QueryRow(context.Background(), query, pharmacyID).Scan(
		&s.PharmacyID, &s.CriticalThreshold, &s.LowThreshold, &s.MaxThreshold,
		&s.EmailEnabled, &s.AlertEmail, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert settings: %w", err)
	}
	return &s, nil
}

// Upsert inserta o reemplaza la configuración de la farmacia.
func (r *AlertSettingsRepo) Upsert(settings *entity.AlertSettings) error {
	const query = `
		INSERT INTO alert_settings (pharmacy_id, critical_threshold, low_threshold, max_threshold,
			email_enabled, alert_email, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (pharmacy_id)
		DO UPDATE SET critical_threshold = EXCLUDED.critical_threshold,
			low_threshold = EXCLUDED.low_threshold,
			max_threshold = EXCLUDED.max_threshold,
			email_enabled = EXCLUDED.email_enabled,
			alert_email   = EXCLUDED.alert_email,
			updated_at    = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.PharmacyID, settings.CriticalThreshold, settings.LowThreshold, settings.MaxThreshold,
		settings.EmailEnabled, settings.AlertEmail, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert alert settings: %w", err)
	}
	return nil
}
