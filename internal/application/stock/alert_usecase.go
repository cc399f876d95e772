package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
	domstock "github.com/tu-usuario/farmacia-suite/internal/domain/stock"
)

// AlertUseCase genera las alertas de stock de una farmacia: clasifica el
// inventario, arma un mensaje por producto fuera de lo normal, persiste las
// notificaciones y las entrega al colaborador de correo si está habilitado.
type AlertUseCase struct {
	stockRepo        repository.StockRepository
	settingsRepo     repository.AlertSettingsRepository
	notificationRepo repository.NotificationRepository
	mailer           AlertMailer // puede ser nil: solo se persiste
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(
	stockRepo repository.StockRepository,
	settingsRepo repository.AlertSettingsRepository,
	notificationRepo repository.NotificationRepository,
	mailer AlertMailer,
) *AlertUseCase {
	return &AlertUseCase{
		stockRepo:        stockRepo,
		settingsRepo:     settingsRepo,
		notificationRepo: notificationRepo,
		mailer:           mailer,
	}
}

// GenerateAlerts recorre el inventario clasificado y emite una notificación
// por producto en rupture, critique, faible o surstock. Devuelve las alertas
// creadas. El envío de correo es best-effort: un fallo SMTP se registra pero
// no deshace las notificaciones ya persistidas.
func (uc *AlertUseCase) GenerateAlerts(ctx context.Context, pharmacyID string) ([]entity.Notification, error) {
	items, _, err := collect(ctx, uc.stockRepo, uc.settingsRepo, pharmacyID)
	if err != nil {
		return nil, fmt.Errorf("alertas: leer inventario: %w", err)
	}

	now := time.Now()
	var alerts []entity.Notification
	for _, it := range items {
		priority, ok := priorityFor(it.Status)
		if !ok {
			continue
		}
		n := entity.Notification{
			ID:         uuid.New().String(),
			PharmacyID: pharmacyID,
			ProductID:  it.ProductID,
			Priority:   priority,
			Message:    alertMessage(it),
			CreatedAt:  now,
		}
		if err := uc.notificationRepo.Create(&n); err != nil {
			return nil, fmt.Errorf("alertas: persistir notificación: %w", err)
		}
		alerts = append(alerts, n)
	}

	uc.deliverByEmail(ctx, pharmacyID, alerts)
	return alerts, nil
}

// priorityFor mapea estado → prioridad. El estado normal no genera alerta.
func priorityFor(s domstock.Status) (string, bool) {
	switch s {
	case domstock.StatusRupture, domstock.StatusCritique:
		return entity.PriorityCritical, true
	case domstock.StatusFaible:
		return entity.PriorityHigh, true
	case domstock.StatusSurstock:
		return entity.PriorityMedium, true
	default:
		return "", false
	}
}

// alertMessage arma el texto legible interpolando nombre, cantidad y umbral.
func alertMessage(it classified) string {
	switch it.Status {
	case domstock.StatusRupture:
		return fmt.Sprintf("%s: sin existencias", it.Name)
	case domstock.StatusCritique:
		return fmt.Sprintf("%s: stock crítico (%d unidades, umbral %d)", it.Name, it.Quantity, it.Thresholds.Critical)
	case domstock.StatusFaible:
		return fmt.Sprintf("%s: stock bajo (%d unidades, umbral %d)", it.Name, it.Quantity, it.Thresholds.Low)
	case domstock.StatusSurstock:
		return fmt.Sprintf("%s: sobrestock (%d unidades, máximo %d)", it.Name, it.Quantity, it.Thresholds.Maximum)
	default:
		return fmt.Sprintf("%s: %d unidades", it.Name, it.Quantity)
	}
}

// deliverByEmail envía el resumen de alertas si la farmacia lo habilitó.
func (uc *AlertUseCase) deliverByEmail(ctx context.Context, pharmacyID string, alerts []entity.Notification) {
	if uc.mailer == nil || len(alerts) == 0 {
		return
	}
	settings, err := uc.settingsRepo.Get(pharmacyID)
	if err != nil || settings == nil || !settings.EmailEnabled || settings.AlertEmail == "" {
		return
	}
	if err := uc.mailer.SendStockAlerts(ctx, settings.AlertEmail, alerts); err != nil {
		log.Error().Err(err).Str("pharmacy_id", pharmacyID).Int("alerts", len(alerts)).
			Msg("alertas: fallo enviando correo")
	}
}
