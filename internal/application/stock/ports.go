package stock

import (
	"context"

	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
)

// AlertMailer puerto de salida hacia el colaborador SMTP. La entrega efectiva
// (reintentos, confirmación) es responsabilidad del colaborador, no de este
// caso de uso.
type AlertMailer interface {
	SendStockAlerts(ctx context.Context, to string, alerts []entity.Notification) error
}
