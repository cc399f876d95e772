package usecase

import (
	"time"

	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

// NotificationUseCase listado y lectura de alertas persistidas.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// List devuelve las notificaciones de la farmacia, más recientes primero.
func (uc *NotificationUseCase) List(pharmacyID string, unreadOnly bool, limit, offset int) ([]dto.NotificationDTO, error) {
	rows, err := uc.repo.ListByPharmacy(pharmacyID, unreadOnly, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationDTO, 0, len(rows))
	for _, n := range rows {
		out = append(out, dto.NotificationDTO{
			ID:        n.ID,
			ProductID: n.ProductID,
			Priority:  n.Priority,
			Message:   n.Message,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
			Read:      n.ReadAt != nil,
		})
	}
	return out, nil
}

// MarkRead marca una notificación como leída. Idempotente.
func (uc *NotificationUseCase) MarkRead(id string) error {
	return uc.repo.MarkRead(id)
}
