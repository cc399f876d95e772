package repository

import "github.com/tu-usuario/farmacia-suite/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para notificaciones.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListByPharmacy(pharmacyID string, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)
	MarkRead(id string) error
}
