package repository

import "github.com/tu-usuario/farmacia-suite/internal/domain/entity"

// MessageRepository define el puerto de persistencia para el chat interno.
type MessageRepository interface {
	CreateChannel(channel *entity.Channel) error
	GetChannel(id string) (*entity.Channel, error)
	ListChannels(pharmacyID string) ([]*entity.Channel, error)
	CreateMessage(message *entity.Message) error
	// ListMessages pagina el historial del canal, más recientes primero.
	ListMessages(channelID string, limit, offset int) ([]*entity.Message, error)
}
