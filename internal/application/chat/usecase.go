// Package chat maneja el chat interno: canales, historial en Postgres y
// difusión en vivo vía el hub de websockets.
package chat

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/domain"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

// Broadcaster difunde un mensaje a los clientes conectados del canal.
// La entrega es best-effort: clientes desconectados lo leerán del historial.
type Broadcaster interface {
	Broadcast(channelID string, message dto.MessageDTO)
}

// UseCase casos de uso del chat interno.
type UseCase struct {
	repo        repository.MessageRepository
	userRepo    repository.UserRepository
	broadcaster Broadcaster
}

// NewUseCase construye el caso de uso. broadcaster puede ser nil (sin difusión).
func NewUseCase(repo repository.MessageRepository, userRepo repository.UserRepository, broadcaster Broadcaster) *UseCase {
	return &UseCase{repo: repo, userRepo: userRepo, broadcaster: broadcaster}
}

// CreateChannel alta de canal.
func (uc *UseCase) CreateChannel(pharmacyID string, in dto.CreateChannelRequest) (*dto.ChannelDTO, error) {
	channel := &entity.Channel{
		ID:         uuid.New().String(),
		PharmacyID: pharmacyID,
		Name:       in.Name,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.CreateChannel(channel); err != nil {
		return nil, err
	}
	return &dto.ChannelDTO{ID: channel.ID, Name: channel.Name}, nil
}

// ListChannels lista los canales de la farmacia.
func (uc *UseCase) ListChannels(pharmacyID string) ([]dto.ChannelDTO, error) {
	list, err := uc.repo.ListChannels(pharmacyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ChannelDTO, 0, len(list))
	for _, c := range list {
		items = append(items, dto.ChannelDTO{ID: c.ID, Name: c.Name})
	}
	return items, nil
}

// PostMessage persiste el mensaje y lo difunde a los clientes conectados.
func (uc *UseCase) PostMessage(pharmacyID, channelID, userID string, in dto.PostMessageRequest) (*dto.MessageDTO, error) {
	channel, err := uc.repo.GetChannel(channelID)
	if err != nil {
		return nil, err
	}
	if channel == nil || channel.PharmacyID != pharmacyID {
		return nil, domain.ErrNotFound
	}
	userName := ""
	if user, err := uc.userRepo.GetByID(userID); err == nil && user != nil {
		userName = user.Name
	}
	message := &entity.Message{
		ID:         uuid.New().String(),
		PharmacyID: pharmacyID,
		ChannelID:  channelID,
		UserID:     userID,
		UserName:   userName,
		Body:       in.Body,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.CreateMessage(message); err != nil {
		return nil, err
	}
	out := toMessageDTO(message)
	if uc.broadcaster != nil {
		uc.broadcaster.Broadcast(channelID, *out)
	}
	return out, nil
}

// History pagina el historial del canal, más recientes primero.
func (uc *UseCase) History(pharmacyID, channelID string, limit, offset int) ([]dto.MessageDTO, error) {
	channel, err := uc.repo.GetChannel(channelID)
	if err != nil {
		return nil, err
	}
	if channel == nil || channel.PharmacyID != pharmacyID {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListMessages(channelID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MessageDTO, 0, len(list))
	for _, m := range list {
		items = append(items, *toMessageDTO(m))
	}
	return items, nil
}

func toMessageDTO(m *entity.Message) *dto.MessageDTO {
	return &dto.MessageDTO{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		UserID:    m.UserID,
		UserName:  m.UserName,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}
