package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

var _ repository.MessageRepository = (*MessageRepo)(nil)

// MessageRepo implementación del puerto MessageRepository sobre PostgreSQL.
type MessageRepo struct {
	q Querier
}

// NewMessageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMessageRepository(q Querier) *MessageRepo {
	return &MessageRepo{q: q}
}

// CreateChannel persiste un canal nuevo.
func (r *MessageRepo) CreateChannel(channel *entity.Channel) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO chat_channels (id, pharmacy_id, name, created_at)
		VALUES ($1, $2, $3, $4)`,
		channel.ID, channel.PharmacyID, channel.Name, channel.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert channel: %w", err)
	}
	return nil
}

// GetChannel obtiene un canal por ID.
func (r *MessageRepo) GetChannel(id string) (*entity.Channel, error) {
	var c entity.Channel
	err := r.q.QueryRow(context.Background(), `
		SELECT id, pharmacy_id, name, created_at
		FROM chat_channels WHERE id = $1`, id).Scan(
		&c.ID, &c.PharmacyID, &c.Name, &c.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get channel: %w", err)
	}
	return &c, nil
}

// ListChannels devuelve los canales de la farmacia.
func (r *MessageRepo) ListChannels(pharmacyID string) ([]*entity.Channel, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, pharmacy_id, name, created_at
		FROM chat_channels WHERE pharmacy_id = $1
		ORDER BY name`, pharmacyID)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	defer rows.Close()

	var list []*entity.Channel
	for rows.Next() {
		var c entity.Channel
		if err := rows.Scan(&c.ID, &c.PharmacyID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan channel: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// CreateMessage persiste un mensaje.
func (r *MessageRepo) CreateMessage(message *entity.Message) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO chat_messages (id, pharmacy_id, channel_id, user_id, user_name, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		message.ID, message.PharmacyID, message.ChannelID, message.UserID,
		message.UserName, message.Body, message.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// ListMessages pagina el historial del canal, más recientes primero.
func (r *MessageRepo) ListMessages(channelID string, limit, offset int) ([]*entity.Message, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, pharmacy_id, channel_id, user_id, user_name, body, created_at
		FROM chat_messages WHERE channel_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, channelID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var list []*entity.Message
	for rows.Next() {
		var m entity.Message
		if err := rows.Scan(&m.ID, &m.PharmacyID, &m.ChannelID, &m.UserID,
			&m.UserName, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
