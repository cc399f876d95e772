package dto

import "time"

// CreateChannelRequest alta de canal de chat.
type CreateChannelRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

// PostMessageRequest publicación de un mensaje en un canal.
type PostMessageRequest struct {
	Body string `json:"body" validate:"required,max=2000"`
}

// MessageDTO mensaje de chat para historial y difusión websocket.
type MessageDTO struct {
	ID        string    `json:"id"`
	ChannelID string    `json:"channel_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// ChannelDTO canal de chat.
type ChannelDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
