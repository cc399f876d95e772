package entity

import "time"

// Channel canal de chat interno de una farmacia (o de la red).
type Channel struct {
	ID         string
	PharmacyID string
	Name       string
	CreatedAt  time.Time
}

// Message mensaje de chat. El historial vive en Postgres; la difusión en vivo
// la hace el hub de websockets sin garantía de entrega a clientes desconectados.
type Message struct {
	ID         string
	PharmacyID string
	ChannelID  string
	UserID     string
	UserName   string
	Body       string
	CreatedAt  time.Time
}
