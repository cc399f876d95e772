// Package ws mantiene las conexiones websocket del chat interno y difunde
// los mensajes persistidos a los clientes suscritos a cada canal.
package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/farmacia-suite/internal/application/chat"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/pkg/jwt"
)

const sendBuffer = 32

var _ chat.Broadcaster = (*Hub)(nil)

type client struct {
	send chan []byte
}

// Hub registra las conexiones por canal. Broadcast es no bloqueante: un
// cliente con el buffer lleno pierde el mensaje (lo recupera por historial).
type Hub struct {
	mu       sync.RWMutex
	channels map[string]map[*client]struct{}
}

// NewHub construye el hub.
func NewHub() *Hub {
	return &Hub{channels: make(map[string]map[*client]struct{})}
}

// Broadcast difunde el mensaje a todos los suscriptores del canal.
func (h *Hub) Broadcast(channelID string, message dto.MessageDTO) {
	raw, err := json.Marshal(message)
	if err != nil {
		log.Error().Err(err).Msg("chat: serializar mensaje websocket")
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for cl := range h.channels[channelID] {
		select {
		case cl.send <- raw:
		default:
		}
	}
}

func (h *Hub) register(channelID string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.channels[channelID] == nil {
		h.channels[channelID] = make(map[*client]struct{})
	}
	h.channels[channelID][cl] = struct{}{}
}

func (h *Hub) unregister(channelID string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs, ok := h.channels[channelID]; ok {
		if _, ok := subs[cl]; ok {
			delete(subs, cl)
			close(cl.send)
		}
		if len(subs) == 0 {
			delete(h.channels, channelID)
		}
	}
}

// Upgrade valida el token (query param, los navegadores no pueden enviar
// headers en el handshake) y verifica que la petición sea un upgrade websocket.
func Upgrade(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		token := c.Query("token")
		if token == "" {
			return fiber.ErrUnauthorized
		}
		userID, pharmacyID, _, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		c.Locals("user_id", userID)
		c.Locals("pharmacy_id", pharmacyID)
		return c.Next()
	}
}

// Handler atiende la conexión de un cliente suscrito a /ws/chat/:channelId.
// El envío de mensajes se hace por el endpoint REST; el socket es solo de bajada.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		channelID := conn.Params("channelId")
		if channelID == "" {
			_ = conn.Close()
			return
		}

		cl := &client{send: make(chan []byte, sendBuffer)}
		h.register(channelID, cl)
		defer h.unregister(channelID, cl)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				// Descartar lo que llegue; un error de lectura señala desconexión.
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case raw, ok := <-cl.send:
				if !ok {
					return
				}
				if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	})
}
