package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/farmacia-suite/internal/application/chat"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/domain"
)

// ChatHandler maneja canales y mensajes del chat interno (protegido, módulo chat).
type ChatHandler struct {
	uc *chat.UseCase
}

// NewChatHandler construye el handler.
func NewChatHandler(uc *chat.UseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// CreateChannel godoc
// @Summary      Crear canal de chat
// @Tags         chat
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChannelRequest  true  "Nombre del canal"
// @Success      201   {object}  dto.ChannelDTO
// @Router       /api/chat/channels [post]
func (h *ChatHandler) CreateChannel(c *fiber.Ctx) error {
	pharmacyID := GetPharmacyID(c)
	if pharmacyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "pharmacy_id requerido"})
	}
	var in dto.CreateChannelRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.CreateChannel(pharmacyID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListChannels godoc
// @Summary      Listar canales de la farmacia
// @Tags         chat
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ChannelDTO
// @Router       /api/chat/channels [get]
func (h *ChatHandler) ListChannels(c *fiber.Ctx) error {
	pharmacyID := GetPharmacyID(c)
	if pharmacyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "pharmacy_id requerido"})
	}
	out, err := h.uc.ListChannels(pharmacyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PostMessage godoc
// @Summary      Publicar mensaje en un canal
// @Tags         chat
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        channelId  path  string  true  "ID del canal"
// @Param        body       body  dto.PostMessageRequest  true  "Texto del mensaje"
// @Success      201  {object}  dto.MessageDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chat/channels/{channelId}/messages [post]
func (h *ChatHandler) PostMessage(c *fiber.Ctx) error {
	channelID := c.Params("channelId")
	if channelID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "channelId es requerido"})
	}
	var in dto.PostMessageRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.PostMessage(GetPharmacyID(c), channelID, GetUserID(c), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "canal no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de mensajes de un canal
// @Tags         chat
// @Security     Bearer
// @Produce      json
// @Param        channelId  path   string  true   "ID del canal"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.MessageDTO
// @Router       /api/chat/channels/{channelId}/messages [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	channelID := c.Params("channelId")
	if channelID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "channelId es requerido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.History(GetPharmacyID(c), channelID, limit, offset)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "canal no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
