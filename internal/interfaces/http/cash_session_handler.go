package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/application/pos"
	"github.com/tu-usuario/farmacia-suite/internal/domain"
)

// CashSessionHandler maneja apertura, cierre y consulta de caja (protegido, módulo pos).
type CashSessionHandler struct {
	uc *pos.CashSessionUseCase
}

// NewCashSessionHandler construye el handler.
func NewCashSessionHandler(uc *pos.CashSessionUseCase) *CashSessionHandler {
	return &CashSessionHandler{uc: uc}
}

// Open godoc
// @Summary      Abrir sesión de caja
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenCashSessionRequest  true  "Base inicial"
// @Success      201   {object}  dto.CashSessionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/sessions [post]
func (h *CashSessionHandler) Open(c *fiber.Ctx) error {
	pharmacyID := GetPharmacyID(c)
	userID := GetUserID(c)
	if pharmacyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token incompleto"})
	}
	var in dto.OpenCashSessionRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Open(pharmacyID, userID, in)
	if err != nil {
		if err == domain.ErrSessionOpen {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SESSION_OPEN", Message: "ya existe una sesión abierta para este usuario"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "base inicial inválida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Close godoc
// @Summary      Cerrar sesión de caja con arqueo
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sesión"
// @Param        body  body  dto.CloseCashSessionRequest  true  "Conteo del cajero"
// @Success      200   {object}  dto.CashSessionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/sessions/{id}/close [post]
func (h *CashSessionHandler) Close(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CloseCashSessionRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Close(GetPharmacyID(c), GetUserID(c), id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sesión no encontrada"})
		}
		if err == domain.ErrSessionClosed {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SESSION_CLOSED", Message: "la sesión ya está cerrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Current godoc
// @Summary      Sesión de caja abierta del usuario
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CashSessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pos/sessions/current [get]
func (h *CashSessionHandler) Current(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token incompleto"})
	}
	out, err := h.uc.Current(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay sesión abierta"})
	}
	return c.JSON(out)
}
