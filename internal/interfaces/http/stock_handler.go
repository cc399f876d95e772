package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	appstock "github.com/tu-usuario/farmacia-suite/internal/application/stock"
	"github.com/tu-usuario/farmacia-suite/internal/application/usecase"
)

// StockHandler expone el panorama de inventario, sugerencias de pedido,
// configuración de alertas y notificaciones (protegido, módulo inventario).
type StockHandler struct {
	overviewUC     *appstock.OverviewUseCase
	suggestionUC   *appstock.SuggestionUseCase
	alertUC        *appstock.AlertUseCase
	settingsUC     *usecase.AlertSettingsUseCase
	notificationUC *usecase.NotificationUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(
	overviewUC *appstock.OverviewUseCase,
	suggestionUC *appstock.SuggestionUseCase,
	alertUC *appstock.AlertUseCase,
	settingsUC *usecase.AlertSettingsUseCase,
	notificationUC *usecase.NotificationUseCase,
) *StockHandler {
	return &StockHandler{
		overviewUC:     overviewUC,
		suggestionUC:   suggestionUC,
		alertUC:        alertUC,
		settingsUC:     settingsUC,
		notificationUC: notificationUC,
	}
}

// Overview godoc
// @Summary      Panorama de inventario: distribución por estado y listas top
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockOverviewDTO
// @Router       /api/stock/overview [get]
func (h *StockHandler) Overview(c *fiber.Ctx) error {
	pharmacyID := GetPharmacyID(c)
	if pharmacyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "pharmacy_id requerido"})
	}
	out, err := h.overviewUC.GetOverview(c.Context(), pharmacyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Suggestions godoc
// @Summary      Sugerencias de pedido para productos bajos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de sugerencias"  default(50)
// @Success      200  {array}  dto.ReorderSuggestionDTO
// @Router       /api/stock/suggestions [get]
func (h *StockHandler) Suggestions(c *fiber.Ctx) error {
	pharmacyID := GetPharmacyID(c)
	if pharmacyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "pharmacy_id requerido"})
	}
	limit := c.QueryInt("limit", 50)
	out, err := h.suggestionUC.GenerateSuggestions(c.Context(), pharmacyID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RunAlerts godoc
// @Summary      Evaluar el inventario y generar alertas
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NotificationDTO
// @Router       /api/stock/alerts/run [post]
func (h *StockHandler) RunAlerts(c *fiber.Ctx) error {
	pharmacyID := GetPharmacyID(c)
	if pharmacyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "pharmacy_id requerido"})
	}
	alerts, err := h.alertUC.GenerateAlerts(c.Context(), pharmacyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.NotificationDTO, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.NotificationDTO{
			ID:        a.ID,
			ProductID: a.ProductID,
			Priority:  a.Priority,
			Message:   a.Message,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(out)
}

// GetAlertSettings godoc
// @Summary      Configuración de alertas de la farmacia
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertSettingsResponse
// @Router       /api/stock/alert-settings [get]
func (h *StockHandler) GetAlertSettings(c *fiber.Ctx) error {
	pharmacyID := GetPharmacyID(c)
	if pharmacyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "pharmacy_id requerido"})
	}
	out, err := h.settingsUC.Get(pharmacyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateAlertSettings godoc
// @Summary      Actualizar umbrales y correo de alertas
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AlertSettingsRequest  true  "Umbrales opcionales y correo"
// @Success      200   {object}  dto.AlertSettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/alert-settings [put]
func (h *StockHandler) UpdateAlertSettings(c *fiber.Ctx) error {
	pharmacyID := GetPharmacyID(c)
	if pharmacyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "pharmacy_id requerido"})
	}
	var in dto.AlertSettingsRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.settingsUC.Upsert(pharmacyID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListNotifications godoc
// @Summary      Notificaciones de la farmacia
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        unread  query  bool  false  "Solo no leídas"
// @Param        limit   query  int   false  "Límite"  default(20)
// @Param        offset  query  int   false  "Offset"  default(0)
// @Success      200  {array}  dto.NotificationDTO
// @Router       /api/stock/notifications [get]
func (h *StockHandler) ListNotifications(c *fiber.Ctx) error {
	pharmacyID := GetPharmacyID(c)
	if pharmacyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "pharmacy_id requerido"})
	}
	limit, offset := pageParams(c)
	unreadOnly := c.QueryBool("unread", false)
	out, err := h.notificationUC.List(pharmacyID, unreadOnly, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MarkNotificationRead godoc
// @Summary      Marcar notificación como leída
// @Tags         stock
// @Security     Bearer
// @Param        id  path  string  true  "ID de la notificación"
// @Success      204
// @Router       /api/stock/notifications/{id}/read [post]
func (h *StockHandler) MarkNotificationRead(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.notificationUC.MarkRead(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
