package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/application/usecase"
	"github.com/tu-usuario/farmacia-suite/internal/domain"
)

// PharmacyHandler maneja las peticiones HTTP para Pharmacy.
type PharmacyHandler struct {
	uc *usecase.PharmacyUseCase
}

// NewPharmacyHandler construye el handler.
func NewPharmacyHandler(uc *usecase.PharmacyUseCase) *PharmacyHandler {
	return &PharmacyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear farmacia
// @Tags         pharmacies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePharmacyRequest  true  "Datos de la farmacia"
// @Success      201   {object}  dto.PharmacyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pharmacies [post]
func (h *PharmacyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePharmacyRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el NIT ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener farmacia por ID
// @Tags         pharmacies
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la farmacia"
// @Success      200  {object}  dto.PharmacyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pharmacies/{id} [get]
func (h *PharmacyHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "farmacia no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar farmacias
// @Tags         pharmacies
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.PharmacyListResponse
// @Router       /api/pharmacies [get]
func (h *PharmacyHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// EnableModule godoc
// @Summary      Activar módulo SaaS para la farmacia del token
// @Tags         pharmacies
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.EnableModuleRequest  true  "módulo y vencimiento opcional"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pharmacies/modules [post]
func (h *PharmacyHandler) EnableModule(c *fiber.Ctx) error {
	pharmacyID := GetPharmacyID(c)
	if pharmacyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "pharmacy_id requerido"})
	}
	var in dto.EnableModuleRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.EnableModule(c.Context(), pharmacyID, in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pageParams lee limit/offset de la query con los topes estándar.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
