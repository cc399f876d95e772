package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/farmacia-suite/internal/application/compliance"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/domain"
)

// ComplianceHandler genera el registro mensual en XML (protegido, módulo reportes).
type ComplianceHandler struct {
	uc *compliance.ReportUseCase
}

// NewComplianceHandler construye el handler.
func NewComplianceHandler(uc *compliance.ReportUseCase) *ComplianceHandler {
	return &ComplianceHandler{uc: uc}
}

// MonthlyReport godoc
// @Summary      Registro mensual de ventas e inventario en XML
// @Tags         compliance
// @Security     Bearer
// @Produce      application/xml
// @Param        period  query  string  true  "Período YYYY-MM"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ComplianceHandler) MonthlyReport(c *fiber.Ctx) error {
	pharmacyID := GetPharmacyID(c)
	if pharmacyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "pharmacy_id requerido"})
	}
	period := c.Query("period")
	if period == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "period es requerido (YYYY-MM)"})
	}
	xmlBytes, err := h.uc.GenerateMonthly(c.Context(), pharmacyID, period)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "período inválido, use YYYY-MM"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "farmacia no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXML)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="registro-%s.xml"`, period))
	return c.Send(xmlBytes)
}
