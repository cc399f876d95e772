package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/application/payroll"
	"github.com/tu-usuario/farmacia-suite/internal/domain"
)

// PayrollHandler maneja empleados y liquidaciones (protegido, módulo nomina).
type PayrollHandler struct {
	uc    *payroll.UseCase
	pdfUC *payroll.PDFUseCase
}

// NewPayrollHandler construye el handler.
func NewPayrollHandler(uc *payroll.UseCase, pdfUC *payroll.PDFUseCase) *PayrollHandler {
	return &PayrollHandler{uc: uc, pdfUC: pdfUC}
}

// CreateEmployee godoc
// @Summary      Registrar empleado
// @Tags         payroll
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/payroll/employees [post]
func (h *PayrollHandler) CreateEmployee(c *fiber.Ctx) error {
	pharmacyID := GetPharmacyID(c)
	if pharmacyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "pharmacy_id requerido"})
	}
	var in dto.CreateEmployeeRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.CreateEmployee(pharmacyID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de empleado inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListEmployees godoc
// @Summary      Listar empleados
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "Solo activos"
// @Param        limit   query  int   false  "Límite"  default(20)
// @Param        offset  query  int   false  "Offset"  default(0)
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/payroll/employees [get]
func (h *PayrollHandler) ListEmployees(c *fiber.Ctx) error {
	pharmacyID := GetPharmacyID(c)
	if pharmacyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "pharmacy_id requerido"})
	}
	limit, offset := pageParams(c)
	onlyActive := c.QueryBool("active", false)
	out, err := h.uc.ListEmployees(pharmacyID, onlyActive, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GeneratePayslip godoc
// @Summary      Liquidar un período para un empleado
// @Tags         payroll
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GeneratePayslipRequest  true  "Empleado, período, novedades"
// @Success      201   {object}  dto.PayslipResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/payroll/payslips [post]
func (h *PayrollHandler) GeneratePayslip(c *fiber.Ctx) error {
	pharmacyID := GetPharmacyID(c)
	if pharmacyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "pharmacy_id requerido"})
	}
	var in dto.GeneratePayslipRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.GeneratePayslip(pharmacyID, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el período ya fue liquidado o el empleado está inactivo"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "liquidación inválida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPayslips godoc
// @Summary      Liquidaciones de un período
// @Tags         payroll
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  true  "Período YYYY-MM"
// @Success      200  {array}  dto.PayslipResponse
// @Router       /api/payroll/payslips [get]
func (h *PayrollHandler) ListPayslips(c *fiber.Ctx) error {
	pharmacyID := GetPharmacyID(c)
	if pharmacyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "pharmacy_id requerido"})
	}
	period := c.Query("period")
	if period == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "period es requerido (YYYY-MM)"})
	}
	out, err := h.uc.ListPayslips(pharmacyID, period)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PayslipPDF godoc
// @Summary      Desprendible de pago en PDF
// @Tags         payroll
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la liquidación"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payroll/payslips/{id}/pdf [get]
func (h *PayrollHandler) PayslipPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdfBytes, err := h.pdfUC.Render(GetPharmacyID(c), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "liquidación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="desprendible-%s.pdf"`, id))
	return c.Send(pdfBytes)
}
