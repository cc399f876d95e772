// Package payroll (aplicación) orquesta la nómina: empleados y liquidaciones.
// La aritmética vive en internal/domain/payroll.
package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/domain"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	dompayroll "github.com/tu-usuario/farmacia-suite/internal/domain/payroll"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

// PayslipRenderer genera el desprendible de pago en PDF.
type PayslipRenderer interface {
	Render(pharmacy *entity.Pharmacy, employee *entity.Employee, payslip *entity.Payslip) ([]byte, error)
}

// UseCase casos de uso del módulo de nómina.
type UseCase struct {
	employeeRepo repository.EmployeeRepository
	payslipRepo  repository.PayslipRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(employeeRepo repository.EmployeeRepository, payslipRepo repository.PayslipRepository) *UseCase {
	return &UseCase{employeeRepo: employeeRepo, payslipRepo: payslipRepo}
}

// CreateEmployee alta de empleado.
func (uc *UseCase) CreateEmployee(pharmacyID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	now := time.Now()
	employee := &entity.Employee{
		ID:         uuid.New().String(),
		PharmacyID: pharmacyID,
		Document:   in.Document,
		Name:       in.Name,
		Position:   in.Position,
		BaseSalary: in.BaseSalary,
		HiredAt:    in.HiredAt,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.employeeRepo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// ListEmployees lista empleados de la farmacia.
func (uc *UseCase) ListEmployees(pharmacyID string, onlyActive bool, limit, offset int) ([]dto.EmployeeResponse, error) {
	list, err := uc.employeeRepo.ListByPharmacy(pharmacyID, onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return items, nil
}

// GeneratePayslip liquida el período de un empleado. Devuelve ErrConflict si
// el período ya está liquidado: una liquidación es inmutable una vez creada.
func (uc *UseCase) GeneratePayslip(pharmacyID string, in dto.GeneratePayslipRequest) (*dto.PayslipResponse, error) {
	employee, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil || employee.PharmacyID != pharmacyID {
		return nil, domain.ErrNotFound
	}
	if !employee.Active {
		return nil, domain.ErrConflict
	}
	existing, err := uc.payslipRepo.GetByEmployeeAndPeriod(in.EmployeeID, in.Period)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	result := dompayroll.Calculate(dompayroll.Input{
		BaseSalary:  employee.BaseSalary,
		Bonuses:     in.Bonuses,
		OtherDeduct: in.OtherDeduct,
	})
	payslip := &entity.Payslip{
		ID:             uuid.New().String(),
		PharmacyID:     pharmacyID,
		EmployeeID:     employee.ID,
		Period:         in.Period,
		GrossSalary:    result.Gross,
		Bonuses:        in.Bonuses,
		TransportAllow: result.TransportAllow,
		HealthDeduct:   result.HealthDeduct,
		PensionDeduct:  result.PensionDeduct,
		OtherDeduct:    result.OtherDeduct,
		NetPay:         result.Net,
		CreatedAt:      time.Now(),
	}
	if err := uc.payslipRepo.Create(payslip); err != nil {
		return nil, err
	}
	log.Info().
		Str("pharmacy_id", pharmacyID).
		Str("employee_id", employee.ID).
		Str("period", in.Period).
		Str("net", result.Net.String()).
		Msg("Período liquidado")
	return toPayslipResponse(payslip), nil
}

// ListPayslips lista las liquidaciones de un período.
func (uc *UseCase) ListPayslips(pharmacyID, period string) ([]dto.PayslipResponse, error) {
	list, err := uc.payslipRepo.ListByPeriod(pharmacyID, period)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PayslipResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPayslipResponse(p))
	}
	return items, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:         e.ID,
		Document:   e.Document,
		Name:       e.Name,
		Position:   e.Position,
		BaseSalary: e.BaseSalary,
		HiredAt:    e.HiredAt,
		Active:     e.Active,
	}
}

func toPayslipResponse(p *entity.Payslip) *dto.PayslipResponse {
	return &dto.PayslipResponse{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		Period:         p.Period,
		GrossSalary:    p.GrossSalary,
		Bonuses:        p.Bonuses,
		TransportAllow: p.TransportAllow,
		HealthDeduct:   p.HealthDeduct,
		PensionDeduct:  p.PensionDeduct,
		OtherDeduct:    p.OtherDeduct,
		NetPay:         p.NetPay,
		CreatedAt:      p.CreatedAt,
	}
}
