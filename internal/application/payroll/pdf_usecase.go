package payroll

import (
	"github.com/tu-usuario/farmacia-suite/internal/domain"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

// PDFUseCase genera el desprendible de pago en PDF.
type PDFUseCase struct {
	payslipRepo  repository.PayslipRepository
	employeeRepo repository.EmployeeRepository
	pharmacyRepo repository.PharmacyRepository
	renderer     PayslipRenderer
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	payslipRepo repository.PayslipRepository,
	employeeRepo repository.EmployeeRepository,
	pharmacyRepo repository.PharmacyRepository,
	renderer PayslipRenderer,
) *PDFUseCase {
	return &PDFUseCase{
		payslipRepo:  payslipRepo,
		employeeRepo: employeeRepo,
		pharmacyRepo: pharmacyRepo,
		renderer:     renderer,
	}
}

// Render carga liquidación, empleado y farmacia y genera los bytes del PDF.
func (uc *PDFUseCase) Render(pharmacyID, payslipID string) ([]byte, error) {
	payslip, err := uc.payslipRepo.GetByID(payslipID)
	if err != nil {
		return nil, err
	}
	if payslip == nil || payslip.PharmacyID != pharmacyID {
		return nil, domain.ErrNotFound
	}
	employee, err := uc.employeeRepo.GetByID(payslip.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	pharmacy, err := uc.pharmacyRepo.GetByID(pharmacyID)
	if err != nil {
		return nil, err
	}
	if pharmacy == nil {
		return nil, domain.ErrNotFound
	}
	return uc.renderer.Render(pharmacy, employee, payslip)
}
