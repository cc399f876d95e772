package repository

import "github.com/tu-usuario/farmacia-suite/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para empleados (DIP).
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	ListByPharmacy(pharmacyID string, onlyActive bool, limit, offset int) ([]*entity.Employee, error)
}

// PayslipRepository define el puerto de persistencia para liquidaciones.
type PayslipRepository interface {
	Create(payslip *entity.Payslip) error
	GetByID(id string) (*entity.Payslip, error)
	// GetByEmployeeAndPeriod devuelve (nil, nil) si el período no está liquidado.
	GetByEmployeeAndPeriod(employeeID, period string) (*entity.Payslip, error)
	ListByPeriod(pharmacyID, period string) ([]*entity.Payslip, error)
}
