package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/farmacia-suite/internal/domain"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

var _ repository.PayslipRepository = (*PayslipRepo)(nil)

const payslipColumns = `id, pharmacy_id, employee_id, period, gross_salary, bonuses,
	transport_allow, health_deduct, pension_deduct, other_deduct, net_pay, created_at`

// PayslipRepo implementación del puerto PayslipRepository sobre PostgreSQL.
type PayslipRepo struct {
	q Querier
}

// NewPayslipRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPayslipRepository(q Querier) *PayslipRepo {
	return &PayslipRepo{q: q}
}

// Create persiste una liquidación. El unique (employee_id, period) impide
// liquidar dos veces el mismo período.
func (r *PayslipRepo) Create(payslip *entity.Payslip) error {
	query := `
		INSERT INTO payslips (` + payslipColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		payslip.ID, payslip.PharmacyID, payslip.EmployeeID, payslip.Period,
		payslip.GrossSalary, payslip.Bonuses, payslip.TransportAllow,
		payslip.HealthDeduct, payslip.PensionDeduct, payslip.OtherDeduct,
		payslip.NetPay, payslip.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert payslip: %w", err)
	}
	return nil
}

// GetByID obtiene una liquidación por ID.
func (r *PayslipRepo) GetByID(id string) (*entity.Payslip, error) {
	return r.scanOne(`SELECT `+payslipColumns+` FROM payslips WHERE id = $1`, id)
}

// GetByEmployeeAndPeriod devuelve (nil, nil) si el período no está liquidado.
func (r *PayslipRepo) GetByEmployeeAndPeriod(employeeID, period string) (*entity.Payslip, error) {
	return r.scanOne(`
		SELECT `+payslipColumns+` FROM payslips
		WHERE employee_id = $1 AND period = $2`, employeeID, period)
}

func (r *PayslipRepo) scanOne(query string, args ...any) (*entity.Payslip, error) {
	var p entity.Payslip
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.PharmacyID, &p.EmployeeID, &p.Period, &p.GrossSalary, &p.Bonuses,
		&p.TransportAllow, &p.HealthDeduct, &p.PensionDeduct, &p.OtherDeduct,
		&p.NetPay, &p.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payslip: %w", err)
	}
	return &p, nil
}

// ListByPeriod devuelve las liquidaciones del período de una farmacia.
func (r *PayslipRepo) ListByPeriod(pharmacyID, period string) ([]*entity.Payslip, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT `+payslipColumns+` FROM payslips
		WHERE pharmacy_id = $1 AND period = $2
		ORDER BY created_at`, pharmacyID, period)
	if err != nil {
		return nil, fmt.Errorf("list payslips: %w", err)
	}
	defer rows.Close()

	var list []*entity.Payslip
	for rows.Next() {
		var p entity.Payslip
		if err := rows.Scan(&p.ID, &p.PharmacyID, &p.EmployeeID, &p.Period, &p.GrossSalary,
			&p.Bonuses, &p.TransportAllow, &p.HealthDeduct, &p.PensionDeduct,
			&p.OtherDeduct, &p.NetPay, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payslip: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
