// Package compliance genera el registro mensual de ventas e inventario que
// la farmacia reporta al ente de control, en XML.
package compliance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/farmacia-suite/internal/domain"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
	"github.com/tu-usuario/farmacia-suite/internal/domain/stock"
)

// ReportInput todo lo que el builder XML necesita para armar el registro.
type ReportInput struct {
	Pharmacy    *entity.Pharmacy
	Period      string // "2026-08"
	PeriodStart time.Time
	PeriodEnd   time.Time

	// Totales de ventas del período
	Revenue decimal.Decimal
	Cost    decimal.Decimal

	// Recaudo por medio de pago
	Payments []repository.PaymentBreakdownRow

	// Corte de inventario al momento de generar el reporte
	Distribution map[stock.Status]int
}

// ReportBuilder serializa el registro mensual a XML.
type ReportBuilder interface {
	Build(in ReportInput) ([]byte, error)
}

// StockOverviewProvider entrega la distribución de stock para el corte.
type StockOverviewProvider interface {
	Distribution(ctx context.Context, pharmacyID string) (map[stock.Status]int, error)
}

// ReportUseCase arma el registro mensual: ventas del período más corte de
// inventario, serializado por el builder.
type ReportUseCase struct {
	pharmacyRepo  repository.PharmacyRepository
	analyticsRepo repository.AnalyticsRepository
	overview      StockOverviewProvider
	builder       ReportBuilder
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	pharmacyRepo repository.PharmacyRepository,
	analyticsRepo repository.AnalyticsRepository,
	overview StockOverviewProvider,
	builder ReportBuilder,
) *ReportUseCase {
	return &ReportUseCase{
		pharmacyRepo:  pharmacyRepo,
		analyticsRepo: analyticsRepo,
		overview:      overview,
		builder:       builder,
	}
}

// GenerateMonthly genera el XML del período "YYYY-MM".
func (uc *ReportUseCase) GenerateMonthly(ctx context.Context, pharmacyID, period string) ([]byte, error) {
	start, err := time.ParseInLocation("2006-01", period, time.Local)
	if err != nil {
		return nil, fmt.Errorf("período inválido %q: %w", period, domain.ErrInvalidInput)
	}
	end := start.AddDate(0, 1, 0)

	pharmacy, err := uc.pharmacyRepo.GetByID(pharmacyID)
	if err != nil {
		return nil, err
	}
	if pharmacy == nil {
		return nil, domain.ErrNotFound
	}

	revenue, cost, err := uc.analyticsRepo.GetSalesMetrics(ctx, pharmacyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("reporte %s: métricas: %w", period, err)
	}
	payments, err := uc.analyticsRepo.GetPaymentBreakdown(ctx, pharmacyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("reporte %s: medios de pago: %w", period, err)
	}
	distribution, err := uc.overview.Distribution(ctx, pharmacyID)
	if err != nil {
		return nil, fmt.Errorf("reporte %s: corte de inventario: %w", period, err)
	}

	return uc.builder.Build(ReportInput{
		Pharmacy:     pharmacy,
		Period:       period,
		PeriodStart:  start,
		PeriodEnd:    end,
		Revenue:      revenue,
		Cost:         cost,
		Payments:     payments,
		Distribution: distribution,
	})
}
