// Package analytics arma el resumen del dashboard: KPIs de ventas del día y
// del mes, top de productos, recaudo por medio de pago y el widget de stock.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
	"github.com/tu-usuario/farmacia-suite/internal/domain/stock"
)

const topProductsN = 5

var hundred = decimal.NewFromInt(100)

// Cache puerto de caché para el resumen (Redis en producción). Get devuelve
// false si la clave no existe o el backend no responde.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// StockOverviewProvider entrega la distribución de stock para el widget.
type StockOverviewProvider interface {
	GetOverview(ctx context.Context, pharmacyID string) (*dto.StockOverviewDTO, error)
}

// DashboardUseCase orquesta las consultas del dashboard. Las consultas SQL
// independientes corren en paralelo y el resultado se cachea con TTL corto.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	stockOverview StockOverviewProvider
	cache         Cache
	cacheTTL      time.Duration
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil (sin caché).
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	stockOverview StockOverviewProvider,
	cache Cache,
	cacheTTL time.Duration,
) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		stockOverview: stockOverview,
		cache:         cache,
		cacheTTL:      cacheTTL,
	}
}

// GetSummary devuelve el resumen del dashboard, sirviendo del caché si hay
// una copia fresca.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, pharmacyID string) (*dto.DashboardSummaryDTO, error) {
	cacheKey := "dashboard:summary:" + pharmacyID
	if uc.cache != nil {
		if raw, ok := uc.cache.Get(ctx, cacheKey); ok {
			var cached dto.DashboardSummaryDTO
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// Consultas independientes en paralelo
	type metricsResult struct {
		revenue, cost decimal.Decimal
		err           error
	}
	type topResult struct {
		rows []repository.TopProductRow
		err  error
	}
	type paymentsResult struct {
		rows []repository.PaymentBreakdownRow
		err  error
	}

	todayChan := make(chan metricsResult, 1)
	monthChan := make(chan metricsResult, 1)
	topChan := make(chan topResult, 1)
	payChan := make(chan paymentsResult, 1)

	go func() {
		revenue, cost, err := uc.analyticsRepo.GetSalesMetrics(ctx, pharmacyID, dayStart, now)
		todayChan <- metricsResult{revenue, cost, err}
	}()
	go func() {
		revenue, cost, err := uc.analyticsRepo.GetSalesMetrics(ctx, pharmacyID, monthStart, now)
		monthChan <- metricsResult{revenue, cost, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetTopProducts(ctx, pharmacyID, monthStart, now, topProductsN)
		topChan <- topResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetPaymentBreakdown(ctx, pharmacyID, monthStart, now)
		payChan <- paymentsResult{rows, err}
	}()

	today := <-todayChan
	month := <-monthChan
	top := <-topChan
	payments := <-payChan

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: métricas del día: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: métricas del mes: %w", month.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", top.err)
	}
	if payments.err != nil {
		return nil, fmt.Errorf("dashboard: medios de pago: %w", payments.err)
	}

	summary := &dto.DashboardSummaryDTO{
		TodaySales:        today.revenue.Round(2),
		TodayMargin:       today.revenue.Sub(today.cost).Round(2),
		MonthlySales:      month.revenue.Round(2),
		MonthlyMargin:     month.revenue.Sub(month.cost).Round(2),
		TopProducts:       buildTopProducts(top.rows),
		PaymentBreakdown:  buildPaymentBreakdown(payments.rows),
		StockDistribution: uc.stockDistribution(ctx, pharmacyID),
		DateLabel:         monthLabel(now),
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(summary); err == nil {
			uc.cache.Set(ctx, cacheKey, raw, uc.cacheTTL)
		}
	}
	return summary, nil
}

// stockDistribution es best-effort: si el inventario no responde, el widget
// sale vacío pero el dashboard carga.
func (uc *DashboardUseCase) stockDistribution(ctx context.Context, pharmacyID string) map[stock.Status]int {
	if uc.stockOverview == nil {
		return nil
	}
	overview, err := uc.stockOverview.GetOverview(ctx, pharmacyID)
	if err != nil || overview == nil {
		log.Warn().Err(err).Str("pharmacy_id", pharmacyID).Msg("Dashboard sin widget de stock")
		return nil
	}
	return overview.Distribution
}

func buildTopProducts(rows []repository.TopProductRow) []dto.TopProductDTO {
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		marginPct := decimal.Zero
		if r.GrossRevenue.IsPositive() {
			marginPct = r.GrossRevenue.Sub(r.TotalCost).Div(r.GrossRevenue).Mul(hundred).Round(2)
		}
		out = append(out, dto.TopProductDTO{
			ProductID:        r.ProductID,
			Code:             r.Code,
			ProductName:      r.ProductName,
			QuantitySold:     r.UnitsSold,
			TotalRevenue:     r.GrossRevenue.Round(2),
			MarginPercentage: marginPct,
		})
	}
	return out
}

func buildPaymentBreakdown(rows []repository.PaymentBreakdownRow) []dto.PaymentBreakdownDTO {
	out := make([]dto.PaymentBreakdownDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PaymentBreakdownDTO{
			Method: r.Method,
			Amount: r.Amount.Round(2),
			Count:  r.Count,
		})
	}
	return out
}

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", monthNames[t.Month()-1], t.Year())
}
