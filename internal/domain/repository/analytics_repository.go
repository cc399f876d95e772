package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductRow resultado crudo de la consulta de productos más vendidos.
type TopProductRow struct {
	ProductID    string
	Code         string
	ProductName  string
	UnitsSold    decimal.Decimal
	GrossRevenue decimal.Decimal
	TotalCost    decimal.Decimal // qty * products.cost
}

// PaymentBreakdownRow total vendido por medio de pago en el período.
type PaymentBreakdownRow struct {
	Method string
	Amount decimal.Decimal
	Count  int
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetSalesMetrics devuelve ingresos brutos y costo total de las ventas
	// completadas del período. Usa COALESCE para devolver cero sin ventas.
	GetSalesMetrics(ctx context.Context, pharmacyID string, start, end time.Time) (revenue, cost decimal.Decimal, err error)

	// GetTopProducts devuelve los `limit` productos con mayor ingreso del período.
	GetTopProducts(ctx context.Context, pharmacyID string, start, end time.Time, limit int) ([]TopProductRow, error)

	// GetPaymentBreakdown agrupa lo recaudado del período por medio de pago.
	GetPaymentBreakdown(ctx context.Context, pharmacyID string, start, end time.Time) ([]PaymentBreakdownRow, error)
}
