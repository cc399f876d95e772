package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/farmacia-suite/internal/domain/stock"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del día y del mes en curso, top de productos y el widget de
// distribución de stock. Cacheable en Redis con TTL corto.
type DashboardSummaryDTO struct {
	// Métricas del día actual (00:00 – 23:59)
	TodaySales  decimal.Decimal `json:"today_sales"`
	TodayMargin decimal.Decimal `json:"today_margin"` // revenue - costo

	// Métricas del mes en curso (día 1 – hoy)
	MonthlySales  decimal.Decimal `json:"monthly_sales"`
	MonthlyMargin decimal.Decimal `json:"monthly_margin"`

	// Top productos por ingreso del mes
	TopProducts []TopProductDTO `json:"top_products"`

	// Recaudo del mes por medio de pago
	PaymentBreakdown []PaymentBreakdownDTO `json:"payment_breakdown"`

	// Widget de inventario: conteo de productos por estado de stock
	StockDistribution map[stock.Status]int `json:"stock_distribution"`

	DateLabel string `json:"date_label"` // ej: "Agosto 2026"
}

// TopProductDTO resumen de un producto para el widget del dashboard.
type TopProductDTO struct {
	ProductID        string          `json:"product_id"`
	Code             string          `json:"code"`
	ProductName      string          `json:"product_name"`
	QuantitySold     decimal.Decimal `json:"quantity_sold"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	MarginPercentage decimal.Decimal `json:"margin_percentage"` // (revenue - costo) / revenue * 100
}

// PaymentBreakdownDTO recaudo por medio de pago.
type PaymentBreakdownDTO struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}
