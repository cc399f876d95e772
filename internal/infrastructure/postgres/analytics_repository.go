package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetSalesMetrics devuelve ingresos brutos y costo total de las ventas
// completadas del período. Usa COALESCE para devolver cero sin ventas.
func (r *AnalyticsRepo) GetSalesMetrics(
	ctx context.Context,
	pharmacyID string,
	start, end time.Time,
) (decimal.Decimal, decimal.Decimal, error) {
	const query = `
	SELECT
	    COALESCE(SUM(si.subtotal), 0)          AS revenue,
	    COALESCE(SUM(si.quantity * p.cost), 0) AS cost
	FROM sales s
	JOIN sale_items si ON si.sale_id   = s.id
	JOIN products   p  ON p.id          = si.product_id
	WHERE s.pharmacy_id = $1
	  AND s.created_at >= $2 AND s.created_at < $3
	  AND s.status = $4`

	var revenue, cost decimal.Decimal
	err := r.pool.QueryRow(ctx, query, pharmacyID, start, end, entity.SaleStatusCompleted).
		Scan(&revenue, &cost)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("analytics.GetSalesMetrics: %w", err)
	}
	return revenue, cost, nil
}

// GetTopProducts devuelve los `limit` productos con mayor ingreso del período.
func (r *AnalyticsRepo) GetTopProducts(
	ctx context.Context,
	pharmacyID string,
	start, end time.Time,
	limit int,
) ([]repository.TopProductRow, error) {
	const query = `
	SELECT
	    p.id,
	    p.code,
	    p.name,
	    SUM(si.quantity)          AS units_sold,
	    SUM(si.subtotal)          AS gross_revenue,
	    SUM(si.quantity * p.cost) AS total_cost
	FROM sales s
	JOIN sale_items si ON si.sale_id = s.id
	JOIN products   p  ON p.id        = si.product_id
	WHERE s.pharmacy_id = $1
	  AND s.created_at >= $2 AND s.created_at < $3
	  AND s.status = $4
	GROUP BY p.id, p.code, p.name
	ORDER BY gross_revenue DESC
	LIMIT $5`

	rows, err := r.pool.Query(ctx, query, pharmacyID, start, end, entity.SaleStatusCompleted, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductRow
	for rows.Next() {
		var row repository.TopProductRow
		if err := rows.Scan(
			&row.ProductID,
			&row.Code,
			&row.ProductName,
			&row.UnitsSold,
			&row.GrossRevenue,
			&row.TotalCost,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetPaymentBreakdown agrupa lo recaudado del período por medio de pago.
// El monto neto descuenta la vuelta entregada en el tramo de efectivo.
func (r *AnalyticsRepo) GetPaymentBreakdown(
	ctx context.Context,
	pharmacyID string,
	start, end time.Time,
) ([]repository.PaymentBreakdownRow, error) {
	const query = `
	SELECT
	    sp.method,
	    SUM(sp.amount - sp.change) AS amount,
	    COUNT(*)                   AS payment_count
	FROM sales s
	JOIN sale_payments sp ON sp.sale_id = s.id
	WHERE s.pharmacy_id = $1
	  AND s.created_at >= $2 AND s.created_at < $3
	  AND s.status = $4
	GROUP BY sp.method
	ORDER BY amount DESC`

	rows, err := r.pool.Query(ctx, query, pharmacyID, start, end, entity.SaleStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetPaymentBreakdown: %w", err)
	}
	defer rows.Close()

	var results []repository.PaymentBreakdownRow
	for rows.Next() {
		var row repository.PaymentBreakdownRow
		if err := rows.Scan(&row.Method, &row.Amount, &row.Count); err != nil {
			return nil, fmt.Errorf("analytics.GetPaymentBreakdown scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
