package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// El stock de cada producto se deriva sumando remanentes de lotes vigentes;
// no existe un contador aparte que pueda desincronizarse.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// ListStockPage devuelve una página de productos activos con su stock vigente
// y los overrides de umbral. Quantity llega NULL para productos sin lotes
// registrados (el agregador los salta).
func (r *StockRepo) ListStockPage(ctx context.Context, pharmacyID string, limit, offset int) ([]repository.StockRow, error) {
	const query = `
		SELECT p.id, p.code, p.name,
		       SUM(l.quantity) FILTER (WHERE l.expiry_date >= now()) AS quantity,
		       p.critical_threshold, p.low_threshold, p.max_threshold,
		       p.price, p.cost
		FROM products p
		LEFT JOIN lots l ON l.product_id = p.id
		WHERE p.pharmacy_id = $1 AND p.active = true
		GROUP BY p.id, p.code, p.name, p.critical_threshold, p.low_threshold, p.max_threshold, p.price, p.cost
		ORDER BY p.name, p.id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, pharmacyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock page: %w", err)
	}
	defer rows.Close()

	var list []repository.StockRow
	for rows.Next() {
		var row repository.StockRow
		if err := rows.Scan(&row.ProductID, &row.Code, &row.Name, &row.Quantity,
			&row.CriticalThreshold, &row.LowThreshold, &row.MaxThreshold,
			&row.Price, &row.Cost); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
