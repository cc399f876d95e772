package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, pharmacy_id, cash_session_id, user_id, number, subtotal,
	discount, total, status, void_reason, created_at`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta con sus líneas y pagos. Invocar dentro de la
// transacción que descuenta los lotes.
func (r *SaleRepo) Create(sale *entity.Sale, items []entity.SaleItem, payments []entity.SalePayment) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales (`+saleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		sale.ID, sale.PharmacyID, sale.CashSessionID, sale.UserID, sale.Number,
		sale.Subtotal, sale.Discount, sale.Total, sale.Status, sale.VoidReason, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for _, it := range items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_items (id, sale_id, product_id, product_name, quantity, unit_price, discount, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			it.ID, it.SaleID, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice, it.Discount, it.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	for _, p := range payments {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_payments (id, sale_id, method, amount, change)
			VALUES ($1, $2, $3, $4, $5)`,
			p.ID, p.SaleID, p.Method, p.Amount, p.Change,
		)
		if err != nil {
			return fmt.Errorf("insert sale payment: %w", err)
		}
	}
	return nil
}

// GetByID devuelve la venta completa con líneas y pagos.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, []entity.SaleItem, []entity.SalePayment, error) {
	ctx := context.Background()
	var s entity.Sale
	err := r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id).Scan(
		&s.ID, &s.PharmacyID, &s.CashSessionID, &s.UserID, &s.Number,
		&s.Subtotal, &s.Discount, &s.Total, &s.Status, &s.VoidReason, &s.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil, nil, nil
		}
		return nil, nil, nil, fmt.Errorf("get sale: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, sale_id, product_id, product_name, quantity, unit_price, discount, subtotal
		FROM sale_items WHERE sale_id = $1 ORDER BY product_name`, id)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.UnitPrice, &it.Discount, &it.Subtotal); err != nil {
			return nil, nil, nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, nil, err
	}

	payRows, err := r.q.Query(ctx, `
		SELECT id, sale_id, method, amount, change
		FROM sale_payments WHERE sale_id = $1 ORDER BY method`, id)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list sale payments: %w", err)
	}
	defer payRows.Close()
	var payments []entity.SalePayment
	for payRows.Next() {
		var p entity.SalePayment
		if err := payRows.Scan(&p.ID, &p.SaleID, &p.Method, &p.Amount, &p.Change); err != nil {
			return nil, nil, nil, fmt.Errorf("scan sale payment: %w", err)
		}
		payments = append(payments, p)
	}
	return &s, items, payments, payRows.Err()
}

// ListBySession devuelve las ventas de una sesión de caja con paginación.
func (r *SaleRepo) ListBySession(sessionID string, limit, offset int) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT `+saleColumns+` FROM sales
		WHERE cash_session_id = $1
		ORDER BY number DESC LIMIT $2 OFFSET $3`, sessionID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.PharmacyID, &s.CashSessionID, &s.UserID, &s.Number,
			&s.Subtotal, &s.Discount, &s.Total, &s.Status, &s.VoidReason, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// NextNumber devuelve el siguiente consecutivo de venta de la farmacia.
// La secuencia por farmacia vive en sale_counters para evitar huecos por rollback
// de secuencias globales.
func (r *SaleRepo) NextNumber(pharmacyID string) (int64, error) {
	const query = `
		INSERT INTO sale_counters (pharmacy_id, last_number)
		VALUES ($1, 1)
		ON CONFLICT (pharmacy_id)
		DO UPDATE SET last_number = sale_counters.last_number + 1
		RETURNING last_number`
	var number int64
	if err := r.q.QueryRow(context.Background(), query, pharmacyID).Scan(&number); err != nil {
		return 0, fmt.Errorf("next sale number: %w", err)
	}
	return number, nil
}

// Void marca la venta como anulada con su motivo.
func (r *SaleRepo) Void(id, reason string) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE sales SET status = $2, void_reason = $3 WHERE id = $1`,
		id, entity.SaleStatusVoided, reason)
	if err != nil {
		return fmt.Errorf("void sale: %w", err)
	}
	return nil
}
