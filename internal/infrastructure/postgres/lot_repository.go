package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

const lotColumns = `id, pharmacy_id, product_id, lot_number, quantity, unit_cost,
	expiry_date, received_at, created_at, updated_at`

// LotRepo implementación del puerto LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de persistencia para lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create persiste un lote nuevo.
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lots (` + lotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.PharmacyID, lot.ProductID, lot.LotNumber, lot.Quantity,
		lot.UnitCost, lot.ExpiryDate, lot.ReceivedAt, lot.CreatedAt, lot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	var l entity.Lot
	err := r.q.QueryRow(context.Background(),
		`SELECT `+lotColumns+` FROM lots WHERE id = $1`, id).Scan(
		&l.ID, &l.PharmacyID, &l.ProductID, &l.LotNumber, &l.Quantity,
		&l.UnitCost, &l.ExpiryDate, &l.ReceivedAt, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return &l, nil
}

// ListByProduct devuelve los lotes de un producto, vencimiento más próximo primero.
func (r *LotRepo) ListByProduct(productID string) ([]*entity.Lot, error) {
	query := `
		SELECT ` + lotColumns + `
		FROM lots WHERE product_id = $1
		ORDER BY expiry_date`
	return r.scanList(query, productID)
}

// ActiveLotsForUpdate devuelve los lotes vigentes del producto bloqueados con
// SELECT FOR UPDATE, ordenados FEFO. Debe invocarse dentro de una transacción.
func (r *LotRepo) ActiveLotsForUpdate(productID string, now time.Time) ([]*entity.Lot, error) {
	query := `
		SELECT ` + lotColumns + `
		FROM lots
		WHERE product_id = $1 AND quantity > 0 AND expiry_date >= $2
		ORDER BY expiry_date
		FOR UPDATE`
	return r.scanList(query, productID, now)
}

func (r *LotRepo) scanList(query string, args ...any) ([]*entity.Lot, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()

	var list []*entity.Lot
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(&l.ID, &l.PharmacyID, &l.ProductID, &l.LotNumber, &l.Quantity,
			&l.UnitCost, &l.ExpiryDate, &l.ReceivedAt, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// UpdateQuantity fija el remanente de un lote.
func (r *LotRepo) UpdateQuantity(lotID string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE lots SET quantity = $2, updated_at = now() WHERE id = $1`, lotID, quantity)
	if err != nil {
		return fmt.Errorf("update lot quantity: %w", err)
	}
	return nil
}

// ExpiringSoon lista lotes con remanente que vencen dentro de `days` días.
func (r *LotRepo) ExpiringSoon(ctx context.Context, pharmacyID string, days, limit int) ([]*entity.Lot, error) {
	query := `
		SELECT ` + lotColumns + `
		FROM lots
		WHERE pharmacy_id = $1 AND quantity > 0
		  AND expiry_date >= now()
		  AND expiry_date < now() + ($2 || ' days')::interval
		ORDER BY expiry_date
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, pharmacyID, days, limit)
	if err != nil {
		return nil, fmt.Errorf("list expiring lots: %w", err)
	}
	defer rows.Close()

	var list []*entity.Lot
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(&l.ID, &l.PharmacyID, &l.ProductID, &l.LotNumber, &l.Quantity,
			&l.UnitCost, &l.ExpiryDate, &l.ReceivedAt, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
