package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

var _ repository.PromotionRepository = (*PromotionRepo)(nil)

const promotionColumns = `id, pharmacy_id, product_id, name, discount_pct,
	starts_at, ends_at, active, created_at, updated_at`

// PromotionRepo implementación del puerto PromotionRepository sobre PostgreSQL.
type PromotionRepo struct {
	q Querier
}

// NewPromotionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPromotionRepository(q Querier) *PromotionRepo {
	return &PromotionRepo{q: q}
}

// Create persiste una promoción nueva.
func (r *PromotionRepo) Create(promotion *entity.Promotion) error {
	query := `
		INSERT INTO promotions (` + promotionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		promotion.ID, promotion.PharmacyID, nullIfEmpty(promotion.ProductID),
		promotion.Name, promotion.DiscountPct, promotion.StartsAt, promotion.EndsAt,
		promotion.Active, promotion.CreatedAt, promotion.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert promotion: %w", err)
	}
	return nil
}

// GetByID obtiene una promoción por ID.
func (r *PromotionRepo) GetByID(id string) (*entity.Promotion, error) {
	var p entity.Promotion
	var productID *string
	err := r.q.QueryRow(context.Background(),
		`SELECT `+promotionColumns+` FROM promotions WHERE id = $1`, id).Scan(
		&p.ID, &p.PharmacyID, &productID, &p.Name, &p.DiscountPct,
		&p.StartsAt, &p.EndsAt, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promotion: %w", err)
	}
	if productID != nil {
		p.ProductID = *productID
	}
	return &p, nil
}

// Update actualiza una promoción existente.
func (r *PromotionRepo) Update(promotion *entity.Promotion) error {
	query := `
		UPDATE promotions
		SET name = $2, discount_pct = $3, starts_at = $4, ends_at = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		promotion.ID, promotion.Name, promotion.DiscountPct,
		promotion.StartsAt, promotion.EndsAt, promotion.Active, promotion.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update promotion: %w", err)
	}
	return nil
}

// ListByPharmacy devuelve promociones de la farmacia con paginación.
func (r *PromotionRepo) ListByPharmacy(pharmacyID string, limit, offset int) ([]*entity.Promotion, error) {
	query := `
		SELECT ` + promotionColumns + `
		FROM promotions WHERE pharmacy_id = $1
		ORDER BY starts_at DESC LIMIT $2 OFFSET $3`
	return r.scanList(context.Background(), query, pharmacyID, limit, offset)
}

// ListActiveAt devuelve las promociones activas cuya ventana cubre `at`.
func (r *PromotionRepo) ListActiveAt(ctx context.Context, pharmacyID string, at time.Time) ([]*entity.Promotion, error) {
	query := `
		SELECT ` + promotionColumns + `
		FROM promotions
		WHERE pharmacy_id = $1 AND active = true AND starts_at <= $2 AND ends_at >= $2`
	return r.scanList(ctx, query, pharmacyID, at)
}

func (r *PromotionRepo) scanList(ctx context.Context, query string, args ...any) ([]*entity.Promotion, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Promotion
	for rows.Next() {
		var p entity.Promotion
		var productID *string
		if err := rows.Scan(&p.ID, &p.PharmacyID, &productID, &p.Name, &p.DiscountPct,
			&p.StartsAt, &p.EndsAt, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		if productID != nil {
			p.ProductID = *productID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// nullIfEmpty deja NULL los FKs opcionales en vez de string vacío.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
