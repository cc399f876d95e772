package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

var _ repository.CashSessionRepository = (*CashSessionRepo)(nil)

const cashSessionColumns = `id, pharmacy_id, user_id, opening_amount, expected_amount,
	counted_amount, difference, status, opened_at, closed_at`

// CashSessionRepo implementación del puerto CashSessionRepository sobre PostgreSQL.
type CashSessionRepo struct {
	q Querier
}

// NewCashSessionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCashSessionRepository(q Querier) *CashSessionRepo {
	return &CashSessionRepo{q: q}
}

// Create persiste una sesión de caja nueva.
func (r *CashSessionRepo) Create(session *entity.CashSession) error {
	query := `
		INSERT INTO cash_sessions (` + cashSessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		session.ID, session.PharmacyID, session.UserID, session.OpeningAmount,
		session.ExpectedAmount, session.CountedAmount, session.Difference,
		session.Status, session.OpenedAt, session.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cash session: %w", err)
	}
	return nil
}

// GetByID obtiene una sesión por ID.
func (r *CashSessionRepo) GetByID(id string) (*entity.CashSession, error) {
	return r.scanOne(`SELECT `+cashSessionColumns+` FROM cash_sessions WHERE id = $1`, id)
}

// GetOpenByUser devuelve la sesión abierta del usuario o (nil, nil) si no hay.
func (r *CashSessionRepo) GetOpenByUser(userID string) (*entity.CashSession, error) {
	return r.scanOne(`
		SELECT `+cashSessionColumns+` FROM cash_sessions
		WHERE user_id = $1 AND status = $2`, userID, entity.CashSessionOpen)
}

func (r *CashSessionRepo) scanOne(query string, args ...any) (*entity.CashSession, error) {
	var s entity.CashSession
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.PharmacyID, &s.UserID, &s.OpeningAmount, &s.ExpectedAmount,
		&s.CountedAmount, &s.Difference, &s.Status, &s.OpenedAt, &s.ClosedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cash session: %w", err)
	}
	return &s, nil
}

// Close persiste el cierre de la sesión con los montos del arqueo.
func (r *CashSessionRepo) Close(session *entity.CashSession) error {
	query := `
		UPDATE cash_sessions
		SET expected_amount = $2, counted_amount = $3, difference = $4, status = $5, closed_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		session.ID, session.ExpectedAmount, session.CountedAmount,
		session.Difference, session.Status, session.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("close cash session: %w", err)
	}
	return nil
}

// SumCashMovements devuelve efectivo recibido y vueltas entregadas de las
// ventas completadas de la sesión.
func (r *CashSessionRepo) SumCashMovements(sessionID string) (decimal.Decimal, decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(sp.amount), 0), COALESCE(SUM(sp.change), 0)
		FROM sale_payments sp
		JOIN sales s ON s.id = sp.sale_id
		WHERE s.cash_session_id = $1 AND s.status = $2 AND sp.method = $3`
	var received, change decimal.Decimal
	err := r.q.QueryRow(context.Background(), query,
		sessionID, entity.SaleStatusCompleted, entity.PaymentCash).Scan(&received, &change)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("sum cash movements: %w", err)
	}
	return received, change, nil
}
