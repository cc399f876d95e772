package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
)

// CashSessionRepository define el puerto de persistencia para sesiones de caja.
type CashSessionRepository interface {
	Create(session *entity.CashSession) error
	GetByID(id string) (*entity.CashSession, error)
	// GetOpenByUser devuelve la sesión abierta del usuario o (nil, nil) si no hay.
	GetOpenByUser(userID string) (*entity.CashSession, error)
	Close(session *entity.CashSession) error
	// SumCashMovements devuelve efectivo recibido y vueltas entregadas de las
	// ventas completadas de la sesión (para calcular el esperado al cierre).
	SumCashMovements(sessionID string) (received, change decimal.Decimal, err error)
}
