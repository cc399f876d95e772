package pos

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/domain"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

// CashSessionUseCase apertura y cierre de caja. Un cajero solo puede tener
// una sesión abierta a la vez.
type CashSessionUseCase struct {
	repo repository.CashSessionRepository
}

// NewCashSessionUseCase construye el caso de uso.
func NewCashSessionUseCase(repo repository.CashSessionRepository) *CashSessionUseCase {
	return &CashSessionUseCase{repo: repo}
}

// Open abre una sesión de caja con la base inicial. Devuelve ErrSessionOpen
// si el usuario ya tiene una sesión abierta.
func (uc *CashSessionUseCase) Open(pharmacyID, userID string, in dto.OpenCashSessionRequest) (*dto.CashSessionResponse, error) {
	existing, err := uc.repo.GetOpenByUser(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrSessionOpen
	}
	if in.OpeningAmount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	session := &entity.CashSession{
		ID:            uuid.New().String(),
		PharmacyID:    pharmacyID,
		UserID:        userID,
		OpeningAmount: in.OpeningAmount,
		Status:        entity.CashSessionOpen,
		OpenedAt:      time.Now(),
	}
	if err := uc.repo.Create(session); err != nil {
		return nil, err
	}
	log.Info().
		Str("pharmacy_id", pharmacyID).
		Str("session_id", session.ID).
		Str("opening", in.OpeningAmount.String()).
		Msg("Caja abierta")
	return toCashSessionResponse(session), nil
}

// Close cierra la sesión con el conteo del cajero. El esperado es
// base + efectivo recibido - vueltas entregadas; la diferencia queda
// registrada para arqueo.
func (uc *CashSessionUseCase) Close(pharmacyID, userID, sessionID string, in dto.CloseCashSessionRequest) (*dto.CashSessionResponse, error) {
	session, err := uc.repo.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.PharmacyID != pharmacyID || session.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if session.Status != entity.CashSessionOpen {
		return nil, domain.ErrSessionClosed
	}
	received, change, err := uc.repo.SumCashMovements(sessionID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session.ExpectedAmount = session.OpeningAmount.Add(received).Sub(change)
	session.CountedAmount = in.CountedAmount
	session.Difference = in.CountedAmount.Sub(session.ExpectedAmount)
	session.Status = entity.CashSessionClosed
	session.ClosedAt = &now
	if err := uc.repo.Close(session); err != nil {
		return nil, err
	}
	log.Info().
		Str("pharmacy_id", pharmacyID).
		Str("session_id", sessionID).
		Str("expected", session.ExpectedAmount.String()).
		Str("counted", session.CountedAmount.String()).
		Str("difference", session.Difference.String()).
		Msg("Caja cerrada")
	return toCashSessionResponse(session), nil
}

// Current devuelve la sesión abierta del usuario, o nil si no tiene.
func (uc *CashSessionUseCase) Current(userID string) (*dto.CashSessionResponse, error) {
	session, err := uc.repo.GetOpenByUser(userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	return toCashSessionResponse(session), nil
}

func toCashSessionResponse(s *entity.CashSession) *dto.CashSessionResponse {
	return &dto.CashSessionResponse{
		ID:             s.ID,
		UserID:         s.UserID,
		OpeningAmount:  s.OpeningAmount,
		ExpectedAmount: s.ExpectedAmount,
		CountedAmount:  s.CountedAmount,
		Difference:     s.Difference,
		Status:         s.Status,
		OpenedAt:       s.OpenedAt,
		ClosedAt:       s.ClosedAt,
	}
}
