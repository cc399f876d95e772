package pos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/application/pos"
	"github.com/tu-usuario/farmacia-suite/internal/domain"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
)

// TestOpenCashSession_SoloUnaAbierta: un cajero no puede tener dos cajas.
func TestOpenCashSession_SoloUnaAbierta(t *testing.T) {
	repo := &fakeSessionRepo{}
	uc := pos.NewCashSessionUseCase(repo)

	first, err := uc.Open(testPharmacy, testUser, dto.OpenCashSessionRequest{
		OpeningAmount: decimal.NewFromInt(100_000),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CashSessionOpen, first.Status)

	_, err = uc.Open(testPharmacy, testUser, dto.OpenCashSessionRequest{
		OpeningAmount: decimal.NewFromInt(50_000),
	})
	require.ErrorIs(t, err, domain.ErrSessionOpen)
}

// TestOpenCashSession_BaseNegativa rechaza base inicial negativa.
func TestOpenCashSession_BaseNegativa(t *testing.T) {
	uc := pos.NewCashSessionUseCase(&fakeSessionRepo{})
	_, err := uc.Open(testPharmacy, testUser, dto.OpenCashSessionRequest{
		OpeningAmount: decimal.NewFromInt(-1),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestCloseCashSession_Arqueo: esperado = base + efectivo recibido - vueltas;
// la diferencia es contado - esperado.
func TestCloseCashSession_Arqueo(t *testing.T) {
	repo := openSession()
	repo.received = decimal.NewFromInt(80_000) // efectivo de ventas
	repo.change = decimal.NewFromInt(5_000)    // vueltas entregadas
	uc := pos.NewCashSessionUseCase(repo)

	out, err := uc.Close(testPharmacy, testUser, testSession, dto.CloseCashSessionRequest{
		CountedAmount: decimal.NewFromInt(120_000),
	})
	require.NoError(t, err)

	// 50.000 base + 80.000 - 5.000 = 125.000 esperado; faltan 5.000.
	assert.True(t, out.ExpectedAmount.Equal(decimal.NewFromInt(125_000)), "esperado %s", out.ExpectedAmount)
	assert.True(t, out.Difference.Equal(decimal.NewFromInt(-5_000)), "diferencia %s", out.Difference)
	assert.Equal(t, entity.CashSessionClosed, out.Status)
	require.NotNil(t, out.ClosedAt)

	// Cerrar dos veces falla.
	_, err = uc.Close(testPharmacy, testUser, testSession, dto.CloseCashSessionRequest{
		CountedAmount: decimal.NewFromInt(120_000),
	})
	require.ErrorIs(t, err, domain.ErrSessionClosed)
}

// TestCurrentCashSession devuelve la sesión abierta del usuario o nil.
func TestCurrentCashSession(t *testing.T) {
	uc := pos.NewCashSessionUseCase(openSession())

	out, err := uc.Current(testUser)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, testSession, out.ID)

	none, err := uc.Current("otro-usuario")
	require.NoError(t, err)
	assert.Nil(t, none)
}
