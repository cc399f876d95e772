package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appstock "github.com/tu-usuario/farmacia-suite/internal/application/stock"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

// TestGenerateAlerts_MapeoPrioridades: rupture y critique → critical,
// faible → high, surstock → medium; normal no genera alerta.
func TestGenerateAlerts_MapeoPrioridades(t *testing.T) {
	repo := &fakeStockRepo{rows: []repository.StockRow{
		row("a", "Agotado", qty(0)),
		row("b", "Crítico", qty(2)),
		row("c", "Bajo", qty(4)),
		row("d", "Normal", qty(8)),
		row("e", "Exceso", qty(30)),
	}}
	notifs := &fakeNotificationRepo{}
	uc := appstock.NewAlertUseCase(repo, &fakeSettingsRepo{}, notifs, nil)

	alerts, err := uc.GenerateAlerts(context.Background(), testPharmacy)
	require.NoError(t, err)
	require.Len(t, alerts, 4, "el estado normal no alerta")

	byProduct := map[string]entity.Notification{}
	for _, a := range alerts {
		byProduct[a.ProductID] = a
	}
	assert.Equal(t, entity.PriorityCritical, byProduct["a"].Priority)
	assert.Equal(t, entity.PriorityCritical, byProduct["b"].Priority)
	assert.Equal(t, entity.PriorityHigh, byProduct["c"].Priority)
	assert.Equal(t, entity.PriorityMedium, byProduct["e"].Priority)
	assert.NotContains(t, byProduct, "d")

	// Todas quedaron persistidas.
	assert.Len(t, notifs.created, 4)
}

// TestGenerateAlerts_Mensajes interpola nombre, cantidad y umbral.
func TestGenerateAlerts_Mensajes(t *testing.T) {
	repo := &fakeStockRepo{rows: []repository.StockRow{
		row("a", "Amoxicilina 500mg", qty(0)),
		row("b", "Diclofenaco", qty(1)),
	}}
	uc := appstock.NewAlertUseCase(repo, &fakeSettingsRepo{}, &fakeNotificationRepo{}, nil)

	alerts, err := uc.GenerateAlerts(context.Background(), testPharmacy)
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	assert.Equal(t, "Amoxicilina 500mg: sin existencias", alerts[0].Message)
	assert.Contains(t, alerts[1].Message, "Diclofenaco: stock crítico")
	assert.Contains(t, alerts[1].Message, "1 unidades")
	assert.Contains(t, alerts[1].Message, "umbral 2")
}

// TestGenerateAlerts_CorreoHabilitado: con email habilitado el mailer recibe
// todas las alertas en el destino configurado.
func TestGenerateAlerts_CorreoHabilitado(t *testing.T) {
	repo := &fakeStockRepo{rows: []repository.StockRow{
		row("a", "Agotado", qty(0)),
		row("b", "Crítico", qty(1)),
	}}
	settings := &fakeSettingsRepo{settings: &entity.AlertSettings{
		PharmacyID:   testPharmacy,
		EmailEnabled: true,
		AlertEmail:   "regente@farmacia.test",
	}}
	mailer := &fakeMailer{}
	uc := appstock.NewAlertUseCase(repo, settings, &fakeNotificationRepo{}, mailer)

	alerts, err := uc.GenerateAlerts(context.Background(), testPharmacy)
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	assert.Equal(t, 1, mailer.calls, "un solo correo con el resumen")
	assert.Equal(t, "regente@farmacia.test", mailer.to)
	assert.Len(t, mailer.sent, 2)
}

// TestGenerateAlerts_CorreoDeshabilitado: sin configuración no se envía nada.
func TestGenerateAlerts_CorreoDeshabilitado(t *testing.T) {
	repo := &fakeStockRepo{rows: []repository.StockRow{row("a", "Agotado", qty(0))}}
	mailer := &fakeMailer{}
	uc := appstock.NewAlertUseCase(repo, &fakeSettingsRepo{}, &fakeNotificationRepo{}, mailer)

	_, err := uc.GenerateAlerts(context.Background(), testPharmacy)
	require.NoError(t, err)
	assert.Zero(t, mailer.calls)
}
