package stock_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appstock "github.com/tu-usuario/farmacia-suite/internal/application/stock"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
	domstock "github.com/tu-usuario/farmacia-suite/internal/domain/stock"
)

// TestGenerateSuggestions_SoloBajoUmbral: solo califican productos con
// cantidad <= umbral bajo; la cantidad sugerida lleva el stock al máximo.
func TestGenerateSuggestions_SoloBajoUmbral(t *testing.T) {
	repo := &fakeStockRepo{rows: []repository.StockRow{
		row("a", "Agotado", qty(0)),  // sugiere 10
		row("b", "Crítico", qty(2)),  // sugiere 8
		row("c", "Bajo", qty(5)),     // sugiere 5
		row("d", "Normal", qty(9)),   // no califica
		row("e", "Exceso", qty(40)),  // no califica
	}}
	uc := appstock.NewSuggestionUseCase(repo, &fakeSettingsRepo{})

	out, err := uc.GenerateSuggestions(context.Background(), testPharmacy, 0)
	require.NoError(t, err)
	require.Len(t, out, 3)

	// Orden por severidad: rupture, critique, faible.
	assert.Equal(t, "a", out[0].ProductID)
	assert.Equal(t, domstock.StatusRupture, out[0].Status)
	assert.Equal(t, 10, out[0].SuggestedQty)

	assert.Equal(t, "b", out[1].ProductID)
	assert.Equal(t, 8, out[1].SuggestedQty)

	assert.Equal(t, "c", out[2].ProductID)
	assert.Equal(t, 5, out[2].SuggestedQty)

	// Prioridad secuencial desde 1 y costo estimado = sugerido × costo.
	for i, s := range out {
		assert.Equal(t, i+1, s.Priority)
		expected := decimal.NewFromInt(int64(s.SuggestedQty)).Mul(decimal.NewFromInt(60))
		assert.True(t, s.EstimatedCost.Equal(expected), "costo estimado de %s", s.ProductID)
	}
}

// TestGenerateSuggestions_DesempatePorDeficit: a igual estado, va primero el
// de mayor déficit contra el máximo.
func TestGenerateSuggestions_DesempatePorDeficit(t *testing.T) {
	repo := &fakeStockRepo{rows: []repository.StockRow{
		row("x", "Crítico leve", qty(2)),
		row("y", "Crítico fuerte", qty(1)),
	}}
	uc := appstock.NewSuggestionUseCase(repo, &fakeSettingsRepo{})

	out, err := uc.GenerateSuggestions(context.Background(), testPharmacy, 0)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "y", out[0].ProductID, "déficit 9 antes que déficit 8")
	assert.Equal(t, "x", out[1].ProductID)
}

// TestGenerateSuggestions_UmbralesDeFarmacia: la configuración del tenant
// cambia qué productos califican y cuánto se sugiere.
func TestGenerateSuggestions_UmbralesDeFarmacia(t *testing.T) {
	low, max := 20, 60
	settings := &fakeSettingsRepo{settings: &entity.AlertSettings{
		PharmacyID:   testPharmacy,
		LowThreshold: &low,
		MaxThreshold: &max,
	}}
	repo := &fakeStockRepo{rows: []repository.StockRow{
		row("a", "Ahora bajo", qty(15)), // bajo con low=20
	}}
	uc := appstock.NewSuggestionUseCase(repo, settings)

	out, err := uc.GenerateSuggestions(context.Background(), testPharmacy, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 45, out[0].SuggestedQty, "máximo(60) - actual(15)")
}

// TestGenerateSuggestions_Limite recorta la lista al tope pedido.
func TestGenerateSuggestions_Limite(t *testing.T) {
	repo := &fakeStockRepo{rows: syntheticRows(30, 1)} // todos críticos
	uc := appstock.NewSuggestionUseCase(repo, &fakeSettingsRepo{})

	out, err := uc.GenerateSuggestions(context.Background(), testPharmacy, 5)
	require.NoError(t, err)
	assert.Len(t, out, 5)
}
