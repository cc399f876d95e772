package stock_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appstock "github.com/tu-usuario/farmacia-suite/internal/application/stock"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
	domstock "github.com/tu-usuario/farmacia-suite/internal/domain/stock"
)

const testPharmacy = "ph-1"

// TestGetOverview_Distribucion: la suma de los contadores debe ser igual al
// número de filas con cantidad definida; las filas con cantidad nula se omiten.
func TestGetOverview_Distribucion(t *testing.T) {
	repo := &fakeStockRepo{rows: []repository.StockRow{
		row("a", "Acetaminofén", qty(0)),   // rupture
		row("b", "Ibuprofeno", qty(1)),     // critique
		row("c", "Loratadina", qty(3)),     // faible
		row("d", "Omeprazol", qty(7)),      // normal
		row("e", "Vitamina C", qty(25)),    // surstock
		row("f", "Sin conteo", nil),        // omitida
	}}
	uc := appstock.NewOverviewUseCase(repo, &fakeSettingsRepo{})

	out, err := uc.GetOverview(context.Background(), testPharmacy)
	require.NoError(t, err)

	assert.Equal(t, 5, out.Processed, "solo cuentan las filas con cantidad definida")
	assert.Equal(t, 1, out.Distribution[domstock.StatusRupture])
	assert.Equal(t, 1, out.Distribution[domstock.StatusCritique])
	assert.Equal(t, 1, out.Distribution[domstock.StatusFaible])
	assert.Equal(t, 1, out.Distribution[domstock.StatusNormal])
	assert.Equal(t, 1, out.Distribution[domstock.StatusSurstock])

	total := 0
	for _, c := range out.Distribution {
		total += c
	}
	assert.Equal(t, out.Processed, total, "conservación de la distribución")
}

// TestGetOverview_Tops verifica contenido y orden de las tres listas.
func TestGetOverview_Tops(t *testing.T) {
	repo := &fakeStockRepo{rows: []repository.StockRow{
		row("r1", "Agotado A", qty(0)),
		row("r2", "Agotado B", qty(0)),
		row("c1", "Crítico dos", qty(2)),
		row("c2", "Crítico uno", qty(1)),
		row("n1", "Normal", qty(8)),
		row("f1", "Bajo", qty(4)),
	}}
	uc := appstock.NewOverviewUseCase(repo, &fakeSettingsRepo{})

	out, err := uc.GetOverview(context.Background(), testPharmacy)
	require.NoError(t, err)

	// criticalTop: solo critique con cantidad > 0, menor cantidad primero
	// (ambos son rotación rápida con los defaults).
	require.Len(t, out.CriticalTop, 2)
	assert.Equal(t, "c2", out.CriticalTop[0].ProductID)
	assert.Equal(t, "c1", out.CriticalTop[1].ProductID)

	// ruptureTop: orden estable por nombre tal como llegan las filas.
	require.Len(t, out.RuptureTop, 2)
	assert.Equal(t, "Agotado A", out.RuptureTop[0].Name)
	assert.Equal(t, "Agotado B", out.RuptureTop[1].Name)

	// fastMovingTop: rotación rápida con existencias, cantidad ascendente.
	// c2(1), c1(2), f1(4) son q <= low(5).
	require.Len(t, out.FastMoving, 3)
	assert.Equal(t, "c2", out.FastMoving[0].ProductID)
	assert.Equal(t, "c1", out.FastMoving[1].ProductID)
	assert.Equal(t, "f1", out.FastMoving[2].ProductID)

	// El valor del stock es cantidad × costo (4 × 60).
	assert.True(t, out.FastMoving[2].Value.Equal(decimal.NewFromInt(240)),
		"valor de f1: %s", out.FastMoving[2].Value)
}

// TestGetOverview_FailOpen: si la lectura upstream falla, el panorama vuelve
// vacío con distribución en ceros, sin error para el caller.
func TestGetOverview_FailOpen(t *testing.T) {
	uc := appstock.NewOverviewUseCase(&fakeStockRepo{fail: true}, &fakeSettingsRepo{})

	out, err := uc.GetOverview(context.Background(), testPharmacy)
	require.NoError(t, err, "el error de fetch no se propaga al dashboard")
	assert.Equal(t, 0, out.Processed)
	assert.Empty(t, out.CriticalTop)
	assert.Empty(t, out.RuptureTop)
	for _, s := range domstock.AllStatuses {
		assert.Equal(t, 0, out.Distribution[s])
	}
}

// TestGetOverview_TopePaginacion: 10.500 filas sintéticas producen exactamente
// 10.000 procesadas y el resultado queda marcado como truncado.
func TestGetOverview_TopePaginacion(t *testing.T) {
	repo := &fakeStockRepo{rows: syntheticRows(10500, 7)}
	uc := appstock.NewOverviewUseCase(repo, &fakeSettingsRepo{})

	out, err := uc.GetOverview(context.Background(), testPharmacy)
	require.NoError(t, err)

	assert.Equal(t, 10000, out.Processed, "el tope duro es 10.000 filas")
	assert.True(t, out.Truncated)
	assert.Equal(t, 10000, out.Distribution[domstock.StatusNormal])
	assert.LessOrEqual(t, repo.fetches, 11, "la lectura debe ser paginada, no de una sola vez")
}
