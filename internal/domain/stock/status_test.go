package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/farmacia-suite/internal/domain/stock"
)

var defaults = stock.ThresholdSet{Critical: 2, Low: 5, Maximum: 10}

// TestClassifyStatus_Escenarios cubre los casos de referencia del clasificador
// con los umbrales por defecto {2, 5, 10}.
func TestClassifyStatus_Escenarios(t *testing.T) {
	cases := []struct {
		name string
		qty  int
		want stock.Status
	}{
		{"cantidad cero es rupture", 0, stock.StatusRupture},
		{"uno es critique", 1, stock.StatusCritique},
		{"borde critico inclusivo", 2, stock.StatusCritique},
		{"tres es faible", 3, stock.StatusFaible},
		{"borde bajo inclusivo", 5, stock.StatusFaible},
		{"seis es normal", 6, stock.StatusNormal},
		{"borde maximo inclusivo", 10, stock.StatusNormal},
		{"once es surstock", 11, stock.StatusSurstock},
		{"quince es surstock", 15, stock.StatusSurstock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stock.ClassifyStatus(tc.qty, defaults))
		})
	}
}

// TestClassifyStatus_Totalidad verifica que toda cantidad no negativa recibe
// exactamente uno de los cinco estados definidos, con varios juegos de umbrales.
func TestClassifyStatus_Totalidad(t *testing.T) {
	sets := []stock.ThresholdSet{
		{Critical: 2, Low: 5, Maximum: 10},
		{Critical: 0, Low: 0, Maximum: 0},
		{Critical: 7, Low: 3, Maximum: 1}, // inconsistente a propósito
		{Critical: 100, Low: 200, Maximum: 300},
	}
	valid := map[stock.Status]bool{}
	for _, s := range stock.AllStatuses {
		valid[s] = true
	}
	for _, ts := range sets {
		for q := 0; q <= 350; q++ {
			got := stock.ClassifyStatus(q, ts)
			assert.True(t, valid[got], "cantidad %d con umbrales %+v produjo estado fuera del dominio: %q", q, ts, got)
		}
	}
}

// TestClassifyStatus_RuptureExacto: cantidad cero siempre es rupture, sin
// importar los umbrales.
func TestClassifyStatus_RuptureExacto(t *testing.T) {
	sets := []stock.ThresholdSet{
		{Critical: 2, Low: 5, Maximum: 10},
		{Critical: 0, Low: 0, Maximum: 0},
		{Critical: -5, Low: -1, Maximum: 99},
	}
	for _, ts := range sets {
		assert.Equal(t, stock.StatusRupture, stock.ClassifyStatus(0, ts),
			"cantidad 0 debe ser rupture con umbrales %+v", ts)
	}
}

// TestClassifyStatus_Monotonia: con un juego de umbrales consistente, aumentar
// la cantidad nunca regresa a un estado anterior en el orden
// rupture < critique < faible < normal < surstock.
func TestClassifyStatus_Monotonia(t *testing.T) {
	ts := stock.ThresholdSet{Critical: 3, Low: 8, Maximum: 20}
	prev := stock.ClassifyStatus(0, ts)
	for q := 1; q <= 50; q++ {
		cur := stock.ClassifyStatus(q, ts)
		assert.False(t, stock.MoreSevere(cur, prev),
			"en q=%d el estado retrocedió de %q a %q", q, prev, cur)
		prev = cur
	}
}

// TestClassifyStatus_UmbralesInconsistentes: si crítico > bajo, gana la primera
// regla que cumpla (critique), preservando el comportamiento observado.
func TestClassifyStatus_UmbralesInconsistentes(t *testing.T) {
	ts := stock.ThresholdSet{Critical: 7, Low: 3, Maximum: 10}
	// 5 <= Critical(7) y también > Low(3); la regla 2 se evalúa primero.
	assert.Equal(t, stock.StatusCritique, stock.ClassifyStatus(5, ts))
	// 2 cumple regla 2 y regla 3 a la vez; también gana critique.
	assert.Equal(t, stock.StatusCritique, stock.ClassifyStatus(2, ts))
}

// TestClassifyRotation cubre la heurística de rotación por nivel de stock.
func TestClassifyRotation(t *testing.T) {
	cases := []struct {
		qty  int
		want stock.Rotation
	}{
		{0, stock.RotationRapide},  // Escenario A: rupture también es rapide
		{5, stock.RotationRapide},  // borde bajo inclusivo
		{6, stock.RotationNormale},
		{10, stock.RotationNormale}, // borde máximo
		{11, stock.RotationLente},
		{15, stock.RotationLente}, // Escenario C
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, stock.ClassifyRotation(tc.qty, defaults),
			"rotación incorrecta para cantidad %d", tc.qty)
	}
}

// TestEscenariosCombinados valida los pares estado+rotación de referencia.
func TestEscenariosCombinados(t *testing.T) {
	// Escenario A
	assert.Equal(t, stock.StatusRupture, stock.ClassifyStatus(0, defaults))
	assert.Equal(t, stock.RotationRapide, stock.ClassifyRotation(0, defaults))
	// Escenario B
	assert.Equal(t, stock.StatusFaible, stock.ClassifyStatus(3, defaults))
	// Escenario C
	assert.Equal(t, stock.StatusSurstock, stock.ClassifyStatus(15, defaults))
	assert.Equal(t, stock.RotationLente, stock.ClassifyRotation(15, defaults))
	// Escenario D: borde superior inclusivo
	assert.Equal(t, stock.StatusNormal, stock.ClassifyStatus(10, defaults))
}
