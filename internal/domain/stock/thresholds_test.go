package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/stock"
)

func intPtr(n int) *int { return &n }

// TestResolve_CascadaPrecedencia: override de producto > configuración de
// farmacia > default del sistema, campo por campo.
func TestResolve_CascadaPrecedencia(t *testing.T) {
	settings := &entity.AlertSettings{CriticalThreshold: intPtr(3)}

	// El override del producto gana sobre la configuración de la farmacia.
	got := stock.Resolve(stock.Overrides{Critical: intPtr(7)}, settings)
	assert.Equal(t, 7, got.Critical)

	// Sin override: gana la configuración de la farmacia.
	got = stock.Resolve(stock.Overrides{}, settings)
	assert.Equal(t, 3, got.Critical)

	// Sin override ni configuración: default del sistema.
	got = stock.Resolve(stock.Overrides{}, &entity.AlertSettings{})
	assert.Equal(t, stock.DefaultCritical, got.Critical)
}

// TestResolve_CamposIndependientes: cada umbral cae en cascada por separado;
// un override parcial no arrastra los demás campos.
func TestResolve_CamposIndependientes(t *testing.T) {
	settings := &entity.AlertSettings{
		LowThreshold: intPtr(8),
	}
	got := stock.Resolve(stock.Overrides{Maximum: intPtr(50)}, settings)

	assert.Equal(t, stock.DefaultCritical, got.Critical, "critical debe caer al default")
	assert.Equal(t, 8, got.Low, "low debe venir de la farmacia")
	assert.Equal(t, 50, got.Maximum, "maximum debe venir del producto")
}

// TestResolve_SettingsNil: configuración de farmacia ausente por completo.
func TestResolve_SettingsNil(t *testing.T) {
	got := stock.Resolve(stock.Overrides{}, nil)
	assert.Equal(t, stock.ThresholdSet{
		Critical: stock.DefaultCritical,
		Low:      stock.DefaultLow,
		Maximum:  stock.DefaultMaximum,
	}, got)
}

// TestResolve_SinValidacionCruzada: la cascada no corrige conjuntos
// inconsistentes; eso lo absorbe el orden de reglas del clasificador.
func TestResolve_SinValidacionCruzada(t *testing.T) {
	got := stock.Resolve(stock.Overrides{Critical: intPtr(9), Low: intPtr(4)}, nil)
	assert.Equal(t, 9, got.Critical)
	assert.Equal(t, 4, got.Low)
	assert.True(t, got.Critical > got.Low, "el conjunto inconsistente se conserva tal cual")
}

// TestOverridesFromProduct extrae los punteros sin copiarlos a valores.
func TestOverridesFromProduct(t *testing.T) {
	p := &entity.Product{
		CriticalThreshold: intPtr(1),
		MaxThreshold:      intPtr(30),
	}
	ov := stock.OverridesFromProduct(p)
	assert.Equal(t, 1, *ov.Critical)
	assert.Nil(t, ov.Low)
	assert.Equal(t, 30, *ov.Maximum)

	assert.Equal(t, stock.Overrides{}, stock.OverridesFromProduct(nil))
}
