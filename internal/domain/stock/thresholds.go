// Package stock implementa la clasificación de estado de inventario:
// resolución de umbrales en cascada (producto → farmacia → defaults del
// sistema) y clasificación de estado y rotación. Todo es puro, sin I/O;
// la capa de aplicación lo alimenta con filas leídas del repositorio.
package stock

import "github.com/tu-usuario/farmacia-suite/internal/domain/entity"

// Defaults del sistema cuando ni el producto ni la farmacia definen umbral.
const (
	DefaultCritical = 2
	DefaultLow      = 5
	DefaultMaximum  = 10
)

// ThresholdSet umbrales efectivos de un producto tras la cascada.
// No se valida Critical <= Low <= Maximum: cada campo se resuelve de forma
// independiente y la clasificación queda determinista por orden de reglas
// aunque el conjunto sea inconsistente.
type ThresholdSet struct {
	Critical int
	Low      int
	Maximum  int
}

// Overrides umbrales opcionales a nivel de producto. Cada campo nil se
// resuelve contra la configuración de la farmacia y luego el default.
type Overrides struct {
	Critical *int
	Low      *int
	Maximum  *int
}

// OverridesFromProduct extrae los overrides de umbral de un producto.
func OverridesFromProduct(p *entity.Product) Overrides {
	if p == nil {
		return Overrides{}
	}
	return Overrides{
		Critical: p.CriticalThreshold,
		Low:      p.LowThreshold,
		Maximum:  p.MaxThreshold,
	}
}

// Resolve aplica la cascada campo por campo: override de producto si no es nil,
// luego configuración de la farmacia (settings puede ser nil), luego default.
// Nunca falla; entradas ausentes caen silenciosamente al siguiente nivel.
func Resolve(overrides Overrides, settings *entity.AlertSettings) ThresholdSet {
	var pharmCritical, pharmLow, pharmMax *int
	if settings != nil {
		pharmCritical = settings.CriticalThreshold
		pharmLow = settings.LowThreshold
		pharmMax = settings.MaxThreshold
	}
	return ThresholdSet{
		Critical: resolveField(overrides.Critical, pharmCritical, DefaultCritical),
		Low:      resolveField(overrides.Low, pharmLow, DefaultLow),
		Maximum:  resolveField(overrides.Maximum, pharmMax, DefaultMaximum),
	}
}

func resolveField(product, pharmacy *int, def int) int {
	if product != nil {
		return *product
	}
	if pharmacy != nil {
		return *pharmacy
	}
	return def
}
