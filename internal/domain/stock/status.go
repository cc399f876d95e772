package stock

// Status estado de stock de un producto. Mutuamente excluyente, calculado en
// cada lectura, nunca persistido. Los valores en francés se conservan tal cual
// los espera el front-end existente.
type Status string

const (
	StatusRupture  Status = "rupture"  // sin existencias
	StatusCritique Status = "critique" // 0 < qty <= crítico
	StatusFaible   Status = "faible"   // crítico < qty <= bajo
	StatusNormal   Status = "normal"   // bajo < qty <= máximo
	StatusSurstock Status = "surstock" // qty > máximo
)

// AllStatuses en orden ascendente de cantidad.
var AllStatuses = []Status{StatusRupture, StatusCritique, StatusFaible, StatusNormal, StatusSurstock}

// Rotation categoría de rotación derivada solo del nivel de stock.
// Es una heurística gruesa, no una medición de velocidad de ventas; el
// comportamiento debe mantenerse así para paridad con los consumidores actuales.
type Rotation string

const (
	RotationRapide  Rotation = "rapide"
	RotationNormale Rotation = "normale"
	RotationLente   Rotation = "lente"
)

// ClassifyStatus asigna exactamente un estado a toda cantidad no negativa.
// Las reglas se evalúan en orden ascendente y gana la primera que cumpla,
// de modo que la función sigue siendo total y determinista incluso con
// umbrales inconsistentes (ej. crítico > bajo).
func ClassifyStatus(quantity int, t ThresholdSet) Status {
	switch {
	case quantity == 0:
		return StatusRupture
	case quantity <= t.Critical:
		return StatusCritique
	case quantity <= t.Low:
		return StatusFaible
	case quantity <= t.Maximum:
		return StatusNormal
	default:
		return StatusSurstock
	}
}

// ClassifyRotation asigna la categoría de rotación según el nivel de stock.
func ClassifyRotation(quantity int, t ThresholdSet) Rotation {
	switch {
	case quantity <= t.Low:
		return RotationRapide
	case quantity > t.Maximum:
		return RotationLente
	default:
		return RotationNormale
	}
}

// rank orden del estado para comparaciones de severidad (rupture es el peor).
func rank(s Status) int {
	switch s {
	case StatusRupture:
		return 0
	case StatusCritique:
		return 1
	case StatusFaible:
		return 2
	case StatusNormal:
		return 3
	default:
		return 4
	}
}

// MoreSevere informa si a es más severo que b (más cercano a rupture).
func MoreSevere(a, b Status) bool {
	return rank(a) < rank(b)
}
