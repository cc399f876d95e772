// Package stock contiene los casos de uso de clasificación de inventario:
// panorama de stock (distribución + tops), alertas y sugerencias de pedido.
// Toda la lógica de umbral/estado vive en domain/stock; aquí solo se pagina,
// se clasifica y se arma la salida.
package stock

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
	domstock "github.com/tu-usuario/farmacia-suite/internal/domain/stock"
)

const (
	// pageSize tamaño de página impuesto por el almacén de datos.
	pageSize = 1000
	// maxRows tope duro de filas por corrida; superado el tope se trunca con warning.
	maxRows = 10000
)

// classified fila de stock ya pasada por el resolvedor y los clasificadores.
type classified struct {
	repository.StockRow
	Quantity   int
	Thresholds domstock.ThresholdSet
	Status     domstock.Status
	Rotation   domstock.Rotation
	Value      decimal.Decimal
}

// collect pagina las filas de stock de la farmacia, resuelve umbrales y
// clasifica cada producto. Filas con cantidad nula se omiten del resultado.
// Devuelve truncated=true si se alcanzó el tope de filas.
//
// La configuración de alertas se lee una sola vez por corrida; un fallo al
// leerla se degrada a defaults del sistema (fail-open).
func collect(
	ctx context.Context,
	stockRepo repository.StockRepository,
	settingsRepo repository.AlertSettingsRepository,
	pharmacyID string,
) (items []classified, truncated bool, err error) {

	settings, serr := settingsRepo.Get(pharmacyID)
	if serr != nil {
		log.Warn().Err(serr).Str("pharmacy_id", pharmacyID).
			Msg("stock: no se pudo leer la configuración de alertas, usando defaults")
		settings = nil
	}

	seen := 0
	for offset := 0; ; offset += pageSize {
		limit := pageSize
		if remaining := maxRows - seen; remaining < limit {
			limit = remaining
		}
		if limit == 0 {
			break
		}

		rows, rerr := stockRepo.ListStockPage(ctx, pharmacyID, limit, offset)
		if rerr != nil {
			return nil, false, rerr
		}

		for _, row := range rows {
			seen++
			if row.Quantity == nil {
				continue // sin cantidad definida: fuera del conteo
			}
			qty := *row.Quantity
			if qty < 0 {
				qty = 0 // normalización defensiva de datos corruptos upstream
			}
			ts := domstock.Resolve(domstock.Overrides{
				Critical: row.CriticalThreshold,
				Low:      row.LowThreshold,
				Maximum:  row.MaxThreshold,
			}, settings)
			items = append(items, classified{
				StockRow:   row,
				Quantity:   qty,
				Thresholds: ts,
				Status:     domstock.ClassifyStatus(qty, ts),
				Rotation:   domstock.ClassifyRotation(qty, ts),
				Value:      row.Cost.Mul(decimal.NewFromInt(int64(qty))),
			})
		}

		if len(rows) < limit {
			return items, false, nil // última página
		}
		if seen >= maxRows {
			log.Warn().Str("pharmacy_id", pharmacyID).Int("processed", seen).
				Msg("stock: inventario supera el tope de filas, resultado truncado")
			return items, true, nil
		}
	}
	return items, truncated, nil
}
