package stock

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
	domstock "github.com/tu-usuario/farmacia-suite/internal/domain/stock"
)

// Tamaños de las listas top del panorama de stock.
const (
	criticalTopN   = 20
	ruptureTopN    = 10
	fastMovingTopN = 10
)

// OverviewUseCase construye el panorama de inventario: distribución de
// productos por estado más las listas top para los widgets del dashboard.
// Solo lecturas; nunca muta estado persistido.
type OverviewUseCase struct {
	stockRepo    repository.StockRepository
	settingsRepo repository.AlertSettingsRepository
}

// NewOverviewUseCase construye el caso de uso.
func NewOverviewUseCase(
	stockRepo repository.StockRepository,
	settingsRepo repository.AlertSettingsRepository,
) *OverviewUseCase {
	return &OverviewUseCase{stockRepo: stockRepo, settingsRepo: settingsRepo}
}

// GetOverview clasifica el inventario de la farmacia y arma la distribución
// y las tres listas top. Si la lectura upstream falla, devuelve un resultado
// vacío en lugar de propagar el error: el dashboard prefiere disponibilidad
// sobre exactitud (fail-open).
func (uc *OverviewUseCase) GetOverview(ctx context.Context, pharmacyID string) (*dto.StockOverviewDTO, error) {
	out := emptyOverview()

	items, truncated, err := collect(ctx, uc.stockRepo, uc.settingsRepo, pharmacyID)
	if err != nil {
		log.Error().Err(err).Str("pharmacy_id", pharmacyID).
			Msg("stock: fallo leyendo inventario, panorama vacío")
		return out, nil
	}
	out.Truncated = truncated
	out.Processed = len(items)

	// Distribución: un contador por estado; la suma de contadores es igual al
	// número de filas con cantidad definida.
	for _, it := range items {
		out.Distribution[it.Status]++
	}

	// criticalTop: críticos con existencias, primero los de rotación rápida,
	// luego menor cantidad.
	var criticals []classified
	for _, it := range items {
		if it.Status == domstock.StatusCritique && it.Quantity > 0 {
			criticals = append(criticals, it)
		}
	}
	sort.SliceStable(criticals, func(i, j int) bool {
		a, b := criticals[i], criticals[j]
		aFast := a.Rotation == domstock.RotationRapide
		bFast := b.Rotation == domstock.RotationRapide
		if aFast != bFast {
			return aFast
		}
		return a.Quantity < b.Quantity
	})
	out.CriticalTop = toDTOs(firstN(criticals, criticalTopN))

	// ruptureTop: agotados en orden estable por nombre (el repositorio ya
	// entrega las páginas ordenadas por nombre).
	var ruptures []classified
	for _, it := range items {
		if it.Status == domstock.StatusRupture {
			ruptures = append(ruptures, it)
		}
	}
	out.RuptureTop = toDTOs(firstN(ruptures, ruptureTopN))

	// fastMovingTop: rotación rápida con existencias, menor cantidad primero.
	var fast []classified
	for _, it := range items {
		if it.Rotation == domstock.RotationRapide && it.Quantity > 0 {
			fast = append(fast, it)
		}
	}
	sort.SliceStable(fast, func(i, j int) bool {
		return fast[i].Quantity < fast[j].Quantity
	})
	out.FastMoving = toDTOs(firstN(fast, fastMovingTopN))

	return out, nil
}

// Distribution devuelve solo la distribución por estado, para el corte de
// inventario de los reportes mensuales.
func (uc *OverviewUseCase) Distribution(ctx context.Context, pharmacyID string) (map[domstock.Status]int, error) {
	out, err := uc.GetOverview(ctx, pharmacyID)
	if err != nil {
		return nil, err
	}
	return out.Distribution, nil
}

func emptyOverview() *dto.StockOverviewDTO {
	dist := make(map[domstock.Status]int, len(domstock.AllStatuses))
	for _, s := range domstock.AllStatuses {
		dist[s] = 0
	}
	return &dto.StockOverviewDTO{
		Distribution: dist,
		CriticalTop:  []dto.ClassifiedProductDTO{},
		RuptureTop:   []dto.ClassifiedProductDTO{},
		FastMoving:   []dto.ClassifiedProductDTO{},
	}
}

func firstN(items []classified, n int) []classified {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func toDTOs(items []classified) []dto.ClassifiedProductDTO {
	out := make([]dto.ClassifiedProductDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ClassifiedProductDTO{
			ProductID: it.ProductID,
			Code:      it.Code,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Status:    it.Status,
			Rotation:  it.Rotation,
			Critical:  it.Thresholds.Critical,
			Low:       it.Thresholds.Low,
			Maximum:   it.Thresholds.Maximum,
			Value:     it.Value,
		})
	}
	return out
}
