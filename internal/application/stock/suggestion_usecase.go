package stock

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
	domstock "github.com/tu-usuario/farmacia-suite/internal/domain/stock"
)

const defaultSuggestionLimit = 50

// SuggestionUseCase genera la lista de reposición sugerida: productos en o
// por debajo del umbral bajo, con cantidad de pedido para volver al máximo.
type SuggestionUseCase struct {
	stockRepo    repository.StockRepository
	settingsRepo repository.AlertSettingsRepository
}

// NewSuggestionUseCase construye el caso de uso.
func NewSuggestionUseCase(
	stockRepo repository.StockRepository,
	settingsRepo repository.AlertSettingsRepository,
) *SuggestionUseCase {
	return &SuggestionUseCase{stockRepo: stockRepo, settingsRepo: settingsRepo}
}

// GenerateSuggestions devuelve hasta `limit` sugerencias (0 = default),
// ordenadas por severidad del estado y luego mayor déficit contra el máximo.
func (uc *SuggestionUseCase) GenerateSuggestions(ctx context.Context, pharmacyID string, limit int) ([]dto.ReorderSuggestionDTO, error) {
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}

	items, _, err := collect(ctx, uc.stockRepo, uc.settingsRepo, pharmacyID)
	if err != nil {
		return nil, fmt.Errorf("sugerencias: leer inventario: %w", err)
	}

	var candidates []classified
	for _, it := range items {
		// En o por debajo del umbral bajo: rupture, critique o faible.
		if it.Quantity <= it.Thresholds.Low {
			candidates = append(candidates, it)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Status != b.Status {
			return domstock.MoreSevere(a.Status, b.Status)
		}
		// Mayor déficit relativo al máximo primero
		return (a.Thresholds.Maximum - a.Quantity) > (b.Thresholds.Maximum - b.Quantity)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	suggestions := make([]dto.ReorderSuggestionDTO, 0, len(candidates))
	for i, it := range candidates {
		suggested := it.Thresholds.Maximum - it.Quantity
		if suggested < 0 {
			suggested = 0
		}
		qty := decimal.NewFromInt(int64(suggested))
		suggestions = append(suggestions, dto.ReorderSuggestionDTO{
			ProductID:     it.ProductID,
			Code:          it.Code,
			Name:          it.Name,
			Quantity:      it.Quantity,
			Status:        it.Status,
			SuggestedQty:  suggested,
			UnitCost:      it.Cost,
			EstimatedCost: it.Cost.Mul(qty).Round(2),
			Priority:      i + 1,
		})
	}
	return suggestions, nil
}
