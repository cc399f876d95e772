package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/farmacia-suite/internal/domain/stock"
)

// ClassifiedProductDTO un producto ya clasificado, listo para widgets.
type ClassifiedProductDTO struct {
	ProductID string          `json:"product_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Status    stock.Status    `json:"status"`
	Rotation  stock.Rotation  `json:"rotation"`
	Critical  int             `json:"critical_threshold"`
	Low       int             `json:"low_threshold"`
	Maximum   int             `json:"max_threshold"`
	Value     decimal.Decimal `json:"stock_value"` // cantidad × costo unitario
}

// StockOverviewDTO respuesta de GET /api/stock/overview: distribución por
// estado más las tres listas top-N, sin formateo ni localización.
type StockOverviewDTO struct {
	Distribution map[stock.Status]int   `json:"distribution"`
	CriticalTop  []ClassifiedProductDTO `json:"critical_top"`
	RuptureTop   []ClassifiedProductDTO `json:"rupture_top"`
	FastMoving   []ClassifiedProductDTO `json:"fast_moving_top"`
	Processed    int                    `json:"processed"` // filas con cantidad definida
	Truncated    bool                   `json:"truncated"` // se alcanzó el tope de filas
}

// ReorderSuggestionDTO sugerencia de pedido para un producto bajo.
type ReorderSuggestionDTO struct {
	ProductID     string          `json:"product_id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Quantity      int             `json:"current_quantity"`
	Status        stock.Status    `json:"status"`
	SuggestedQty  int             `json:"suggested_quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Priority      int             `json:"priority"` // 1 = más urgente
}

// AlertSettingsRequest PUT /api/stock/alert-settings. Umbrales opcionales.
type AlertSettingsRequest struct {
	CriticalThreshold *int   `json:"critical_threshold" validate:"omitempty,min=0"`
	LowThreshold      *int   `json:"low_threshold" validate:"omitempty,min=0"`
	MaxThreshold      *int   `json:"max_threshold" validate:"omitempty,min=0"`
	EmailEnabled      bool   `json:"email_enabled"`
	AlertEmail        string `json:"alert_email" validate:"omitempty,email"`
}

// AlertSettingsResponse configuración vigente más los umbrales efectivos
// (tras resolver contra los defaults del sistema).
type AlertSettingsResponse struct {
	CriticalThreshold *int   `json:"critical_threshold"`
	LowThreshold      *int   `json:"low_threshold"`
	MaxThreshold      *int   `json:"max_threshold"`
	EmailEnabled      bool   `json:"email_enabled"`
	AlertEmail        string `json:"alert_email,omitempty"`
	EffectiveCritical int    `json:"effective_critical"`
	EffectiveLow      int    `json:"effective_low"`
	EffectiveMax      int    `json:"effective_max"`
}

// NotificationDTO alerta persistida para el panel.
type NotificationDTO struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Priority  string `json:"priority"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
	Read      bool   `json:"read"`
}
