package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/farmacia-suite/internal/application/analytics"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
	"github.com/tu-usuario/farmacia-suite/internal/domain/stock"
)

const testPharmacy = "ph-1"

type fakeAnalyticsRepo struct {
	calls int
}

func (r *fakeAnalyticsRepo) GetSalesMetrics(context.Context, string, time.Time, time.Time) (decimal.Decimal, decimal.Decimal, error) {
	r.calls++
	return decimal.NewFromInt(120_000), decimal.NewFromInt(70_000), nil
}

func (r *fakeAnalyticsRepo) GetTopProducts(context.Context, string, time.Time, time.Time, int) ([]repository.TopProductRow, error) {
	r.calls++
	return []repository.TopProductRow{{
		ProductID:    "p1",
		Code:         "C-p1",
		ProductName:  "Ibuprofeno",
		UnitsSold:    decimal.NewFromInt(40),
		GrossRevenue: decimal.NewFromInt(200_000),
		TotalCost:    decimal.NewFromInt(120_000),
	}}, nil
}

func (r *fakeAnalyticsRepo) GetPaymentBreakdown(context.Context, string, time.Time, time.Time) ([]repository.PaymentBreakdownRow, error) {
	r.calls++
	return []repository.PaymentBreakdownRow{
		{Method: "CASH", Amount: decimal.NewFromInt(600_000), Count: 30},
		{Method: "CARD", Amount: decimal.NewFromInt(300_000), Count: 12},
	}, nil
}

type fakeOverview struct {
	distribution map[stock.Status]int
}

func (f *fakeOverview) GetOverview(context.Context, string) (*dto.StockOverviewDTO, error) {
	return &dto.StockOverviewDTO{Distribution: f.distribution}, nil
}

type fakeCache struct {
	store map[string][]byte
	sets  int
	hits  int
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	raw, ok := c.store[key]
	if ok {
		c.hits++
	}
	return raw, ok
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	c.store[key] = value
	c.sets++
}

// TestGetSummary arma los KPIs y el widget de stock a partir de las consultas.
func TestGetSummary(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	overview := &fakeOverview{distribution: map[stock.Status]int{
		stock.StatusRupture: 2,
		stock.StatusNormal:  40,
	}}
	uc := analytics.NewDashboardUseCase(repo, overview, nil, 0)

	out, err := uc.GetSummary(context.Background(), testPharmacy)
	require.NoError(t, err)

	assert.True(t, out.TodaySales.Equal(decimal.NewFromInt(120_000)), "ventas del día %s", out.TodaySales)
	assert.True(t, out.TodayMargin.Equal(decimal.NewFromInt(50_000)))
	assert.True(t, out.MonthlyMargin.Equal(decimal.NewFromInt(50_000)))
	assert.Equal(t, 4, repo.calls, "día, mes, top y medios de pago")

	require.Len(t, out.TopProducts, 1)
	assert.True(t, out.TopProducts[0].MarginPercentage.Equal(decimal.NewFromInt(40)), "margen %s", out.TopProducts[0].MarginPercentage)

	require.Len(t, out.PaymentBreakdown, 2)
	assert.Equal(t, 2, out.StockDistribution[stock.StatusRupture])
	assert.NotEmpty(t, out.DateLabel)
}

// TestGetSummary_Cache: la segunda llamada sale del caché sin tocar el repo.
func TestGetSummary_Cache(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	cache := &fakeCache{}
	uc := analytics.NewDashboardUseCase(repo, &fakeOverview{}, cache, time.Minute)

	_, err := uc.GetSummary(context.Background(), testPharmacy)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
	callsAfterFirst := repo.calls

	out, err := uc.GetSummary(context.Background(), testPharmacy)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, callsAfterFirst, repo.calls, "sin consultas nuevas")
	assert.True(t, out.TodaySales.Equal(decimal.NewFromInt(120_000)))
}
