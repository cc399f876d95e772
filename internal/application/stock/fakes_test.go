package stock_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos del módulo de stock.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	rows    []repository.StockRow
	fail    bool
	fetches int
}

func (f *fakeStockRepo) ListStockPage(_ context.Context, _ string, limit, offset int) ([]repository.StockRow, error) {
	f.fetches++
	if f.fail {
		return nil, errors.New("db caída")
	}
	if offset >= len(f.rows) {
		return []repository.StockRow{}, nil
	}
	end := offset + limit
	if end > len(f.rows) {
		end = len(f.rows)
	}
	return f.rows[offset:end], nil
}

type fakeSettingsRepo struct {
	settings *entity.AlertSettings
	fail     bool
}

func (f *fakeSettingsRepo) Get(string) (*entity.AlertSettings, error) {
	if f.fail {
		return nil, errors.New("db caída")
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Upsert(s *entity.AlertSettings) error {
	f.settings = s
	return nil
}

type fakeNotificationRepo struct {
	created []entity.Notification
}

func (f *fakeNotificationRepo) Create(n *entity.Notification) error {
	f.created = append(f.created, *n)
	return nil
}

func (f *fakeNotificationRepo) ListByPharmacy(string, bool, int, int) ([]*entity.Notification, error) {
	out := make([]*entity.Notification, 0, len(f.created))
	for i := range f.created {
		out = append(out, &f.created[i])
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(string) error { return nil }

type fakeMailer struct {
	to    string
	sent  []entity.Notification
	calls int
}

func (f *fakeMailer) SendStockAlerts(_ context.Context, to string, alerts []entity.Notification) error {
	f.calls++
	f.to = to
	f.sent = append(f.sent, alerts...)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de construcción de filas
// ──────────────────────────────────────────────────────────────────────────────

func qty(n int) *int { return &n }

func row(id, name string, quantity *int) repository.StockRow {
	return repository.StockRow{
		ProductID: id,
		Code:      "C-" + id,
		Name:      name,
		Quantity:  quantity,
		Price:     decimal.NewFromInt(100),
		Cost:      decimal.NewFromInt(60),
	}
}

// syntheticRows genera n filas con cantidad fija, nombres ordenados.
func syntheticRows(n, quantity int) []repository.StockRow {
	rows := make([]repository.StockRow, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, row(fmt.Sprintf("p%05d", i), fmt.Sprintf("Producto %05d", i), qty(quantity)))
	}
	return rows
}
