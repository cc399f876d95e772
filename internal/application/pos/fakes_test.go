package pos_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/farmacia-suite/internal/application/pos"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

const (
	testPharmacy = "ph-1"
	testUser     = "user-1"
	testSession  = "sess-1"
)

// fakeTxRunner ejecuta el callback directamente con los fakes; registra si
// el callback falló para verificar que nada se "persistió" a medias.
type fakeTxRunner struct {
	saleRepo    *fakeSaleRepo
	lotRepo     *fakeLotRepo
	productRepo *fakeProductRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	lotRepo repository.LotRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.saleRepo, r.lotRepo, r.productRepo)
}

var _ pos.TxRunner = (*fakeTxRunner)(nil)

type fakeSaleRepo struct {
	created  *entity.Sale
	items    []entity.SaleItem
	payments []entity.SalePayment
	nextNum  int64
	voided   map[string]string
}

func (r *fakeSaleRepo) Create(sale *entity.Sale, items []entity.SaleItem, payments []entity.SalePayment) error {
	r.created = sale
	r.items = items
	r.payments = payments
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, []entity.SaleItem, []entity.SalePayment, error) {
	if r.created == nil || r.created.ID != id {
		return nil, nil, nil, nil
	}
	return r.created, r.items, r.payments, nil
}

func (r *fakeSaleRepo) ListBySession(string, int, int) ([]*entity.Sale, error) {
	if r.created == nil {
		return nil, nil
	}
	return []*entity.Sale{r.created}, nil
}

func (r *fakeSaleRepo) NextNumber(string) (int64, error) {
	r.nextNum++
	return r.nextNum, nil
}

func (r *fakeSaleRepo) Void(id, reason string) error {
	if r.voided == nil {
		r.voided = map[string]string{}
	}
	r.voided[id] = reason
	if r.created != nil && r.created.ID == id {
		r.created.Status = entity.SaleStatusVoided
		r.created.VoidReason = reason
	}
	return nil
}

type fakeLotRepo struct {
	lots map[string]*entity.Lot // por ID
}

func (r *fakeLotRepo) Create(lot *entity.Lot) error {
	if r.lots == nil {
		r.lots = map[string]*entity.Lot{}
	}
	r.lots[lot.ID] = lot
	return nil
}

func (r *fakeLotRepo) GetByID(id string) (*entity.Lot, error) { return r.lots[id], nil }

func (r *fakeLotRepo) ListByProduct(productID string) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, l := range r.lots {
		if l.ProductID == productID {
			out = append(out, l)
		}
	}
	return out, nil
}

// ActiveLotsForUpdate replica el contrato del repo real: solo lotes vigentes
// con remanente, ordenados por vencimiento más próximo primero.
func (r *fakeLotRepo) ActiveLotsForUpdate(productID string, now time.Time) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, l := range r.lots {
		if l.ProductID == productID && l.Quantity > 0 && !l.Expired(now) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpiryDate.Before(out[j].ExpiryDate) })
	return out, nil
}

func (r *fakeLotRepo) UpdateQuantity(lotID string, quantity int) error {
	r.lots[lotID].Quantity = quantity
	return nil
}

func (r *fakeLotRepo) ExpiringSoon(context.Context, string, int, int) ([]*entity.Lot, error) {
	return nil, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if r.products == nil {
		r.products = map[string]*entity.Product{}
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }

func (r *fakeProductRepo) GetByPharmacyAndCode(string, string) (*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error { return nil }

func (r *fakeProductRepo) ListByPharmacy(string, bool, int, int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Deactivate(string) error { return nil }

type fakeSessionRepo struct {
	sessions map[string]*entity.CashSession
	received decimal.Decimal
	change   decimal.Decimal
}

func (r *fakeSessionRepo) Create(s *entity.CashSession) error {
	if r.sessions == nil {
		r.sessions = map[string]*entity.CashSession{}
	}
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeSessionRepo) GetByID(id string) (*entity.CashSession, error) {
	return r.sessions[id], nil
}

func (r *fakeSessionRepo) GetOpenByUser(userID string) (*entity.CashSession, error) {
	for _, s := range r.sessions {
		if s.UserID == userID && s.Status == entity.CashSessionOpen {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) Close(s *entity.CashSession) error {
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeSessionRepo) SumCashMovements(string) (decimal.Decimal, decimal.Decimal, error) {
	return r.received, r.change, nil
}

type fakePromoRepo struct {
	promos []*entity.Promotion
}

func (r *fakePromoRepo) Create(p *entity.Promotion) error           { return nil }
func (r *fakePromoRepo) GetByID(string) (*entity.Promotion, error)  { return nil, nil }
func (r *fakePromoRepo) Update(p *entity.Promotion) error           { return nil }
func (r *fakePromoRepo) ListByPharmacy(string, int, int) ([]*entity.Promotion, error) {
	return r.promos, nil
}

func (r *fakePromoRepo) ListActiveAt(_ context.Context, _ string, at time.Time) ([]*entity.Promotion, error) {
	var out []*entity.Promotion
	for _, p := range r.promos {
		if p.ValidAt(at) {
			out = append(out, p)
		}
	}
	return out, nil
}

// --- material de prueba ---

func openSession() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*entity.CashSession{
		testSession: {
			ID:            testSession,
			PharmacyID:    testPharmacy,
			UserID:        testUser,
			OpeningAmount: decimal.NewFromInt(50_000),
			Status:        entity.CashSessionOpen,
			OpenedAt:      time.Now(),
		},
	}}
}

func product(id, name string, price int64) *entity.Product {
	return &entity.Product{
		ID:         id,
		PharmacyID: testPharmacy,
		Code:       "C-" + id,
		Name:       name,
		Price:      decimal.NewFromInt(price),
		Cost:       decimal.NewFromInt(price / 2),
		Active:     true,
	}
}

func lot(id, productID string, quantity int, expiresInDays int) *entity.Lot {
	return &entity.Lot{
		ID:         id,
		PharmacyID: testPharmacy,
		ProductID:  productID,
		LotNumber:  "L-" + id,
		Quantity:   quantity,
		ExpiryDate: time.Now().AddDate(0, 0, expiresInDays),
	}
}
