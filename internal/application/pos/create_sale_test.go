package pos_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/application/pos"
	"github.com/tu-usuario/farmacia-suite/internal/domain"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
)

func newSaleDeps() (*fakeTxRunner, *fakeSessionRepo, *fakePromoRepo) {
	tx := &fakeTxRunner{
		saleRepo:    &fakeSaleRepo{},
		lotRepo:     &fakeLotRepo{lots: map[string]*entity.Lot{}},
		productRepo: &fakeProductRepo{products: map[string]*entity.Product{}},
	}
	return tx, openSession(), &fakePromoRepo{}
}

func cash(amount int64) dto.SalePaymentRequest {
	return dto.SalePaymentRequest{Method: entity.PaymentCash, Amount: decimal.NewFromInt(amount)}
}

func card(amount int64) dto.SalePaymentRequest {
	return dto.SalePaymentRequest{Method: entity.PaymentCard, Amount: decimal.NewFromInt(amount)}
}

// TestCreateSale_DescuentaFEFO: los lotes se consumen por vencimiento más
// próximo primero, saltando lotes vencidos aunque tengan remanente.
func TestCreateSale_DescuentaFEFO(t *testing.T) {
	tx, sessions, promos := newSaleDeps()
	tx.productRepo.Create(product("p1", "Ibuprofeno", 5_000))
	tx.lotRepo.Create(lot("l-vencido", "p1", 50, -1)) // vencido, no participa
	tx.lotRepo.Create(lot("l-proximo", "p1", 3, 30))
	tx.lotRepo.Create(lot("l-lejano", "p1", 10, 180))

	uc := pos.NewCreateSaleUseCase(tx, sessions, promos)
	out, err := uc.Execute(context.Background(), testPharmacy, testUser, dto.CreateSaleRequest{
		CashSessionID: testSession,
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 5}},
		Payments:      []dto.SalePaymentRequest{cash(25_000)},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 50, tx.lotRepo.lots["l-vencido"].Quantity, "lote vencido intacto")
	assert.Equal(t, 0, tx.lotRepo.lots["l-proximo"].Quantity, "primero se agota el más próximo")
	assert.Equal(t, 8, tx.lotRepo.lots["l-lejano"].Quantity, "el resto sale del siguiente")
	assert.True(t, out.Total.Equal(decimal.NewFromInt(25_000)))
}

// TestCreateSale_StockInsuficiente: los lotes vencidos no cuentan como
// disponibilidad y nada queda descontado.
func TestCreateSale_StockInsuficiente(t *testing.T) {
	tx, sessions, promos := newSaleDeps()
	tx.productRepo.Create(product("p1", "Amoxicilina", 8_000))
	tx.lotRepo.Create(lot("l-vencido", "p1", 100, -10))
	tx.lotRepo.Create(lot("l-vigente", "p1", 2, 60))

	uc := pos.NewCreateSaleUseCase(tx, sessions, promos)
	_, err := uc.Execute(context.Background(), testPharmacy, testUser, dto.CreateSaleRequest{
		CashSessionID: testSession,
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 3}},
		Payments:      []dto.SalePaymentRequest{cash(24_000)},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, tx.saleRepo.created, "la venta no se persiste")
}

// TestCreateSale_SesionCerrada rechaza ventas fuera de una sesión abierta.
func TestCreateSale_SesionCerrada(t *testing.T) {
	tx, sessions, promos := newSaleDeps()
	sessions.sessions[testSession].Status = entity.CashSessionClosed

	uc := pos.NewCreateSaleUseCase(tx, sessions, promos)
	_, err := uc.Execute(context.Background(), testPharmacy, testUser, dto.CreateSaleRequest{
		CashSessionID: testSession,
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
		Payments:      []dto.SalePaymentRequest{cash(1_000)},
	})
	require.ErrorIs(t, err, domain.ErrSessionClosed)
}

// TestCreateSale_AplicaMejorPromocion: entre promoción de producto y general
// gana la de mayor porcentaje; el descuento se refleja en línea y total.
func TestCreateSale_AplicaMejorPromocion(t *testing.T) {
	tx, sessions, promos := newSaleDeps()
	tx.productRepo.Create(product("p1", "Acetaminofén", 10_000))
	tx.lotRepo.Create(lot("l1", "p1", 20, 90))
	now := time.Now()
	promos.promos = []*entity.Promotion{
		{ID: "pr-general", PharmacyID: testPharmacy, DiscountPct: decimal.NewFromInt(5),
			StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour), Active: true},
		{ID: "pr-producto", PharmacyID: testPharmacy, ProductID: "p1", DiscountPct: decimal.NewFromInt(10),
			StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour), Active: true},
		{ID: "pr-vencida", PharmacyID: testPharmacy, ProductID: "p1", DiscountPct: decimal.NewFromInt(50),
			StartsAt: now.Add(-2 * time.Hour), EndsAt: now.Add(-time.Hour), Active: true},
	}

	uc := pos.NewCreateSaleUseCase(tx, sessions, promos)
	out, err := uc.Execute(context.Background(), testPharmacy, testUser, dto.CreateSaleRequest{
		CashSessionID: testSession,
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 2}},
		Payments:      []dto.SalePaymentRequest{cash(18_000)},
	})
	require.NoError(t, err)

	// 2 × 10.000 = 20.000, descuento 10% = 2.000
	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(20_000)), "subtotal %s", out.Subtotal)
	assert.True(t, out.Discount.Equal(decimal.NewFromInt(2_000)), "descuento %s", out.Discount)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(18_000)), "total %s", out.Total)
}

// TestCreateSale_PagoDividido: la vuelta solo sale del tramo en efectivo.
func TestCreateSale_PagoDividido(t *testing.T) {
	tx, sessions, promos := newSaleDeps()
	tx.productRepo.Create(product("p1", "Losartán", 30_000))
	tx.lotRepo.Create(lot("l1", "p1", 10, 120))

	uc := pos.NewCreateSaleUseCase(tx, sessions, promos)
	out, err := uc.Execute(context.Background(), testPharmacy, testUser, dto.CreateSaleRequest{
		CashSessionID: testSession,
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
		Payments:      []dto.SalePaymentRequest{card(20_000), cash(15_000)},
	})
	require.NoError(t, err)
	require.Len(t, out.Payments, 2)

	assert.True(t, out.Payments[0].Change.Equal(decimal.Zero), "la tarjeta no da vuelta")
	assert.True(t, out.Payments[1].Change.Equal(decimal.NewFromInt(5_000)), "vuelta del efectivo")
}

// TestCreateSale_PagosInvalidos casos que deben fallar con ErrPaymentMismatch.
func TestCreateSale_PagosInvalidos(t *testing.T) {
	cases := []struct {
		name     string
		payments []dto.SalePaymentRequest
	}{
		{"pago insuficiente", []dto.SalePaymentRequest{cash(10_000)}},
		{"tarjeta excede el total", []dto.SalePaymentRequest{card(40_000)}},
		{"sobra sin tramo en efectivo", []dto.SalePaymentRequest{card(30_000), dto.SalePaymentRequest{Method: entity.PaymentTransfer, Amount: decimal.NewFromInt(5_000)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx, sessions, promos := newSaleDeps()
			tx.productRepo.Create(product("p1", "Losartán", 30_000))
			tx.lotRepo.Create(lot("l1", "p1", 10, 120))

			uc := pos.NewCreateSaleUseCase(tx, sessions, promos)
			_, err := uc.Execute(context.Background(), testPharmacy, testUser, dto.CreateSaleRequest{
				CashSessionID: testSession,
				Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
				Payments:      tc.payments,
			})
			require.ErrorIs(t, err, domain.ErrPaymentMismatch)
		})
	}
}

// TestVoidSale: solo ventas completadas se anulan; la segunda anulación falla.
func TestVoidSale(t *testing.T) {
	tx, sessions, promos := newSaleDeps()
	tx.productRepo.Create(product("p1", "Omeprazol", 12_000))
	tx.lotRepo.Create(lot("l1", "p1", 10, 120))

	create := pos.NewCreateSaleUseCase(tx, sessions, promos)
	out, err := create.Execute(context.Background(), testPharmacy, testUser, dto.CreateSaleRequest{
		CashSessionID: testSession,
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
		Payments:      []dto.SalePaymentRequest{cash(12_000)},
	})
	require.NoError(t, err)

	uc := pos.NewSaleUseCase(tx.saleRepo)
	require.NoError(t, uc.Void(testPharmacy, out.ID, "producto en mal estado"))
	assert.Equal(t, "producto en mal estado", tx.saleRepo.voided[out.ID])

	err = uc.Void(testPharmacy, out.ID, "otra vez")
	require.ErrorIs(t, err, domain.ErrConflict)
}
