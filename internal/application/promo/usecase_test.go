package promo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/application/promo"
	"github.com/tu-usuario/farmacia-suite/internal/domain"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
)

const testPharmacy = "ph-1"

type fakePromoRepo struct {
	byID map[string]*entity.Promotion
}

func (r *fakePromoRepo) Create(p *entity.Promotion) error {
	if r.byID == nil {
		r.byID = map[string]*entity.Promotion{}
	}
	r.byID[p.ID] = p
	return nil
}

func (r *fakePromoRepo) GetByID(id string) (*entity.Promotion, error) { return r.byID[id], nil }
func (r *fakePromoRepo) Update(p *entity.Promotion) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakePromoRepo) ListByPharmacy(string, int, int) ([]*entity.Promotion, error) {
	var out []*entity.Promotion
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePromoRepo) ListActiveAt(context.Context, string, time.Time) ([]*entity.Promotion, error) {
	return nil, nil
}

type fakeProductRepo struct {
	product *entity.Product
}

func (r *fakeProductRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if r.product != nil && r.product.ID == id {
		return r.product, nil
	}
	return nil, nil
}
func (r *fakeProductRepo) GetByPharmacyAndCode(string, string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductRepo) ListByPharmacy(string, bool, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Deactivate(string) error { return nil }

func validRequest() dto.CreatePromotionRequest {
	now := time.Now()
	return dto.CreatePromotionRequest{
		Name:        "Semana del dolor",
		DiscountPct: decimal.NewFromInt(15),
		StartsAt:    now.Add(-time.Hour),
		EndsAt:      now.Add(24 * time.Hour),
	}
}

// TestCreatePromotion valida porcentaje, ventana y pertenencia del producto.
func TestCreatePromotion(t *testing.T) {
	repo := &fakePromoRepo{}
	products := &fakeProductRepo{product: &entity.Product{ID: "p1", PharmacyID: testPharmacy}}
	uc := promo.NewUseCase(repo, products)

	out, err := uc.Create(testPharmacy, validRequest())
	require.NoError(t, err)
	assert.True(t, out.Active)
	assert.True(t, out.ValidNow, "vigente dentro de su ventana")

	// Porcentaje fuera de rango
	bad := validRequest()
	bad.DiscountPct = decimal.NewFromInt(120)
	_, err = uc.Create(testPharmacy, bad)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	bad = validRequest()
	bad.DiscountPct = decimal.Zero
	_, err = uc.Create(testPharmacy, bad)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// Ventana invertida
	bad = validRequest()
	bad.StartsAt, bad.EndsAt = bad.EndsAt, bad.StartsAt
	_, err = uc.Create(testPharmacy, bad)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// Producto de otra farmacia
	bad = validRequest()
	bad.ProductID = "ajeno"
	_, err = uc.Create(testPharmacy, bad)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// TestDeactivatePromotion apaga la promoción y deja de ser vigente.
func TestDeactivatePromotion(t *testing.T) {
	repo := &fakePromoRepo{}
	uc := promo.NewUseCase(repo, &fakeProductRepo{})

	out, err := uc.Create(testPharmacy, validRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(testPharmacy, out.ID))
	assert.False(t, repo.byID[out.ID].Active)
	assert.False(t, repo.byID[out.ID].ValidAt(time.Now()))

	err = uc.Deactivate(testPharmacy, "no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
