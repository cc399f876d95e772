package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/farmacia-suite/internal/application/dto"
	"github.com/tu-usuario/farmacia-suite/internal/domain"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

// CreateSaleUseCase registra una venta de mostrador: congela precios, aplica
// promociones vigentes, descuenta lotes FEFO y liquida los pagos. Todo el
// movimiento de inventario y la venta se persisten en una sola transacción.
type CreateSaleUseCase struct {
	tx          TxRunner
	sessionRepo repository.CashSessionRepository
	promoRepo   repository.PromotionRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	tx TxRunner,
	sessionRepo repository.CashSessionRepository,
	promoRepo repository.PromotionRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{tx: tx, sessionRepo: sessionRepo, promoRepo: promoRepo}
}

// Execute registra la venta. Devuelve:
//   - ErrSessionClosed si la sesión no existe, no es del usuario o no está abierta.
//   - ErrInsufficientStock si algún producto no tiene remanente vigente suficiente.
//   - ErrPaymentMismatch si los pagos no liquidan exactamente el total.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, pharmacyID, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	session, err := uc.sessionRepo.GetByID(in.CashSessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.PharmacyID != pharmacyID || session.UserID != userID || session.Status != entity.CashSessionOpen {
		return nil, domain.ErrSessionClosed
	}

	now := time.Now()
	promos, err := uc.promoRepo.ListActiveAt(ctx, pharmacyID, now)
	if err != nil {
		// Las promociones no bloquean la venta: se registra sin descuento.
		log.Warn().Err(err).Str("pharmacy_id", pharmacyID).Msg("No se pudieron leer promociones; venta sin descuentos")
		promos = nil
	}

	var sale *entity.Sale
	var saleItems []entity.SaleItem
	var salePayments []entity.SalePayment

	err = uc.tx.Run(ctx, func(
		saleRepo repository.SaleRepository,
		lotRepo repository.LotRepository,
		productRepo repository.ProductRepository,
	) error {
		subtotal := decimal.Zero
		totalDiscount := decimal.Zero
		saleID := uuid.New().String()
		saleItems = saleItems[:0]

		for _, line := range in.Items {
			product, err := productRepo.GetByID(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil || product.PharmacyID != pharmacyID || !product.Active {
				return fmt.Errorf("producto %s: %w", line.ProductID, domain.ErrNotFound)
			}

			if err := deductFEFO(lotRepo, product.ID, line.Quantity, now); err != nil {
				return fmt.Errorf("producto %s: %w", product.Name, err)
			}

			gross := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			discount := gross.Mul(bestDiscountPct(promos, product.ID)).Div(decimal.NewFromInt(100)).Round(2)
			lineSubtotal := gross.Sub(discount)

			saleItems = append(saleItems, entity.SaleItem{
				ID:          uuid.New().String(),
				SaleID:      saleID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				UnitPrice:   product.Price,
				Discount:    discount,
				Subtotal:    lineSubtotal,
			})
			subtotal = subtotal.Add(gross)
			totalDiscount = totalDiscount.Add(discount)
		}

		total := subtotal.Sub(totalDiscount)
		payments, err := settlePayments(saleID, in.Payments, total)
		if err != nil {
			return err
		}
		salePayments = payments

		number, err := saleRepo.NextNumber(pharmacyID)
		if err != nil {
			return err
		}
		sale = &entity.Sale{
			ID:            saleID,
			PharmacyID:    pharmacyID,
			CashSessionID: session.ID,
			UserID:        userID,
			Number:        number,
			Subtotal:      subtotal,
			Discount:      totalDiscount,
			Total:         total,
			Status:        entity.SaleStatusCompleted,
			CreatedAt:     now,
		}
		return saleRepo.Create(sale, saleItems, salePayments)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("pharmacy_id", pharmacyID).
		Str("sale_id", sale.ID).
		Int64("number", sale.Number).
		Str("total", sale.Total.String()).
		Msg("Venta registrada")
	return toSaleResponse(sale, saleItems, salePayments), nil
}

// deductFEFO descuenta `quantity` unidades del producto recorriendo sus lotes
// vigentes en orden de vencimiento más próximo primero. Los lotes vencidos no
// participan aunque tengan remanente.
func deductFEFO(lotRepo repository.LotRepository, productID string, quantity int, now time.Time) error {
	lots, err := lotRepo.ActiveLotsForUpdate(productID, now)
	if err != nil {
		return err
	}
	available := 0
	for _, l := range lots {
		available += l.Quantity
	}
	if available < quantity {
		return domain.ErrInsufficientStock
	}
	remaining := quantity
	for _, l := range lots {
		if remaining == 0 {
			break
		}
		take := l.Quantity
		if take > remaining {
			take = remaining
		}
		if err := lotRepo.UpdateQuantity(l.ID, l.Quantity-take); err != nil {
			return err
		}
		remaining -= take
	}
	return nil
}

// bestDiscountPct devuelve el mayor porcentaje de descuento aplicable al
// producto: promociones del producto y promociones generales compiten, gana
// la de mayor porcentaje.
func bestDiscountPct(promos []*entity.Promotion, productID string) decimal.Decimal {
	best := decimal.Zero
	for _, p := range promos {
		if p.ProductID != "" && p.ProductID != productID {
			continue
		}
		if p.DiscountPct.GreaterThan(best) {
			best = p.DiscountPct
		}
	}
	return best
}

// settlePayments valida que los pagos liquiden el total y calcula la vuelta.
// Solo el tramo en efectivo puede exceder lo que le corresponde: el excedente
// es la vuelta. Los medios electrónicos deben sumar exacto.
func settlePayments(saleID string, in []dto.SalePaymentRequest, total decimal.Decimal) ([]entity.SalePayment, error) {
	paid := decimal.Zero
	nonCash := decimal.Zero
	cashIdx := -1
	payments := make([]entity.SalePayment, 0, len(in))
	for i, p := range in {
		if p.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrPaymentMismatch
		}
		paid = paid.Add(p.Amount)
		if p.Method == entity.PaymentCash {
			if cashIdx >= 0 {
				// Dos tramos CASH no tienen sentido; el front los consolida.
				return nil, domain.ErrPaymentMismatch
			}
			cashIdx = i
		} else {
			nonCash = nonCash.Add(p.Amount)
		}
		payments = append(payments, entity.SalePayment{
			ID:     uuid.New().String(),
			SaleID: saleID,
			Method: p.Method,
			Amount: p.Amount,
			Change: decimal.Zero,
		})
	}
	if paid.LessThan(total) || nonCash.GreaterThan(total) {
		return nil, domain.ErrPaymentMismatch
	}
	change := paid.Sub(total)
	if change.GreaterThan(decimal.Zero) {
		if cashIdx < 0 {
			// Sin efectivo no hay cómo dar vuelta: el pago debe ser exacto.
			return nil, domain.ErrPaymentMismatch
		}
		payments[cashIdx].Change = change
	}
	return payments, nil
}

func toSaleResponse(s *entity.Sale, items []entity.SaleItem, payments []entity.SalePayment) *dto.SaleResponse {
	out := &dto.SaleResponse{
		ID:        s.ID,
		Number:    s.Number,
		Subtotal:  s.Subtotal,
		Discount:  s.Discount,
		Total:     s.Total,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
			Subtotal:    it.Subtotal,
		})
	}
	for _, p := range payments {
		out.Payments = append(out.Payments, dto.SalePaymentResponse{
			Method: p.Method,
			Amount: p.Amount,
			Change: p.Change,
		})
	}
	return out
}
