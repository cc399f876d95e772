package pos

import (
	"context"

	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el descuento de lotes y el
// registro de la venta sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		lotRepo repository.LotRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReceiptRenderer genera el recibo de una venta (PDF para impresión o envío).
type ReceiptRenderer interface {
	Render(pharmacy *entity.Pharmacy, sale *entity.Sale, items []entity.SaleItem, payments []entity.SalePayment) ([]byte, error)
}
