package inventory

import (
	"context"

	"github.com/HaosShot/zapateria-pos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que venta + decremento de stock +
// bitácora se confirmen o reviertan como un solo efecto.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		logRepo repository.ActivityLogRepository,
	) error) error
}
