package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/HaosShot/zapateria-pos/internal/application/dto"
	"github.com/HaosShot/zapateria-pos/internal/domain"
	"github.com/HaosShot/zapateria-pos/internal/domain/entity"
	"github.com/HaosShot/zapateria-pos/internal/domain/repository"
)

// InventoryUseCase inventario y ventas (solo worker): alta de productos y
// registro transaccional de ventas con decremento de stock.
type InventoryUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	logRepo     repository.ActivityLogRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	logRepo repository.ActivityLogRepository,
) *InventoryUseCase {
	return &InventoryUseCase{txRunner: txRunner, productRepo: productRepo, saleRepo: saleRepo, logRepo: logRepo}
}

// AddProduct valida y persiste un producto nuevo, con su entrada de bitácora
// en la misma transacción. Name y Price son obligatorios; Price debe parsear
// como decimal positivo; Stock no puede ser negativo (por defecto 0).
func (uc *InventoryUseCase) AddProduct(ctx context.Context, session entity.Session, in dto.AddProductRequest) (*dto.ProductResponse, error) {
	if !session.IsWorker() {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.MissingField("name")
	}
	if strings.TrimSpace(in.Price) == "" {
		return nil, domain.MissingField("price")
	}
	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil || !price.IsPositive() {
		return nil, domain.BadPrice()
	}
	if in.Stock < 0 {
		return nil, &domain.ValidationError{Field: "stock", Reason: "no puede ser negativo"}
	}

	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Brand:     strings.TrimSpace(in.Brand),
		Size:      strings.TrimSpace(in.Size),
		Price:     price,
		Stock:     in.Stock,
		AddedBy:   session.UserID,
		CreatedAt: time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.SaleRepository,
		logRepo repository.ActivityLogRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return logRepo.Append(&entity.ActivityLogEntry{
			ID:        uuid.New().String(),
			UserID:    session.UserID,
			Action:    entity.ActionProductAdded,
			Details:   fmt.Sprintf("%s (%s), %s", product.Name, product.Brand, product.Price.StringFixed(2)),
			Timestamp: product.CreatedAt,
		})
	})
	if err != nil {
		return nil, err
	}

	return toProductResponse(product), nil
}

// Sell registra una venta: dentro de UNA transacción bloquea el producto
// (SELECT FOR UPDATE), inserta el snapshot de la venta, decrementa el stock con
// un UPDATE condicional (stock >= cantidad) y deja la entrada de bitácora.
// Cualquier fallo revierte los cuatro efectos; el stock nunca queda negativo
// aunque haya vendedores concurrentes sobre el mismo producto.
func (uc *InventoryUseCase) Sell(ctx context.Context, session entity.Session, in dto.SellRequest) (*dto.SaleResponse, error) {
	if !session.IsWorker() {
		return nil, domain.ErrForbidden
	}
	if in.ProductID == "" {
		return nil, domain.MissingField("product_id")
	}
	if in.Quantity < 1 {
		return nil, domain.BadQuantity()
	}

	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		logRepo repository.ActivityLogRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if product.Stock < in.Quantity {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		total := product.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
		sale = &entity.Sale{
			ID:           uuid.New().String(),
			ProductName:  product.Name,
			Brand:        product.Brand,
			Size:         product.Size,
			Quantity:     in.Quantity,
			UnitPrice:    product.Price,
			TotalPrice:   total,
			SoldBy:       session.UserID,
			CustomerName: strings.TrimSpace(in.CustomerName),
			SaleDate:     now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		// El UPDATE condicional es la última línea de defensa contra vender
		// por debajo de cero, además del chequeo bajo FOR UPDATE de arriba.
		if err := productRepo.DecrementStock(product.ID, in.Quantity); err != nil {
			return err
		}
		return logRepo.Append(&entity.ActivityLogEntry{
			ID:        uuid.New().String(),
			UserID:    session.UserID,
			Action:    entity.ActionSaleRecorded,
			Details:   fmt.Sprintf("%s x%d, Total: %s", product.Name, in.Quantity, total.StringFixed(2)),
			Timestamp: now,
		})
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale), nil
}

// ListAvailable productos con stock > 0 (lo que el formulario de venta muestra).
func (uc *InventoryUseCase) ListAvailable(session entity.Session) ([]*dto.ProductResponse, error) {
	if !session.IsWorker() && !session.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	products, err := uc.productRepo.ListAvailable()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetProduct lectura directa por ID.
func (uc *InventoryUseCase) GetProduct(session entity.Session, id string) (*dto.ProductResponse, error) {
	if !session.IsWorker() && !session.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// GetSale lectura del histórico inmutable (para el recibo).
func (uc *InventoryUseCase) GetSale(session entity.Session, id string) (*entity.Sale, error) {
	if !session.IsWorker() && !session.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}
	return sale, nil
}

// ListSales histórico de ventas.
func (uc *InventoryUseCase) ListSales(session entity.Session, limit, offset int) ([]*dto.SaleResponse, error) {
	if !session.IsWorker() && !session.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	sales, err := uc.saleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Brand:     p.Brand,
		Size:      p.Size,
		Price:     p.Price.StringFixed(2),
		Stock:     p.Stock,
		AddedBy:   p.AddedBy,
		CreatedAt: p.CreatedAt,
	}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:           s.ID,
		ProductName:  s.ProductName,
		Brand:        s.Brand,
		Size:         s.Size,
		Quantity:     s.Quantity,
		UnitPrice:    s.UnitPrice.StringFixed(2),
		TotalPrice:   s.TotalPrice.StringFixed(2),
		SoldBy:       s.SoldBy,
		CustomerName: s.CustomerName,
		SaleDate:     s.SaleDate,
	}
}
