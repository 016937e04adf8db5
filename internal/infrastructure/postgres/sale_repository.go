package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/HaosShot/zapateria-pos/internal/domain/entity"
	"github.com/HaosShot/zapateria-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
// Las ventas nunca se actualizan ni se borran.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste el snapshot de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_name, brand, size, quantity, unit_price, total_price, sold_by, customer_name, sale_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductName, sale.Brand, sale.Size, sale.Quantity,
		sale.UnitPrice, sale.TotalPrice, sale.SoldBy, sale.CustomerName, sale.SaleDate,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID. Devuelve nil, nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, product_name, brand, size, quantity, unit_price, total_price, sold_by, COALESCE(customer_name, ''), sale_date
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProductName, &s.Brand, &s.Size, &s.Quantity,
		&s.UnitPrice, &s.TotalPrice, &s.SoldBy, &s.CustomerName, &s.SaleDate,
	)
	if err != nil {
		// Id malformado (no UUID) = no encontrado, igual que en productos.
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List histórico de ventas, más recientes primero.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, product_name, brand, size, quantity, unit_price, total_price, sold_by, COALESCE(customer_name, ''), sale_date
		FROM sales ORDER BY sale_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ProductName, &s.Brand, &s.Size, &s.Quantity,
			&s.UnitPrice, &s.TotalPrice, &s.SoldBy, &s.CustomerName, &s.SaleDate); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
