package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/HaosShot/zapateria-pos/internal/domain"
	"github.com/HaosShot/zapateria-pos/internal/domain/entity"
	"github.com/HaosShot/zapateria-pos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, brand, size, price, stock, added_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Brand, product.Size,
		product.Price, product.Stock, product.AddedBy, product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, brand, size, price, stock, added_by, created_at
		FROM products WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
// Solo tiene sentido cuando el Querier es una transacción.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, brand, size, price, stock, added_by, created_at
		FROM products WHERE id = $1
		FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *ProductRepo) scanOne(query, id string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Brand, &p.Size, &p.Price, &p.Stock, &p.AddedBy, &p.CreatedAt,
	)
	if err != nil {
		// Un id que no parsea como UUID no puede identificar fila alguna:
		// mismo resultado observable que un id inexistente.
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// DecrementStock decremento condicional atómico: la cláusula stock >= $2
// garantiza que el stock nunca quede negativo aunque dos ventas compitan.
func (r *ProductRepo) DecrementStock(id string, quantity int) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock - $2 WHERE id = $1 AND stock >= $2`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// ListAvailable productos con stock > 0.
func (r *ProductRepo) ListAvailable() ([]*entity.Product, error) {
	query := `
		SELECT id, name, brand, size, price, stock, added_by, created_at
		FROM products WHERE stock > 0 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Size, &p.Price, &p.Stock, &p.AddedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
