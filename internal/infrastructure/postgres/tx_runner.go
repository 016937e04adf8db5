package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/HaosShot/zapateria-pos/internal/application/inventory"
	"github.com/HaosShot/zapateria-pos/internal/application/registrar"
	"github.com/HaosShot/zapateria-pos/internal/domain/repository"
)

// Ensure TxRunner implementa los puertos de ambos casos de uso transaccionales.
var _ inventory.TxRunner = (*SalesTxRunner)(nil)
var _ registrar.TxRunner = (*RegistrationTxRunner)(nil)

// SalesTxRunner ejecuta el flujo de inventario/ventas dentro de una transacción
// PostgreSQL (read-committed basta: el SELECT FOR UPDATE + UPDATE condicional
// serializan el decremento por producto).
type SalesTxRunner struct {
	pool *pgxpool.Pool
}

// NewSalesTxRunner construye el runner con el pool.
func NewSalesTxRunner(pool *pgxpool.Pool) *SalesTxRunner {
	return &SalesTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *SalesTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	logRepo repository.ActivityLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	saleRepo := NewSaleRepository(tx)
	logRepo := NewActivityLogRepository(tx)

	if err := fn(productRepo, saleRepo, logRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RegistrationTxRunner ejecuta el alta User + Employee + bitácora como una sola
// unidad: si el insert de Employee falla tras el de User, el Rollback deja el
// almacén exactamente como estaba.
type RegistrationTxRunner struct {
	pool *pgxpool.Pool
}

// NewRegistrationTxRunner construye el runner con el pool.
func NewRegistrationTxRunner(pool *pgxpool.Pool) *RegistrationTxRunner {
	return &RegistrationTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *RegistrationTxRunner) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	employeeRepo repository.EmployeeRepository,
	logRepo repository.ActivityLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	employeeRepo := NewEmployeeRepository(tx)
	logRepo := NewActivityLogRepository(tx)

	if err := fn(userRepo, employeeRepo, logRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
