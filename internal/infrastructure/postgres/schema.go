package postgres

import (
	"context"
	"fmt"
)

// DDL de las cinco relaciones. IDs UUID generados por la aplicación;
// username único (cierra la carrera de registros duplicados a nivel de BD);
// rol restringido por CHECK; stock con CHECK >= 0 como red de seguridad final;
// employees en cascada con su user.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(50) UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role VARCHAR(20) NOT NULL CHECK (role IN ('admin', 'worker')),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id UUID PRIMARY KEY,
		full_name VARCHAR(100) NOT NULL,
		position VARCHAR(50),
		birth_date DATE,
		phone VARCHAR(20),
		email VARCHAR(100),
		photo BYTEA,
		user_id UUID REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		brand VARCHAR(50),
		size VARCHAR(10),
		price DECIMAL(10, 2) NOT NULL,
		stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
		added_by UUID REFERENCES users(id),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id UUID PRIMARY KEY,
		product_name VARCHAR(100) NOT NULL,
		brand VARCHAR(50),
		size VARCHAR(10),
		quantity INTEGER NOT NULL,
		unit_price DECIMAL(10, 2) NOT NULL,
		total_price DECIMAL(10, 2) NOT NULL,
		sold_by UUID REFERENCES users(id),
		customer_name VARCHAR(100),
		sale_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS activity_logs (
		id UUID PRIMARY KEY,
		user_id UUID REFERENCES users(id),
		action VARCHAR(50) NOT NULL,
		details TEXT,
		timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// EnsureSchema crea las tablas si no existen. Debe ejecutarse con una cuenta
// con privilegios de DDL (no la cuenta de servicio de la app).
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear schema: %w", err)
		}
	}
	return nil
}

// GrantServiceAccount concede a la cuenta de servicio de la app el CRUD sobre
// todas las tablas del schema public.
func GrantServiceAccount(ctx context.Context, q Querier, account string) error {
	stmts := []string{
		fmt.Sprintf(`GRANT USAGE ON SCHEMA public TO %s`, account),
		fmt.Sprintf(`GRANT SELECT, INSERT, UPDATE, DELETE ON ALL TABLES IN SCHEMA public TO %s`, account),
		fmt.Sprintf(`ALTER DEFAULT PRIVILEGES IN SCHEMA public GRANT SELECT, INSERT, UPDATE, DELETE ON TABLES TO %s`, account),
	}
	for _, stmt := range stmts {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("grant a %s: %w", account, err)
		}
	}
	return nil
}
