package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"  // registra cuentas de empleados
	RoleWorker = "worker" // gestiona inventario y ventas
)

// User representa una credencial del sistema. El rol es inmutable después de creado.
// Borrar un User elimina en cascada su Employee (FK ON DELETE CASCADE).
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, worker
	CreatedAt    time.Time
}

// ValidRole indica si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleWorker
}

// Session contexto autenticado que alcanza las operaciones autorizadas;
// se arma desde los claims del JWT en cada request.
type Session struct {
	UserID   string
	Username string
	Role     string
}

// IsAdmin / IsWorker azúcar para los chequeos de autorización.
func (s Session) IsAdmin() bool  { return s.Role == RoleAdmin }
func (s Session) IsWorker() bool { return s.Role == RoleWorker }
