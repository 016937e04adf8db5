package entity

import "time"

// Acciones registradas en la bitácora.
const (
	ActionLogin         = "Inicio de sesión"
	ActionLogout        = "Cierre de sesión"
	ActionEmployeeAdded = "Empleado agregado"
	ActionProductAdded  = "Producto agregado"
	ActionSaleRecorded  = "Venta registrada"
	ActionBackupCreated = "Respaldo creado"
)

// ActivityLogEntry entrada de la bitácora de auditoría. Append-only: nunca se
// modifica ni se borra.
type ActivityLogEntry struct {
	ID        string
	UserID    string
	Action    string
	Details   string
	Timestamp time.Time
}
