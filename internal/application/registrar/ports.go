package registrar

import (
	"context"

	"github.com/HaosShot/zapateria-pos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que User + Employee + bitácora
// se escriban como una sola unidad lógica (o ninguna).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		employeeRepo repository.EmployeeRepository,
		logRepo repository.ActivityLogRepository,
	) error) error
}

// PhotoReader lee un archivo local como blob binario (colaborador de foto).
// El formato no se valida ni se transcodifica.
type PhotoReader interface {
	Read(path string) ([]byte, error)
}
