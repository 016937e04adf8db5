package registrar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/HaosShot/zapateria-pos/internal/application/auth"
	"github.com/HaosShot/zapateria-pos/internal/application/dto"
	"github.com/HaosShot/zapateria-pos/internal/domain"
	"github.com/HaosShot/zapateria-pos/internal/domain/entity"
	"github.com/HaosShot/zapateria-pos/internal/domain/repository"
)

// RegistrarUseCase alta de empleados (solo admin): crea User(role=worker) +
// Employee como una sola unidad transaccional y deja una entrada en la bitácora.
type RegistrarUseCase struct {
	txRunner     TxRunner
	photoReader  PhotoReader
	employeeRepo repository.EmployeeRepository
}

// NewRegistrarUseCase construye el caso de uso.
func NewRegistrarUseCase(txRunner TxRunner, photoReader PhotoReader, employeeRepo repository.EmployeeRepository) *RegistrarUseCase {
	return &RegistrarUseCase{txRunner: txRunner, photoReader: photoReader, employeeRepo: employeeRepo}
}

// RegisterEmployee valida los campos, lee la foto (si hay) ANTES de tocar el
// almacén, y dentro de una transacción inserta User, Employee y la entrada de
// bitácora. Si el insert de Employee falla después del de User, la transacción
// completa se revierte: o existen ambas filas o ninguna. El constraint único
// sobre username cierra la carrera de registros concurrentes y se traduce a
// domain.ErrUsernameTaken.
func (uc *RegistrarUseCase) RegisterEmployee(ctx context.Context, session entity.Session, in dto.RegisterEmployeeRequest) (*dto.EmployeeResponse, error) {
	if !session.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if err := validate(in); err != nil {
		return nil, err
	}

	var birthDate *time.Time
	if in.BirthDate != "" {
		d, err := time.Parse("2006-01-02", in.BirthDate)
		if err != nil {
			return nil, &domain.ValidationError{Field: "birth_date", Reason: "fecha inválida, formato yyyy-MM-dd"}
		}
		birthDate = &d
	}

	var photo []byte
	if in.PhotoPath != "" {
		data, err := uc.photoReader.Read(in.PhotoPath)
		if err != nil {
			// Aborta el registro completo: sin foto legible no hay empleado parcial.
			return nil, fmt.Errorf("%w: %v", domain.ErrPhotoUnreadable, err)
		}
		photo = data
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	// Se persisten los valores recortados, igual que valida.
	fullName := strings.TrimSpace(in.FullName)
	username := strings.TrimSpace(in.Username)

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         entity.RoleWorker,
		CreatedAt:    now,
	}
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		FullName:  fullName,
		Position:  strings.TrimSpace(in.Position),
		BirthDate: birthDate,
		Phone:     in.Phone,
		Email:     in.Email,
		Photo:     photo,
		UserID:    user.ID,
		Username:  username,
		CreatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(
		userRepo repository.UserRepository,
		employeeRepo repository.EmployeeRepository,
		logRepo repository.ActivityLogRepository,
	) error {
		if err := userRepo.Create(user); err != nil {
			return err
		}
		if err := employeeRepo.Create(employee); err != nil {
			return err
		}
		return logRepo.Append(&entity.ActivityLogEntry{
			ID:        uuid.New().String(),
			UserID:    session.UserID,
			Action:    entity.ActionEmployeeAdded,
			Details:   fmt.Sprintf("Nombre: %s, Usuario: %s", fullName, username),
			Timestamp: now,
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.EmployeeResponse{
		ID:        employee.ID,
		FullName:  employee.FullName,
		Position:  employee.Position,
		BirthDate: employee.BirthDate,
		Phone:     employee.Phone,
		Email:     employee.Email,
		HasPhoto:  len(employee.Photo) > 0,
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: employee.CreatedAt,
	}, nil
}

// ListEmployees lista los perfiles registrados (solo admin).
func (uc *RegistrarUseCase) ListEmployees(session entity.Session, limit, offset int) ([]*dto.EmployeeResponse, error) {
	if !session.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	employees, err := uc.employeeRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, &dto.EmployeeResponse{
			ID:        e.ID,
			FullName:  e.FullName,
			Position:  e.Position,
			BirthDate: e.BirthDate,
			Phone:     e.Phone,
			Email:     e.Email,
			HasPhoto:  len(e.Photo) > 0,
			UserID:    e.UserID,
			Username:  e.Username,
			CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}

func validate(in dto.RegisterEmployeeRequest) error {
	if strings.TrimSpace(in.FullName) == "" {
		return domain.MissingField("full_name")
	}
	if strings.TrimSpace(in.Username) == "" {
		return domain.MissingField("username")
	}
	if in.Password == "" {
		return domain.MissingField("password")
	}
	if in.Email != "" && !validEmail(in.Email) {
		return domain.BadEmail()
	}
	if in.Phone != "" && !validPhone(in.Phone) {
		return domain.BadPhone()
	}
	return nil
}

// validEmail exige "@" y un "." dentro del dominio.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 0 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}

// validPhone admite solo dígitos y los caracteres + - ( ).
func validPhone(phone string) bool {
	for _, c := range phone {
		if c >= '0' && c <= '9' {
			continue
		}
		switch c {
		case '+', '-', '(', ')':
		default:
			return false
		}
	}
	return true
}
