package registrar_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/HaosShot/zapateria-pos/internal/application/dto"
	"github.com/HaosShot/zapateria-pos/internal/application/registrar"
	"github.com/HaosShot/zapateria-pos/internal/domain"
	"github.com/HaosShot/zapateria-pos/internal/domain/entity"
	"github.com/HaosShot/zapateria-pos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria con semántica transaccional: el runner toma un snapshot
// antes de ejecutar fn y lo restaura si fn falla, igual que un Rollback real.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	users     []*entity.User
	employees []*entity.Employee
	logs      []*entity.ActivityLogEntry

	failEmployeeInsert bool // inyección de falla para probar atomicidad
}

func (s *memStore) snapshot() memStore {
	cp := memStore{failEmployeeInsert: s.failEmployeeInsert}
	cp.users = append(cp.users, s.users...)
	cp.employees = append(cp.employees, s.employees...)
	cp.logs = append(cp.logs, s.logs...)
	return cp
}

type memUserRepo struct{ s *memStore }

func (r memUserRepo) Create(u *entity.User) error {
	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return domain.ErrUsernameTaken
		}
	}
	r.s.users = append(r.s.users, u)
	return nil
}

func (r memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r memUserRepo) UpdatePasswordHash(username, hash string) error { return nil }
func (r memUserRepo) Delete(id string) error                        { return nil }

type memEmployeeRepo struct{ s *memStore }

func (r memEmployeeRepo) Create(e *entity.Employee) error {
	if r.s.failEmployeeInsert {
		return errors.New("insert employee: fallo simulado")
	}
	r.s.employees = append(r.s.employees, e)
	return nil
}

func (r memEmployeeRepo) GetByUserID(userID string) (*entity.Employee, error) {
	for _, e := range r.s.employees {
		if e.UserID == userID {
			return e, nil
		}
	}
	return nil, nil
}

func (r memEmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	return r.s.employees, nil
}

type memLogRepo struct{ s *memStore }

func (r memLogRepo) Append(e *entity.ActivityLogEntry) error {
	r.s.logs = append(r.s.logs, e)
	return nil
}

func (r memLogRepo) List(limit, offset int) ([]*entity.ActivityLogEntry, error) {
	return r.s.logs, nil
}

type memTxRunner struct{ s *memStore }

func (tr memTxRunner) Run(_ context.Context, fn func(
	userRepo repository.UserRepository,
	employeeRepo repository.EmployeeRepository,
	logRepo repository.ActivityLogRepository,
) error) error {
	backup := tr.s.snapshot()
	err := fn(memUserRepo{tr.s}, memEmployeeRepo{tr.s}, memLogRepo{tr.s})
	if err != nil {
		*tr.s = backup // rollback
		return err
	}
	return nil
}

type fakePhotoReader struct {
	data map[string][]byte
}

func (r fakePhotoReader) Read(path string) ([]byte, error) {
	if data, ok := r.data[path]; ok {
		return data, nil
	}
	return nil, errors.New("open " + path + ": no such file or directory")
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var (
	adminSession  = entity.Session{UserID: "admin-1", Username: "admin", Role: entity.RoleAdmin}
	workerSession = entity.Session{UserID: "worker-1", Username: "pepe", Role: entity.RoleWorker}
)

func newRegistrar(s *memStore, photos map[string][]byte) *registrar.RegistrarUseCase {
	return registrar.NewRegistrarUseCase(
		memTxRunner{s},
		fakePhotoReader{data: photos},
		memEmployeeRepo{s},
	)
}

func validRequest() dto.RegisterEmployeeRequest {
	return dto.RegisterEmployeeRequest{
		FullName: "Ivan Petrov",
		Username: "ivan",
		Password: "pw1",
		Email:    "ivan@x.com",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterEmployee_AdminCreaWorkerYPerfil(t *testing.T) {
	s := &memStore{}
	uc := newRegistrar(s, nil)

	out, err := uc.RegisterEmployee(context.Background(), adminSession, validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Ivan Petrov", out.FullName)
	assert.Equal(t, "ivan", out.Username)

	// User con rol worker + Employee ligado, ambos persistidos
	require.Len(t, s.users, 1)
	require.Len(t, s.employees, 1)
	assert.Equal(t, entity.RoleWorker, s.users[0].Role)
	assert.Equal(t, s.users[0].ID, s.employees[0].UserID)

	// La contraseña se guarda hasheada con bcrypt, nunca en claro
	assert.NotEqual(t, "pw1", s.users[0].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(s.users[0].PasswordHash), []byte("pw1")))

	// Exactamente una entrada de bitácora
	require.Len(t, s.logs, 1)
	assert.Equal(t, entity.ActionEmployeeAdded, s.logs[0].Action)
	assert.Contains(t, s.logs[0].Details, "Ivan Petrov")
	assert.Contains(t, s.logs[0].Details, "ivan")
}

func TestRegisterEmployee_WorkerNoAutorizado(t *testing.T) {
	s := &memStore{}
	uc := newRegistrar(s, nil)

	_, err := uc.RegisterEmployee(context.Background(), workerSession, validRequest())
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, s.users)
}

func TestRegisterEmployee_Validaciones(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.RegisterEmployeeRequest)
	}{
		{"sin nombre completo", func(r *dto.RegisterEmployeeRequest) { r.FullName = "  " }},
		{"sin username", func(r *dto.RegisterEmployeeRequest) { r.Username = "" }},
		{"sin contraseña", func(r *dto.RegisterEmployeeRequest) { r.Password = "" }},
		{"email sin arroba", func(r *dto.RegisterEmployeeRequest) { r.Email = "ivan.x.com" }},
		{"email sin punto en el dominio", func(r *dto.RegisterEmployeeRequest) { r.Email = "ivan@xcom" }},
		{"teléfono con letras", func(r *dto.RegisterEmployeeRequest) { r.Phone = "+7 abc" }},
		{"fecha de nacimiento inválida", func(r *dto.RegisterEmployeeRequest) { r.BirthDate = "01/01/2000" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &memStore{}
			uc := newRegistrar(s, nil)
			in := validRequest()
			tc.mutate(&in)

			_, err := uc.RegisterEmployee(context.Background(), adminSession, in)
			assert.True(t, domain.IsValidation(err), "esperaba error de validación, fue: %v", err)
			// La validación se detecta antes de tocar el almacén
			assert.Empty(t, s.users)
			assert.Empty(t, s.logs)
		})
	}
}

func TestRegisterEmployee_EmailYTelefonoOpcionales(t *testing.T) {
	s := &memStore{}
	uc := newRegistrar(s, nil)
	in := validRequest()
	in.Email = ""
	in.Phone = ""

	_, err := uc.RegisterEmployee(context.Background(), adminSession, in)
	assert.NoError(t, err)
}

func TestRegisterEmployee_TelefonoConFormatoValido(t *testing.T) {
	s := &memStore{}
	uc := newRegistrar(s, nil)
	in := validRequest()
	in.Phone = "+7(912)345-67-89"

	_, err := uc.RegisterEmployee(context.Background(), adminSession, in)
	assert.NoError(t, err)
}

func TestRegisterEmployee_UsernameDuplicado(t *testing.T) {
	s := &memStore{}
	uc := newRegistrar(s, nil)

	_, err := uc.RegisterEmployee(context.Background(), adminSession, validRequest())
	require.NoError(t, err)

	in := validRequest()
	in.FullName = "Otro Nombre"
	_, err = uc.RegisterEmployee(context.Background(), adminSession, in)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	// El rollback no deja perfil huérfano del segundo intento
	assert.Len(t, s.users, 1)
	assert.Len(t, s.employees, 1)
	assert.Len(t, s.logs, 1)
}

// Atomicidad: si el insert de Employee falla después del de User, no debe
// quedar ningún User con ese username.
func TestRegisterEmployee_RollbackSiFallaEmployee(t *testing.T) {
	s := &memStore{failEmployeeInsert: true}
	uc := newRegistrar(s, nil)

	_, err := uc.RegisterEmployee(context.Background(), adminSession, validRequest())
	require.Error(t, err)

	assert.Empty(t, s.users, "el rollback debe eliminar el User insertado")
	assert.Empty(t, s.employees)
	assert.Empty(t, s.logs)
}

func TestRegisterEmployee_FotoIlegibleAbortaTodo(t *testing.T) {
	s := &memStore{}
	uc := newRegistrar(s, nil) // sin fotos: cualquier ruta falla

	in := validRequest()
	in.PhotoPath = "/tmp/no-existe.jpg"
	_, err := uc.RegisterEmployee(context.Background(), adminSession, in)

	assert.ErrorIs(t, err, domain.ErrPhotoUnreadable)
	assert.Empty(t, s.users, "sin foto legible no debe haber registro parcial")
}

func TestRegisterEmployee_ConFoto(t *testing.T) {
	s := &memStore{}
	uc := newRegistrar(s, map[string][]byte{"/tmp/ivan.jpg": {0xFF, 0xD8, 0xFF}})

	in := validRequest()
	in.PhotoPath = "/tmp/ivan.jpg"
	out, err := uc.RegisterEmployee(context.Background(), adminSession, in)
	require.NoError(t, err)

	assert.True(t, out.HasPhoto)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, s.employees[0].Photo)
}

// Los campos validados con recorte también se persisten recortados.
func TestRegisterEmployee_RecortaEspacios(t *testing.T) {
	s := &memStore{}
	uc := newRegistrar(s, nil)

	in := validRequest()
	in.FullName = "  Ivan Petrov  "
	in.Username = " ivan "
	in.Position = " Vendedor "
	out, err := uc.RegisterEmployee(context.Background(), adminSession, in)
	require.NoError(t, err)

	assert.Equal(t, "Ivan Petrov", out.FullName)
	assert.Equal(t, "ivan", out.Username)
	assert.Equal(t, "Ivan Petrov", s.employees[0].FullName)
	assert.Equal(t, "Vendedor", s.employees[0].Position)
	assert.Equal(t, "ivan", s.users[0].Username)
	assert.Equal(t, "Nombre: Ivan Petrov, Usuario: ivan", s.logs[0].Details)
}

func TestListEmployees_IncluyeUsername(t *testing.T) {
	s := &memStore{}
	uc := newRegistrar(s, nil)

	_, err := uc.RegisterEmployee(context.Background(), adminSession, validRequest())
	require.NoError(t, err)

	list, err := uc.ListEmployees(adminSession, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ivan", list[0].Username)
}

func TestListEmployees_SoloAdmin(t *testing.T) {
	s := &memStore{}
	uc := newRegistrar(s, nil)

	_, err := uc.ListEmployees(workerSession, 10, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, err := uc.ListEmployees(adminSession, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}
