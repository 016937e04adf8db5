package auth_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HaosShot/zapateria-pos/internal/application/auth"
	"github.com/HaosShot/zapateria-pos/internal/application/dto"
	"github.com/HaosShot/zapateria-pos/internal/domain"
	"github.com/HaosShot/zapateria-pos/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byUsername map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, exists := r.byUsername[u.Username]; exists {
		return domain.ErrUsernameTaken
	}
	r.byUsername[u.Username] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.byUsername[username], nil
}

func (r *fakeUserRepo) UpdatePasswordHash(username, hash string) error {
	if u := r.byUsername[username]; u != nil {
		u.PasswordHash = hash
	}
	return nil
}

func (r *fakeUserRepo) Delete(id string) error { return nil }

type fakeLogRepo struct {
	entries []*entity.ActivityLogEntry
}

func (r *fakeLogRepo) Append(e *entity.ActivityLogEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeLogRepo) List(limit, offset int) ([]*entity.ActivityLogEntry, error) {
	return r.entries, nil
}

func newUseCase(t *testing.T, users ...*entity.User) (*auth.AuthUseCase, *fakeLogRepo) {
	t.Helper()
	repo := &fakeUserRepo{byUsername: map[string]*entity.User{}}
	for _, u := range users {
		repo.byUsername[u.Username] = u
	}
	logs := &fakeLogRepo{}
	uc := auth.NewAuthUseCase(repo, logs, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "zapateria-pos-test",
	})
	return uc, logs
}

func storedUser(t *testing.T, username, password, role string) *entity.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidasDevuelvenRolCorrecto(t *testing.T) {
	uc, logs := newUseCase(t,
		storedUser(t, "ivan", "pw1", entity.RoleWorker),
		storedUser(t, "admin", "admin123", entity.RoleAdmin),
	)

	out, err := uc.Login(dto.LoginRequest{Username: "ivan", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "ivan", out.Session.Username)
	assert.Equal(t, entity.RoleWorker, out.Session.Role)
	assert.NotEmpty(t, out.Token)

	out, err = uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Session.Role)

	// Cada login deja su entrada en la bitácora
	require.Len(t, logs.entries, 2)
	assert.Equal(t, entity.ActionLogin, logs.entries[0].Action)
}

// Contraseña incorrecta y usuario inexistente deben ser indistinguibles
// para el caller: mismo error observable.
func TestLogin_ErrorIndistinguibleEntreUsuarioYPassword(t *testing.T) {
	uc, logs := newUseCase(t, storedUser(t, "ivan", "pw1", entity.RoleWorker))

	_, errWrongPass := uc.Login(dto.LoginRequest{Username: "ivan", Password: "otra"})
	_, errNoUser := uc.Login(dto.LoginRequest{Username: "nadie", Password: "pw1"})

	require.Error(t, errWrongPass)
	require.Error(t, errNoUser)
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())

	// Un login fallido no deja entrada en la bitácora
	assert.Empty(t, logs.entries)
}

func TestLogin_RolDesconocidoRechazado(t *testing.T) {
	uc, _ := newUseCase(t, storedUser(t, "raro", "pw", "superuser"))

	_, err := uc.Login(dto.LoginRequest{Username: "raro", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestLogout_DejaEntradaEnBitacora(t *testing.T) {
	uc, logs := newUseCase(t)

	uc.Logout(entity.Session{UserID: "u1", Username: "ivan", Role: entity.RoleWorker})

	require.Len(t, logs.entries, 1)
	assert.Equal(t, entity.ActionLogout, logs.entries[0].Action)
	assert.Equal(t, "u1", logs.entries[0].UserID)
}
