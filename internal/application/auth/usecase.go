package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/HaosShot/zapateria-pos/internal/application/dto"
	"github.com/HaosShot/zapateria-pos/internal/domain"
	"github.com/HaosShot/zapateria-pos/internal/domain/entity"
	"github.com/HaosShot/zapateria-pos/internal/domain/repository"
	"github.com/HaosShot/zapateria-pos/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login y cierre de sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	logRepo  repository.ActivityLogRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, logRepo repository.ActivityLogRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, logRepo: logRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password contra el hash bcrypt almacenado y genera el token.
// Usuario inexistente y contraseña incorrecta devuelven el MISMO error
// (domain.ErrInvalidCredentials) para no permitir enumerar usuarios.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Mismo error que contraseña incorrecta, a propósito.
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !entity.ValidRole(user.Role) {
		return nil, domain.ErrUnknownRole
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	// Entrada de bitácora best-effort: un fallo al registrar no bloquea el login.
	_ = uc.logRepo.Append(&entity.ActivityLogEntry{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Action:    entity.ActionLogin,
		Timestamp: time.Now(),
	})

	return &dto.LoginResponse{
		Token: token,
		Session: dto.SessionResponse{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	}, nil
}

// Logout solo deja constancia en la bitácora; el token expira solo.
func (uc *AuthUseCase) Logout(session entity.Session) {
	_ = uc.logRepo.Append(&entity.ActivityLogEntry{
		ID:        uuid.New().String(),
		UserID:    session.UserID,
		Action:    entity.ActionLogout,
		Timestamp: time.Now(),
	})
}

// HashPassword genera el hash bcrypt con el costo por defecto (salt aleatorio por hash).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
