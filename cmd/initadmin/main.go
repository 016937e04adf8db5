// Comando de bootstrap: crea las tablas, concede permisos a la cuenta de
// servicio y siembra (o actualiza) el superusuario admin. Debe correrse con
// credenciales de superusuario de PostgreSQL, no con la cuenta de servicio.
package main

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/HaosShot/zapateria-pos/internal/application/auth"
	"github.com/HaosShot/zapateria-pos/internal/domain/entity"
	"github.com/HaosShot/zapateria-pos/internal/infrastructure/postgres"
	"github.com/HaosShot/zapateria-pos/pkg/config"
	"github.com/HaosShot/zapateria-pos/pkg/logger"
)

const (
	adminUsername = "admin"
	adminPassword = "admin123" // cambiar tras el primer login
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Name: "initadmin", Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, superuserDSN(cfg))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer conn.Close(ctx)

	log.Info().Msg("creando tablas si no existen")
	if err := postgres.EnsureSchema(ctx, conn); err != nil {
		log.Fatal().Err(err).Msg("crear schema")
	}

	log.Info().Str("account", cfg.DB.User).Msg("concediendo permisos a la cuenta de servicio")
	if err := postgres.GrantServiceAccount(ctx, conn, cfg.DB.User); err != nil {
		log.Fatal().Err(err).Msg("conceder permisos")
	}

	userRepo := postgres.NewUserRepository(conn)
	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña")
	}

	existing, err := userRepo.GetByUsername(adminUsername)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin")
	}
	if existing != nil {
		log.Warn().Msg("el admin ya existe, actualizando contraseña")
		if err := userRepo.UpdatePasswordHash(adminUsername, hash); err != nil {
			log.Fatal().Err(err).Msg("actualizar admin")
		}
	} else {
		err := userRepo.Create(&entity.User{
			ID:           uuid.New().String(),
			Username:     adminUsername,
			PasswordHash: hash,
			Role:         entity.RoleAdmin,
			CreatedAt:    time.Now(),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("crear admin")
		}
	}

	log.Info().Str("username", adminUsername).Msg("admin listo, base de datos inicializada")
}

// superuserDSN arma el DSN con las credenciales de superusuario de BackupConfig
// (las mismas que usa pg_dump) sobre el mismo host/base de la app.
func superuserDSN(cfg *config.Config) string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Backup.AdminUser, cfg.Backup.AdminPassword),
		Host:     fmt.Sprintf("%s:%d", cfg.DB.Host, cfg.DB.Port),
		Path:     "/" + cfg.DB.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", cfg.DB.SSLMode),
	}
	return u.String()
}
