// Package backup invoca pg_dump como proceso externo para producir un volcado
// SQL plano con marca de tiempo. Un fallo de respaldo se registra pero nunca
// bloquea la sesión interactiva.
package backup

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/HaosShot/zapateria-pos/pkg/config"
	"github.com/HaosShot/zapateria-pos/pkg/logger"
)

// Service ejecuta respaldos de la base de datos.
type Service struct {
	db  config.DBConfig
	cfg config.BackupConfig
	log *logger.Logger
}

// NewService construye el servicio de respaldo.
func NewService(db config.DBConfig, cfg config.BackupConfig, log *logger.Logger) *Service {
	return &Service{db: db, cfg: cfg, log: log}
}

// Run lanza pg_dump de forma síncrona y devuelve la ruta del archivo generado.
// El dump es formato plano (-F p) en <dir>/backup_<yyyymmdd_hhmmss>.sql.
func (s *Service) Run(ctx context.Context) (string, error) {
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de respaldo: %w", err)
	}

	file := filepath.Join(s.cfg.Dir, fmt.Sprintf("backup_%s.sql", time.Now().Format("20060102_150405")))

	pgDump := s.cfg.PgDumpPath
	if pgDump == "" {
		pgDump = "pg_dump"
	}

	cmd := exec.CommandContext(ctx, pgDump,
		"-h", s.db.Host,
		"-p", strconv.Itoa(s.db.Port),
		"-U", s.cfg.AdminUser,
		"-d", s.db.DBName,
		"-F", "p",
		"-f", file,
	)
	cmd.Env = append(os.Environ(), "PGPASSWORD="+s.cfg.AdminPassword)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("pg_dump: %w: %s", err, out)
	}

	s.log.Info().Str("file", file).Msg("respaldo creado")
	return file, nil
}

// RunBestEffort respalda sin propagar el error: lo registra y sigue.
// Es el comportamiento del "guardar y salir" del panel de administración.
func (s *Service) RunBestEffort(ctx context.Context) {
	if _, err := s.Run(ctx); err != nil {
		s.log.Error().Err(err).Msg("fallo el respaldo, la sesión continúa")
	}
}
