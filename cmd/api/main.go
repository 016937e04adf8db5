package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/HaosShot/zapateria-pos/internal/application/auth"
	"github.com/HaosShot/zapateria-pos/internal/application/inventory"
	"github.com/HaosShot/zapateria-pos/internal/application/registrar"
	"github.com/HaosShot/zapateria-pos/internal/infrastructure/backup"
	infrapdf "github.com/HaosShot/zapateria-pos/internal/infrastructure/pdf"
	"github.com/HaosShot/zapateria-pos/internal/infrastructure/photo"
	"github.com/HaosShot/zapateria-pos/internal/infrastructure/postgres"
	httpRouter "github.com/HaosShot/zapateria-pos/internal/interfaces/http"
	"github.com/HaosShot/zapateria-pos/pkg/config"
	"github.com/HaosShot/zapateria-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Name:  cfg.App.Name,
		Level: cfg.App.LogLevel,
	})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool (las variantes transaccionales las crean los TxRunner)
	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	logRepo := postgres.NewActivityLogRepository(pool)

	backupSvc := backup.NewService(cfg.DB, cfg.Backup, log)

	authUC := auth.NewAuthUseCase(userRepo, logRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	registrarUC := registrar.NewRegistrarUseCase(
		postgres.NewRegistrationTxRunner(pool),
		photo.NewFileReader(),
		employeeRepo,
	)
	inventoryUC := inventory.NewInventoryUseCase(
		postgres.NewSalesTxRunner(pool),
		productRepo, saleRepo, logRepo,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		RegistrarUC: registrarUC,
		InventoryUC: inventoryUC,
		LogRepo:     logRepo,
		BackupSvc:   backupSvc,
		Receipt:     infrapdf.NewReceiptGenerator(cfg.App.Name),
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
