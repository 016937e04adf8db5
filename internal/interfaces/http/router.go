package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HaosShot/zapateria-pos/internal/application/auth"
	"github.com/HaosShot/zapateria-pos/internal/application/inventory"
	"github.com/HaosShot/zapateria-pos/internal/application/registrar"
	"github.com/HaosShot/zapateria-pos/internal/domain/entity"
	"github.com/HaosShot/zapateria-pos/internal/domain/repository"
	"github.com/HaosShot/zapateria-pos/internal/infrastructure/backup"
	"github.com/HaosShot/zapateria-pos/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	RegistrarUC *registrar.RegistrarUseCase
	InventoryUC *inventory.InventoryUseCase
	LogRepo     repository.ActivityLogRepository
	BackupSvc   *backup.Service
	Receipt     *pdf.ReceiptGenerator
	JWTSecret   string
}

// Router registra las rutas de la API: grupos por rol con RequireRole
// (panel de administración vs operaciones de inventario y venta).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; logout requiere sesión)
	authHandler := NewAuthHandler(deps.AuthUC, deps.BackupSvc)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Panel de administración: empleados, bitácora, respaldo
	adminOnly := protected.Group("/", RequireRole(entity.RoleAdmin))
	employeeHandler := NewEmployeeHandler(deps.RegistrarUC)
	adminOnly.Post("/employees", employeeHandler.Register)
	adminOnly.Get("/employees", employeeHandler.List)

	adminHandler := NewAdminHandler(deps.LogRepo, deps.BackupSvc)
	adminOnly.Get("/activity", adminHandler.Activity)
	adminOnly.Post("/backup", adminHandler.Backup)

	// Panel de trabajador: productos y ventas
	workerOnly := protected.Group("/", RequireRole(entity.RoleWorker))
	productHandler := NewProductHandler(deps.InventoryUC)
	workerOnly.Post("/products", productHandler.Create)
	workerOnly.Get("/products", productHandler.List)
	workerOnly.Get("/products/:id", productHandler.GetByID)

	saleHandler := NewSaleHandler(deps.InventoryUC, deps.Receipt)
	workerOnly.Post("/sales", saleHandler.Sell)
	workerOnly.Get("/sales", saleHandler.List)
	workerOnly.Get("/sales/:id/receipt", saleHandler.Receipt)
}
