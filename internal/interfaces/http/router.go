package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ndtrung/warehouse-backoffice/internal/application/auth"
	"github.com/ndtrung/warehouse-backoffice/internal/application/usecase"
	"github.com/ndtrung/warehouse-backoffice/pkg/rolemap"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC          *auth.UseCase
	UserUC          *usecase.UserUseCase
	SupplierUC      *usecase.SupplierUseCase
	ReceiverUC      *usecase.ReceiverUseCase
	WarehouseUC     *usecase.WarehouseUseCase
	PurchaseOrderUC *usecase.PurchaseOrderUseCase
	JWTSecret       string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Everything below requires a Bearer access token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// User and role administration: admins only.
	admin := protected.Group("/admin", RequireRole(rolemap.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	admin.Get("/users", userHandler.List)
	admin.Post("/users", userHandler.Create)
	admin.Put("/users/:id", userHandler.Update)
	admin.Patch("/users/:id/status", userHandler.ToggleStatus)
	admin.Get("/roles", userHandler.Roles)

	// Reference data: any valid permission role.
	gated := protected.Group("/", RequireRole())

	suppliers := gated.Group("/supplier")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Patch("/:id/status", supplierHandler.ToggleStatus)

	receivers := gated.Group("/receiver")
	receiverHandler := NewReceiverHandler(deps.ReceiverUC)
	receivers.Get("/", receiverHandler.List)
	receivers.Get("/:id", receiverHandler.GetByID)
	receivers.Post("/", receiverHandler.Create)
	receivers.Put("/:id", receiverHandler.Update)
	receivers.Patch("/:id/status", receiverHandler.ToggleStatus)

	warehouses := gated.Group("/warehouse")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Patch("/:id/status", warehouseHandler.ToggleStatus)

	// Purchase orders are read-only over HTTP.
	orders := gated.Group("/purchaseorder")
	orderHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/print", orderHandler.Print)
}
