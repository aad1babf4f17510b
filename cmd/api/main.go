package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ndtrung/warehouse-backoffice/internal/application/auth"
	"github.com/ndtrung/warehouse-backoffice/internal/application/usecase"
	"github.com/ndtrung/warehouse-backoffice/internal/infrastructure/mail"
	infrapdf "github.com/ndtrung/warehouse-backoffice/internal/infrastructure/pdf"
	"github.com/ndtrung/warehouse-backoffice/internal/infrastructure/postgres"
	infraredis "github.com/ndtrung/warehouse-backoffice/internal/infrastructure/redis"
	httpRouter "github.com/ndtrung/warehouse-backoffice/internal/interfaces/http"
	"github.com/ndtrung/warehouse-backoffice/pkg/config"
	"github.com/ndtrung/warehouse-backoffice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	tokenStore, err := infraredis.NewResetTokenStore(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("Redis connection")
	}
	defer tokenStore.Close()

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	receiverRepo := postgres.NewReceiverRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	uowFactory := postgres.NewFactory(pool)

	mailer := mail.NewSMTPMailer(cfg.SMTP)
	printer := infrapdf.NewPurchaseOrderPrinter()

	authUC := auth.NewUseCase(userRepo, roleRepo, tokenStore, mailer, auth.JWTConfig{
		Secret:              cfg.JWT.Secret,
		Issuer:              cfg.JWT.Issuer,
		AccessMinutes:       cfg.JWT.AccessMinutes,
		RefreshHours:        cfg.JWT.RefreshHours,
		RefreshRememberDays: cfg.JWT.RefreshRememberDays,
	})
	userUC := usecase.NewUserUseCase(userRepo, roleRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	receiverUC := usecase.NewReceiverUseCase(receiverRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	orderUC := usecase.NewPurchaseOrderUseCase(orderRepo, supplierRepo, uowFactory, printer)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		UserUC:          userUC,
		SupplierUC:      supplierUC,
		ReceiverUC:      receiverUC,
		WarehouseUC:     warehouseUC,
		PurchaseOrderUC: orderUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
