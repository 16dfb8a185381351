package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/seifmegahed/daftar-sub000/internal/application/auth"
	"github.com/seifmegahed/daftar-sub000/internal/application/usecase"
	infrapdf "github.com/seifmegahed/daftar-sub000/internal/infrastructure/pdf"
	"github.com/seifmegahed/daftar-sub000/internal/infrastructure/postgres"
	"github.com/seifmegahed/daftar-sub000/internal/infrastructure/storage"
	httpRouter "github.com/seifmegahed/daftar-sub000/internal/interfaces/http"
	"github.com/seifmegahed/daftar-sub000/pkg/config"
	"github.com/seifmegahed/daftar-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.DSN()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	addressRepo := postgres.NewAddressRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	lineItemRepo := postgres.NewLineItemRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	fileStore, err := storage.NewLocal(cfg.Storage.Root)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de archivos")
	}
	offerGenerator := infrapdf.NewMarotoOfferGenerator()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	clientUC := usecase.NewClientUseCase(clientRepo, addressRepo, contactRepo, projectRepo, txRunner, log)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, lineItemRepo, txRunner, log)
	contactInfoUC := usecase.NewContactInfoUseCase(addressRepo, contactRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, clientRepo, supplierRepo, itemRepo, userRepo, lineItemRepo, txRunner, log)
	itemUC := usecase.NewItemUseCase(itemRepo, lineItemRepo, log)
	documentUC := usecase.NewDocumentUseCase(documentRepo, fileStore, txRunner, log)
	offerUC := usecase.NewOfferUseCase(projectRepo, clientRepo, itemRepo, lineItemRepo, offerGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    32 * 1024 * 1024, // documentos subidos
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		ClientUC:      clientUC,
		SupplierUC:    supplierUC,
		ContactInfoUC: contactInfoUC,
		ProjectUC:     projectUC,
		ItemUC:        itemUC,
		DocumentUC:    documentUC,
		OfferUC:       offerUC,
		JWTSecret:     cfg.JWT.Secret,
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
