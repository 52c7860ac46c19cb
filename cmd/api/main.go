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

	"github.com/jfcastano/taller-api/internal/application/auth"
	"github.com/jfcastano/taller-api/internal/application/catalog"
	appcliente "github.com/jfcastano/taller-api/internal/application/cliente"
	appmaterial "github.com/jfcastano/taller-api/internal/application/material"
	appop "github.com/jfcastano/taller-api/internal/application/operation"
	appsurvey "github.com/jfcastano/taller-api/internal/application/survey"
	"github.com/jfcastano/taller-api/internal/infrastructure/notify"
	infrapdf "github.com/jfcastano/taller-api/internal/infrastructure/pdf"
	"github.com/jfcastano/taller-api/internal/infrastructure/postgres"
	httpRouter "github.com/jfcastano/taller-api/internal/interfaces/http"
	"github.com/jfcastano/taller-api/pkg/config"
	"github.com/jfcastano/taller-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	userRepo := postgres.NewUserRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	movRepo := postgres.NewMaterialMovementRepository(pool)
	operationRepo := postgres.NewOperationRepository(pool)
	surveyRepo := postgres.NewSurveyRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notifier := notify.NewLogNotifier(log)
	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clienteUC := appcliente.NewUseCase(clienteRepo, operationRepo)
	catalogUC := catalog.NewUseCase(productRepo, materialRepo)
	materialUC := appmaterial.NewUseCase(materialRepo, movRepo, txRunner)
	operationUC := appop.NewUseCase(txRunner, operationRepo, clienteRepo, productRepo, notifier, log)
	surveyUC := appsurvey.NewUseCase(surveyRepo, operationRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Taller API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ClienteUC:   clienteUC,
		CatalogUC:   catalogUC,
		MaterialUC:  materialUC,
		OperationUC: operationUC,
		SurveyUC:    surveyUC,
		ReceiptGen:  receiptGen,
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
