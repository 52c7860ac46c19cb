package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jfcastano/taller-api/internal/application/auth"
	"github.com/jfcastano/taller-api/internal/application/catalog"
	appcliente "github.com/jfcastano/taller-api/internal/application/cliente"
	appmaterial "github.com/jfcastano/taller-api/internal/application/material"
	appop "github.com/jfcastano/taller-api/internal/application/operation"
	appsurvey "github.com/jfcastano/taller-api/internal/application/survey"
	"github.com/jfcastano/taller-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ClienteUC   *appcliente.UseCase
	CatalogUC   *catalog.UseCase
	MaterialUC  *appmaterial.UseCase
	OperationUC *appop.UseCase
	SurveyUC    *appsurvey.UseCase
	ReceiptGen  appop.ReceiptPDFGenerator
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes (protegido; eliminación solo admin)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Post("/:id/bloquear", clienteHandler.Block)
	clientes.Post("/:id/desbloquear", clienteHandler.Unblock)
	clientes.Delete("/:id", RequireRole(entity.RoleAdmin), clienteHandler.Delete)

	// Catálogo de productos y servicios (protegido)
	productos := protected.Group("/productos")
	productHandler := NewProductHandler(deps.CatalogUC)
	productos.Post("/", productHandler.Create)
	productos.Get("/", productHandler.List)
	productos.Get("/:id", productHandler.GetByID)
	productos.Put("/:id", productHandler.Update)
	productos.Put("/:id/materiales", productHandler.SetMateriales)

	// Materiales e inventario (protegido; alta y edición solo admin)
	materiales := protected.Group("/materiales")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materiales.Get("/alertas", materialHandler.Alerts)
	materiales.Post("/", RequireRole(entity.RoleAdmin), materialHandler.Create)
	materiales.Get("/", materialHandler.List)
	materiales.Get("/:id", materialHandler.GetByID)
	materiales.Put("/:id", RequireRole(entity.RoleAdmin), materialHandler.Update)
	materiales.Post("/:id/movimientos", materialHandler.RegisterMovement)
	materiales.Get("/:id/movimientos", materialHandler.ListMovements)

	// Operaciones: ciclo de vida, abonos, anulación, recibo (protegido)
	operaciones := protected.Group("/operaciones")
	operationHandler := NewOperationHandler(deps.OperationUC, deps.ReceiptGen)
	operaciones.Post("/", operationHandler.Create)
	operaciones.Get("/", operationHandler.List)
	operaciones.Get("/:id", operationHandler.GetByID)
	operaciones.Put("/:id", operationHandler.Update)
	operaciones.Patch("/:id/estado", operationHandler.Transition)
	operaciones.Post("/:id/abonos", operationHandler.Deposit)
	operaciones.Post("/:id/anular", operationHandler.Anular)
	operaciones.Get("/:id/recibo", operationHandler.Receipt)

	// Encuesta de satisfacción (protegido)
	surveyHandler := NewSurveyHandler(deps.SurveyUC)
	operaciones.Post("/:id/encuesta", surveyHandler.Create)
}
