package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/catalog"
	"github.com/jhoicas/tienda-api/internal/application/checkout"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CatalogUC    *catalog.CatalogUseCase
	CheckoutUC   *checkout.CheckoutUseCase
	ProductUC    *usecase.ProductUseCase
	CategoriaUC  *usecase.CategoriaUseCase
	PedidoUC     *usecase.PedidoUseCase
	UserUC       *usecase.UserUseCase
	ReservaUC    *usecase.ReservaUseCase
	IncidenciaUC *usecase.IncidenciaUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Tres niveles de acceso: público
// (auth y catálogo), autenticado (tienda) y por rol (back office).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (público)
	catalogGroup := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogGroup.Get("/products", catalogHandler.ListProducts)
	catalogGroup.Get("/products/:id", catalogHandler.GetProduct)
	catalogGroup.Get("/categories", catalogHandler.ListCategories)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Carrito y checkout
	cartHandler := NewCartHandler(deps.CheckoutUC)
	cart := protected.Group("/cart")
	cart.Get("/", cartHandler.Get)
	cart.Delete("/", cartHandler.Clear)
	cart.Post("/items", cartHandler.AddItem)
	cart.Put("/items/:productoId", cartHandler.SetItem)
	cart.Delete("/items/:productoId", cartHandler.RemoveItem)
	protected.Post("/checkout", cartHandler.Checkout)

	// Perfil propio. /auth/me es la resolución de identidad tras el login;
	// /profile el mismo recurso en su sitio natural.
	profileHandler := NewProfileHandler(deps.AuthUC)
	protected.Get("/auth/me", profileHandler.Get)
	protected.Get("/profile", profileHandler.Get)
	protected.Put("/profile", profileHandler.Update)

	// Pedidos del cliente
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	orders := protected.Group("/orders")
	orders.Get("/", pedidoHandler.ListMine)
	orders.Get("/:id", pedidoHandler.GetMine)
	orders.Post("/:id/cancel", pedidoHandler.Cancel)

	// Reservas del cliente
	reservaHandler := NewReservaHandler(deps.ReservaUC)
	reservations := protected.Group("/reservations")
	reservations.Post("/", reservaHandler.Create)
	reservations.Get("/", reservaHandler.ListMine)

	// Incidencias del cliente
	incidenciaHandler := NewIncidenciaHandler(deps.IncidenciaUC)
	issues := protected.Group("/issues")
	issues.Post("/", incidenciaHandler.Create)
	issues.Get("/", incidenciaHandler.ListMine)

	// Back office: la puerta del grupo admite ADMIN y ENCARGADO; las rutas
	// reservadas a ADMIN añaden su propia guardia.
	admin := protected.Group("/admin", RequireRole(entity.RolAdmin, entity.RolEncargado))
	adminOnly := RequireRole(entity.RolAdmin)

	// Pedidos y reservas: gestión compartida con ENCARGADO.
	admin.Get("/orders", pedidoHandler.List)
	admin.Put("/orders/:id/estado", pedidoHandler.UpdateEstado)
	admin.Put("/orders/:id/pagado", pedidoHandler.UpdatePagado)
	admin.Delete("/orders/:id", adminOnly, pedidoHandler.Delete)
	admin.Get("/reservations", reservaHandler.List)
	admin.Put("/reservations/:id/estado", reservaHandler.UpdateEstado)
	admin.Delete("/reservations/:id", adminOnly, reservaHandler.Delete)

	productHandler := NewProductHandler(deps.ProductUC)
	admin.Post("/products", adminOnly, productHandler.Create)
	admin.Get("/products", adminOnly, productHandler.List)
	admin.Get("/products/:id", adminOnly, productHandler.GetByID)
	admin.Put("/products/:id", adminOnly, productHandler.Update)
	admin.Delete("/products/:id", adminOnly, productHandler.Delete)

	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	admin.Post("/categories", adminOnly, categoriaHandler.Create)
	admin.Get("/categories", adminOnly, categoriaHandler.List)
	admin.Put("/categories/:id", adminOnly, categoriaHandler.Update)
	admin.Delete("/categories/:id", adminOnly, categoriaHandler.Delete)

	userHandler := NewUserHandler(deps.UserUC)
	admin.Get("/users", adminOnly, userHandler.List)
	admin.Put("/users/:id/rol", adminOnly, userHandler.UpdateRol)
	admin.Delete("/users/:id", adminOnly, userHandler.Delete)

	admin.Get("/issues", adminOnly, incidenciaHandler.List)
	admin.Put("/issues/:id/estado", adminOnly, incidenciaHandler.UpdateEstado)
	admin.Delete("/issues/:id", adminOnly, incidenciaHandler.Delete)
}
