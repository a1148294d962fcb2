package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/catalog"
	"github.com/jhoicas/tienda-api/internal/application/checkout"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/tienda-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
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

	redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	reservaRepo := postgres.NewReservaRepository(pool)
	incidenciaRepo := postgres.NewIncidenciaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	cartStore := infraredis.NewCartStore(redisClient, time.Duration(cfg.Redis.CartTTLHours)*time.Hour)

	authUC := auth.NewAuthUseCase(userRepo, profileRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := catalog.NewCatalogUseCase(productRepo, categoriaRepo)
	checkoutUC := checkout.NewCheckoutUseCase(txRunner, cartStore, productRepo, pedidoRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	pedidoUC := usecase.NewPedidoUseCase(pedidoRepo)
	userUC := usecase.NewUserUseCase(profileRepo)
	reservaUC := usecase.NewReservaUseCase(reservaRepo, productRepo)
	incidenciaUC := usecase.NewIncidenciaUseCase(incidenciaRepo, pedidoRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CatalogUC:    catalogUC,
		CheckoutUC:   checkoutUC,
		ProductUC:    productUC,
		CategoriaUC:  categoriaUC,
		PedidoUC:     pedidoUC,
		UserUC:       userUC,
		ReservaUC:    reservaUC,
		IncidenciaUC: incidenciaUC,
		JWTSecret:    cfg.JWT.Secret,
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
