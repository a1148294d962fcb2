package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// seedadmin crea (o promociona) una cuenta ADMIN desde la línea de comandos.
// Es la única vía de alta del primer administrador: la API nunca acepta un rol
// del cliente ni expone una ruta de bootstrap sin autenticar.
//
//	go run ./cmd/seedadmin -email admin@tienda.es -password '...' -nombre Admin
func main() {
	email := flag.String("email", "", "email del administrador (requerido)")
	password := flag.String("password", "", "password del administrador (requerido para alta nueva)")
	nombre := flag.String("nombre", "Admin", "nombre a mostrar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if *email == "" {
		log.Fatal().Msg("-email es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)

	user, err := userRepo.GetByEmail(*email)
	switch {
	case err == nil:
		// La cuenta ya existe: promocionar su perfil a ADMIN.
		if err := profileRepo.UpdateRol(user.ID, entity.RolAdmin); err != nil {
			log.Fatal().Err(err).Msg("promocionar perfil a ADMIN")
		}
		log.Info().Str("email", *email).Msg("cuenta existente promocionada a ADMIN")
	case errors.Is(err, domain.ErrUserNotFound):
		if *password == "" {
			log.Fatal().Msg("-password es requerido para crear la cuenta")
		}
		if len(*password) < 8 {
			log.Fatal().Msg("password debe tener al menos 8 caracteres")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("generar hash de password")
		}
		now := time.Now()
		newUser := &entity.User{
			ID:           uuid.New().String(),
			Email:        *email,
			PasswordHash: string(hash),
			CreatedAt:    now,
		}
		if err := userRepo.Create(newUser); err != nil {
			log.Fatal().Err(err).Msg("crear usuario")
		}
		profile := &entity.Profile{
			ID:        newUser.ID,
			Email:     *email,
			Nombre:    *nombre,
			Rol:       entity.RolAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := profileRepo.Create(profile); err != nil {
			log.Fatal().Err(err).Msg("crear perfil ADMIN")
		}
		log.Info().Str("email", *email).Msg("cuenta ADMIN creada")
	default:
		log.Fatal().Err(err).Msg("consultar usuario")
	}
}
