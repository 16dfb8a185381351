// Comando de migraciones: aplica el esquema y, si se pasan credenciales,
// siembra el primer usuario administrador (idempotente).
//
//	ADMIN_USERNAME=admin ADMIN_PASSWORD=... go run ./cmd/migrate
package main

import (
	"context"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/seifmegahed/daftar-sub000/internal/domain"
	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
	"github.com/seifmegahed/daftar-sub000/internal/infrastructure/postgres"
	"github.com/seifmegahed/daftar-sub000/pkg/config"
	"github.com/seifmegahed/daftar-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if err := postgres.Migrate(cfg.DB.DSN()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Msg("migraciones aplicadas")

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	existing, err := users.GetByUsername(ctx, username)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar usuario admin")
	}
	if existing != nil {
		log.Info().Str("username", username).Msg("el usuario admin ya existe")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}
	now := time.Now()
	id, err := users.Create(ctx, &entity.User{
		Username:     username,
		Name:         "Administrador",
		Role:         domain.RoleAdmin,
		Active:       true,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear usuario admin")
	}
	log.Info().Int64("id", id).Str("username", username).Msg("usuario admin creado")
}
