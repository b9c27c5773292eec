// seed crea un usuario de prueba para desarrollo local.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que cmd/api (env vars / .env). Si el usuario
// ya existe, lo reporta y termina sin error.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jhoicas/kardex-api/internal/application/auth"
	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/infrastructure/postgres"
	"github.com/jhoicas/kardex-api/pkg/config"
)

const (
	seedName     = "Usuario Teste"
	seedEmail    = "teste@example.com"
	seedPassword = "123456"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
		os.Exit(1)
	}

	authUC := auth.NewUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	user, err := authUC.Register(dto.RegisterRequest{
		Name:     seedName,
		Email:    seedEmail,
		Password: seedPassword,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			fmt.Printf("El usuario %s ya existe, nada que hacer\n", seedEmail)
			return
		}
		fmt.Fprintf(os.Stderr, "Crear usuario de prueba: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Usuario de prueba creado: id=%d email=%s password=%s\n", user.ID, user.Email, seedPassword)
}
