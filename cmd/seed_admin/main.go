// seed_admin crea la cuenta admin inicial si no existe.
//
// Uso: SEED_ADMIN_EMAIL=... SEED_ADMIN_PASSWORD=... go run ./cmd/seed_admin
// Requiere la misma configuración de base de datos que la aplicación.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Mensajeria-api/internal/domain/entity"
	"github.com/jhoicas/Mensajeria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Mensajeria-api/pkg/config"
	"github.com/jhoicas/Mensajeria-api/pkg/password"
)

func main() {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	plain := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || plain == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son requeridos")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewUserRepository(pool)
	existing, err := repo.GetByEmail(email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "consultar admin: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("admin %s ya existe, nada que hacer\n", email)
		return
	}

	hash, err := password.Hash(plain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear password: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	admin := &entity.User{
		ID:             uuid.New().String(),
		FirstName:      "Admin",
		LastName:       "Root",
		Email:          email,
		PasswordHash:   hash,
		Type:           entity.TypeAdmin,
		Subscription:   entity.SubscriptionBasic,
		Plan:           0,
		Lang:           "en",
		IsActive:       true,
		IsLoginEnable:  true,
		MessengerColor: entity.DefaultMessengerColor,
		IsDisable:      true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if _, err := repo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "crear admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("admin %s creado\n", email)
}
