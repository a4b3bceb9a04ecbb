package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Emalachi/lazersolution/internal/config"
	"github.com/Emalachi/lazersolution/internal/database"
	"github.com/Emalachi/lazersolution/internal/domain/auth"
	"github.com/Emalachi/lazersolution/internal/domain/formconfig"
	jwtsvc "github.com/Emalachi/lazersolution/internal/pkg/jwt"
)

// Seeds the first super admin account and the default form
// configuration. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := auth.Migrate(db); err != nil {
		log.Fatal(err)
	}
	if err := formconfig.Migrate(db); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	email := getEnv("ADMIN_EMAIL", "admin@lazer.com")
	password := getEnv("ADMIN_PASSWORD", "admin123")

	authService := auth.NewService(auth.NewRepository(db), jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL))
	user, err := authService.CreateUser(ctx, email, password, "Administrator", auth.RoleSuperAdmin)
	switch {
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		log.Printf("admin %s already exists, skipping", email)
	case err != nil:
		log.Fatal(err)
	default:
		log.Printf("created super admin %s (id=%d)", user.Email, user.ID)
	}

	formConfigRepo := formconfig.NewRepository(db)
	_, found, err := formConfigRepo.Get(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if found {
		log.Println("form config already present, skipping")
		return
	}
	if err := formconfig.NewService(formConfigRepo).Save(ctx, formconfig.Default()); err != nil {
		log.Fatal(err)
	}
	log.Println("seeded default form config")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
