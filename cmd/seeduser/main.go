// Command seeduser creates an initial user account. Intended for
// bootstrapping a fresh deployment with an admin login.
//
//	seeduser -username admin -password secret -role admin
package main

import (
	"context"
	"flag"
	"time"

	"github.com/beknazar93/CRM2/internal/config"
	"github.com/beknazar93/CRM2/internal/dto"
	"github.com/beknazar93/CRM2/internal/infra"
	"github.com/beknazar93/CRM2/internal/repository"
	"github.com/beknazar93/CRM2/internal/service"

	"github.com/rs/zerolog/log"
)

func main() {
	username := flag.String("username", "", "username for the new account")
	password := flag.String("password", "", "password for the new account")
	email := flag.String("email", "", "email (optional)")
	role := flag.String("role", "admin", "role: admin, client_manager, product_manager, hr_manager, employee")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal().Msg("both -username and -password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load configuration")
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to database")
	}
	if err := infra.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	svc := service.NewAuthService(repository.NewUserRepository(db), cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := svc.Register(ctx, dto.RegisterRequest{
		Username: *username,
		Password: *password,
		Email:    *email,
		Role:     *role,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create user")
	}
	log.Info().Str("id", user.ID).Str("username", user.Username).Str("role", user.Role).Msg("user created")
}
