// Command importclients bulk-loads clients from a CSV file.
//
//	importclients clients.csv
//
// The file needs a header row with at least: name, email, phone, stage.
package main

import (
	"context"
	"os"
	"time"

	"github.com/beknazar93/CRM2/internal/config"
	"github.com/beknazar93/CRM2/internal/infra"
	"github.com/beknazar93/CRM2/internal/repository"
	"github.com/beknazar93/CRM2/internal/service"

	"github.com/rs/zerolog/log"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal().Msg("usage: importclients <file.csv>")
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

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open CSV file")
	}
	defer f.Close()

	svc := service.NewClientService(repository.NewClientRepository(db))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	resp, err := svc.ImportCSV(ctx, f)
	if err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}
	log.Info().Int("imported", resp.Imported).Msg("import finished")
}
