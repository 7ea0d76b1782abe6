package main

import (
	"flag"
	"os"

	"envportal/cmd/migration/initialize"
	"envportal/cmd/migration/seed"
	"envportal/config"
	"envportal/internal/database"
	"envportal/internal/logger"
)

func main() {
	log := logger.New("migration")

	withSeed := flag.Bool("seed", false, "seed development data after migrating")
	flag.Parse()

	cfg, err := config.InitConfig()
	if err != nil {
		log.Er("failed to initialize config", err)
		os.Exit(1)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Er("failed to connect to database", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := initialize.InitializeTables(db.SQL, cfg, log); err != nil {
		log.Er("migration failed", err)
		os.Exit(1)
	}

	if *withSeed {
		if err := seed.Seed(db.SQL, cfg, log); err != nil {
			log.Er("seed failed", err)
			os.Exit(1)
		}
	}
}
