// Command migrate applies or rolls back the SQL migrations against
// the configured Postgres database.
package main

import (
	"database/sql"
	"flag"
	"fmt"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"gigbook/internal/config"
	"gigbook/internal/database/migrations"
	"gigbook/internal/logger"
)

func main() {
	down := flag.Bool("down", false, "roll back all migrations instead of applying them")
	flag.Parse()

	log := logger.NewLogger()
	defer log.Close()

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	}
	cfg := config.Load()

	sqldb, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to open database: %v", err))
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect: %v", err))
	}
	bunDB := bun.NewDB(sqldb, pgdialect.New())
	defer bunDB.Close()

	runner := migrations.NewRunner(bunDB, migrations.Options{
		MigrationsDir: cfg.Database.MigrationsDir,
	})
	defer runner.Close()

	if *down {
		if err := runner.MigrateDown(); err != nil {
			log.Fatal("MIGRATE", fmt.Sprintf("Migration down failed: %v", err))
		}
		log.Info("MIGRATE", "All migrations rolled back")
		return
	}

	if err := runner.MigrateUp(); err != nil {
		log.Fatal("MIGRATE", fmt.Sprintf("Migration up failed: %v", err))
	}
	version, dirty, err := runner.Version()
	if err != nil {
		log.Fatal("MIGRATE", fmt.Sprintf("Failed to read schema version: %v", err))
	}
	log.Info("MIGRATE", fmt.Sprintf("Schema at version %d (dirty=%t)", version, dirty))
}
