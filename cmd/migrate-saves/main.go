// migrate-saves copies save slots from one store to another, for example
// from the save directory into PostgreSQL.
//
// Usage:
//
//	go run ./cmd/migrate-saves \
//	    -from file -dir saves \
//	    -to postgres \
//	    -pg-host localhost \
//	    -pg-port 5432 \
//	    -pg-user delver \
//	    -pg-password delver \
//	    -pg-database delver
package main

import (
	"flag"
	"log"

	"github.com/lawnchairsociety/delver/internal/config"
	"github.com/lawnchairsociety/delver/internal/database"
	"github.com/lawnchairsociety/delver/internal/save"
)

func main() {
	// Parse command-line flags
	from := flag.String("from", config.DriverFile, "Source store: file, sqlite or postgres")
	to := flag.String("to", config.DriverPostgres, "Destination store: file, sqlite or postgres")
	dir := flag.String("dir", "saves", "Save directory for the file store")
	sqlitePath := flag.String("sqlite", "data/saves.db", "Path to SQLite database")
	pgHost := flag.String("pg-host", "localhost", "PostgreSQL host")
	pgPort := flag.Int("pg-port", 5432, "PostgreSQL port")
	pgUser := flag.String("pg-user", "delver", "PostgreSQL user")
	pgPassword := flag.String("pg-password", "", "PostgreSQL password")
	pgDatabase := flag.String("pg-database", "delver", "PostgreSQL database name")
	pgSSLMode := flag.String("pg-sslmode", "disable", "PostgreSQL SSL mode")
	dryRun := flag.Bool("dry-run", false, "Show what would be migrated without making changes")
	flag.Parse()

	if *from == *to {
		log.Fatalf("Source and destination are both %s", *from)
	}

	pg := database.DefaultPostgresConfig()
	pg.Host = *pgHost
	pg.Port = *pgPort
	pg.User = *pgUser
	pg.Password = *pgPassword
	pg.Database = *pgDatabase
	pg.SSLMode = *pgSSLMode

	open := func(driver string) save.Store {
		switch driver {
		case config.DriverFile:
			log.Printf("Opening save directory: %s", *dir)
			store, err := save.NewFileStore(*dir)
			if err != nil {
				log.Fatalf("Failed to open save directory: %v", err)
			}
			return store
		case config.DriverSQLite, config.DriverPostgres:
			log.Printf("Opening %s database", driver)
			db, err := database.OpenWithConfig(database.Config{Driver: driver, SQLitePath: *sqlitePath, Postgres: pg})
			if err != nil {
				log.Fatalf("Failed to open %s database: %v", driver, err)
			}
			return save.NewDBStore(db)
		}
		log.Fatalf("Unknown store %q", driver)
		return nil
	}

	log.Println("Delver Save Migration Tool")
	log.Println("==========================")
	src := open(*from)
	dst := open(*to)

	if *dryRun {
		log.Println("DRY RUN MODE - No changes will be made")
	}

	res, err := save.Copy(dst, src, *dryRun)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	for _, name := range res.Copied {
		log.Printf("  Migrated %s", name)
	}
	for _, name := range res.Skipped {
		log.Printf("  Skipped %s (unreadable or corrupt)", name)
	}

	log.Println("==========================")
	log.Printf("Migration complete! %d slots migrated, %d skipped", len(res.Copied), len(res.Skipped))
	if *dryRun {
		log.Println("(DRY RUN - No actual changes were made)")
	}
}
