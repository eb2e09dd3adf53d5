package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/fitlife-app/FitLifeBack/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	path := flag.String("path", "", "migrations directory (default: nearest migrations/)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.DBUrl == "" {
		log.Fatal("DB_URL is required")
	}

	dir := *path
	if dir == "" {
		dir, err = findMigrationsDir()
		if err != nil {
			log.Fatal(err)
		}
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		log.Fatal(err)
	}

	m, err := migrate.New("file://"+absDir, cfg.DBUrl)
	if err != nil {
		log.Fatal(err)
	}

	direction := "up"
	if args := flag.Args(); len(args) > 0 {
		direction = args[0]
	}

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		log.Fatalf("Unknown command %q (want up or down)", direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal(err)
	}
	log.Printf("Migration %s successful", direction)
}

// findMigrationsDir walks upward from the working directory so the binary
// works from the repo root and from cmd/migrate alike.
func findMigrationsDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	current := cwd
	for {
		candidate := filepath.Join(current, "migrations")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", errors.New("migrations directory not found; pass -path")
		}
		current = parent
	}
}
