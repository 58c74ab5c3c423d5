package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/erickfunier/pdftotext-worker/internal/infrastructure/config"
	"github.com/jackc/pgx/v5"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default configs/config.$CONFIG_ENV.yaml)")
	dir := flag.String("dir", "migrations", "directory holding *.sql migrations")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("postgres connection error: %v", err)
	}
	defer conn.Close(ctx)

	names, err := migrationFiles(*dir)
	if err != nil {
		log.Fatalf("failed to list migrations: %v", err)
	}

	for _, name := range names {
		log.Printf("Running migration: %s", name)

		content, err := os.ReadFile(filepath.Join(*dir, name))
		if err != nil {
			log.Fatalf("failed to read %s: %v", name, err)
		}

		if _, err := conn.Exec(ctx, string(content)); err != nil {
			log.Fatalf("migration %s failed: %v", name, err)
		}
	}

	log.Printf("All migrations applied (%d)", len(names))
}

// migrationFiles returns the .sql files of dir in lexical order: 001, 002, ...
func migrationFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}
