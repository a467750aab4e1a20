package main

import (
	"flag"
	"fmt"
	"log"

	"souvenaria-backend/internal/config"
	"souvenaria-backend/internal/database"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	down := flag.Int("down", 0, "Roll back this many migrations instead of migrating up")
	showVersion := flag.Bool("version", false, "Print the current migration version and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	dsn := cfg.GetDatabaseConnectionString()

	switch {
	case *showVersion:
		version, dirty, err := database.Version(dsn)
		if err != nil {
			log.Fatalf("Failed to read migration version: %v", err)
		}
		fmt.Printf("version=%d dirty=%v\n", version, dirty)
	case *down > 0:
		if err := database.MigrateDown(dsn, *down); err != nil {
			log.Fatalf("Migration down failed: %v", err)
		}
		fmt.Printf("Rolled back %d migration(s)\n", *down)
	default:
		if err := database.MigrateUp(dsn); err != nil {
			log.Fatalf("Migration up failed: %v", err)
		}
		fmt.Println("Migrations applied")
	}
}
