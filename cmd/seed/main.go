package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/supplychain/config"
	"github.com/supplychain/database"
)

func main() {
	// Command line flags
	var (
		fresh = flag.Bool("fresh", false, "Drop and recreate all tables before seeding")
		help  = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	fmt.Println("🌱 Starting Database Seed Tool")
	fmt.Printf("📊 Database: %s@%s:%s/%s\n",
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	defer database.Close()

	if *fresh {
		fmt.Println("⚠️  Recreating all tables...")
		if err := database.DropAllTables(database.DB); err != nil {
			log.Fatalf("❌ Failed to drop tables: %v", err)
		}
		if err := database.AutoMigrate(database.DB); err != nil {
			log.Fatalf("❌ Failed to migrate database: %v", err)
		}
	}

	// Seed data
	if err := database.SeedData(database.DB); err != nil {
		log.Fatalf("❌ Failed to seed database: %v", err)
	}

	fmt.Println("✅ Seeding completed successfully!")
}

func showHelp() {
	fmt.Println(`
Database Seed Tool for the Supply Chain Management System

Usage:
  go run cmd/seed/main.go [options]

Options:
  -fresh    Drop and recreate all tables before seeding (WARNING: Data loss!)
  -help     Show this help message

Environment:
  Requires .env file or environment variables for database configuration:
  - DB_HOST
  - DB_PORT
  - DB_USER
  - DB_PASSWORD
  - DB_NAME`)
}
