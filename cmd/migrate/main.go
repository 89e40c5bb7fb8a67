package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"melodee/internal/config"
	"melodee/internal/database"
	"melodee/internal/logging"
)

func usage() {
	fmt.Println("Usage: migrate <up|down|status> [-steps <n>]")
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	steps := flag.Int("steps", 1, "Number of migrations to roll back (down only)")

	if len(os.Args) < 2 {
		usage()
	}
	command := os.Args[1]
	flag.CommandLine.Parse(os.Args[2:])

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logging.InitGlobalLogger(logging.LogLevel(cfg.Logging.Level), cfg.Logging.Format)

	manager, err := database.NewDatabaseManager(&cfg.Database, &log)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer manager.Close()

	migrator := database.NewMigrator(manager.GetGormDB(), &log)
	ctx := context.Background()

	switch command {
	case "up":
		applied, err := migrator.Up(ctx)
		if err != nil {
			fmt.Printf("Error applying migrations: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Applied %d migration(s)\n", applied)

	case "down":
		if *steps < 1 {
			fmt.Println("Error: -steps must be at least 1")
			os.Exit(1)
		}
		rolledBack, err := migrator.Down(ctx, *steps)
		if err != nil {
			fmt.Printf("Error rolling back migrations: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Rolled back %d migration(s)\n", rolledBack)

	case "status":
		statuses, err := migrator.Status(ctx)
		if err != nil {
			fmt.Printf("Error reading migration status: %v\n", err)
			os.Exit(1)
		}
		for _, s := range statuses {
			state := "pending"
			if s.Applied {
				state = s.AppliedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Printf("%-6s  %-20s  %s\n", s.ID, state, s.Comment)
		}

	default:
		usage()
	}
}
