package main

import (
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/UpliftAfrika/initializers"
)

const migrationsPath = "db/migrations"

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	Long:  `Create and/or upgrade the database schema from db/migrations.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'migrate' requires a subcommand (up, down, status)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Run all pending migrations",
	Run: func(cmd *cobra.Command, args []string) {
		m, err := createMigrateInstance()
		if err != nil {
			fmt.Println("Migration failed:", err)
			os.Exit(1)
		}
		defer func() { _, _ = m.Close() }()

		if err := m.Up(); err != nil {
			if err == migrate.ErrNoChange {
				fmt.Println("No migrations to run - database is up to date")
				return
			}
			fmt.Println("Migration failed:", err)
			os.Exit(1)
		}

		version, _, _ := m.Version()
		fmt.Printf("Migrated to version: %d\n", version)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Rollback migrations (default: 1)",
	Run: func(cmd *cobra.Command, args []string) {
		steps := 1
		if len(args) > 0 {
			_, _ = fmt.Sscanf(args[0], "%d", &steps)
		}

		m, err := createMigrateInstance()
		if err != nil {
			fmt.Println("Rollback failed:", err)
			os.Exit(1)
		}
		defer func() { _, _ = m.Close() }()

		if err := m.Steps(-steps); err != nil {
			fmt.Println("Rollback failed:", err)
			os.Exit(1)
		}

		version, _, _ := m.Version()
		fmt.Printf("Rolled back to version: %d\n", version)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current migration version",
	Run: func(cmd *cobra.Command, args []string) {
		m, err := createMigrateInstance()
		if err != nil {
			fmt.Println("Failed to get status:", err)
			os.Exit(1)
		}
		defer func() { _, _ = m.Close() }()

		version, dirty, err := m.Version()
		if err != nil {
			if err == migrate.ErrNilVersion {
				fmt.Println("No migrations have been applied yet")
				return
			}
			fmt.Println("Failed to get status:", err)
			os.Exit(1)
		}

		fmt.Printf("Current version: %d\n", version)
		if dirty {
			fmt.Println("Warning: Database is in a dirty state")
		}
	},
}

func createMigrateInstance() (*migrate.Migrate, error) {
	initializers.LoadEnv()

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DB_URL environment variable is required")
	}

	return migrate.New("file://"+migrationsPath, dbURL)
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}
