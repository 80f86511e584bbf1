package cmd

import (
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

var (
	migrateDir  string
	migrateDown bool
)

// migrateDSN builds the migrate URL from the same env the GORM layer uses.
// Migrations target MySQL only; the sqlite dev database is schema-managed
// through AutoMigrate at startup.
func migrateDSN() string {
	if dsn := os.Getenv("MIGRATE_DSN"); dsn != "" {
		return dsn
	}
	user := os.Getenv("MYSQL_USER")
	pass := os.Getenv("MYSQL_PASS")
	host := os.Getenv("MYSQL_HOST")
	port := os.Getenv("MYSQL_PORT")
	db := os.Getenv("MYSQL_DB")
	if port == "" {
		port = "3306"
	}
	return fmt.Sprintf("mysql://%s:%s@tcp(%s:%s)/%s?multiStatements=true", user, pass, host, port, db)
}

var migrateCmd = &cobra.Command{
	Use:   "db:migrate",
	Short: "Apply SQL migrations to the MySQL catalog database",
	Run: func(cmd *cobra.Command, args []string) {
		m, err := migrate.New("file://"+migrateDir, migrateDSN())
		if err != nil {
			fmt.Printf("Migrate init failed: %v\n", err)
			os.Exit(1)
		}
		defer m.Close()

		if migrateDown {
			err = m.Steps(-1)
		} else {
			err = m.Up()
		}
		if err != nil && err != migrate.ErrNoChange {
			fmt.Printf("Migration failed: %v\n", err)
			os.Exit(1)
		}
		if err == migrate.ErrNoChange {
			fmt.Println("Database already up to date")
			return
		}
		version, dirty, _ := m.Version()
		fmt.Printf("Migrated to version %d (dirty=%v)\n", version, dirty)
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDir, "dir", "migrations", "Migrations directory")
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back one migration instead of applying")
	rootCmd.AddCommand(migrateCmd)
}
