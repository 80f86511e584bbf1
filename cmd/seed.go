package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"admybrand.GO/config"
	repository "admybrand.GO/model/repository/catalog"
)

var seedCmd = &cobra.Command{
	Use:   "db:seed",
	Short: "Create catalog tables and load the demo dataset",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}
		repo := repository.NewRepository(db)
		if err := repo.Migrate(); err != nil {
			fmt.Printf("Migrate failed: %v\n", err)
			os.Exit(1)
		}
		if err := repo.Seed(); err != nil {
			fmt.Printf("Seed failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Catalog seeded")
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
