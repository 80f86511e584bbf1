package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "admybrand",
	Short: "AdmyBrand storefront backend CLI",
	Run: func(cmd *cobra.Command, args []string) {
		// ASCII banner on bare invocation (random font each run)
		fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
		fig := figure.NewFigure("AdmyBrand ->", fonts[rand.Intn(len(fonts))], true)
		fig.Print()
		fmt.Println()
		cmd.Help()
	},
}

// Execute runs the CLI after applying registered custom commands.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
