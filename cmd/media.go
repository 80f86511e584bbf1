package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"admybrand.GO/service/media"
)

var (
	mediaDir      string
	mediaMaxWidth int
	mediaQuality  float32
)

var mediaCmd = &cobra.Command{
	Use:   "media:optimize",
	Short: "Resize catalog images and write webp siblings",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := media.OptimizeDir(mediaDir, media.OptimizeOptions{
			MaxWidth: mediaMaxWidth,
			Quality:  mediaQuality,
		})
		if err != nil {
			fmt.Printf("Optimize failed: %v\n", err)
			return
		}
		for _, w := range res.Warnings {
			fmt.Printf("  [warn] %s\n", w)
		}
		fmt.Printf("Processed %d images, skipped %d, in %s\n",
			res.Processed, res.Skipped, res.TotalTime.Round(time.Millisecond))
	},
}

func init() {
	mediaCmd.Flags().StringVarP(&mediaDir, "dir", "d", "media/catalog", "Image directory")
	mediaCmd.Flags().IntVar(&mediaMaxWidth, "max-width", 600, "Maximum thumbnail width in px")
	mediaCmd.Flags().Float32Var(&mediaQuality, "quality", 85, "WebP encode quality (0-100)")
	rootCmd.AddCommand(mediaCmd)
}
