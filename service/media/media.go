package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// OptimizeOptions configures a thumbnail run over a media directory.
type OptimizeOptions struct {
	MaxWidth int
	Quality  float32
}

// OptimizeResult holds counters from a thumbnail run.
type OptimizeResult struct {
	Processed int
	Skipped   int
	Warnings  []string
	TotalTime time.Duration
}

var sourceExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// OptimizeDir resizes every product image under dir and writes a webp
// sibling (image.jpg -> image.webp). Existing webp files are skipped.
func OptimizeDir(dir string, opts OptimizeOptions) (*OptimizeResult, error) {
	start := time.Now()
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = 600
	}
	if opts.Quality <= 0 {
		opts.Quality = 80
	}

	res := &OptimizeResult{}
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !sourceExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		target := strings.TrimSuffix(path, filepath.Ext(path)) + ".webp"
		if _, err := os.Stat(target); err == nil {
			res.Skipped++
			return nil
		}
		if err := convert(path, target, opts); err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", path, err))
			res.Skipped++
			return nil
		}
		res.Processed++
		return nil
	})
	res.TotalTime = time.Since(start)
	return res, err
}

func convert(src, dst string, opts OptimizeOptions) error {
	img, err := imaging.Open(src)
	if err != nil {
		return err
	}
	if img.Bounds().Dx() > opts.MaxWidth {
		img = imaging.Resize(img, opts.MaxWidth, 0, imaging.Lanczos)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	return webp.Encode(out, img, &webp.Options{Quality: opts.Quality})
}
