package media

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func writeTestJPEG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("save test image: %v", err)
	}
}

func TestOptimizeDir(t *testing.T) {
	dir := t.TempDir()
	writeTestJPEG(t, filepath.Join(dir, "product.jpg"), 1200, 800)
	writeTestJPEG(t, filepath.Join(dir, "small.jpg"), 100, 60)

	res, err := OptimizeDir(dir, OptimizeOptions{MaxWidth: 600})
	if err != nil {
		t.Fatalf("OptimizeDir: %v", err)
	}
	if res.Processed != 2 {
		t.Errorf("Processed = %d, want 2", res.Processed)
	}
	if _, err := os.Stat(filepath.Join(dir, "product.webp")); err != nil {
		t.Errorf("webp output missing: %v", err)
	}

	// Second run skips existing outputs.
	res, err = OptimizeDir(dir, OptimizeOptions{})
	if err != nil {
		t.Fatalf("OptimizeDir rerun: %v", err)
	}
	if res.Processed != 0 || res.Skipped != 2 {
		t.Errorf("rerun Processed = %d Skipped = %d, want 0/2", res.Processed, res.Skipped)
	}
}

func TestOptimizeDir_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	res, err := OptimizeDir(dir, OptimizeOptions{})
	if err != nil {
		t.Fatalf("OptimizeDir: %v", err)
	}
	if res.Processed != 0 {
		t.Errorf("Processed = %d, want 0", res.Processed)
	}
}
