package thumbnail

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Placeholder writes a flat dark PNG used when no video is available or a
// frame grab fails. The page stays complete either way.
func Placeholder(outPath string, width, height int) error {
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 360
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := color.RGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 0xff}
	stripe := color.RGBA{R: 0x34, G: 0x49, B: 0x5e, A: 0xff}

	for y := 0; y < height; y++ {
		c := bg
		if (y/24)%2 == 1 {
			c = stripe
		}
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create placeholder: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode placeholder: %w", err)
	}
	return nil
}
