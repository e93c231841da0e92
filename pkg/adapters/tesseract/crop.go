package tesseract

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
)

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// cropBottom keeps the lowest height rows of img, where the TODI strip and the words
// are printed. Images shorter than height are returned whole.
func cropBottom(img image.Image, height int) image.Image {
	b := img.Bounds()
	if height <= 0 || height >= b.Dy() {
		return img
	}
	sub, ok := img.(subImager)
	if !ok {
		return img
	}
	return sub.SubImage(image.Rect(b.Min.X, b.Max.Y-height, b.Max.X, b.Max.Y))
}

func writePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode cropped image: %w", err)
	}
	return nil
}
