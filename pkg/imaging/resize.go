// Package imaging normalizes uploaded photos before they are stored.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var ErrUnsupportedImage = errors.New("unsupported image format")

// Fit returns width and height scaled down so the longer side is at most
// maxDimension. Smaller images keep their size.
func Fit(width, height, maxDimension int) (int, int) {
	if width >= height {
		if width > maxDimension {
			return maxDimension, max(1, int(float64(height)*float64(maxDimension)/float64(width)))
		}
		return width, height
	}
	if height > maxDimension {
		return max(1, int(float64(width)*float64(maxDimension)/float64(height))), maxDimension
	}
	return width, height
}

// CompressJPEG decodes jpeg/png/webp data, scales it to fit maxDimension and
// re-encodes it as JPEG at the given quality.
func CompressJPEG(data []byte, maxDimension, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedImage
		}
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := Fit(bounds.Dx(), bounds.Dy(), maxDimension)

	resized := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
