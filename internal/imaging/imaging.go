// Package imaging приводит загруженные фотографии к единому виду
// перед сохранением и отправкой в модель.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxDimension is the maximum width or height for stored images.
const MaxDimension = 1024

// MaxPixels ограничивает площадь изображения до декодирования.
const MaxPixels = 40_000_000

// JPEGQuality is the compression quality for JPEG output.
const JPEGQuality = 85

// AllowedMIME lists the accepted input MIME types.
var AllowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Result contains the processed image data.
type Result struct {
	Data []byte
	MIME string
	// Ext - расширение, соответствующее MIME, с точкой.
	Ext string
}

// DetectMIME sniffs the content type from bytes (not trusting client headers).
func DetectMIME(data []byte) string {
	return http.DetectContentType(data)
}

// Process validates the format by sniffing bytes, downscales if larger
// than MaxDimension and re-encodes as JPEG.
func Process(data []byte) (*Result, error) {
	detected := DetectMIME(data)
	if !AllowedMIME[detected] {
		return nil, fmt.Errorf("unsupported image format: %s", detected)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, fmt.Errorf("image too large: %dx%d", cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	img = downscale(img, MaxDimension)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}

	return &Result{Data: buf.Bytes(), MIME: "image/jpeg", Ext: ".jpg"}, nil
}

// downscale resizes the image so neither dimension exceeds maxDim,
// preserving aspect ratio. Returns the original image if already within bounds.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	newW, newH := w, h
	if w > h {
		newW = maxDim
		newH = int(float64(h) * float64(maxDim) / float64(w))
	} else {
		newH = maxDim
		newW = int(float64(w) * float64(maxDim) / float64(h))
	}
	newW = max(newW, 1)
	newH = max(newH, 1)

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
