// Package asset loads texture images into tightly packed RGBA pixels.
package asset

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"tapquad/internal/render"
)

// Options controls conversion of a decoded image.
type Options struct {
	// FlipY stores the bottom row first, matching GL's texture origin.
	FlipY bool
	// MaxSize bounds the larger dimension; 0 keeps the original size.
	MaxSize int
}

// DefaultOptions flips rows for GL and keeps the original size.
func DefaultOptions() Options { return Options{FlipY: true} }

// Decode reads a PNG, JPEG, GIF, BMP, TIFF or WebP image.
func Decode(r io.Reader, opts Options) (render.Pixels, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return render.Pixels{}, fmt.Errorf("decode image: %w", err)
	}
	if b := img.Bounds(); b.Empty() {
		return render.Pixels{}, fmt.Errorf("decode %s: empty image", format)
	}
	return FromImage(img, opts), nil
}

// Open decodes the image file at path.
func Open(path string, opts Options) (render.Pixels, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return render.Pixels{}, fmt.Errorf("read texture: %w", err)
	}
	px, err := Decode(bytes.NewReader(data), opts)
	if err != nil {
		return render.Pixels{}, fmt.Errorf("%s: %w", path, err)
	}
	return px, nil
}

// FromImage converts img to RGBA texture data.
func FromImage(img image.Image, opts Options) render.Pixels {
	b := img.Bounds()
	w, h := fit(b.Dx(), b.Dy(), opts.MaxSize)

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	}

	pix := dst.Pix
	if opts.FlipY {
		pix = flipRows(dst.Pix, dst.Stride, h)
	}
	return render.Pixels{Pix: pix, Width: w, Height: h, Layout: render.LayoutRGBA}
}

// fit scales w×h down so neither side exceeds limit, keeping the aspect.
func fit(w, h, limit int) (int, int) {
	if limit <= 0 || (w <= limit && h <= limit) {
		return w, h
	}
	if w >= h {
		return limit, clampMin(h*limit/w, 1)
	}
	return clampMin(w*limit/h, 1), limit
}

func clampMin(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}

func flipRows(pix []byte, stride, rows int) []byte {
	out := make([]byte, len(pix))
	for y := 0; y < rows; y++ {
		copy(out[(rows-1-y)*stride:(rows-y)*stride], pix[y*stride:(y+1)*stride])
	}
	return out
}
