package asset

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"tapquad/internal/render"
)

var (
	faceColor    = color.NRGBA{R: 255, G: 204, B: 0, A: 255}
	featureColor = color.NRGBA{R: 40, G: 24, B: 8, A: 255}
)

// Smiley draws the built-in texture: a yellow face on a transparent
// background, size×size pixels, bottom row first.
func Smiley(size int) render.Pixels {
	if size < 8 {
		size = 8
	}
	s := float32(size)
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	fill(img, &image.Uniform{C: faceColor}, func(z *vector.Rasterizer) {
		circle(z, s/2, s/2, s*0.47)
	})
	fill(img, &image.Uniform{C: featureColor}, func(z *vector.Rasterizer) {
		circle(z, s*0.35, s*0.37, s*0.06)
		circle(z, s*0.65, s*0.37, s*0.06)
		crescent(z, s/2, s*0.52, s*0.28, s*0.21)
	})
	return FromImage(img, DefaultOptions())
}

func fill(dst *image.NRGBA, src image.Image, path func(z *vector.Rasterizer)) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	path(z)
	z.Draw(dst, b, src, image.Point{})
}

// circle adds a closed circle approximated by four cubic segments.
func circle(z *vector.Rasterizer, cx, cy, r float32) {
	const k = 0.5522848
	c := r * k
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+c, cx+c, cy+r, cx, cy+r)
	z.CubeTo(cx-c, cy+r, cx-r, cy+c, cx-r, cy)
	z.CubeTo(cx-r, cy-c, cx-c, cy-r, cx, cy-r)
	z.CubeTo(cx+c, cy-r, cx+r, cy-c, cx+r, cy)
	z.ClosePath()
}

// crescent adds the lower half ring between radii outer and inner,
// which reads as a smile in image space (y down).
func crescent(z *vector.Rasterizer, cx, cy, outer, inner float32) {
	const steps = 24
	arc := func(r float32, from, to float64, first bool) {
		for i := 0; i <= steps; i++ {
			a := from + (to-from)*float64(i)/steps
			x := cx + r*float32(math.Cos(a))
			y := cy + r*float32(math.Sin(a))
			if first && i == 0 {
				z.MoveTo(x, y)
			} else {
				z.LineTo(x, y)
			}
		}
	}
	lo, hi := math.Pi*0.15, math.Pi*0.85
	arc(outer, lo, hi, true)
	arc(inner, hi, lo, false)
	z.ClosePath()
}
