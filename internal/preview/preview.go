// Package preview turns generated distance fields into images for
// inspection: the raw RGB field, the reconstructed glyph, and a true-color
// terminal rendering.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/msdf"
)

// Image returns the distance field as an opaque RGB image.
func Image(res *msdf.Result) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, res.Width, res.Height))
	for y := range res.Height {
		for x := range res.Width {
			r, g, b := res.Pixel(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img
}

// MedianImage returns the per-pixel channel median: the single-channel
// distance a renderer reconstructs.
func MedianImage(res *msdf.Result) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, res.Width, res.Height))
	for y := range res.Height {
		for x := range res.Width {
			img.SetGray(x, y, color.Gray{Y: res.Median(x, y)})
		}
	}
	return img
}

// Upscale enlarges src by factor with bilinear filtering, the way a GPU
// samples the field.
func Upscale(src image.Image, factor int) *image.NRGBA {
	if factor < 1 {
		factor = 1
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Reconstruct renders the shape encoded in res at factor times its size,
// as a renderer would: bilinear sampling, channel median, then a one pixel
// anti-aliased edge. Inside is black on white.
func Reconstruct(res *msdf.Result, factor int) *image.Gray {
	up := Upscale(Image(res), factor)
	b := up.Bounds()
	out := image.NewGray(b)

	// Width of the full encoded range in output pixels.
	pxRange := 2 * res.Range * res.Scale * float64(max(factor, 1))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := up.NRGBAAt(x, y)
			sd := float64(median(c.R, c.G, c.B))/255 - 0.5
			cover := min(max(sd*pxRange+0.5, 0), 1)
			out.SetGray(x, y, color.Gray{Y: uint8(255 - cover*255)})
		}
	}
	return out
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("preview: encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to a PNG file at path.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WritePNG(f, img)
}

func median(a, b, c uint8) uint8 {
	return max(min(a, b), min(max(a, b), c))
}
