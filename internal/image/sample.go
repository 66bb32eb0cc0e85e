package image

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/jmylchreest/vibrant/internal/colour"
)

// DefaultResizeDimension is the length the shorter side of an image is
// scaled down to before sampling.
const DefaultResizeDimension = 100

// Downscale scales img so its shorter side is at most minDimension, keeping
// the aspect ratio. Images already small enough, and minDimension <= 0, are
// returned unchanged.
func Downscale(img image.Image, minDimension int) image.Image {
	bounds := img.Bounds()
	shorter := min(bounds.Dx(), bounds.Dy())
	if minDimension <= 0 || shorter <= minDimension {
		return img
	}

	ratio := float64(minDimension) / float64(shorter)
	w := max(1, int(math.Round(float64(bounds.Dx())*ratio)))
	h := max(1, int(math.Round(float64(bounds.Dy())*ratio)))

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// Pixels returns every pixel of img as a packed colour, in row-major scan order.
func Pixels(img image.Image) []colour.Color {
	bounds := img.Bounds()
	pixels := make([]colour.Color, 0, bounds.Dx()*bounds.Dy())

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				i := nrgba.PixOffset(x, y)
				p := nrgba.Pix[i : i+4 : i+4]
				pixels = append(pixels, colour.ARGB(p[3], p[0], p[1], p[2]))
			}
		}
		return pixels
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixels = append(pixels, colour.FromColor(img.At(x, y)))
		}
	}
	return pixels
}

// Sample downscales img to minDimension and returns its pixels.
func Sample(img image.Image, minDimension int) []colour.Color {
	return Pixels(Downscale(img, minDimension))
}
